package utils

import "time"

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// TimeToUTC converts a time to UTC
func TimeToUTC(t time.Time) time.Time {
	return t.UTC()
}
