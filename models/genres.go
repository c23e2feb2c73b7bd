package models

import "strings"

// GenreDelimiter separates tags inside the stored genres column.
const GenreDelimiter = ","

// EncodeGenres flattens an ordered list of genre tags into the single
// string stored on a venue or artist row. Tags containing the delimiter
// are not escaped; callers are expected to pass plain tag names.
func EncodeGenres(tags []string) string {
	return strings.Join(tags, GenreDelimiter)
}

// DecodeGenres inverts EncodeGenres. It also tolerates rows written by
// the previous implementation, which wrapped the value in list brackets
// and quoted each tag. Empty input decodes to an empty slice, never nil.
func DecodeGenres(stored string) []string {
	if stored == "" {
		return []string{}
	}
	if len(stored) >= 2 {
		first, last := stored[0], stored[len(stored)-1]
		if (first == '[' && last == ']') || (first == '{' && last == '}') {
			stored = stored[1 : len(stored)-1]
		}
	}
	if stored == "" {
		return []string{}
	}
	parts := strings.Split(stored, GenreDelimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `'"`)
		tags = append(tags, p)
	}
	return tags
}
