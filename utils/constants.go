// Package utils provides small helpers shared across layers
package utils

// ContextKey is the type used for request-scoped context values
type ContextKey string

const (
	// RequestIDKey carries the per-request correlation id
	RequestIDKey ContextKey = "request_id"
	// UserAgentKey carries the client's User-Agent header
	UserAgentKey ContextKey = "user_agent"
	// IPAddressKey carries the client's remote address
	IPAddressKey ContextKey = "ip_address"
	// EndpointKey carries the matched route template
	EndpointKey ContextKey = "endpoint"
)
