// Package dto contains request payloads, response shapes, and the form
// normalization layer shared by handlers and business flows
package dto

// APIResponse represents the standard envelope returned by every endpoint
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries machine-readable error information
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SearchResult is one row of a name search over venues or artists
type SearchResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchResultsResponse is the body of the venue and artist search endpoints.
// Count always equals len(Data); it is kept explicit for API consumers.
type SearchResultsResponse struct {
	Count int            `json:"count"`
	Data  []SearchResult `json:"data"`
}

// MutationResponse reports the outcome of a successful create, update,
// or delete. Message is the user-facing confirmation sentence.
type MutationResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// FormResponse describes an entity form: the field schema plus, for edit
// forms, the current values encoded the way the form boundary expects
// them (seeking flags as "True"/"False", genres as a tag list).
type FormResponse struct {
	Fields []FormField            `json:"fields"`
	Values map[string]interface{} `json:"values,omitempty"`
}
