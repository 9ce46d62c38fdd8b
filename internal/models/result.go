package models

// SearchResult is one page of a property search.
type SearchResult struct {
	Items      []Property `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// CountResult is the answer to a count-only search.
type CountResult struct {
	Total int64 `json:"total"`
}
