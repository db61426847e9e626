package common

// ListResponse wraps a collection payload. Pagination is set only on
// endpoints that page.
type ListResponse struct {
	Data       interface{}         `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// PaginationResponse describes the window a list response covers
type PaginationResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}
