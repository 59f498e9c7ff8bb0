package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int `json:"page" form:"page"`   // 1-indexed
	Limit int `json:"limit" form:"limit"` // items per page
}

// Paginator describes one page of a listed result.
type Paginator struct {
	Total       int64
	Count       int
	PerPage     int
	CurrentPage int
}

// PaginatorResponse is the wire form of Paginator.
type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int   `json:"count"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
