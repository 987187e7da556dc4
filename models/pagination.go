package models

// Pagination is the page metadata attached to a rooms listing response.
// Invariant: 1 <= Page <= max(TotalPages, 1).
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// TotalPagesFor derives the page count: ceil(total/limit), 0 when nothing matches.
func TotalPagesFor(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// HasMore reports whether pages beyond the current one exist.
func (p Pagination) HasMore() bool {
	return p.Page < p.TotalPages
}
