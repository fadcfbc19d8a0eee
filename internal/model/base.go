package model

// Pagination represents common pagination parameters.
type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

// Normalize clamps the parameters to usable values.
func (p Pagination) Normalize(defaultSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	return p
}

// PageOf slices one page out of a projection. The projection itself is
// always recomputed by the caller; this only windows it.
func PageOf[T any](items []T, p Pagination) []T {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return nil
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
