package models

// Pagination mirrors the frontend table component's paging model.
// Page is 1-based; Count is the total row count before slicing.
type Pagination struct {
	Size  int `json:"size"`
	Page  int `json:"page"`
	Count int `json:"count"`
}

// Paged wraps one page of rows with its paging info.
type Paged[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPaged slices items to the requested page. Size <= 0 disables paging
// and returns everything.
func NewPaged[T any](items []T, page, size int) Paged[T] {
	count := len(items)
	if size <= 0 {
		return Paged[T]{Items: items, Pagination: Pagination{Size: count, Page: 1, Count: count}}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start > count {
		start = count
	}
	end := start + size
	if end > count {
		end = count
	}
	return Paged[T]{Items: items[start:end], Pagination: Pagination{Size: size, Page: page, Count: count}}
}
