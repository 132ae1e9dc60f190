package kernel

// PaginationOptions are the caller-supplied paging parameters.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset returns the row offset for the requested page.
func (p PaginationOptions) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Page describes the position of a result set within the full collection.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// Paginated wraps a page of items with its paging metadata.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// NewPaginated builds the metadata for a page of items given the total count.
func NewPaginated[T any](items []T, opts PaginationOptions, total int) *Paginated[T] {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return &Paginated[T]{
		Items: items,
		Page: Page{
			Number: opts.Page,
			Size:   opts.PageSize,
			Total:  total,
			Pages:  pages,
		},
		Empty: len(items) == 0,
	}
}
