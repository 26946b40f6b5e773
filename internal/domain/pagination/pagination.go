package pagination

// SearchQuery carries listing parameters for paginated gateway lookups.
type SearchQuery struct {
	Page      int
	PerPage   int
	Term      string
	Sort      string
	Direction string
}

// Page is one page of results together with the totals the caller needs to
// keep paginating.
type Page[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int64
	Items       []T
}

// Map converts a page of one item type into a page of another, preserving the
// pagination metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[R]{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
