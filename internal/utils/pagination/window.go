package pagination

// DefaultPerPage matches the browsing grid: 12 profiles per page.
const DefaultPerPage = 12

// Window is a cumulative page window over a filtered list. Page N covers
// items [0, N*PerPage): "load more" extends the window rather than replacing
// it, and any filter change resets back to page 1.
type Window struct {
	Page    int
	PerPage int
}

// NewWindow normalizes page/perPage into a usable window.
func NewWindow(page, perPage int) Window {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Window{Page: page, PerPage: perPage}
}

// End returns the exclusive upper bound of the window for a list of the
// given total length.
func (w Window) End(total int) int {
	end := w.Page * w.PerPage
	if end > total {
		end = total
	}
	return end
}

// HasMore reports whether items remain beyond the window.
func (w Window) HasMore(total int) bool {
	return w.End(total) < total
}

// Slice returns the visible window of items.
func Slice[T any](items []T, w Window) []T {
	return items[:w.End(len(items))]
}
