// Package listview implements client-side search over an in-memory
// collection: case-insensitive substring filtering across configured fields
// and fixed-size pagination. The view state is an explicit value owned by
// the presentation layer; there are no package-level collections.
package listview

import "strings"

// DefaultPageSize matches the observed table size of the management pages.
const DefaultPageSize = 5

// Fields extracts the searchable field values of an item. Numeric ids are
// matched by their decimal string, so they belong in the returned slice too.
type Fields[T any] func(item T) []string

// View holds the full collection, the current filter term, and the 1-based
// page index. Filtering always restarts from the full collection so
// successive queries never compound.
type View[T any] struct {
	items    []T
	filtered []T
	fields   Fields[T]
	page     int
	pageSize int
}

// New builds a view over items. A pageSize below 1 falls back to
// DefaultPageSize.
func New[T any](items []T, pageSize int, fields Fields[T]) *View[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	v := &View[T]{fields: fields, pageSize: pageSize}
	v.SetItems(items)
	return v
}

// SetItems replaces the collection, clears the filter, and returns to the
// first page. Used after every refetch.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.filtered = items
	v.page = 1
}

// SetQuery filters the full collection with a case-insensitive substring
// match, OR across the configured fields. The empty query matches
// everything. Changing the query always resets to page 1.
func (v *View[T]) SetQuery(query string) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		v.filtered = v.items
		v.page = 1
		return
	}
	filtered := make([]T, 0, len(v.items))
	for _, item := range v.items {
		for _, f := range v.fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	v.filtered = filtered
	v.page = 1
}

// TotalPages is ceil(count / pageSize); zero when nothing matches.
func (v *View[T]) TotalPages() int {
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

// CurrentPage returns the 1-based page index.
func (v *View[T]) CurrentPage() int { return v.page }

// Total returns the number of items matching the current filter.
func (v *View[T]) Total() int { return len(v.filtered) }

// SetPage navigates to a page. A request outside [1, TotalPages] is a
// no-op, not an error.
func (v *View[T]) SetPage(page int) bool {
	if page < 1 || page > v.TotalPages() {
		return false
	}
	v.page = page
	return true
}

// PageItems returns the current page slice, clipped to bounds.
func (v *View[T]) PageItems() []T {
	start := (v.page - 1) * v.pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}
