// Package listview is the client-side list state machine shared by every
// collection screen: a backing collection fetched elsewhere, a search term,
// named categorical filters, and a page position, with the visible slice
// derived synchronously. It never touches the network.
package listview

import "strings"

// Filter is one categorical predicate. Sentinel is the "match everything"
// value ("All", "All Roles", ...); Match decides membership for any other
// selected value.
type Filter[T any] struct {
	Sentinel string
	Match    func(item T, value string) bool
}

type State[T any] struct {
	items []T

	searchText func(T) string
	search     string

	filters  map[string]Filter[T]
	order    []string
	selected map[string]string

	page     int
	pageSize int
	keepPage bool
}

type Option[T any] func(*State[T])

// WithFilter registers a named categorical filter, initially at its sentinel.
func WithFilter[T any](name, sentinel string, match func(item T, value string) bool) Option[T] {
	return func(s *State[T]) {
		s.filters[name] = Filter[T]{Sentinel: sentinel, Match: match}
		s.selected[name] = sentinel
		s.order = append(s.order, name)
	}
}

// WithKeepPage keeps the current page on filter/search changes (clamped into
// range) instead of resetting to page 1. Screens that want the legacy
// behavior opt in here; it is configuration, not a fork of the contract.
func WithKeepPage[T any]() Option[T] {
	return func(s *State[T]) { s.keepPage = true }
}

// New builds a list state. searchText returns the concatenation of an item's
// display fields; the search term matches case-insensitively against it.
func New[T any](pageSize int, searchText func(T) string, opts ...Option[T]) *State[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	s := &State[T]{
		searchText: searchText,
		filters:    map[string]Filter[T]{},
		selected:   map[string]string{},
		page:       1,
		pageSize:   pageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetItems replaces the backing collection wholesale (items are never diffed
// in place) and clamps the page into the new range.
func (s *State[T]) SetItems(items []T) {
	s.items = items
	s.clampPage()
}

func (s *State[T]) Items() []T { return s.items }

func (s *State[T]) SetSearch(term string) {
	if s.search == term {
		return
	}
	s.search = term
	s.afterFilterChange()
}

func (s *State[T]) Search() string { return s.search }

// SetFilter selects a value for a named filter. Unknown names are ignored.
func (s *State[T]) SetFilter(name, value string) {
	if _, ok := s.filters[name]; !ok {
		return
	}
	if s.selected[name] == value {
		return
	}
	s.selected[name] = value
	s.afterFilterChange()
}

func (s *State[T]) FilterValue(name string) string { return s.selected[name] }

// FilterNames returns filters in registration order.
func (s *State[T]) FilterNames() []string { return s.order }

// ResetFilters restores every filter to its sentinel, clears the search term
// and returns to page 1.
func (s *State[T]) ResetFilters() {
	s.search = ""
	for name, f := range s.filters {
		s.selected[name] = f.Sentinel
	}
	s.page = 1
}

func (s *State[T]) afterFilterChange() {
	if s.keepPage {
		s.clampPage()
		return
	}
	s.page = 1
}

func (s *State[T]) SetPageSize(n int) {
	if n < 1 || n == s.pageSize {
		return
	}
	s.pageSize = n
	s.page = 1
}

func (s *State[T]) PageSize() int { return s.pageSize }

// NextPage advances one page; a no-op at the last page.
func (s *State[T]) NextPage() {
	if s.page < s.TotalPages() {
		s.page++
	}
}

// PrevPage goes back one page; a no-op at page 1.
func (s *State[T]) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

// SetPage jumps to a page, clamped into [1, TotalPages].
func (s *State[T]) SetPage(n int) {
	s.page = n
	s.clampPage()
}

func (s *State[T]) Page() int { return s.page }

// TotalPages is never 0: an empty filtered set still has one (empty) page so
// navigation controls never divide by or compare against zero.
func (s *State[T]) TotalPages() int {
	n := len(s.Filtered())
	if n == 0 {
		return 1
	}
	return (n + s.pageSize - 1) / s.pageSize
}

// Filtered applies the search predicate and every active filter, ANDed,
// preserving original order.
func (s *State[T]) Filtered() []T {
	term := strings.ToLower(strings.TrimSpace(s.search))
	out := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if term != "" && !strings.Contains(strings.ToLower(s.searchText(it)), term) {
			continue
		}
		if !s.matchesFilters(it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *State[T]) matchesFilters(it T) bool {
	for name, f := range s.filters {
		val := s.selected[name]
		if val == f.Sentinel {
			continue
		}
		if !f.Match(it, val) {
			return false
		}
	}
	return true
}

// PageItems is the visible slice: a contiguous window of Filtered consistent
// with Page and PageSize.
func (s *State[T]) PageItems() []T {
	filtered := s.Filtered()
	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (s *State[T]) clampPage() {
	if s.page < 1 {
		s.page = 1
	}
	if tp := s.TotalPages(); s.page > tp {
		s.page = tp
	}
}
