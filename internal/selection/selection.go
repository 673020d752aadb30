// Package selection implements a generic cursor+viewport abstraction shared
// by every scrollable list in the application (commit graph, file lists,
// branch/stash/worktree lists, search results).
package selection

// Selection tracks the current cursor position and scroll offset over a
// slice of items of type T, keeping the cursor visible within a fixed-height
// viewport.
type Selection[T any] struct {
	items         []T
	selected      int
	scrollOffset  int
	visibleHeight int
}

// New returns an empty selection with a sane default viewport height.
func New[T any]() *Selection[T] {
	return &Selection[T]{visibleHeight: 10}
}

// WithItems returns a selection populated with items, cursor at index 0.
func WithItems[T any](items []T) *Selection[T] {
	return &Selection[T]{items: items, visibleHeight: 10}
}

// SetVisibleHeight sets the viewport height used for scroll adjustment.
func (s *Selection[T]) SetVisibleHeight(height int) {
	s.visibleHeight = height
	s.adjustScroll()
}

// SetItems replaces the backing slice, clamping the cursor if it now falls
// past the end.
func (s *Selection[T]) SetItems(items []T) {
	s.items = items
	if s.selected >= len(s.items) && len(s.items) > 0 {
		s.selected = len(s.items) - 1
	}
	if len(s.items) == 0 {
		s.selected = 0
	}
	s.adjustScroll()
}

// Items returns the full backing slice.
func (s *Selection[T]) Items() []T { return s.items }

// SelectedIndex returns the cursor position.
func (s *Selection[T]) SelectedIndex() int { return s.selected }

// SelectedItem returns the item under the cursor, or the zero value and
// false if the selection is empty.
func (s *Selection[T]) SelectedItem() (T, bool) {
	var zero T
	if s.selected < 0 || s.selected >= len(s.items) {
		return zero, false
	}
	return s.items[s.selected], true
}

// ScrollOffset returns the index of the first visible item.
func (s *Selection[T]) ScrollOffset() int { return s.scrollOffset }

// Len returns the number of items.
func (s *Selection[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the selection has no items.
func (s *Selection[T]) IsEmpty() bool { return len(s.items) == 0 }

// SelectPrevious moves the cursor up one row.
func (s *Selection[T]) SelectPrevious() {
	if s.selected > 0 {
		s.selected--
		s.adjustScroll()
	}
}

// SelectNext moves the cursor down one row.
func (s *Selection[T]) SelectNext() {
	if s.selected+1 < len(s.items) {
		s.selected++
		s.adjustScroll()
	}
}

// PageUp moves the cursor up by one viewport height.
func (s *Selection[T]) PageUp() {
	s.selected -= s.visibleHeight
	if s.selected < 0 {
		s.selected = 0
	}
	s.adjustScroll()
}

// PageDown moves the cursor down by one viewport height, clamped to the
// last item.
func (s *Selection[T]) PageDown() {
	s.selected += s.visibleHeight
	if max := len(s.items) - 1; s.selected > max {
		s.selected = max
	}
	if s.selected < 0 {
		s.selected = 0
	}
	s.adjustScroll()
}

// SelectFirst moves the cursor to the first item.
func (s *Selection[T]) SelectFirst() {
	s.selected = 0
	s.scrollOffset = 0
}

// SelectLast moves the cursor to the last item.
func (s *Selection[T]) SelectLast() {
	if len(s.items) > 0 {
		s.selected = len(s.items) - 1
		s.adjustScroll()
	}
}

// Select moves the cursor to a specific index, ignored if out of range.
func (s *Selection[T]) Select(index int) {
	if index >= 0 && index < len(s.items) {
		s.selected = index
		s.adjustScroll()
	}
}

// adjustScroll keeps the cursor within [scrollOffset, scrollOffset+visibleHeight).
func (s *Selection[T]) adjustScroll() {
	if s.visibleHeight <= 0 {
		return
	}
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}
	if s.selected >= s.scrollOffset+s.visibleHeight {
		s.scrollOffset = s.selected - s.visibleHeight + 1
	}
}

// VisibleItems returns the items currently within the viewport, alongside
// their original indices.
func (s *Selection[T]) VisibleItems() []IndexedItem[T] {
	if s.visibleHeight <= 0 || len(s.items) == 0 {
		return nil
	}
	end := s.scrollOffset + s.visibleHeight
	if end > len(s.items) {
		end = len(s.items)
	}
	start := s.scrollOffset
	if start > end {
		start = end
	}
	out := make([]IndexedItem[T], 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, IndexedItem[T]{Index: i, Item: s.items[i]})
	}
	return out
}

// IndexedItem pairs an item with its index in the backing slice.
type IndexedItem[T any] struct {
	Index int
	Item  T
}
