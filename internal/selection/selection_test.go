package selection

import "testing"

func TestSelectNext(t *testing.T) {
	s := WithItems([]int{1, 2, 3, 4, 5})
	if s.SelectedIndex() != 0 {
		t.Fatalf("want 0, got %d", s.SelectedIndex())
	}
	s.SelectNext()
	if s.SelectedIndex() != 1 {
		t.Fatalf("want 1, got %d", s.SelectedIndex())
	}
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	if s.SelectedIndex() != 4 {
		t.Fatalf("want 4, got %d", s.SelectedIndex())
	}
	// does not run past the end
	s.SelectNext()
	if s.SelectedIndex() != 4 {
		t.Fatalf("want 4 (clamped), got %d", s.SelectedIndex())
	}
}

func TestScrollAdjustment(t *testing.T) {
	s := WithItems([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	s.SetVisibleHeight(3)

	if s.ScrollOffset() != 0 {
		t.Fatalf("want 0, got %d", s.ScrollOffset())
	}
	s.Select(5)
	if s.ScrollOffset() <= 0 {
		t.Fatalf("expected scroll offset to advance, got %d", s.ScrollOffset())
	}
	// invariant: the cursor must always be within the viewport
	if s.SelectedIndex() < s.ScrollOffset() || s.SelectedIndex() >= s.ScrollOffset()+3 {
		t.Fatalf("cursor %d left viewport [%d,%d)", s.SelectedIndex(), s.ScrollOffset(), s.ScrollOffset()+3)
	}
}

func TestEmptyList(t *testing.T) {
	s := New[int]()
	s.SelectNext()
	s.SelectPrevious()
	if s.SelectedIndex() != 0 {
		t.Fatalf("want 0, got %d", s.SelectedIndex())
	}
	if _, ok := s.SelectedItem(); ok {
		t.Fatal("expected no selected item on empty list")
	}
}

func TestSetItemsClampsSelection(t *testing.T) {
	s := WithItems([]int{1, 2, 3, 4, 5})
	s.SelectLast()
	s.SetItems([]int{1, 2})
	if s.SelectedIndex() != 1 {
		t.Fatalf("want clamped index 1, got %d", s.SelectedIndex())
	}
}

func TestVisibleItemsWindow(t *testing.T) {
	s := WithItems([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	s.SetVisibleHeight(4)
	s.Select(9)
	vis := s.VisibleItems()
	if len(vis) != 4 {
		t.Fatalf("want 4 visible items, got %d", len(vis))
	}
	if vis[len(vis)-1].Item != 9 {
		t.Fatalf("expected last visible item to be the selected one, got %v", vis[len(vis)-1])
	}
}
