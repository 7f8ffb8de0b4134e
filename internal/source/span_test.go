package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 2, End: 6}
	if s.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
	if (Span{File: 1, Start: 3, End: 3}).Empty() == false {
		t.Error("empty span not reported Empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 5}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 6 {
		t.Errorf("Cover = %v, want 1:2-6", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}
