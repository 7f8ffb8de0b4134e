package diag

import (
	"testing"

	"gencat/internal/source"
)

func TestBagCapAndOrder(t *testing.T) {
	b := NewBag(2)

	if !b.Add(NewError(CfgReadFile, source.Span{}, "one")) {
		t.Error("first Add should succeed")
	}
	if !b.Add(NewError(CfgParseJSON, source.Span{}, "two")) {
		t.Error("second Add should succeed")
	}
	if b.Add(NewError(CfgNoInputs, source.Span{}, "three")) {
		t.Error("Add beyond cap should report false")
	}

	got := b.Messages()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("insertion order lost: %v", got)
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevInfo, CfgInfo, source.Span{}, "info"))
	b.Add(New(SevWarning, CfgInfo, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Error("no errors yet")
	}
	b.Add(NewError(CfgNoInputs, source.Span{}, "boom"))
	if !b.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(CfgReadFile, source.Span{}, "a"))
	b := NewBag(2)
	b.Add(NewError(CfgParseJSON, source.Span{}, "b1"))
	b.Add(NewError(CfgParseJSON, source.Span{}, "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len after merge = %d, want 3", a.Len())
	}
}

func TestBagSortIsByPosition(t *testing.T) {
	b := NewBag(3)
	b.Add(NewError(CfgInfo, source.Span{File: 1, Start: 5, End: 6}, "later"))
	b.Add(NewError(CfgInfo, source.Span{File: 0, Start: 9, End: 10}, "first file"))
	b.Add(NewError(CfgInfo, source.Span{File: 1, Start: 2, End: 3}, "earlier"))

	b.Sort()
	got := b.Messages()
	want := []string{"first file", "earlier", "later"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}
