package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestKnownJoinPreservesOrder(t *testing.T) {
	err := KnownJoin([]string{"first problem", "second problem", "third problem"})
	want := "first problem\nsecond problem\nthird problem"
	if err.Error() != want {
		t.Errorf("KnownJoin message = %q, want %q", err.Error(), want)
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(Known("already explained")) {
		t.Error("IsKnown(Known(...)) = false")
	}
	if !IsKnown(Knownf("bad config: %d errors", 3)) {
		t.Error("IsKnown(Knownf(...)) = false")
	}
	if IsKnown(errors.New("unexpected")) {
		t.Error("IsKnown should reject ordinary errors")
	}
	// detection survives wrapping even though this layer never wraps
	wrapped := fmt.Errorf("outer: %w", Known("inner"))
	if !IsKnown(wrapped) {
		t.Error("IsKnown should see through wrapping")
	}
}
