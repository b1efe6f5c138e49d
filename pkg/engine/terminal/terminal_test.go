package terminal

import "testing"

func TestSize_AlwaysPositive(t *testing.T) {
	// With or without a controlling terminal, layout code must get
	// usable dimensions back.
	w, h := Size()
	if w <= 0 || h <= 0 {
		t.Errorf("size %dx%d, want positive dimensions", w, h)
	}
}

func TestCenterIndent_NeverNegative(t *testing.T) {
	if got := CenterIndent(1 << 20); got != 0 {
		t.Errorf("indent %d for oversized content, want 0", got)
	}
	if got := CenterIndent(0); got < 0 {
		t.Errorf("indent %d, want non-negative", got)
	}
}
