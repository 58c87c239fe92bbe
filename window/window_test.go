package window

import "testing"

// TestWindowLifecycle verifies create-then-close leaves a clean state and
// that window and surface are created together.
func TestWindowLifecycle(t *testing.T) {
	w, err := NewSimulation(Config{Title: "test"}, 80, 24)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if !w.Open() {
		t.Fatal("Expected window open after create")
	}
	if w.Surface() == nil {
		t.Fatal("Expected surface to exist with window")
	}

	w.Close()
	if w.Open() {
		t.Error("Expected window closed")
	}

	// Double close must be safe
	w.Close()
}

// TestWindowResize verifies the surface is resized in place, not replaced.
func TestWindowResize(t *testing.T) {
	w, err := NewSimulation(Config{}, 80, 24)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	defer w.Close()

	before := w.Surface()
	after := w.Resize(100, 30)

	if after != before {
		t.Error("Expected resize to keep the same surface handle")
	}
	if after.Width() != 100 || after.Height() != 30 {
		t.Errorf("Expected 100x30, got %dx%d", after.Width(), after.Height())
	}
}
