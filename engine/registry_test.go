package engine

import (
	"testing"

	"github.com/lixenwraith/scrap/window"
)

// nullEngine is a do-nothing engine for registry tests.
type nullEngine struct{}

func (nullEngine) Attach(*window.Surface) error { return nil }
func (nullEngine) Handle(Command) error         { return nil }
func (nullEngine) Render() error                { return nil }
func (nullEngine) Events() []Event              { return nil }
func (nullEngine) Close() error                 { return nil }

// TestRegistryLookup verifies registration and instantiation by name.
func TestRegistryLookup(t *testing.T) {
	Register("registry-test-null", func() Engine { return nullEngine{} })

	eng, err := New("registry-test-null")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if eng == nil {
		t.Fatal("Expected non-nil engine")
	}

	found := false
	for _, name := range Names() {
		if name == "registry-test-null" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() missing registered engine: %v", Names())
	}
}

// TestRegistryUnknown verifies lookup of an unregistered name fails.
func TestRegistryUnknown(t *testing.T) {
	if _, err := New("no-such-engine"); err == nil {
		t.Fatal("Expected error for unknown engine")
	}
}

// TestRegistryDuplicatePanics verifies double registration is rejected.
func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on duplicate registration")
		}
	}()
	Register("registry-test-dup", func() Engine { return nullEngine{} })
	Register("registry-test-dup", func() Engine { return nullEngine{} })
}
