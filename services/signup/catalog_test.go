package signup

import (
	"reflect"
	"testing"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog([]string{"B", "A", "B", "C"})

	if got, want := c.Slots(), []string{"B", "A", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Slots = %v, want insertion order with duplicates dropped %v", got, want)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if !c.Contains("A") || c.Contains("Z") {
		t.Fatal("Contains misreports membership")
	}

	// Mutating the returned slice must not affect the catalog.
	s := c.Slots()
	s[0] = "mutated"
	if c.Slots()[0] != "B" {
		t.Fatal("Slots returned internal storage")
	}
}
