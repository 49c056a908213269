package skill

import "testing"

func TestSuggestReturnsCatalogEntry(t *testing.T) {
	known := make(map[string]bool, len(Catalog))
	for _, s := range Catalog {
		known[s] = true
	}
	for i := 0; i < 100; i++ {
		if s := Suggest(); !known[s] {
			t.Fatalf("suggestion %q is not in the catalog", s)
		}
	}
}
