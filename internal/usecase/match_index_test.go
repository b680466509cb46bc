package usecase

import (
	"testing"

	"github.com/homepantry/backend/internal/domain"
)

func testInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "inv-1", Name: "Shredded Cheese", Quantity: 1, Unit: "package"},
		{ID: "inv-2", Name: "Whole Milk", Quantity: 2, Unit: "l"},
		{ID: "inv-3", Name: "Cheddar Cheese Block", Quantity: 1, Unit: "g"},
		{ID: "inv-4", Name: "Eggs", Quantity: 12, Unit: "each"},
		{ID: "inv-5", Name: "Cream Cheese", Quantity: 1, Unit: "package"},
	}
}

func TestLookupExact(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{})
	ix := BuildIndex(canon, testInventory())

	t.Run("same tokens same order", func(t *testing.T) {
		got := ix.Lookup("shredded cheese", "")
		if got.Kind != domain.MatchExact {
			t.Fatalf("Kind = %q, want exact", got.Kind)
		}
		if len(got.Candidates) != 1 || got.Candidates[0].ID != "inv-1" {
			t.Errorf("Candidates = %+v, want [inv-1]", got.Candidates)
		}
	})

	t.Run("case and punctuation do not matter", func(t *testing.T) {
		got := ix.Lookup("SHREDDED, CHEESE!", "")
		if got.Kind != domain.MatchExact {
			t.Errorf("Kind = %q, want exact", got.Kind)
		}
	})

	t.Run("strict key can be ambiguous", func(t *testing.T) {
		items := append(testInventory(), domain.InventoryItem{ID: "inv-6", Name: "shredded cheese", Unit: "bag"})
		ix := BuildIndex(canon, items)
		got := ix.Lookup("Shredded Cheese", "")
		if got.Kind != domain.MatchExact {
			t.Fatalf("Kind = %q, want exact", got.Kind)
		}
		if len(got.Candidates) != 2 {
			t.Fatalf("got %d candidates, want 2", len(got.Candidates))
		}
		if got.Candidates[0].ID != "inv-1" || got.Candidates[1].ID != "inv-6" {
			t.Errorf("candidates out of insertion order: %+v", got.Candidates)
		}
	})
}

func TestLookupLoose(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{})
	ix := BuildIndex(canon, testInventory())

	t.Run("token order difference falls back to loose", func(t *testing.T) {
		got := ix.Lookup("cheese, shredded", "")
		if got.Kind != domain.MatchLoose {
			t.Fatalf("Kind = %q, want loose", got.Kind)
		}
		if got.Candidates[0].ID != "inv-1" {
			t.Errorf("best candidate = %s, want inv-1", got.Candidates[0].ID)
		}
	})

	t.Run("ranked by token overlap", func(t *testing.T) {
		got := ix.Lookup("cheddar cheese", "")
		if got.Kind != domain.MatchLoose {
			t.Fatalf("Kind = %q, want loose", got.Kind)
		}
		if got.Candidates[0].ID != "inv-3" {
			t.Errorf("best candidate = %s, want inv-3", got.Candidates[0].ID)
		}
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		got := ix.Lookup("cheese", "")
		if got.Kind != domain.MatchLoose {
			t.Fatalf("Kind = %q, want loose", got.Kind)
		}
		want := []string{"inv-1", "inv-3", "inv-5"}
		if len(got.Candidates) != len(want) {
			t.Fatalf("got %d candidates, want %d", len(got.Candidates), len(want))
		}
		for i, id := range want {
			if got.Candidates[i].ID != id {
				t.Errorf("candidate[%d] = %s, want %s", i, got.Candidates[i].ID, id)
			}
		}
	})

	t.Run("candidate list is capped", func(t *testing.T) {
		items := []domain.InventoryItem{
			{ID: "a", Name: "cheddar cheese"},
			{ID: "b", Name: "swiss cheese"},
			{ID: "c", Name: "cream cheese"},
			{ID: "d", Name: "goat cheese"},
			{ID: "e", Name: "blue cheese"},
			{ID: "f", Name: "string cheese"},
		}
		ix := BuildIndex(canon, items)
		got := ix.Lookup("cheese", "")
		if len(got.Candidates) != maxLooseCandidates {
			t.Errorf("got %d candidates, want %d", len(got.Candidates), maxLooseCandidates)
		}
	})
}

func TestLookupNone(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{})
	ix := BuildIndex(canon, testInventory())

	for _, name := range []string{"quinoa", "", "  ", "2"} {
		got := ix.Lookup(name, "")
		if got.Kind != domain.MatchNone {
			t.Errorf("Lookup(%q).Kind = %q, want none", name, got.Kind)
		}
		if len(got.Candidates) != 0 {
			t.Errorf("Lookup(%q) returned candidates %+v", name, got.Candidates)
		}
	}
}

func TestLookupUnitWarning(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{})
	ix := BuildIndex(canon, testInventory())

	tests := []struct {
		name string
		unit string
		want bool
	}{
		{name: "same class is compatible", unit: "ml", want: false},
		{name: "convertible within class", unit: "cups", want: false},
		{name: "different class warns", unit: "g", want: true},
		{name: "count against volume warns", unit: "each", want: true},
		{name: "unknown unit never warns", unit: "jug", want: false},
		{name: "empty unit never warns", unit: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Lookup("whole milk", tt.unit)
			if got.Kind != domain.MatchExact {
				t.Fatalf("Kind = %q, want exact", got.Kind)
			}
			if got.UnitWarning != tt.want {
				t.Errorf("UnitWarning = %v, want %v", got.UnitWarning, tt.want)
			}
		})
	}
}

func TestBuildIndexSkipsEmptyIdentities(t *testing.T) {
	canon := NewCanonicalizer(CanonicalizerConfig{})
	ix := BuildIndex(canon, []domain.InventoryItem{
		{ID: "inv-1", Name: "2"},
		{ID: "inv-2", Name: "   "},
		{ID: "inv-3", Name: "butter"},
	})
	got := ix.Lookup("butter", "")
	if got.Kind != domain.MatchExact {
		t.Fatalf("Kind = %q, want exact", got.Kind)
	}
	if len(ix.entries) != 1 {
		t.Errorf("indexed %d entries, want 1", len(ix.entries))
	}
}
