package usecase

import (
	"testing"

	"github.com/homepantry/backend/internal/domain"
)

// normalizeBatch runs raw lines through the full normalize-then-canonicalize
// pipeline, the way review and sync batches are prepared.
func normalizeBatch(t *testing.T, norm *Normalizer, canon *Canonicalizer, lines []string) []domain.NormalizedIngredient {
	t.Helper()
	batch := make([]domain.NormalizedIngredient, 0, len(lines))
	for _, line := range lines {
		batch = append(batch, canon.Canonicalize(norm.Normalize(line, ModeAggressive)))
	}
	return batch
}

func TestDetectDuplicates(t *testing.T) {
	norm := NewNormalizer(NormalizerConfig{})
	canon := NewCanonicalizer(CanonicalizerConfig{})

	t.Run("groups lines sharing a loose key", func(t *testing.T) {
		lines := []string{"milk", "1 milk", "MILK", "eggs"}
		batch := normalizeBatch(t, norm, canon, lines)

		groups := DetectDuplicates(batch)
		if len(groups) != 1 {
			t.Fatalf("got %d groups, want 1", len(groups))
		}
		group, ok := groups["milk"]
		if !ok {
			t.Fatalf("missing group for key %q, groups: %v", "milk", groups)
		}
		if len(group.Items) != 3 {
			t.Errorf("group has %d items, want 3", len(group.Items))
		}
	})

	t.Run("token order does not split a group", func(t *testing.T) {
		batch := normalizeBatch(t, norm, canon, []string{"shredded cheese", "Cheese Shredded"})
		groups := DetectDuplicates(batch)
		if len(groups) != 1 {
			t.Fatalf("got %d groups, want 1", len(groups))
		}
	})

	t.Run("singletons are not duplicates", func(t *testing.T) {
		batch := normalizeBatch(t, norm, canon, []string{"milk", "eggs", "butter"})
		if groups := DetectDuplicates(batch); len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("empty identities are skipped", func(t *testing.T) {
		batch := normalizeBatch(t, norm, canon, []string{"", "  "})
		if groups := DetectDuplicates(batch); len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("guarded names do not group with the literal ingredient", func(t *testing.T) {
		batch := normalizeBatch(t, norm, canon, []string{"eggs", "Cadbury Mini Eggs"})
		if groups := DetectDuplicates(batch); len(groups) != 0 {
			t.Errorf("got %d groups, want 0: %v", len(groups), groups)
		}
	})
}
