package usecase

import (
	"strings"
	"testing"
)

func TestNormalizeAggressive(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{})

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips leading integer quantity",
			raw:  "2 eggs",
			want: "eggs",
		},
		{
			name: "strips quantity and unit",
			raw:  "2 cups flour",
			want: "flour",
		},
		{
			name: "strips mixed fraction",
			raw:  "1 1/2 tsp vanilla extract",
			want: "vanilla extract",
		},
		{
			name: "strips simple fraction",
			raw:  "1/2 cup sugar",
			want: "sugar",
		},
		{
			name: "replaces unicode vulgar fraction",
			raw:  "¼ cup sugar",
			want: "sugar",
		},
		{
			name: "strips decimal quantity",
			raw:  "1.5 kg potatoes",
			want: "potatoes",
		},
		{
			name: "strips bullet marker before quantity",
			raw:  "- 1/2 cup of walnuts",
			want: "walnuts",
		},
		{
			name: "strips leading of",
			raw:  "of tomatoes",
			want: "tomatoes",
		},
		{
			name: "strips unit with trailing period",
			raw:  "2 lbs. ground beef",
			want: "ground beef",
		},
		{
			name: "strips trailing single size",
			raw:  "chicken breast 500 g",
			want: "chicken breast",
		},
		{
			name: "strips trailing size range",
			raw:  "potatoes 2-3 kg",
			want: "potatoes",
		},
		{
			name: "strips trailing multiplicative size",
			raw:  "olive oil 2 x 250 ml",
			want: "olive oil",
		},
		{
			name: "strips trailing pack count",
			raw:  "beer 6 pack",
			want: "beer",
		},
		{
			name: "strips trailing bare number when letters remain",
			raw:  "eggs 12",
			want: "eggs",
		},
		{
			name: "strips trailing parenthetical numeric note",
			raw:  "cola (2 l)",
			want: "cola",
		},
		{
			name: "drops pure metadata clause",
			raw:  "flour, 2 cups",
			want: "flour",
		},
		{
			name: "drops noise descriptor clause",
			raw:  "butter, room temperature",
			want: "butter",
		},
		{
			name: "drops to-taste clause",
			raw:  "salt, to taste",
			want: "salt",
		},
		{
			name: "drops preparation clause in aggressive mode",
			raw:  "2 cloves garlic, minced",
			want: "garlic",
		},
		{
			name: "keeps meaningful clause",
			raw:  "yogurt, greek style",
			want: "yogurt, greek style",
		},
		{
			name: "empty input stays empty",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace-only input stays empty",
			raw:  "   ",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.raw, ModeAggressive)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdentityPreserving(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{})

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "keeps preparation descriptor mid-line",
			raw:  "2 cups shredded cheese",
			want: "shredded cheese",
		},
		{
			name: "keeps preparation descriptor clause",
			raw:  "cheese, shredded",
			want: "cheese, shredded",
		},
		{
			name: "keeps minced clause",
			raw:  "2 cloves garlic, minced",
			want: "garlic, minced",
		},
		{
			name: "still drops noise descriptor clause",
			raw:  "butter, softened",
			want: "butter",
		},
		{
			name: "still drops pure metadata clause",
			raw:  "flour, 2 cups",
			want: "flour",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.raw, ModeIdentityPreserving)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeNeverEmptiesNonEmptyInput(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{})

	// Lines the pipeline would otherwise reduce to nothing fall back to the
	// trimmed original.
	inputs := []string{"500 g", "1/2", "2 x 250 ml", "(12)", "6 pack"}
	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			got := n.Normalize(raw, ModeAggressive)
			if strings.TrimSpace(got) == "" {
				t.Errorf("Normalize(%q) produced empty display name", raw)
			}
		})
	}
}

func TestNormalizeCustomVocabulary(t *testing.T) {
	n := NewNormalizer(NormalizerConfig{
		Units:            []string{"scoop", "scoops"},
		NoiseDescriptors: []string{"blended"},
		PrepDescriptors:  []string{"frothed"},
	})

	t.Run("custom unit is stripped", func(t *testing.T) {
		if got := n.Normalize("2 scoops protein powder", ModeAggressive); got != "protein powder" {
			t.Errorf("got %q, want %q", got, "protein powder")
		}
	})

	t.Run("default unit is no longer recognized", func(t *testing.T) {
		if got := n.Normalize("cups flour", ModeAggressive); got != "cups flour" {
			t.Errorf("got %q, want %q", got, "cups flour")
		}
	})

	t.Run("custom prep descriptor kept in identity mode", func(t *testing.T) {
		if got := n.Normalize("milk, frothed", ModeIdentityPreserving); got != "milk, frothed" {
			t.Errorf("got %q, want %q", got, "milk, frothed")
		}
	})

	t.Run("custom prep descriptor dropped in aggressive mode", func(t *testing.T) {
		if got := n.Normalize("milk, frothed", ModeAggressive); got != "milk" {
			t.Errorf("got %q, want %q", got, "milk")
		}
	})
}
