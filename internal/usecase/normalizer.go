package usecase

import (
	"regexp"
	"strings"
	"unicode"
)

// Mode selects how aggressively Normalize strips descriptors.
//
// ModeAggressive removes every removable descriptor, including preparation
// words; receipt entry wants maximal noise removal. ModeIdentityPreserving
// keeps preparation descriptors (chopped, diced, ...) so "2 cups flour" and
// "flour, chopped" stay distinguishable on the shopping list, and only drops
// pure notes/chatter clauses.
type Mode int

const (
	ModeAggressive Mode = iota
	ModeIdentityPreserving
)

// NormalizerConfig holds the vocabulary tables the normalizer works from.
// Zero-value fields fall back to the package defaults, so tests can substitute
// alternate vocabularies without touching the pipeline itself.
type NormalizerConfig struct {
	Units            []string // leading/trailing measurement units
	NoiseDescriptors []string // always-removable clause keywords
	PrepDescriptors  []string // kept in ModeIdentityPreserving
}

// defaultUnits is the fixed measurement vocabulary recognized at the head and
// tail of a line.
var defaultUnits = []string{
	"cups", "cup", "tbsp", "tsp", "oz", "lbs", "lb", "g", "kg", "ml", "l",
	"pinch", "dash", "cloves", "clove", "slices", "slice", "cans", "can",
	"packages", "package", "packets", "packet",
}

// defaultNoiseDescriptors mark a trailing clause as droppable in either mode.
var defaultNoiseDescriptors = []string{
	"divided", "melted", "softened", "room temperature", "to taste",
	"as needed", "for serving", "for garnish", "optional", "peeled",
	"seeded", "crushed", "drained", "rinsed", "fresh", "packed",
	"warm", "cold",
}

// defaultPrepDescriptors survive ModeIdentityPreserving but are stripped in
// ModeAggressive.
var defaultPrepDescriptors = []string{
	"chopped", "diced", "minced", "sliced", "grated", "shredded",
}

// vulgarFractions maps Unicode fraction glyphs to ASCII equivalents. The
// fraction slash U+2044 becomes a plain slash so "1⁄2" parses like "1/2".
var vulgarFractions = strings.NewReplacer(
	"¼", " 1/4 ", "½", " 1/2 ", "¾", " 3/4 ",
	"⅓", " 1/3 ", "⅔", " 2/3 ",
	"⅛", " 1/8 ", "⅜", " 3/8 ", "⅝", " 5/8 ", "⅞", " 7/8 ",
	"⁄", "/",
)

var (
	leadingMarkerPattern   = regexp.MustCompile(`^[\s•*·\-–—]+`)
	leadingQuantityPattern = regexp.MustCompile(`^(?:\d+\s+\d+\s*/\s*\d+|\d+\s*/\s*\d+|\d+(?:\.\d+)?)\s+`)
	leadingOfPattern       = regexp.MustCompile(`(?i)^of\s+`)
	whitespacePattern      = regexp.MustCompile(`\s+`)
	numericTokenPattern    = regexp.MustCompile(`^\d+(?:[./]\d+)?$`)
)

// Normalizer strips quantity, unit, and packaging noise from a raw ingredient
// or purchase line, producing a clean display name. It is a pure computation:
// same input, same output, no external state.
type Normalizer struct {
	units map[string]bool
	noise []string
	prep  []string

	leadingUnitPattern   *regexp.Regexp
	trailingSizePatterns []*regexp.Regexp
	trailingNumber       *regexp.Regexp
	trailingParenNote    *regexp.Regexp
}

// NewNormalizer compiles the vocabulary into the matching patterns. An empty
// config yields the default domain vocabulary.
func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	units := cfg.Units
	if len(units) == 0 {
		units = defaultUnits
	}
	noise := cfg.NoiseDescriptors
	if len(noise) == 0 {
		noise = defaultNoiseDescriptors
	}
	prep := cfg.PrepDescriptors
	if len(prep) == 0 {
		prep = defaultPrepDescriptors
	}

	unitSet := make(map[string]bool, len(units))
	escaped := make([]string, 0, len(units))
	for _, u := range units {
		unitSet[strings.ToLower(u)] = true
		escaped = append(escaped, regexp.QuoteMeta(u))
	}
	alt := strings.Join(escaped, "|")

	return &Normalizer{
		units: unitSet,
		noise: noise,
		prep:  prep,

		leadingUnitPattern: regexp.MustCompile(`(?i)^(?:` + alt + `)\.?\s+`),
		trailingSizePatterns: []*regexp.Regexp{
			// range: "2-3 kg"
			regexp.MustCompile(`(?i)[\s,]*\d+(?:\.\d+)?\s*-\s*\d+(?:\.\d+)?\s*(?:` + alt + `)\.?\s*$`),
			// multiplicative: "2 x 250 ml"
			regexp.MustCompile(`(?i)[\s,]*\d+\s*[x×]\s*\d+(?:\.\d+)?\s*(?:` + alt + `)?\.?\s*$`),
			// single size: "500 g"
			regexp.MustCompile(`(?i)[\s,]*\d+(?:\.\d+)?\s*(?:` + alt + `)\.?\s*$`),
			// pack count: "6 pack"
			regexp.MustCompile(`(?i)[\s,]*\d+\s*-?\s*(?:pack|pk|count|ct)\s*$`),
		},
		trailingNumber:    regexp.MustCompile(`[\s,\-]*\d+(?:\.\d+)?\s*$`),
		trailingParenNote: regexp.MustCompile(`\s*\([^)]*\d[^)]*\)\s*$`),
	}
}

// Normalize turns a raw free-text line into a clean display name. It never
// fails: unusable input yields an empty string, and a line the pipeline would
// otherwise reduce to nothing falls back to the trimmed original so non-empty
// input never produces an empty display name.
func (n *Normalizer) Normalize(raw string, mode Mode) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	s := vulgarFractions.Replace(trimmed)
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	s = leadingMarkerPattern.ReplaceAllString(s, "")
	s = leadingQuantityPattern.ReplaceAllString(s, "")
	s = n.leadingUnitPattern.ReplaceAllString(s, "")
	s = leadingOfPattern.ReplaceAllString(s, "")

	s = n.stripTrailingAnnotations(s)
	s = n.dropClauses(s, mode)

	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return trimmed
	}
	return s
}

// stripTrailingAnnotations removes packaging/size noise from the end of the
// line, looping until stable so stacked annotations ("flour 2 x 250 ml (x3)")
// come off one layer at a time.
func (n *Normalizer) stripTrailingAnnotations(s string) string {
	for {
		before := s
		s = n.trailingParenNote.ReplaceAllString(s, "")
		for _, p := range n.trailingSizePatterns {
			s = p.ReplaceAllString(s, "")
		}
		// A trailing bare number only goes when letters remain, so a line
		// that is nothing but a number keeps its content.
		if loc := n.trailingNumber.FindStringIndex(s); loc != nil {
			if strings.ContainsFunc(s[:loc[0]], unicode.IsLetter) {
				s = s[:loc[0]]
			}
		}
		s = strings.TrimSpace(s)
		if s == before {
			return s
		}
	}
}

// dropClauses splits on commas and drops trailing clauses that are pure
// measurement metadata or carry a removable descriptor. The first clause is
// the ingredient itself and always survives.
func (n *Normalizer) dropClauses(s string, mode Mode) string {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		return s
	}

	removable := n.noise
	if mode == ModeAggressive {
		removable = append(append([]string{}, n.noise...), n.prep...)
	}

	kept := []string{strings.TrimSpace(parts[0])}
	for _, clause := range parts[1:] {
		clause = strings.TrimSpace(clause)
		if clause == "" || n.isPureMetadata(clause) || containsKeyword(clause, removable) {
			continue
		}
		kept = append(kept, clause)
	}
	return strings.Join(kept, ", ")
}

// isPureMetadata reports whether every word in the clause is a number, a unit,
// or a multiplier, i.e. the clause carries no ingredient identity.
func (n *Normalizer) isPureMetadata(clause string) bool {
	fields := strings.Fields(strings.ToLower(clause))
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		f = strings.TrimSuffix(f, ".")
		if numericTokenPattern.MatchString(f) || n.units[f] || f == "x" {
			continue
		}
		return false
	}
	return true
}

// containsKeyword checks for whole-word keyword occurrence; keywords may be
// multi-word phrases like "room temperature".
func containsKeyword(clause string, keywords []string) bool {
	padded := " " + strings.Join(strings.Fields(strings.ToLower(clause)), " ") + " "
	for _, kw := range keywords {
		if strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return false
}
