package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/homepantry/backend/internal/domain"
)

// Guard is a domain disambiguation rule applied before tokenizing. When a
// name trips one of the Triggers (whole-word phrase match) or contains a
// target token alongside a co-occurring token, every target token is replaced
// with the fused Sentinel so the name can never token-match the literal
// ingredient again.
type Guard struct {
	Name         string
	Triggers     []string
	TargetTokens []string
	CoOccur      []string
	Sentinel     string
}

// defaultGuards keeps confectionery "eggs" (Mini Eggs, chocolate eggs) from
// matching recipes that require literal eggs.
var defaultGuards = []Guard{
	{
		Name:         "confectionery-eggs",
		Triggers:     []string{"mini eggs", "cadbury", "chocolate eggs", "candy eggs"},
		TargetTokens: []string{"egg", "eggs"},
		CoOccur:      []string{"chocolate", "candy", "sweets", "treats"},
		Sentinel:     "mini_eggs",
	},
}

// defaultStopWords are dropped during tokenization.
var defaultStopWords = []string{
	"the", "a", "an", "and", "of", "with", "for", "to", "in", "on",
	"now", "fresh", "original", "classic",
}

// CanonicalizerConfig lets tests substitute alternate stop-word and guard
// tables; zero values fall back to the package defaults.
type CanonicalizerConfig struct {
	StopWords []string
	Guards    []Guard
}

var (
	// quoteMarkReplacer strips trademark symbols and quote characters before
	// the catch-all punctuation pass, so "Kellogg's" keeps its token intact.
	quoteMarkReplacer = strings.NewReplacer(
		"®", "", "™", "", "©", "",
		"'", "", "’", "", "‘", "", "\"", "", "“", "", "”", "", "`", "",
	)
	punctuationPattern = regexp.MustCompile(`[^\w\s]`)
)

// Canonicalizer derives the two-fidelity canonical identity of a display
// name. It is a pure function of its input and configuration.
type Canonicalizer struct {
	stopWords map[string]bool
	guards    []Guard
}

// NewCanonicalizer builds a canonicalizer from the given configuration.
func NewCanonicalizer(cfg CanonicalizerConfig) *Canonicalizer {
	stop := cfg.StopWords
	if len(stop) == 0 {
		stop = defaultStopWords
	}
	guards := cfg.Guards
	if len(guards) == 0 {
		guards = defaultGuards
	}

	stopSet := make(map[string]bool, len(stop))
	for _, w := range stop {
		stopSet[w] = true
	}
	return &Canonicalizer{stopWords: stopSet, guards: guards}
}

// Canonicalize cleans, guards, and tokenizes a display name.
//
// CanonicalStrict joins the tokens in original order and requires token-order
// equality; CanonicalLoose joins the deduplicated tokens in sorted order, so
// any two inputs with the same token set share a loose key.
func (c *Canonicalizer) Canonicalize(displayName string) domain.NormalizedIngredient {
	cleaned := strings.ToLower(displayName)
	cleaned = quoteMarkReplacer.Replace(cleaned)
	cleaned = punctuationPattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	for _, g := range c.guards {
		cleaned = applyGuard(cleaned, g)
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 1 || c.stopWords[word] || numericTokenPattern.MatchString(word) {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		tokens = append(tokens, word)
	}

	loose := append([]string{}, tokens...)
	sort.Strings(loose)

	return domain.NormalizedIngredient{
		DisplayName:     displayName,
		CanonicalStrict: strings.Join(tokens, " "),
		CanonicalLoose:  strings.Join(loose, " "),
		Tokens:          tokens,
	}
}

// Tokens returns just the token set of a name, for callers that score overlap
// with the same vocabulary the canonical keys are built from.
func (c *Canonicalizer) Tokens(name string) []string {
	return c.Canonicalize(name).Tokens
}

// applyGuard rewrites target tokens to the guard's sentinel when the cleaned
// name trips the guard. The sentinel survives re-canonicalization: its
// underscore is a word character, and a sentinel split apart by a later
// cleaning pass re-trips the trigger.
func applyGuard(cleaned string, g Guard) string {
	padded := " " + cleaned + " "
	tripped := false
	for _, trigger := range g.Triggers {
		if strings.Contains(padded, " "+trigger+" ") {
			tripped = true
			break
		}
	}
	if !tripped && containsAnyWord(padded, g.TargetTokens) && containsAnyWord(padded, g.CoOccur) {
		tripped = true
	}
	if !tripped {
		return cleaned
	}

	fields := strings.Fields(cleaned)
	for i, f := range fields {
		for _, target := range g.TargetTokens {
			if f == target {
				fields[i] = g.Sentinel
				break
			}
		}
	}
	return strings.Join(fields, " ")
}

func containsAnyWord(padded string, words []string) bool {
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}
