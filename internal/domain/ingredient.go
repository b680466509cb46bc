package domain

// NormalizedIngredient is the stable identity derived from a single free-text
// line. It is computed deterministically and never mutated afterwards.
type NormalizedIngredient struct {
	DisplayName     string   `json:"displayName"`
	CanonicalLoose  string   `json:"canonicalLoose"`
	CanonicalStrict string   `json:"canonicalStrict"`
	Tokens          []string `json:"tokens"`
}

// HasIdentity reports whether the line survived normalization with at least
// one meaningful token.
func (n NormalizedIngredient) HasIdentity() bool {
	return n.CanonicalLoose != ""
}

// InventoryItem is a pantry/storage record. The engine only reads these to
// build a match index; quantity changes happen elsewhere.
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Location string  `json:"location,omitempty"`
}

// MatchKind classifies how a lookup matched the inventory.
type MatchKind string

const (
	MatchExact MatchKind = "exact"
	MatchLoose MatchKind = "loose"
	MatchNone  MatchKind = "none"
)

// MatchResult is the outcome of one match-index lookup. Candidates are
// ordered best-first.
type MatchResult struct {
	Kind        MatchKind       `json:"kind"`
	Candidates  []InventoryItem `json:"candidates"`
	UnitWarning bool            `json:"unitWarning"`
}

// DuplicateGroup collects the normalized lines of one batch that share a
// loose canonical key. Groups are advisory; the engine never merges rows.
type DuplicateGroup struct {
	Key   string                 `json:"key"`
	Items []NormalizedIngredient `json:"items"`
}
