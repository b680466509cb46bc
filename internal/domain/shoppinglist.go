package domain

// SourceType distinguishes rows the user typed from rows derived out of
// recipe ingredients.
type SourceType string

const (
	SourceManual  SourceType = "manual"
	SourceDerived SourceType = "derived"
)

// ShoppingListItem is a persisted shopping-list row.
//
// At most one active (non-dismissed) row per NormalizedName may exist at any
// time, regardless of source type. Dismissed rows are soft-hidden derived
// entries kept around for revival; manual entries are deleted outright.
type ShoppingListItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	NormalizedName string     `json:"normalizedName"`
	Quantity       int        `json:"quantity"`
	SourceType     SourceType `json:"sourceType"`
	SourceRecipeID string     `json:"sourceRecipeId,omitempty"`
	Checked        bool       `json:"checked"`
	Dismissed      bool       `json:"dismissed"`
}

// Active reports whether the row is visible on the list.
func (s ShoppingListItem) Active() bool {
	return !s.Dismissed
}

// BatchEntry is one candidate derived entry fed into reconciliation.
// Quantity is an occurrence count across source lines, not a purchase amount.
type BatchEntry struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	SourceRef string `json:"sourceRef,omitempty"`
}

// QuantityUpdate adjusts the occurrence count of an existing derived row.
type QuantityUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Revival un-dismisses a previously dismissed derived row. Applying it resets
// checked to false; quantity is handled by a separate QuantityUpdate when the
// count changed as well.
type Revival struct {
	ID string `json:"id"`
}

// ReconcilePlan is the minimal set of state-changing operations that brings
// the persisted shopping list in line with a derived batch. Applying the plan
// twice, or reconciling again after applying it, yields an empty plan.
type ReconcilePlan struct {
	Inserts  []ShoppingListItem `json:"insert"`
	Updates  []QuantityUpdate   `json:"update"`
	Revivals []Revival          `json:"revive"`
}

// Empty reports whether the plan contains no operations.
func (p ReconcilePlan) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Revivals) == 0
}
