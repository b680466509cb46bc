package usecase

import "github.com/homepantry/backend/internal/domain"

// keyState is the reconciliation state of one normalized identity, derived
// from the persisted shopping-list snapshot.
type keyState int

const (
	stateAbsent keyState = iota
	stateActiveManual
	stateActiveDerived
	stateDismissedDerived
)

// Reconcile compares a batch of candidate derived entries against the current
// persisted shopping-list rows and emits the minimal set of inserts, quantity
// updates, and revivals.
//
// Entries are aggregated per loose canonical key first; the batch quantity of
// a key is the sum of occurrence counts across all its source lines. Manual
// rows are never touched, revival and quantity update are independent
// operations that may both target the same row, and reconciling again after
// the plan is applied yields an empty plan.
func Reconcile(canon *Canonicalizer, batch []domain.BatchEntry, existing []domain.ShoppingListItem) domain.ReconcilePlan {
	type aggregate struct {
		name      string
		quantity  int
		sourceRef string
	}
	var order []string
	byKey := make(map[string]*aggregate)
	for _, entry := range batch {
		norm := canon.Canonicalize(entry.Name)
		if !norm.HasIdentity() {
			continue
		}
		agg, ok := byKey[norm.CanonicalLoose]
		if !ok {
			agg = &aggregate{name: norm.DisplayName, sourceRef: entry.SourceRef}
			byKey[norm.CanonicalLoose] = agg
			order = append(order, norm.CanonicalLoose)
		}
		agg.quantity += entry.Quantity
	}

	var plan domain.ReconcilePlan
	for _, key := range order {
		agg := byKey[key]
		state, row := stateForKey(key, existing)

		switch state {
		case stateActiveManual:
			// Manual entries are owned by the user; derived sync leaves
			// them alone.
		case stateActiveDerived:
			if row.Quantity != agg.quantity {
				plan.Updates = append(plan.Updates, domain.QuantityUpdate{ID: row.ID, Quantity: agg.quantity})
			}
		case stateDismissedDerived:
			plan.Revivals = append(plan.Revivals, domain.Revival{ID: row.ID})
			if row.Quantity != agg.quantity {
				plan.Updates = append(plan.Updates, domain.QuantityUpdate{ID: row.ID, Quantity: agg.quantity})
			}
		case stateAbsent:
			plan.Inserts = append(plan.Inserts, domain.ShoppingListItem{
				Name:           agg.name,
				NormalizedName: key,
				Quantity:       agg.quantity,
				SourceType:     domain.SourceDerived,
				SourceRecipeID: agg.sourceRef,
			})
		}
	}
	return plan
}

// stateForKey derives the reconciliation state of a normalized key from the
// existing rows. An active manual row shadows everything else; otherwise an
// active derived row wins over a dismissed one. Dismissed manual rows are
// legacy data (manual items are deleted, not dismissed) and count as absent.
func stateForKey(key string, existing []domain.ShoppingListItem) (keyState, *domain.ShoppingListItem) {
	var activeDerived, dismissedDerived *domain.ShoppingListItem
	for i := range existing {
		row := &existing[i]
		if row.NormalizedName != key {
			continue
		}
		switch {
		case row.Active() && row.SourceType == domain.SourceManual:
			return stateActiveManual, row
		case row.Active() && row.SourceType == domain.SourceDerived:
			if activeDerived == nil {
				activeDerived = row
			}
		case row.Dismissed && row.SourceType == domain.SourceDerived:
			if dismissedDerived == nil {
				dismissedDerived = row
			}
		}
	}
	if activeDerived != nil {
		return stateActiveDerived, activeDerived
	}
	if dismissedDerived != nil {
		return stateDismissedDerived, dismissedDerived
	}
	return stateAbsent, nil
}
