package usecase

import (
	"sort"
	"strings"

	"github.com/homepantry/backend/internal/domain"
)

// maxLooseCandidates caps the candidate list of a loose lookup.
const maxLooseCandidates = 4

// unitClass groups units into rough equivalence classes. A match against an
// item in a different class is still a match; it only raises a warning.
type unitClass int

const (
	unitUnknown unitClass = iota
	unitWeight
	unitVolume
	unitCount
)

// unitClasses maps recognized unit spellings to their class. Count-based
// units are distinct from weight and volume; grams convert to kilograms,
// millilitres to litres, and so on within a class.
var unitClasses = map[string]unitClass{
	"g": unitWeight, "gram": unitWeight, "grams": unitWeight,
	"kg": unitWeight, "oz": unitWeight, "ounce": unitWeight, "ounces": unitWeight,
	"lb": unitWeight, "lbs": unitWeight, "pound": unitWeight, "pounds": unitWeight,

	"ml": unitVolume, "l": unitVolume, "liter": unitVolume, "liters": unitVolume,
	"litre": unitVolume, "litres": unitVolume, "cup": unitVolume, "cups": unitVolume,
	"tbsp": unitVolume, "tsp": unitVolume, "pinch": unitVolume, "dash": unitVolume,
	"floz": unitVolume, "fl oz": unitVolume,

	"each": unitCount, "ea": unitCount, "count": unitCount, "ct": unitCount,
	"piece": unitCount, "pieces": unitCount, "clove": unitCount, "cloves": unitCount,
	"slice": unitCount, "slices": unitCount, "can": unitCount, "cans": unitCount,
	"package": unitCount, "packages": unitCount, "packet": unitCount, "packets": unitCount,
}

func classOfUnit(unit string) unitClass {
	return unitClasses[strings.ToLower(strings.TrimSpace(unit))]
}

// unitsCompatible reports whether two units belong to the same equivalence
// class. Unknown units never contradict anything, so they are compatible with
// everything.
func unitsCompatible(a, b string) bool {
	ca, cb := classOfUnit(a), classOfUnit(b)
	if ca == unitUnknown || cb == unitUnknown {
		return true
	}
	return ca == cb
}

// indexEntry is one inventory item with its precomputed token set.
type indexEntry struct {
	item     domain.InventoryItem
	tokenSet map[string]bool
}

// MatchIndex is a per-batch lookup structure over an inventory snapshot,
// keyed at both canonical fidelities. Build once, query many times; the index
// itself never mutates the inventory.
type MatchIndex struct {
	canon   *Canonicalizer
	strict  map[string][]int
	loose   map[string][]int
	entries []indexEntry
}

// BuildIndex canonicalizes every inventory item name and stores it under both
// its strict and loose keys. A strict key may map to multiple items; that is
// ambiguous but valid, and ties keep insertion order.
func BuildIndex(canon *Canonicalizer, items []domain.InventoryItem) *MatchIndex {
	ix := &MatchIndex{
		canon:  canon,
		strict: make(map[string][]int),
		loose:  make(map[string][]int),
	}
	for _, item := range items {
		norm := canon.Canonicalize(item.Name)
		if !norm.HasIdentity() {
			continue
		}
		set := make(map[string]bool, len(norm.Tokens))
		for _, t := range norm.Tokens {
			set[t] = true
		}
		idx := len(ix.entries)
		ix.entries = append(ix.entries, indexEntry{item: item, tokenSet: set})
		ix.strict[norm.CanonicalStrict] = append(ix.strict[norm.CanonicalStrict], idx)
		ix.loose[norm.CanonicalLoose] = append(ix.loose[norm.CanonicalLoose], idx)
	}
	return ix
}

// Lookup resolves a free-form name against the index.
//
// A strict-key hit is an exact match carrying every item under that key. With
// no strict hit, items sharing at least one token with the query are returned
// as a loose match, ranked by descending token overlap and capped at
// maxLooseCandidates. The unit warning fires when candidates exist but none
// carries a unit compatible with the query's.
func (ix *MatchIndex) Lookup(name, unit string) domain.MatchResult {
	norm := ix.canon.Canonicalize(name)
	if !norm.HasIdentity() {
		return domain.MatchResult{Kind: domain.MatchNone}
	}

	if idxs, ok := ix.strict[norm.CanonicalStrict]; ok {
		items := make([]domain.InventoryItem, 0, len(idxs))
		for _, i := range idxs {
			items = append(items, ix.entries[i].item)
		}
		return domain.MatchResult{
			Kind:        domain.MatchExact,
			Candidates:  items,
			UnitWarning: unitWarning(unit, items),
		}
	}

	type scored struct {
		idx     int
		overlap int
	}
	var matches []scored
	for i, entry := range ix.entries {
		overlap := 0
		for _, t := range norm.Tokens {
			if entry.tokenSet[t] {
				overlap++
			}
		}
		if overlap > 0 {
			matches = append(matches, scored{idx: i, overlap: overlap})
		}
	}
	if len(matches) == 0 {
		return domain.MatchResult{Kind: domain.MatchNone}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].overlap > matches[b].overlap
	})
	if len(matches) > maxLooseCandidates {
		matches = matches[:maxLooseCandidates]
	}

	items := make([]domain.InventoryItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, ix.entries[m.idx].item)
	}
	return domain.MatchResult{
		Kind:        domain.MatchLoose,
		Candidates:  items,
		UnitWarning: unitWarning(unit, items),
	}
}

// unitWarning is true when candidates exist but none is unit-compatible with
// the query. An empty query unit warns about nothing.
func unitWarning(queryUnit string, candidates []domain.InventoryItem) bool {
	if strings.TrimSpace(queryUnit) == "" || len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if unitsCompatible(queryUnit, c.Unit) {
			return false
		}
	}
	return true
}
