package usecase

import "github.com/homepantry/backend/internal/domain"

// DetectDuplicates groups a batch of normalized lines by loose canonical key
// and returns only the groups with two or more members. Lines with an empty
// loose key are ignored.
//
// The result is advisory: batches are user-reviewed before commit, so the
// engine never merges or deletes the rows behind a group.
func DetectDuplicates(batch []domain.NormalizedIngredient) map[string]domain.DuplicateGroup {
	byKey := make(map[string][]domain.NormalizedIngredient)
	for _, ing := range batch {
		if !ing.HasIdentity() {
			continue
		}
		byKey[ing.CanonicalLoose] = append(byKey[ing.CanonicalLoose], ing)
	}

	groups := make(map[string]domain.DuplicateGroup)
	for key, items := range byKey {
		if len(items) >= 2 {
			groups[key] = domain.DuplicateGroup{Key: key, Items: items}
		}
	}
	return groups
}
