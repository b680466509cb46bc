package usecase

import "sort"

// defaultSubstituteLimit bounds a suggestion list when the caller passes no
// explicit limit.
const defaultSubstituteLimit = 3

// SuggestSubstitutes ranks candidate names as substitutes for a missing
// ingredient by shared-token count. Candidates sharing no token are excluded,
// ties keep first-seen candidate order, and the returned names preserve their
// original casing.
//
// Both sides are tokenized through the canonicalizer, so substitution scoring
// speaks the same vocabulary as duplicate grouping and index lookups.
func SuggestSubstitutes(canon *Canonicalizer, missingName string, candidateNames []string, limit int) []string {
	if limit <= 0 {
		limit = defaultSubstituteLimit
	}

	missing := make(map[string]bool)
	for _, t := range canon.Tokens(missingName) {
		missing[t] = true
	}
	if len(missing) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score int
	}
	var matches []scored
	for _, candidate := range candidateNames {
		score := 0
		for _, t := range canon.Tokens(candidate) {
			if missing[t] {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{name: candidate, score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}
	return names
}
