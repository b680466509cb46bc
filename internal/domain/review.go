package domain

// RecipeSource is one recipe's ingredient lines feeding a shopping-list sync.
type RecipeSource struct {
	RecipeID string   `json:"recipeId"`
	Lines    []string `json:"lines"`
}

// LineReview is the engine's verdict on a single raw line: its normalized
// identity, how it matched the inventory, and substitution suggestions when
// it matched nothing.
type LineReview struct {
	Raw         string               `json:"raw"`
	Normalized  NormalizedIngredient `json:"normalized"`
	Match       MatchResult          `json:"match"`
	Substitutes []string             `json:"substitutes,omitempty"`
}

// ReceiptReview is the result of reviewing one batch of raw lines.
type ReceiptReview struct {
	Lines      []LineReview              `json:"lines"`
	Duplicates map[string]DuplicateGroup `json:"duplicates,omitempty"`
}

// SyncResult reports the operations a shopping-list sync applied and the
// resulting persisted list.
type SyncResult struct {
	Inserted int                `json:"inserted"`
	Updated  int                `json:"updated"`
	Revived  int                `json:"revived"`
	Items    []ShoppingListItem `json:"items"`
}
