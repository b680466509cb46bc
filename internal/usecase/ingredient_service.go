package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homepantry/backend/internal/domain"
)

// IngredientServiceConfig holds configuration for the ingredient service.
type IngredientServiceConfig struct {
	CacheTTL       time.Duration
	MaxSubstitutes int
}

// IngredientService is the application facade over the identity engine. The
// engine functions themselves are pure; this service owns the I/O around
// them: fetching snapshots, caching lookups, and applying reconciliation
// plans to storage.
type IngredientService struct {
	normalizer *Normalizer
	canon      *Canonicalizer

	inventory domain.InventoryRepository
	list      domain.ShoppingListRepository
	cache     domain.CacheRepository
	logger    *zap.Logger

	cacheTTL       time.Duration
	maxSubstitutes int
}

// NewIngredientService creates the service with its dependencies. The
// normalizer and canonicalizer run on the default domain vocabulary.
func NewIngredientService(
	inventory domain.InventoryRepository,
	list domain.ShoppingListRepository,
	cache domain.CacheRepository,
	logger *zap.Logger,
	config IngredientServiceConfig,
) *IngredientService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}
	maxSubstitutes := config.MaxSubstitutes
	if maxSubstitutes <= 0 {
		maxSubstitutes = defaultSubstituteLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IngredientService{
		normalizer:     NewNormalizer(NormalizerConfig{}),
		canon:          NewCanonicalizer(CanonicalizerConfig{}),
		inventory:      inventory,
		list:           list,
		cache:          cache,
		logger:         logger,
		cacheTTL:       cacheTTL,
		maxSubstitutes: maxSubstitutes,
	}
}

// ReviewReceipt normalizes a batch of raw purchase lines, matches each
// against the current inventory snapshot, flags in-batch duplicates, and
// suggests substitutes for lines the inventory cannot cover.
//
// Receipt entry wants maximal noise removal, so lines are normalized in
// aggressive mode. Match lookups are cached with a short TTL; the cache is
// advisory and may lag inventory edits within that window.
func (s *IngredientService) ReviewReceipt(ctx context.Context, lines []string) (*domain.ReceiptReview, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no lines to review", domain.ErrInvalidRequest)
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inventory snapshot: %w", err)
	}
	index := BuildIndex(s.canon, items)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	review := &domain.ReceiptReview{Lines: make([]domain.LineReview, 0, len(lines))}
	batch := make([]domain.NormalizedIngredient, 0, len(lines))

	for _, raw := range lines {
		display := s.normalizer.Normalize(raw, ModeAggressive)
		norm := s.canon.Canonicalize(display)
		batch = append(batch, norm)

		match := s.cachedLookup(ctx, index, norm, display)

		line := domain.LineReview{Raw: raw, Normalized: norm, Match: match}
		if match.Kind == domain.MatchNone && norm.HasIdentity() {
			line.Substitutes = SuggestSubstitutes(s.canon, display, names, s.maxSubstitutes)
		}
		review.Lines = append(review.Lines, line)
	}

	if groups := DetectDuplicates(batch); len(groups) > 0 {
		review.Duplicates = groups
	}

	s.logger.Debug("reviewed receipt batch",
		zap.Int("lines", len(lines)),
		zap.Int("duplicate_groups", len(review.Duplicates)))
	return review, nil
}

// cachedLookup serves a match result from cache when possible, falling back
// to the index. Cache failures are never fatal; a lookup always answers.
func (s *IngredientService) cachedLookup(ctx context.Context, index *MatchIndex, norm domain.NormalizedIngredient, display string) domain.MatchResult {
	if !norm.HasIdentity() {
		return domain.MatchResult{Kind: domain.MatchNone}
	}

	key := "match:" + norm.CanonicalLoose
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var cached domain.MatchResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	match := index.Lookup(display, "")
	if s.cache != nil {
		if data, err := json.Marshal(match); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
				s.logger.Warn("caching match result failed", zap.Error(err))
			}
		}
	}
	return match
}

// SyncShoppingList rebuilds the derived portion of the shopping list from the
// given recipe sources. Lines are normalized in identity-preserving mode, one
// occurrence per line, and the reconciliation plan is applied verbatim to the
// repository.
//
// When an update or revival targets a row that no longer exists, the snapshot
// was stale; the error wraps domain.ErrStaleSnapshot and the caller should
// re-fetch and retry.
func (s *IngredientService) SyncShoppingList(ctx context.Context, sources []domain.RecipeSource) (*domain.SyncResult, error) {
	var batch []domain.BatchEntry
	for _, source := range sources {
		for _, line := range source.Lines {
			display := s.normalizer.Normalize(line, ModeIdentityPreserving)
			if display == "" {
				continue
			}
			batch = append(batch, domain.BatchEntry{
				Name:      display,
				Quantity:  1,
				SourceRef: source.RecipeID,
			})
		}
	}

	existing, err := s.list.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shopping list snapshot: %w", err)
	}

	plan := Reconcile(s.canon, batch, existing)
	if err := s.applyPlan(ctx, plan); err != nil {
		return nil, err
	}

	items, err := s.list.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading shopping list: %w", err)
	}

	s.logger.Debug("shopping list synced",
		zap.Int("inserted", len(plan.Inserts)),
		zap.Int("updated", len(plan.Updates)),
		zap.Int("revived", len(plan.Revivals)))

	return &domain.SyncResult{
		Inserted: len(plan.Inserts),
		Updated:  len(plan.Updates),
		Revived:  len(plan.Revivals),
		Items:    items,
	}, nil
}

// applyPlan persists a reconciliation plan. Revivals run before quantity
// updates so both operations can target the same row in one plan.
func (s *IngredientService) applyPlan(ctx context.Context, plan domain.ReconcilePlan) error {
	for _, insert := range plan.Inserts {
		insert.ID = uuid.NewString()
		if err := s.list.Insert(ctx, insert); err != nil {
			return fmt.Errorf("inserting %q: %w", insert.NormalizedName, err)
		}
	}
	for _, revival := range plan.Revivals {
		row, err := s.list.Get(ctx, revival.ID)
		if err != nil {
			return staleOr(err, revival.ID)
		}
		row.Dismissed = false
		row.Checked = false
		row.SourceType = domain.SourceDerived
		if err := s.list.Update(ctx, *row); err != nil {
			return staleOr(err, revival.ID)
		}
	}
	for _, update := range plan.Updates {
		row, err := s.list.Get(ctx, update.ID)
		if err != nil {
			return staleOr(err, update.ID)
		}
		row.Quantity = update.Quantity
		if err := s.list.Update(ctx, *row); err != nil {
			return staleOr(err, update.ID)
		}
	}
	return nil
}

// staleOr converts a missing-row error into a stale-snapshot precondition
// failure; anything else passes through.
func staleOr(err error, id string) error {
	if errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Errorf("%w: row %s", domain.ErrStaleSnapshot, id)
	}
	return err
}

// SuggestSubstitutes ranks inventory items as substitutes for a missing
// ingredient.
func (s *IngredientService) SuggestSubstitutes(ctx context.Context, missingName string) ([]string, error) {
	if missingName == "" {
		return nil, fmt.Errorf("%w: missing ingredient name required", domain.ErrInvalidRequest)
	}
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inventory snapshot: %w", err)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return SuggestSubstitutes(s.canon, missingName, names, s.maxSubstitutes), nil
}

// AddManualItem creates a manual shopping-list row. At most one active row
// per normalized identity may exist, so a clashing add is rejected rather
// than merged.
func (s *IngredientService) AddManualItem(ctx context.Context, name string, quantity int) (*domain.ShoppingListItem, error) {
	display := s.normalizer.Normalize(name, ModeIdentityPreserving)
	norm := s.canon.Canonicalize(display)
	if !norm.HasIdentity() {
		return nil, fmt.Errorf("%w: item name required", domain.ErrInvalidRequest)
	}

	existing, err := s.list.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shopping list: %w", err)
	}
	for _, row := range existing {
		if row.Active() && row.NormalizedName == norm.CanonicalLoose {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, norm.CanonicalLoose)
		}
	}

	if quantity < 1 {
		quantity = 1
	}
	item := domain.ShoppingListItem{
		ID:             uuid.NewString(),
		Name:           display,
		NormalizedName: norm.CanonicalLoose,
		Quantity:       quantity,
		SourceType:     domain.SourceManual,
	}
	if err := s.list.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("inserting manual item: %w", err)
	}
	return &item, nil
}

// DismissItem soft-hides a derived row for later revival; a manual row is
// deleted outright instead.
func (s *IngredientService) DismissItem(ctx context.Context, id string) error {
	row, err := s.list.Get(ctx, id)
	if err != nil {
		return err
	}
	if row.SourceType == domain.SourceManual {
		return s.list.Delete(ctx, id)
	}
	row.Dismissed = true
	return s.list.Update(ctx, *row)
}

// CheckItem marks a row as acquired (or un-acquired). Checking has no effect
// on reconciliation decisions.
func (s *IngredientService) CheckItem(ctx context.Context, id string, checked bool) error {
	row, err := s.list.Get(ctx, id)
	if err != nil {
		return err
	}
	row.Checked = checked
	return s.list.Update(ctx, *row)
}

// ListShoppingList returns every persisted row, dismissed ones included;
// presentation decides what to hide.
func (s *IngredientService) ListShoppingList(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return s.list.List(ctx)
}

// ListInventory returns the pantry snapshot.
func (s *IngredientService) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventory.List(ctx)
}

// SaveInventoryItem creates or replaces a pantry record, assigning an id to
// new records.
func (s *IngredientService) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("%w: inventory item name required", domain.ErrInvalidRequest)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.inventory.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("saving inventory item: %w", err)
	}
	return &item, nil
}

// DeleteInventoryItem removes a pantry record.
func (s *IngredientService) DeleteInventoryItem(ctx context.Context, id string) error {
	return s.inventory.Delete(ctx, id)
}
