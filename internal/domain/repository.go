package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// InventoryRepository defines the interface for pantry inventory persistence.
// The engine reads the full snapshot to build a match index per batch.
type InventoryRepository interface {
	List(ctx context.Context) ([]InventoryItem, error)
	Get(ctx context.Context, id string) (*InventoryItem, error)
	Save(ctx context.Context, item InventoryItem) error
	Delete(ctx context.Context, id string) error
}

// ShoppingListRepository defines the interface for shopping-list persistence.
// Update of a missing id must return ErrItemNotFound so stale reconciliation
// snapshots surface as precondition failures instead of being absorbed.
type ShoppingListRepository interface {
	List(ctx context.Context) ([]ShoppingListItem, error)
	Get(ctx context.Context, id string) (*ShoppingListItem, error)
	Insert(ctx context.Context, item ShoppingListItem) error
	Update(ctx context.Context, item ShoppingListItem) error
	Delete(ctx context.Context, id string) error
}
