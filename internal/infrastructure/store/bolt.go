package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/homepantry/backend/internal/domain"
)

const (
	inventoryBucket    = "inventory"
	shoppingListBucket = "shopping_list"
)

// Store is a single-file bbolt database holding the pantry inventory and the
// shopping list. Both repositories share the one underlying *bbolt.DB.
type Store struct {
	db *bbolt.DB

	inventory    *InventoryStore
	shoppingList *ShoppingListStore
}

// Open opens (creating if needed) the database file and ensures the buckets
// exist.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(inventoryBucket)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(shoppingListBucket)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	s := &Store{db: db}
	s.inventory = &InventoryStore{db: db}
	s.shoppingList = &ShoppingListStore{db: db}
	return s, nil
}

// Inventory returns the inventory repository.
func (s *Store) Inventory() *InventoryStore { return s.inventory }

// ShoppingList returns the shopping-list repository.
func (s *Store) ShoppingList() *ShoppingListStore { return s.shoppingList }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// InventoryStore implements domain.InventoryRepository on bbolt.
type InventoryStore struct {
	db *bbolt.DB
}

// List returns every pantry record, sorted by name for stable output.
func (s *InventoryStore) List(ctx context.Context) ([]domain.InventoryItem, error) {
	items := make([]domain.InventoryItem, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(inventoryBucket)).ForEach(func(k, v []byte) error {
			var item domain.InventoryItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("decoding inventory item %s: %w", k, err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].Name != items[b].Name {
			return items[a].Name < items[b].Name
		}
		return items[a].ID < items[b].ID
	})
	return items, nil
}

// Get returns the record with the given id, or domain.ErrItemNotFound.
func (s *InventoryStore) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var item *domain.InventoryItem
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(inventoryBucket)).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: inventory %s", domain.ErrItemNotFound, id)
		}
		return json.Unmarshal(data, &item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Save creates or replaces a record.
func (s *InventoryStore) Save(ctx context.Context, item domain.InventoryItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding inventory item: %w", err)
		}
		return tx.Bucket([]byte(inventoryBucket)).Put([]byte(item.ID), data)
	})
}

// Delete removes a record; deleting a missing id is a no-op.
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(inventoryBucket)).Delete([]byte(id))
	})
}

// ShoppingListStore implements domain.ShoppingListRepository on bbolt.
type ShoppingListStore struct {
	db *bbolt.DB
}

// List returns every shopping-list row, dismissed ones included, sorted by
// name.
func (s *ShoppingListStore) List(ctx context.Context) ([]domain.ShoppingListItem, error) {
	items := make([]domain.ShoppingListItem, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(shoppingListBucket)).ForEach(func(k, v []byte) error {
			var item domain.ShoppingListItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("decoding shopping-list item %s: %w", k, err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].Name != items[b].Name {
			return items[a].Name < items[b].Name
		}
		return items[a].ID < items[b].ID
	})
	return items, nil
}

// Get returns the row with the given id, or domain.ErrItemNotFound.
func (s *ShoppingListStore) Get(ctx context.Context, id string) (*domain.ShoppingListItem, error) {
	var item *domain.ShoppingListItem
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(shoppingListBucket)).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: shopping-list row %s", domain.ErrItemNotFound, id)
		}
		return json.Unmarshal(data, &item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Insert stores a new row.
func (s *ShoppingListStore) Insert(ctx context.Context, item domain.ShoppingListItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(shoppingListBucket))
		if bucket.Get([]byte(item.ID)) != nil {
			return fmt.Errorf("%w: shopping-list row %s", domain.ErrDuplicateItem, item.ID)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding shopping-list item: %w", err)
		}
		return bucket.Put([]byte(item.ID), data)
	})
}

// Update replaces an existing row. A missing id is a precondition failure:
// the caller's snapshot was stale.
func (s *ShoppingListStore) Update(ctx context.Context, item domain.ShoppingListItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(shoppingListBucket))
		if bucket.Get([]byte(item.ID)) == nil {
			return fmt.Errorf("%w: shopping-list row %s", domain.ErrItemNotFound, item.ID)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding shopping-list item: %w", err)
		}
		return bucket.Put([]byte(item.ID), data)
	})
}

// Delete removes a row; deleting a missing id is a no-op.
func (s *ShoppingListStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(shoppingListBucket)).Delete([]byte(id))
	})
}
