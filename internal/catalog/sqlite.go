package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/model"
)

// itemsKey is the single durable key the whole catalog is stored under.
const itemsKey = "gear-hub-items"

// SQLiteStore is the local catalog variant: the full item list lives as
// a JSON array under one key in the catalog table. A missing or
// unparseable value is replaced with the default seed catalog instead
// of failing, so corrupt local state never takes the app down.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a local catalog backed by the given database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns all items, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return items, nil
}

// Create assigns an ID and timestamps, prepends the item to the stored
// list, and writes the list back. New items are always newest, so
// prepending preserves descending creation order.
func (s *SQLiteStore) Create(ctx context.Context, draft model.Draft) (*model.Item, error) {
	now := time.Now().UTC()
	item := model.Item{
		ID:               uuid.NewString(),
		Name:             draft.Name,
		Type:             draft.Type,
		Description:      draft.Description,
		CoverImage:       draft.CoverImage,
		AdditionalImages: draft.AdditionalImages,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if item.AdditionalImages == nil {
		item.AdditionalImages = []string{}
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	items = append([]model.Item{item}, items...)
	if err := s.save(ctx, items); err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	return &item, nil
}

// load reads the stored item list. A missing row seeds the store with
// the default catalog; an unparseable value reseeds it.
func (s *SQLiteStore) load(ctx context.Context) ([]model.Item, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM catalog WHERE key = ?`, itemsKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		slog.Warn("stored catalog is corrupt, reseeding with defaults", "error", err)
		return s.seed(ctx)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// seed writes the default catalog and returns it.
func (s *SQLiteStore) seed(ctx context.Context) ([]model.Item, error) {
	items := DefaultItems()
	if err := s.save(ctx, items); err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	return items, nil
}

// save serializes the item list and writes it under the catalog key.
func (s *SQLiteStore) save(ctx context.Context, items []model.Item) error {
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializing catalog: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO catalog (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		itemsKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
