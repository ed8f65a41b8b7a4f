package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearhub/gearhub/internal/model"
)

// PostgresStore is the remote catalog variant, backed by a managed
// PostgreSQL table reached over the network.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and returns the store.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Ping verifies the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Create inserts a new item row and returns the stored item.
func (s *PostgresStore) Create(ctx context.Context, draft model.Draft) (*model.Item, error) {
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

	images, err := json.Marshal(item.AdditionalImages)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Err: fmt.Errorf("serializing images: %w", err)}
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO items (id, name, type, description, cover_image, additional_images, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Type, item.Description, item.CoverImage, images, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	return &item, nil
}

// List returns all items; ordering is requested explicitly as part of
// the query, with the ID as a tiebreak for identical timestamps.
func (s *PostgresStore) List(ctx context.Context) ([]model.Item, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, type, description, cover_image, additional_images, created_at, updated_at
		 FROM items ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		var images []byte
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Description,
			&item.CoverImage, &images, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, &PersistenceError{Op: "list", Err: fmt.Errorf("scanning item: %w", err)}
		}
		if err := json.Unmarshal(images, &item.AdditionalImages); err != nil {
			return nil, &PersistenceError{Op: "list", Err: fmt.Errorf("parsing images: %w", err)}
		}
		if item.AdditionalImages == nil {
			item.AdditionalImages = []string{}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return items, nil
}
