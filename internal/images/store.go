package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/imaging"
)

// Stored is the real-file acquirer: it validates and processes the
// uploaded bytes, keeps the blob in the images table, and returns the
// URL the blob is served under.
type Stored struct {
	db *sql.DB
}

// NewStored creates an acquirer that persists uploads in the given
// database.
func NewStored(db *sql.DB) *Stored {
	return &Stored{db: db}
}

// Acquire processes the uploaded file and stores it, returning the
// serving URL for the stored image.
func (s *Stored) Acquire(ctx context.Context, file io.Reader) (string, error) {
	if file == nil {
		return "", errors.New("image file required")
	}

	result, err := imaging.Process(file)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO images (id, data, mime) VALUES (?, ?, ?)`,
		id, result.Data, result.MIME,
	)
	if err != nil {
		return "", fmt.Errorf("storing image: %w", err)
	}

	return "/images/" + id, nil
}

// Get returns a stored image's data and MIME type, or nil data if no
// image exists under the id.
func Get(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM images WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting image: %w", err)
	}
	return data, mime, nil
}
