// Package images provides the image acquisition capability used by the
// submission form: turning an uploaded file into an image URL. The
// simulated variant stands in for a real upload pipeline by handing out
// stock URLs; the stored variant processes and keeps the real bytes.
package images

import (
	"context"
	"io"
	"math/rand/v2"
)

// Acquirer turns an uploaded file into an image URL. Implementations
// may ignore the reader entirely (simulated uploads pass nil).
type Acquirer interface {
	Acquire(ctx context.Context, file io.Reader) (string, error)
}

// StockPool is the fixed set of stock image URLs the simulated
// acquirer draws from.
var StockPool = []string{
	"https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1518770660439-4636190af475?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=300&fit=crop",
}

// Simulated picks a stock URL at random instead of reading file bytes.
type Simulated struct{}

// NewSimulated creates the simulated acquirer.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Acquire returns a random stock image URL. The file is ignored.
func (s *Simulated) Acquire(_ context.Context, _ io.Reader) (string, error) {
	return StockPool[rand.IntN(len(StockPool))], nil
}
