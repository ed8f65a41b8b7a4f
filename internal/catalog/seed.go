package catalog

import (
	"time"

	"github.com/gearhub/gearhub/internal/model"
)

// DefaultItems returns the fixed sample catalog used to seed the local
// store on first use. Items are ordered newest-first and carry fixed
// IDs and timestamps so seeding is deterministic.
func DefaultItems() []model.Item {
	return []model.Item{
		{
			ID:          "1",
			Name:        "Professional Running Shoes",
			Type:        "Shoes",
			Description: "High-performance running shoes designed for comfort and durability. Perfect for long distance running and daily workouts.",
			CoverImage:  "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			AdditionalImages: []string{
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=300&fit=crop",
				"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=400&h=300&fit=crop",
			},
			CreatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Vintage Denim Jacket",
			Type:        "Shirt",
			Description: "Classic vintage denim jacket with premium quality fabric. Perfect for casual outings and street style fashion.",
			CoverImage:  "https://images.unsplash.com/photo-1544966503-7cc5ac882d5e?w=400&h=300&fit=crop",
			AdditionalImages: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=300&fit=crop",
			},
			CreatedAt: time.Date(2024, time.January, 14, 15, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 14, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Professional Tennis Racket",
			Type:        "Sports Gear",
			Description: "High-end tennis racket used by professionals. Lightweight carbon fiber construction with perfect balance and control.",
			CoverImage:  "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?w=400&h=300&fit=crop",
			AdditionalImages: []string{
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
			},
			CreatedAt: time.Date(2024, time.January, 13, 9, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 13, 9, 45, 0, 0, time.UTC),
		},
	}
}
