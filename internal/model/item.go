package model

import (
	"fmt"
	"strings"
	"time"
)

// Item represents a single catalog entry.
type Item struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	CoverImage       string    `json:"cover_image"`
	AdditionalImages []string  `json:"additional_images"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ItemTypes is the closed set of allowed item categories.
var ItemTypes = []string{
	"Shirt",
	"Pant",
	"Shoes",
	"Sports Gear",
	"Electronics",
	"Accessories",
	"Other",
}

// ValidType reports whether t is one of the allowed item categories.
func ValidType(t string) bool {
	for _, v := range ItemTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Images returns the full display-ordered image sequence for an item:
// the cover image first, followed by the additional images.
func (i *Item) Images() []string {
	images := make([]string, 0, len(i.AdditionalImages)+1)
	images = append(images, i.CoverImage)
	images = append(images, i.AdditionalImages...)
	return images
}

// Draft is an in-progress, unpersisted item as composed in the
// submission form. The store assigns ID and timestamps on create.
type Draft struct {
	Name             string   `json:"name" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	CoverImage       string   `json:"cover_image" validate:"required"`
	AdditionalImages []string `json:"additional_images"`
}

// ValidationError reports the required fields missing from a draft.
// It is handled entirely at the form boundary and never reaches a store.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks that all required draft fields are present and that
// the type is one of the allowed categories. Additional images may be
// empty.
func (d *Draft) Validate() error {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Type == "" {
		missing = append(missing, "type")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.CoverImage == "" {
		missing = append(missing, "cover_image")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if !ValidType(d.Type) {
		return &ValidationError{Fields: []string{"type"}}
	}
	return nil
}

// RemoveAdditionalImage returns images with the entry at index i removed,
// preserving the relative order of all other entries. An out-of-range
// index returns the slice unchanged.
func RemoveAdditionalImage(images []string, i int) []string {
	if i < 0 || i >= len(images) {
		return images
	}
	out := make([]string, 0, len(images)-1)
	out = append(out, images[:i]...)
	out = append(out, images[i+1:]...)
	return out
}
