package model

import (
	"errors"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	valid := Draft{
		Name:        "Tennis Racket",
		Type:        "Sports Gear",
		Description: "Lightweight carbon fiber racket.",
		CoverImage:  "https://example.com/racket.jpg",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid draft: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Draft)
		fields []string
	}{
		{"missing name", func(d *Draft) { d.Name = "" }, []string{"name"}},
		{"missing type", func(d *Draft) { d.Type = "" }, []string{"type"}},
		{"missing description", func(d *Draft) { d.Description = "" }, []string{"description"}},
		{"missing cover image", func(d *Draft) { d.CoverImage = "" }, []string{"cover_image"}},
		{"unknown type", func(d *Draft) { d.Type = "Furniture" }, []string{"type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Fatalf("expected fields %v, got %v", tt.fields, verr.Fields)
			}
			for i, f := range tt.fields {
				if verr.Fields[i] != f {
					t.Errorf("expected field %q, got %q", f, verr.Fields[i])
				}
			}
		})
	}
}

func TestDraftValidateAllMissing(t *testing.T) {
	var d Draft
	err := d.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 4 {
		t.Errorf("expected 4 missing fields, got %v", verr.Fields)
	}
}

func TestDraftValidateAdditionalImagesOptional(t *testing.T) {
	d := Draft{
		Name:        "Shoes",
		Type:        "Shoes",
		Description: "Running shoes.",
		CoverImage:  "https://example.com/shoes.jpg",
	}
	if err := d.Validate(); err != nil {
		t.Errorf("draft without additional images should be valid: %v", err)
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range ItemTypes {
		if !ValidType(typ) {
			t.Errorf("expected %q to be valid", typ)
		}
	}
	if ValidType("") || ValidType("Furniture") {
		t.Error("expected unknown types to be invalid")
	}
}

func TestItemImagesOrder(t *testing.T) {
	item := Item{
		CoverImage:       "A",
		AdditionalImages: []string{"B", "C"},
	}
	images := item.Images()
	want := []string{"A", "B", "C"}
	if len(images) != len(want) {
		t.Fatalf("expected %d images, got %d", len(want), len(images))
	}
	for i := range want {
		if images[i] != want[i] {
			t.Errorf("image %d: expected %q, got %q", i, want[i], images[i])
		}
	}
}

func TestItemImagesNoAdditional(t *testing.T) {
	item := Item{CoverImage: "A"}
	images := item.Images()
	if len(images) != 1 || images[0] != "A" {
		t.Errorf("expected [A], got %v", images)
	}
}

func TestRemoveAdditionalImage(t *testing.T) {
	tests := []struct {
		name   string
		images []string
		index  int
		want   []string
	}{
		{"middle", []string{"a", "b", "c"}, 1, []string{"a", "c"}},
		{"first", []string{"a", "b", "c"}, 0, []string{"b", "c"}},
		{"last", []string{"a", "b", "c"}, 2, []string{"a", "b"}},
		{"negative", []string{"a"}, -1, []string{"a"}},
		{"out of range", []string{"a"}, 1, []string{"a"}},
		{"empty", nil, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveAdditionalImage(tt.images, tt.index)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestRemoveAdditionalImageDoesNotMutate(t *testing.T) {
	images := []string{"a", "b", "c"}
	RemoveAdditionalImage(images, 1)
	if images[0] != "a" || images[1] != "b" || images[2] != "c" {
		t.Errorf("input slice mutated: %v", images)
	}
}
