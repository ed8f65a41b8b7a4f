package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gearhub/gearhub/internal/catalog"
	"github.com/gearhub/gearhub/internal/model"
)

// ItemsHandler handles the item endpoints.
type ItemsHandler struct {
	Catalog  catalog.Catalog
	Validate *validator.Validate
}

type createItemRequest struct {
	Name             string   `json:"name" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	CoverImage       string   `json:"cover_image" validate:"required"`
	AdditionalImages []string `json:"additional_images"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			jsonError(w, http.StatusBadRequest, verrs[0].Field()+" required")
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !model.ValidType(req.Type) {
		jsonError(w, http.StatusBadRequest, "invalid item type")
		return
	}

	item, err := h.Catalog.Create(r.Context(), model.Draft{
		Name:             req.Name,
		Type:             req.Type,
		Description:      req.Description,
		CoverImage:       req.CoverImage,
		AdditionalImages: req.AdditionalImages,
	})
	if err != nil {
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Types handles GET /api/items/types.
func (h *ItemsHandler) Types(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, model.ItemTypes)
}
