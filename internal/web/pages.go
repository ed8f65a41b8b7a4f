package web

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gearhub/gearhub/internal/model"
)

// maxUploadBytes limits image upload request bodies.
const maxUploadBytes = 10 << 20

// HomePage handles GET /.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "index.html", &struct {
		PageData
	}{
		PageData: PageData{Title: "Gear Hub", Active: "/", Flash: takeFlash(w, r)},
	})
}

// viewItemsData is the template data for the catalog list view and the
// item detail overlay rendered above it.
type viewItemsData struct {
	PageData
	Items     []model.Item
	LoadError bool
	Selected  *model.Item
	Images    []string
	ImgIndex  int
	PrevIndex int
	NextIndex int
	ShowNav   bool
}

// ViewItemsPage handles GET /view-items. The optional "item" query
// parameter selects an item and opens the detail overlay over the
// grid; "img" selects the carousel slide.
func (s *Server) ViewItemsPage(w http.ResponseWriter, r *http.Request) {
	data := viewItemsData{
		PageData: PageData{Title: "All Items", Active: "/view-items", Flash: takeFlash(w, r)},
	}

	items, err := s.Catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to load items", "error", err)
		data.LoadError = true
	}
	data.Items = items

	if id := r.URL.Query().Get("item"); id != "" {
		for i := range items {
			if items[i].ID == id {
				data.Selected = &items[i]
				break
			}
		}
	}

	if data.Selected != nil {
		data.Images = data.Selected.Images()
		n, _ := strconv.Atoi(r.URL.Query().Get("img"))
		if n < 0 || n >= len(data.Images) {
			n = 0
		}
		data.ImgIndex = n
		data.ShowNav = len(data.Images) > 1
		data.PrevIndex = (n - 1 + len(data.Images)) % len(data.Images)
		data.NextIndex = (n + 1) % len(data.Images)
	}

	s.Templates.Render(w, "view_items.html", &data)
}

// EnquireSubmit handles POST /view-items/enquire. Enquiring persists
// nothing and contacts nobody; it only confirms with a notification
// naming the item.
func (s *Server) EnquireSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	name := r.FormValue("name")
	if name == "" {
		name = "this item"
	}

	slog.Info("enquiry sent", "item", name)
	setFlash(w, "success", fmt.Sprintf("Your enquiry for %q has been sent successfully.", name))
	http.Redirect(w, r, "/view-items?item="+url.QueryEscape(id), http.StatusSeeOther)
}

// addItemsData is the template data for the submission form.
type addItemsData struct {
	PageData
	Draft model.Draft
	Types []string
}

// renderForm renders the submission form with the current draft intact.
func (s *Server) renderForm(w http.ResponseWriter, draft model.Draft, flash *Flash) {
	s.Templates.Render(w, "add_items.html", &addItemsData{
		PageData: PageData{Title: "Add New Item", Active: "/add-items", Flash: flash},
		Draft:    draft,
		Types:    model.ItemTypes,
	})
}

// parseDraft rebuilds the in-progress draft from the submitted form.
// The draft round-trips through hidden fields, so every form action
// carries the full state. Uploads post multipart; plain submissions
// are urlencoded.
func parseDraft(r *http.Request) model.Draft {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		r.ParseForm()
	}
	return model.Draft{
		Name:             r.FormValue("name"),
		Type:             r.FormValue("type"),
		Description:      r.FormValue("description"),
		CoverImage:       r.FormValue("cover_image"),
		AdditionalImages: r.Form["additional_images"],
	}
}

// AddItemsPage handles GET /add-items.
func (s *Server) AddItemsPage(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, model.Draft{}, takeFlash(w, r))
}

// UploadImageSubmit handles POST /add-items/upload. The acquired image
// URL replaces the cover or is appended to the additional images,
// depending on the target field.
func (s *Server) UploadImageSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	draft := parseDraft(r)
	target := r.FormValue("target")

	var file io.Reader
	fileField := "cover_file"
	if target == "additional" {
		fileField = "additional_file"
	}
	if f, _, err := r.FormFile(fileField); err == nil {
		defer f.Close()
		file = f
	}

	imageURL, err := s.Acquirer.Acquire(r.Context(), file)
	if err != nil {
		slog.Warn("image upload rejected", "error", err)
		s.renderForm(w, draft, &Flash{Kind: "error", Message: "Could not upload image: " + err.Error()})
		return
	}

	var flash *Flash
	if target == "additional" {
		draft.AdditionalImages = append(draft.AdditionalImages, imageURL)
		flash = &Flash{Kind: "success", Message: "Your additional image has been uploaded successfully."}
	} else {
		draft.CoverImage = imageURL
		flash = &Flash{Kind: "success", Message: "Your cover image has been uploaded successfully."}
	}
	s.renderForm(w, draft, flash)
}

// RemoveImageSubmit handles POST /add-items/remove-image. A pure draft
// edit: nothing is persisted.
func (s *Server) RemoveImageSubmit(w http.ResponseWriter, r *http.Request) {
	draft := parseDraft(r)

	if r.FormValue("field") == "cover" {
		draft.CoverImage = ""
	} else if idx, err := strconv.Atoi(r.FormValue("index")); err == nil {
		draft.AdditionalImages = model.RemoveAdditionalImage(draft.AdditionalImages, idx)
	}

	s.renderForm(w, draft, nil)
}

// AddItemSubmit handles POST /add-items. Validation failures and
// persistence failures both re-render the form with the draft intact
// so nothing has to be re-entered.
func (s *Server) AddItemSubmit(w http.ResponseWriter, r *http.Request) {
	draft := parseDraft(r)

	if err := draft.Validate(); err != nil {
		// A user mistake, not a system fault: never reaches the store.
		s.renderForm(w, draft, &Flash{Kind: "error", Message: "Please fill in all required fields and upload a cover image."})
		return
	}

	item, err := s.Catalog.Create(r.Context(), draft)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		s.renderForm(w, draft, &Flash{Kind: "error", Message: "There was an error adding your item. Please try again."})
		return
	}

	slog.Info("item created", "item", item.Name, "id", item.ID)
	setFlash(w, "success", "Item successfully added!")
	http.Redirect(w, r, "/view-items", http.StatusSeeOther)
}
