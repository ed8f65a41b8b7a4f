package web

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gearhub/gearhub/internal/catalog"
	"github.com/gearhub/gearhub/internal/images"
	webembed "github.com/gearhub/gearhub/web"
)

// NewRouter creates the web page router with all page routes registered.
// imageDB may be nil when stored uploads are not configured; the image
// route then serves nothing.
func NewRouter(cat catalog.Catalog, acq images.Acquirer, imageDB *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Catalog:   cat,
		Acquirer:  acq,
		Templates: templates,
		ImageDB:   imageDB,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.HomePage)

	mux.HandleFunc("GET /view-items", s.ViewItemsPage)
	mux.HandleFunc("POST /view-items/enquire", s.EnquireSubmit)

	mux.HandleFunc("GET /add-items", s.AddItemsPage)
	mux.HandleFunc("POST /add-items", s.AddItemSubmit)
	mux.HandleFunc("POST /add-items/upload", s.UploadImageSubmit)
	mux.HandleFunc("POST /add-items/remove-image", s.RemoveImageSubmit)

	mux.HandleFunc("GET /images/{id}", s.ImageGet)

	return mux, nil
}

// ImageGet handles GET /images/{id}, serving stored upload blobs.
func (s *Server) ImageGet(w http.ResponseWriter, r *http.Request) {
	if s.ImageDB == nil {
		http.NotFound(w, r)
		return
	}

	data, mime, err := images.Get(r.Context(), s.ImageDB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
