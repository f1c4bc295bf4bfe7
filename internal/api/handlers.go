package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/delavnica/internal/imaging"
	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// queryFilter builds the listing filter from query parameters.
func queryFilter(r *http.Request) store.Filter {
	q := r.URL.Query()
	return store.Filter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	}
}

// distinctValues handles GET /api/{kind}/values/{field}.
func distinctValues(w http.ResponseWriter, r *http.Request, db *sql.DB, kind model.Kind) {
	values, err := store.DistinctValues(r.Context(), db, kind, r.PathValue("field"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if values == nil {
		values = []string{}
	}
	jsonResponse(w, http.StatusOK, values)
}

// uploadImage handles PUT /api/{kind}/{id}/image: the photo is sniffed,
// downscaled, and re-encoded before storage.
func uploadImage(w http.ResponseWriter, r *http.Request, db *sql.DB, kind model.Kind) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ref := model.Ref{Kind: kind, ID: id}
	if err := store.SetItemImage(r.Context(), db, ref, result.Data, result.MIME); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "item not found")
			return
		}
		slog.Error("failed to save image", "kind", kind, "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// getImage handles GET /api/{kind}/{id}/image.
func getImage(w http.ResponseWriter, r *http.Request, db *sql.DB, kind model.Kind) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), db, model.Ref{Kind: kind, ID: id})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
