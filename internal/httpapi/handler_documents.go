package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/models"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/store"
)

// Library is the document store behind the /api/documents routes.
type Library interface {
	Save(ctx context.Context, name string, raw []byte) (models.Revision, error)
	Get(ctx context.Context, name string) (models.Revision, error)
	List(ctx context.Context, limit int) ([]models.Document, error)
}

type DocumentsResponse struct {
	Items []models.Document `json:"items"`
}

func ListDocumentsHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		docs, err := lib.List(r.Context(), limit)
		if err != nil {
			slog.Error("list documents", "error", err)
			http.Error(w, "query error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, DocumentsResponse{Items: docs})
	}
}

func GetDocumentHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rev, err := lib.Get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, err)
				return
			}
			slog.Error("get document", "error", err)
			http.Error(w, "query error", http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("format") == "xml" {
			writeXML(w, http.StatusOK, rev.XML)
			return
		}
		writeJSON(w, http.StatusOK, rev)
	}
}

func SaveDocumentHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		rev, err := lib.Save(r.Context(), chi.URLParam(r, "name"), body)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, rev)
		case errors.Is(err, store.ErrInvalidDocument):
			writeError(w, http.StatusUnprocessableEntity, err)
		case errors.Is(err, store.ErrDuplicateRevision):
			writeError(w, http.StatusConflict, err)
		default:
			slog.Error("save document", "error", err)
			http.Error(w, "failed to save document", http.StatusInternalServerError)
		}
	}
}

func libraryUnavailable(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "document library not configured", http.StatusServiceUnavailable)
}
