package httpapi

import (
	"errors"
	"net/http"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

type validateResponse struct {
	Valid bool `json:"valid"`
	errorResponse
}

// DocumentResponse is the structured form of a parsed document.
type DocumentResponse struct {
	Kind     string         `json:"kind"`
	Document codec.Document `json:"document"`
}

func ValidateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		if err := xmlnode.Validate(string(body)); err != nil {
			writeJSON(w, http.StatusOK, validateResponse{errorResponse: newErrorResponse(err)})
			return
		}
		writeJSON(w, http.StatusOK, validateResponse{Valid: true})
	}
}

func FormatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		opts := xmlnode.FormatOptions{OmitDeclaration: r.URL.Query().Get("declaration") == "omit"}
		out, err := xmlnode.Format(string(body), opts)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeXML(w, http.StatusOK, out)
	}
}

func ParseHandler(cache *codec.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		doc, err := cache.Parse(string(body))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeJSON(w, http.StatusOK, DocumentResponse{Kind: doc.Kind(), Document: doc})
	}
}

func RenderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		doc, err := codec.DecodeJSON(r.URL.Query().Get("kind"), body)
		if err != nil {
			status := http.StatusBadRequest
			if !errors.Is(err, codec.ErrUnknownKind) {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, err)
			return
		}
		writeXML(w, http.StatusOK, codec.Render(doc))
	}
}
