package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/xmlnode"
)

const maxBodyBytes = 4 << 20

type errorResponse struct {
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeXML(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// newErrorResponse carries the position of XML errors.
func newErrorResponse(err error) errorResponse {
	res := errorResponse{Error: err.Error()}
	var verr *xmlnode.ValidationError
	if errors.As(err, &verr) {
		res.Line, res.Column = verr.Line, verr.Column
	}
	return res
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, newErrorResponse(err))
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}
