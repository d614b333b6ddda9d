package httpapi

import (
	"net/http"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
)

// Version is overridden at link time.
var Version = "dev"

type versionResponse struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Kinds   []string `json:"kinds"`
}

func VersionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, versionResponse{
			Name:    "dom-generator",
			Version: Version,
			Kinds:   codec.Kinds(),
		})
	}
}
