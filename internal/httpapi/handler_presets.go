package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/environment"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/presets"
)

func SeasonPresetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, presets.Seasons())
	}
}

func SeasonPresetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s, ok := presets.Season(environment.SeasonID(id))
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("unknown season %q", id))
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

type presetEnvironmentResponse struct {
	DocumentResponse
	XML string `json:"xml"`
}

func EnvironmentPresetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := presets.Environment()
		writeJSON(w, http.StatusOK, presetEnvironmentResponse{
			DocumentResponse: DocumentResponse{Kind: env.Kind(), Document: env},
			XML:              codec.Render(env),
		})
	}
}
