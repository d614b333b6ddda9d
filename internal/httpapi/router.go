package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/config"
)

// Deps are the collaborators behind the router. DB and Library may be nil
// when the service runs without a database.
type Deps struct {
	DB      Pinger
	Library Library
	Cache   *codec.Cache
}

func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	if deps.Cache == nil {
		deps.Cache = codec.NewCache(cfg.Cache.MaxEntries)
	}

	r := chi.NewRouter()

	r.Use(LoggingMiddleware)
	r.Use(RecoverMiddleware)

	r.Get("/health", HealthHandler(deps.DB))
	r.Get("/version", VersionHandler())

	r.Route("/api", func(api chi.Router) {
		api.Use(APIKeyAuth(cfg))

		api.Post("/xml/validate", ValidateHandler())
		api.Post("/xml/format", FormatHandler())
		api.Post("/parse", ParseHandler(deps.Cache))
		api.Post("/render", RenderHandler())

		api.Get("/presets/seasons", SeasonPresetsHandler())
		api.Get("/presets/seasons/{id}", SeasonPresetHandler())
		api.Get("/presets/environment", EnvironmentPresetHandler())

		api.Route("/documents", func(docs chi.Router) {
			if deps.Library == nil {
				docs.HandleFunc("/*", libraryUnavailable)
				docs.HandleFunc("/", libraryUnavailable)
				return
			}
			docs.Get("/", ListDocumentsHandler(deps.Library))
			docs.Get("/{name}", GetDocumentHandler(deps.Library))
			docs.Post("/{name}", SaveDocumentHandler(deps.Library))
		})
	})

	if cfg.Preview.Enabled {
		r.With(APIKeyAuth(cfg)).Get("/ws/preview", PreviewHandler(deps.Cache))
	}

	return r
}
