package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/config"
)

// NewRouter builds the chi router with common middleware and mounts all
// provided registrars under /api.
func NewRouter(appCtx *app.AppContext, registrars ...Registrar) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logging(appCtx.Logger))
	r.Use(Recoverer(appCtx.Logger))

	r.Route("/api", func(api chi.Router) {
		for _, reg := range registrars {
			reg.Register(api)
		}
	})

	return r
}

// StartHTTPServer boots the HTTP server and registers all provided services.
func StartHTTPServer(cfg *config.Config, appCtx *app.AppContext, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(appCtx, registrars...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv.ListenAndServe()
}
