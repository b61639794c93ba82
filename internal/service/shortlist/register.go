package shortlist

import (
	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

// Register mounts the authenticated shortlist routes.
func (s *Service) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(server.Auth(s.appCtx))
		r.Post("/shortlist/{targetID}", s.handleToggle)
		r.Get("/shortlist", s.handleIDs)
		r.Get("/shortlist/profiles", s.handleProfiles)
	})
}
