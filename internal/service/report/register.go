package report

import (
	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

// Register mounts the authenticated report submission route.
func (s *Service) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(server.Auth(s.appCtx))
		r.Post("/reports", s.handleSubmit)
	})
}
