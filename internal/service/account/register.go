package account

import (
	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

// Register mounts the public auth routes and the authenticated profile
// self-service routes.
func (s *Service) Register(r chi.Router) {
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(server.Auth(s.appCtx))
		r.Get("/auth/me", s.handleMe)
		r.Post("/auth/logout", s.handleLogout)
		r.Put("/profile", s.handleUpdateProfile)
		r.Post("/profile/deactivate", s.handleDeactivate)
	})
}
