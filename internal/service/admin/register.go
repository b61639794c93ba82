package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

// Register mounts the admin console routes. Everything requires an
// authenticated admin.
func (s *Service) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(server.Auth(s.appCtx))
		r.Use(server.RequireAdmin(s.appCtx.Logger))

		r.Get("/users", s.handleListUsers)
		r.Put("/users/{id}", s.handleEditProfile)
		r.Put("/users/{id}/status", s.handleSetStatus)
		r.Delete("/users/{id}", s.handleDeleteUser)
		r.Get("/reports/usage-by-city", s.handleUsageByCity)
		r.Get("/reports", s.handleListReports)
		r.Get("/activity", s.handleActivityLog)
	})
}
