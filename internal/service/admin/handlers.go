package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
	"github.com/JagtapGaurav/Matrimonial/internal/dto"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
	"github.com/JagtapGaurav/Matrimonial/internal/validators"
)

type setStatusRequest struct {
	Status db.Status `json:"status" validate:"required"`
}

type reportView struct {
	ID               string `json:"id"`
	ReporterID       string `json:"reporterId"`
	ReporterName     string `json:"reporterName"`
	ReportedUserID   string `json:"reportedUserId"`
	ReportedUserName string `json:"reportedUserName"`
	Reason           string `json:"reason"`
	CreatedAt        string `json:"createdAt"`
}

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.ListUsers(r.Context())
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, dto.FromUsers(users))
}

func (s *Service) handleEditProfile(w http.ResponseWriter, r *http.Request) {
	actor := server.UserFromContext(r.Context())

	var in EditProfileInput
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	user, err := s.EditProfile(r.Context(), actor, chi.URLParam(r, "id"), in)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, dto.FromUser(user))
}

func (s *Service) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	actor := server.UserFromContext(r.Context())

	var in setStatusRequest
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	user, err := s.SetStatus(r.Context(), actor, chi.URLParam(r, "id"), in.Status)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, dto.FromUser(user))
}

func (s *Service) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := server.UserFromContext(r.Context())

	if err := s.DeleteUser(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, map[string]bool{"deleted": true})
}

func (s *Service) handleUsageByCity(w http.ResponseWriter, r *http.Request) {
	counts, err := s.UsageByCity(r.Context())
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, counts)
}

func (s *Service) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.ListReports(r.Context())
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	views := make([]reportView, 0, len(reports))
	for _, rec := range reports {
		views = append(views, reportView{
			ID:               rec.ID,
			ReporterID:       rec.ReporterID,
			ReporterName:     rec.ReporterName,
			ReportedUserID:   rec.ReportedUserID,
			ReportedUserName: rec.ReportedUserName,
			Reason:           rec.Reason,
			CreatedAt:        rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	server.WriteSuccess(w, views)
}

func (s *Service) handleActivityLog(w http.ResponseWriter, r *http.Request) {
	entries, err := s.ActivityLog(r.Context())
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, entries)
}
