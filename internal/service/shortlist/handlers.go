package shortlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JagtapGaurav/Matrimonial/internal/dto"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

type idsResponse struct {
	IDs []string `json:"ids"`
}

func (s *Service) handleToggle(w http.ResponseWriter, r *http.Request) {
	viewer := server.UserFromContext(r.Context())
	if viewer == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	targetID := chi.URLParam(r, "targetID")
	if targetID == "" {
		server.WriteError(w, s.appCtx.Logger, svcErr.InvalidArgument("target id is required"))
		return
	}

	ids, err := s.Toggle(r.Context(), viewer, targetID)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, idsResponse{IDs: ids})
}

func (s *Service) handleIDs(w http.ResponseWriter, r *http.Request) {
	viewer := server.UserFromContext(r.Context())
	if viewer == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	ids, err := s.IDs(r.Context(), viewer.ID)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, idsResponse{IDs: ids})
}

func (s *Service) handleProfiles(w http.ResponseWriter, r *http.Request) {
	viewer := server.UserFromContext(r.Context())
	if viewer == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	profiles, err := s.Profiles(r.Context(), viewer.ID)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, dto.FromUsers(profiles))
}
