package report

import (
	"net/http"

	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
	"github.com/JagtapGaurav/Matrimonial/internal/validators"
)

type submitRequest struct {
	ReportedUserID string `json:"reportedUserId" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

type submitResponse struct {
	ID string `json:"id"`
}

func (s *Service) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reporter := server.UserFromContext(r.Context())
	if reporter == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	var in submitRequest
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	rec, err := s.Submit(r.Context(), reporter, in.ReportedUserID, in.Reason)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccessStatus(w, http.StatusCreated, submitResponse{ID: rec.ID})
}
