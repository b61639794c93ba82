package match

import (
	"net/http"
	"strconv"

	"github.com/JagtapGaurav/Matrimonial/internal/db"
	"github.com/JagtapGaurav/Matrimonial/internal/dto"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
)

type candidatesResponse struct {
	Candidates []dto.User `json:"candidates"`
	Total      int        `json:"total"`
	HasMore    bool       `json:"hasMore"`
}

func (s *Service) handleCandidates(w http.ResponseWriter, r *http.Request) {
	viewer := server.UserFromContext(r.Context())
	if viewer == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	q := r.URL.Query()
	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	minAge, err := intParam(q.Get("minAge"), 0)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	maxAge, err := intParam(q.Get("maxAge"), 0)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	filters := Filters{
		MinAge:    minAge,
		MaxAge:    maxAge,
		State:     q.Get("state"),
		City:      q.Get("city"),
		Education: db.Education(q.Get("education")),
	}

	result, err := s.ListVisibleCandidates(r.Context(), viewer, filters, page)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	server.WriteSuccess(w, candidatesResponse{
		Candidates: dto.FromUsers(result.Candidates),
		Total:      result.Total,
		HasMore:    result.HasMore,
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, svcErr.Newf(svcErr.KindValidation, "invalid number %q", raw)
	}
	return v, nil
}
