package account

import (
	"net/http"

	"github.com/JagtapGaurav/Matrimonial/internal/dto"
	svcErr "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/server"
	"github.com/JagtapGaurav/Matrimonial/internal/validators"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  dto.User `json:"user"`
}

type deactivateRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	user, err := s.RegisterUser(r.Context(), in)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccessStatus(w, http.StatusCreated, dto.FromUser(user))
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	user, token, err := s.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, loginResponse{Token: token, User: dto.FromUser(user)})
}

func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	user := server.UserFromContext(r.Context())
	if user == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}
	server.WriteSuccess(w, dto.FromUser(user))
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	user := server.UserFromContext(r.Context())
	if user == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}
	if err := s.Logout(r.Context(), user, server.BearerToken(r)); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, map[string]bool{"loggedOut": true})
}

func (s *Service) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := server.UserFromContext(r.Context())
	if user == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	var in UpdateProfileInput
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	updated, err := s.UpdateProfile(r.Context(), user.ID, in)
	if err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, dto.FromUser(updated))
}

func (s *Service) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	user := server.UserFromContext(r.Context())
	if user == nil {
		server.WriteError(w, s.appCtx.Logger, svcErr.New(svcErr.KindUnauthorized, "not logged in"))
		return
	}

	var in deactivateRequest
	if err := validators.DecodeJSONBody(r, &in); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}

	if err := s.Deactivate(r.Context(), user, in.Reason); err != nil {
		server.WriteError(w, s.appCtx.Logger, err)
		return
	}
	server.WriteSuccess(w, map[string]bool{"deactivated": true})
}
