package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JagtapGaurav/Matrimonial/internal/app"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
	apperrors "github.com/JagtapGaurav/Matrimonial/internal/errors"
	"github.com/JagtapGaurav/Matrimonial/internal/repository"
	"github.com/JagtapGaurav/Matrimonial/internal/session"
)

type ctxKey int

const (
	ctxCurrentUser ctxKey = iota
	ctxRequestID
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request an id, echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), ctxRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// Logging emits one line per completed request.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Recoverer turns panics into 500 responses instead of dropped connections.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", "panic", rec, "path", r.URL.Path)
					WriteError(w, log, apperrors.New(apperrors.KindInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Auth resolves the bearer token to a live user record and seeds the request
// context. A session whose user record has disappeared is revoked on the spot.
func Auth(appCtx *app.AppContext) func(http.Handler) http.Handler {
	users := repository.NewUserRepository(appCtx.DB)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				WriteError(w, appCtx.Logger, apperrors.New(apperrors.KindUnauthorized, "missing credentials"))
				return
			}

			userID, err := appCtx.Sessions.Lookup(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					WriteError(w, appCtx.Logger, apperrors.New(apperrors.KindUnauthorized, "session expired or invalid"))
					return
				}
				WriteError(w, appCtx.Logger, err)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					_ = appCtx.Sessions.Revoke(r.Context(), token)
					WriteError(w, appCtx.Logger, apperrors.New(apperrors.KindUnauthorized, "logged in user not found"))
					return
				}
				WriteError(w, appCtx.Logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxCurrentUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a subtree to admin users. Must run after Auth.
func RequireAdmin(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil || !user.IsAdmin {
				WriteError(w, log, apperrors.New(apperrors.KindForbidden, "admin access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user seeded by Auth, or nil.
func UserFromContext(ctx context.Context) *db.User {
	user, _ := ctx.Value(ctxCurrentUser).(*db.User)
	return user
}

// WithUser seeds a context with an authenticated user. Exposed for handler tests.
func WithUser(ctx context.Context, user *db.User) context.Context {
	return context.WithValue(ctx, ctxCurrentUser, user)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
