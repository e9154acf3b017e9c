package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/auth"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/config"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder  Responder
	logger     zerolog.Logger
	adminRepo  *database.AdminUserRepo
	secret     string
	sessionTTL time.Duration
}

func newAuthHandler(adminRepo *database.AdminUserRepo, c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		adminRepo:  adminRepo,
		secret:     config.GetString(c, "SESSION_SECRET", ""),
		sessionTTL: time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour,
	}
}

// login exchanges admin credentials for a session token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.Email == "" || body.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		admin, err := h.adminRepo.FindByEmail(body.Email)
		if err != nil {
			// Same response as a wrong password so probes can't tell
			// existing accounts from unknown ones
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if err := auth.CheckPassword(body.Password, admin.PasswordHash); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, err := auth.IssueToken(h.secret, auth.Session{AdminID: admin.ID, Email: admin.Email}, h.sessionTTL)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"email": admin.Email,
		})
	}
}

// session reports the identity behind the presented token. The route sits
// behind the auth middleware, so reaching it means the session is valid.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"id":    session.AdminID,
			"email": session.Email,
		})
	}
}

// logout acknowledges a sign-out. Tokens are stateless, so the actual
// discard happens client-side; this endpoint exists for the sign-out event.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
