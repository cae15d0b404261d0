package accounts

import (
	"errors"
	"net/http"
	"time"

	"progest/internal/middleware"
	"progest/internal/platform/httpjson"
	"progest/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type HandlerOptions struct {
	SecureCookie bool
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, opts HandlerOptions) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log, opts))
		ar.Post("/logout", logoutHandler(svc, log, opts))

		ar.With(middleware.RequireAuth).Get("/me", meHandler())
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPasswordTooLong):
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrDuplicate):
				httpjson.Warning(w, http.StatusConflict, ErrDuplicate.Error())
			default:
				log.Error("register user failed", map[string]any{"error": err})
				httpjson.Danger(w, http.StatusInternalServerError, "could not create account")
			}
			return
		}

		httpjson.Write(w, http.StatusCreated, userResponse{ID: u.ID, Username: u.Username})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida credenciales y crea una sesión. El token se devuelve en el body y en la cookie `session`.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {object} httpjson.ErrorBody
// @Router /api/auth/login [post]
func loginHandler(svc *Service, log logger.Logger, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Warning(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Warning(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrInvalidCredentials):
				httpjson.Warning(w, http.StatusUnauthorized, err.Error())
			default:
				log.Error("login failed", map[string]any{"error": err})
				httpjson.Danger(w, http.StatusInternalServerError, "could not validate login")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			Secure:   opts.SecureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		httpjson.Write(w, http.StatusOK, loginResponse{
			Token:     sess.Token,
			Username:  sess.Claims.Username,
			ExpiresAt: sess.ExpiresAt,
		})
	}
}

func logoutHandler(svc *Service, log logger.Logger, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middleware.TokenFromRequest(r)); err != nil {
			log.Error("logout failed", map[string]any{"error": err})
			httpjson.Danger(w, http.StatusInternalServerError, "could not end session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   opts.SecureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		httpjson.Write(w, http.StatusOK, userResponse{ID: claims.UserID, Username: claims.Username})
	}
}
