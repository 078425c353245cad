package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/http/middleware"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types/admins"
	"github.com/mgfilms/site-service/internal/utils/jwt"
	"github.com/mgfilms/site-service/internal/utils/password"
	"github.com/mgfilms/site-service/internal/utils/response"
)

var errInvalidCredentials = errors.New("invalid email or password")

// AttemptLimiter forgets a client's earlier attempts at an action.
type AttemptLimiter interface {
	Reset(r *http.Request, action string)
}

// Login handles admin authentication
// @Summary Admin login
// @Description Authenticate an admin and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body admins.LoginRequest true "Admin credentials"
// @Success 200 {object} response.Response{data=admins.LoginResponse} "Authenticated"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Invalid email or password"
// @Failure 429 {object} response.Response "Too many attempts"
// @Router /api/auth/login [post]
func Login(store storage.Storage, jwtCfg config.JWT, attempts AttemptLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admins.LoginRequest
		if !response.ReadJSON(w, r, &req) {
			return
		}

		admin, err := store.GetAdminByEmail(r.Context(), strings.TrimSpace(req.Email))
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				response.InternalError(w, r, "internal server error", err)
				return
			}
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errInvalidCredentials))
			return
		}

		if !password.CheckPasswordHash(req.Password, admin.PasswordHash) {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errInvalidCredentials))
			return
		}

		token, err := jwt.CreateToken(admin, jwtCfg.Secret, jwtCfg.TTL)
		if err != nil {
			response.InternalError(w, r, "failed to generate token", err)
			return
		}
		if attempts != nil {
			attempts.Reset(r, middleware.ActionLogin)
		}
		slog.Info("Admin logged in", slog.Int64("admin_id", admin.ID))

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Login successful", admins.LoginResponse{
			Token: token,
			Admin: admin,
		}))
	}
}

// Me returns the admin behind the bearer token
// @Summary Current admin
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=admins.Admin}
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 403 {object} response.Response "Invalid token"
// @Security BearerAuth
// @Router /api/auth/me [get]
func Me(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFromContext(r.Context())
		if !session.Authenticated() {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("not authenticated")))
			return
		}

		admin, err := store.GetAdminByEmail(r.Context(), session.Claims.Email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Token outlived its account.
				response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("admin no longer exists")))
				return
			}
			response.InternalError(w, r, "internal server error", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Authenticated", map[string]admins.Admin{"admin": admin}))
	}
}
