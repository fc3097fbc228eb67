package identity

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"dogs-adoption/internal/middleware"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra login (/token) y perfil (/user_auth/me).
// accessTTL es la duración de los tokens emitidos por /token.
func RegisterRoutes(r chi.Router, svc *Service, accessTTL time.Duration, log logger.Logger) {
	h := &handler{svc: svc, ttl: accessTTL, log: log.With(map[string]any{"module": "identity"})}

	r.Post("/token", h.login)
	r.Get("/user_auth/me", h.me)
}

type handler struct {
	svc *Service
	ttl time.Duration
	log logger.Logger
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

// login godoc
// @Summary Obtener token de acceso
// @Description Formulario OAuth2 password (application/x-www-form-urlencoded).
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "usuario"
// @Param password formData string true "password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} respond.ErrorBody "Incorrect username or password"
// @Router /token [post]
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid form")
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	id, err := h.svc.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.log.Warn("login rejected", map[string]any{"username": username})
			respond.Unauthorized(w, "Incorrect username or password")
			return
		}
		h.fail(w, r, "authenticate", err)
		return
	}

	token, err := h.svc.IssueToken(id.Username, h.ttl)
	if err != nil {
		h.fail(w, r, "issue token", err)
		return
	}

	respond.JSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// me godoc
// @Summary Perfil del usuario autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profileResponse
// @Failure 400 {object} respond.ErrorBody "Inactive user"
// @Failure 401 {object} respond.ErrorBody "Could not validate credentials"
// @Router /user_auth/me [get]
func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.Username) == "" {
		respond.Unauthorized(w, "Could not validate credentials")
		return
	}

	id, err := h.svc.RequireActive(Identity{
		Username: claims.Username,
		Email:    claims.Email,
		FullName: claims.FullName,
		Disabled: claims.Disabled,
	})
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, "Inactive user")
		return
	}

	respond.JSON(w, http.StatusOK, profileResponse{
		Username: id.Username,
		Email:    id.Email,
		FullName: id.FullName,
		Disabled: id.Disabled,
	})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.Error(op, map[string]any{
		"error":      err,
		"request_id": middleware.RequestIDFrom(r.Context()),
	})
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
