package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"dogs-adoption/internal/domain/dogs"
	"dogs-adoption/internal/middleware"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/platform/pagination"
	"dogs-adoption/internal/platform/pathparam"
	"dogs-adoption/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes usa rutas planas (sin r.Route) para convivir con
// POST /api/users/{email}/dogs/ que registra el módulo dogs.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handler{svc: svc, log: log.With(map[string]any{"module": "users"})}

	r.Get("/api/users", h.list)
	r.With(middleware.RequireAuth).Post("/api/users", h.create)
	r.Get("/api/users/{email}", h.get)
	r.Put("/api/users/{email}", h.update)
	r.Delete("/api/users/{email}", h.remove)
}

type handler struct {
	svc *Service
	log logger.Logger
}

type createUserRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Email    string `json:"email"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastname"`
	Email    *string `json:"email"`
}

type userResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	LastName string             `json:"lastname"`
	Email    string             `json:"email"`
	Dogs     []dogs.DogResponse `json:"dogs"`
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Dogs:     dogs.ToResponses(u.Dogs),
	}
}

// list godoc
// @Summary Listar usuarios (con sus perros)
// @Tags users
// @Produce json
// @Param skip query int false "offset" default(0)
// @Param limit query int false "máximo de resultados" default(100)
// @Success 200 {array} userResponse
// @Failure 400 {object} respond.ErrorBody
// @Router /api/users [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromRequest(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.List(r.Context(), page)
	if err != nil {
		h.fail(w, r, "list users", err)
		return
	}

	out := make([]userResponse, 0, len(items))
	for _, u := range items {
		out = append(out, toUserResponse(u))
	}
	respond.JSON(w, http.StatusOK, out)
}

// get godoc
// @Summary Obtener usuario por email
// @Tags users
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} userResponse
// @Failure 404 {object} respond.ErrorBody "User not found"
// @Router /api/users/{email} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetByEmail(r.Context(), pathparam.Get(r, "email"))
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}
	respond.JSON(w, http.StatusOK, toUserResponse(u))
}

// create godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createUserRequest true "datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} respond.ErrorBody "Email already registered"
// @Failure 401 {object} respond.ErrorBody
// @Failure 422 {object} respond.ErrorBody
// @Router /api/users [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.svc.Create(r.Context(), CreateInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
	})
	if err != nil {
		h.fail(w, r, "create user", err)
		return
	}
	respond.JSON(w, http.StatusCreated, toUserResponse(u))
}

// update godoc
// @Summary Actualizar usuario (parcial)
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "email actual"
// @Param payload body updateUserRequest true "campos a modificar"
// @Success 200 {object} userResponse
// @Failure 400 {object} respond.ErrorBody "Email already registered"
// @Failure 404 {object} respond.ErrorBody "User not found"
// @Router /api/users/{email} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	current, err := h.svc.GetByEmail(r.Context(), pathparam.Get(r, "email"))
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid json")
		return
	}

	updated, err := h.svc.Update(r.Context(), current, UpdateInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
	})
	if err != nil {
		h.fail(w, r, "update user", err)
		return
	}
	respond.JSON(w, http.StatusOK, toUserResponse(updated))
}

// remove godoc
// @Summary Borrar usuario
// @Description Los perros del usuario quedan sin dueño (user_id = null).
// @Tags users
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} userResponse "snapshot del usuario borrado"
// @Failure 404 {object} respond.ErrorBody "User not found"
// @Router /api/users/{email} [delete]
func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Remove(r.Context(), pathparam.Get(r, "email"))
	if err != nil {
		h.fail(w, r, "delete user", err)
		return
	}
	respond.JSON(w, http.StatusOK, toUserResponse(u))
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Detail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrEmailTaken):
		respond.Detail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrInvalidInput):
		respond.Detail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error(op, map[string]any{
			"error":      err,
			"request_id": middleware.RequestIDFrom(r.Context()),
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
