package dogs

import (
	"encoding/json"
	"errors"
	"net/http"

	"dogs-adoption/internal/middleware"
	"dogs-adoption/internal/platform/logger"
	"dogs-adoption/internal/platform/pagination"
	"dogs-adoption/internal/platform/pathparam"
	"dogs-adoption/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handler{svc: svc, log: log.With(map[string]any{"module": "dogs"})}

	r.Route("/api/dogs", func(dr chi.Router) {
		dr.Get("/", h.list)
		dr.Get("/is_adopted", h.listAdopted)
		dr.With(middleware.RequireAuth).Post("/", h.create)

		dr.Get("/{name}", h.get)
		dr.With(middleware.RequireAuth).Put("/{name}", h.update)
		dr.Delete("/{name}", h.remove)
	})

	// Alta de perro con dueño (el dueño se resuelve por email)
	r.With(middleware.RequireAuth).Post("/api/users/{email}/dogs/", h.createForUser)
}

type handler struct {
	svc *Service
	log logger.Logger
}

// createDogRequest es el cuerpo para dar de alta un perro.
type createDogRequest struct {
	Name      string `json:"name"`
	IsAdopted *bool  `json:"is_adopted"`
}

// updateDogRequest: punteros para update parcial, nil = no tocar.
type updateDogRequest struct {
	Name      *string `json:"name"`
	IsAdopted *bool   `json:"is_adopted"`
}

// DogResponse es la representación pública de un perro.
// Exportado porque users la anida en sus respuestas.
type DogResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Picture    string  `json:"picture"`
	CreateDate string  `json:"create_date"`
	IsAdopted  bool    `json:"is_adopted"`
	UserID     *string `json:"user_id"`
}

func ToResponse(d Dog) DogResponse {
	out := DogResponse{
		ID:         d.ID,
		Name:       d.Name,
		Picture:    d.Picture,
		CreateDate: d.CreateDate,
		IsAdopted:  d.IsAdopted,
	}
	if d.HasOwner() {
		owner := d.OwnerID
		out.UserID = &owner
	}
	return out
}

func ToResponses(items []Dog) []DogResponse {
	out := make([]DogResponse, 0, len(items))
	for _, d := range items {
		out = append(out, ToResponse(d))
	}
	return out
}

// list godoc
// @Summary Listar perros
// @Tags dogs
// @Produce json
// @Param skip query int false "offset" default(0)
// @Param limit query int false "máximo de resultados" default(100)
// @Success 200 {array} DogResponse
// @Failure 400 {object} respond.ErrorBody
// @Router /api/dogs [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromRequest(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.List(r.Context(), page)
	if err != nil {
		h.fail(w, r, "list dogs", err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponses(items))
}

// listAdopted godoc
// @Summary Listar perros adoptados
// @Tags dogs
// @Produce json
// @Param skip query int false "offset" default(0)
// @Param limit query int false "máximo de resultados" default(100)
// @Success 200 {array} DogResponse
// @Failure 400 {object} respond.ErrorBody
// @Router /api/dogs/is_adopted [get]
func (h *handler) listAdopted(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromRequest(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.ListAdopted(r.Context(), page)
	if err != nil {
		h.fail(w, r, "list adopted dogs", err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponses(items))
}

// get godoc
// @Summary Obtener perro por nombre
// @Tags dogs
// @Produce json
// @Param name path string true "nombre del perro"
// @Success 200 {object} DogResponse
// @Failure 404 {object} respond.ErrorBody "Dog not found"
// @Router /api/dogs/{name} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetByName(r.Context(), pathparam.Get(r, "name"))
	if err != nil {
		h.fail(w, r, "get dog", err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponse(d))
}

// create godoc
// @Summary Crear perro sin dueño
// @Description La foto se obtiene de la API pública de perros; create_date la fija el servidor.
// @Tags dogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createDogRequest true "datos del perro"
// @Success 201 {object} DogResponse
// @Failure 400 {object} respond.ErrorBody
// @Failure 401 {object} respond.ErrorBody
// @Failure 422 {object} respond.ErrorBody
// @Router /api/dogs [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCreate(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, "create dog", err)
		return
	}
	respond.JSON(w, http.StatusCreated, ToResponse(d))
}

// createForUser godoc
// @Summary Crear perro para un usuario
// @Tags dogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "email del dueño"
// @Param payload body createDogRequest true "datos del perro"
// @Success 201 {object} DogResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "User not found"
// @Failure 422 {object} respond.ErrorBody
// @Router /api/users/{email}/dogs/ [post]
func (h *handler) createForUser(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCreate(w, r)
	if !ok {
		return
	}

	d, err := h.svc.CreateForOwner(r.Context(), pathparam.Get(r, "email"), in)
	if err != nil {
		h.fail(w, r, "create dog for user", err)
		return
	}
	respond.JSON(w, http.StatusCreated, ToResponse(d))
}

// update godoc
// @Summary Actualizar perro (parcial)
// @Description Solo se modifican los campos enviados.
// @Tags dogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "nombre del perro"
// @Param payload body updateDogRequest true "campos a modificar"
// @Success 200 {object} DogResponse
// @Failure 401 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "Dog not found"
// @Router /api/dogs/{name} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	current, err := h.svc.GetByName(r.Context(), pathparam.Get(r, "name"))
	if err != nil {
		h.fail(w, r, "get dog", err)
		return
	}

	var req updateDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid json")
		return
	}

	updated, err := h.svc.Update(r.Context(), current, UpdateInput{
		Name:      req.Name,
		IsAdopted: req.IsAdopted,
	})
	if err != nil {
		h.fail(w, r, "update dog", err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponse(updated))
}

// remove godoc
// @Summary Borrar perro
// @Tags dogs
// @Produce json
// @Param name path string true "nombre del perro"
// @Success 200 {object} DogResponse "snapshot del perro borrado"
// @Failure 404 {object} respond.ErrorBody "Dog not found"
// @Router /api/dogs/{name} [delete]
func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	name := pathparam.Get(r, "name")

	// Pre-check de existencia para responder 404 antes de tocar el delete.
	if _, err := h.svc.GetByName(r.Context(), name); err != nil {
		h.fail(w, r, "get dog", err)
		return
	}

	d, err := h.svc.Remove(r.Context(), name)
	if err != nil {
		h.fail(w, r, "delete dog", err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponse(d))
}

func decodeCreate(w http.ResponseWriter, r *http.Request) (CreateInput, bool) {
	var req createDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid json")
		return CreateInput{}, false
	}
	if req.IsAdopted == nil {
		respond.Detail(w, http.StatusUnprocessableEntity, "is_adopted is required")
		return CreateInput{}, false
	}
	return CreateInput{Name: req.Name, IsAdopted: *req.IsAdopted}, true
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Detail(w, http.StatusNotFound, "Dog not found")
	case errors.Is(err, ErrOwnerNotFound):
		respond.Detail(w, http.StatusNotFound, "User not found")
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
