package cotizacion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expone el núcleo de cotizaciones por HTTP.
type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// POST /cotizaciones
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var body crearBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		responderError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if body.DealID == 0 {
		responderError(w, http.StatusBadRequest, "debes seleccionar un deal")
		return
	}
	validaHasta, err := parsearFecha(body.ValidaHasta)
	if err != nil {
		responderError(w, http.StatusBadRequest, "'validUntil' inválida")
		return
	}

	c, err := h.Service.Crear(usuarioID, CrearRequest{
		DealID:       body.DealID,
		Items:        body.Items,
		TasaImpuesto: body.TasaImpuesto,
		ValidaHasta:  validaHasta,
		Notas:        body.Notas,
	})
	if err != nil {
		responderErrorDeServicio(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /cotizaciones?dealId=&status=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var filtro Filtro
	if v := r.URL.Query().Get("dealId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			responderError(w, http.StatusBadRequest, "'dealId' inválido")
			return
		}
		dealID := uint(id)
		filtro.DealID = &dealID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		estado := Estado(v)
		if !estado.EsValido() {
			responderError(w, http.StatusBadRequest, "'status' inválido")
			return
		}
		filtro.Estado = &estado
	}

	list, err := h.Service.Listar(usuarioID, filtro)
	if err != nil {
		responderErrorDeServicio(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /cotizaciones/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Service.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		responderErrorDeServicio(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /cotizaciones/{id} — edición, solo en BORRADOR
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var body actualizarBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		responderError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	req := ActualizarRequest{
		Items:        body.Items,
		TasaImpuesto: body.TasaImpuesto,
		Notas:        body.Notas,
	}
	if body.ValidaHasta != nil {
		fecha, err := parsearFecha(*body.ValidaHasta)
		if err != nil {
			responderError(w, http.StatusBadRequest, "'validUntil' inválida")
			return
		}
		req.ValidaHasta = fecha
	}

	c, err := h.Service.Actualizar(usuarioID, uint(id), req)
	if err != nil {
		responderErrorDeServicio(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PATCH /cotizaciones/{id} — transición de estado
func (h *Handler) CambiarEstado(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var body cambiarEstadoBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		responderError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	c, err := h.Service.CambiarEstado(usuarioID, uint(id), body.Estado)
	if err != nil {
		responderErrorDeServicio(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /cotizaciones/{id} — solo en BORRADOR
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Eliminar(usuarioID, uint(id)); err != nil {
		responderErrorDeServicio(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// responderErrorDeServicio traduce los errores del núcleo a HTTP.
func responderErrorDeServicio(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidacion):
		responderError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoEncontrada):
		responderError(w, http.StatusNotFound, ErrNoEncontrada.Error())
	case errors.Is(err, ErrEstadoInmutable):
		responderError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrTransicionInvalida):
		responderError(w, http.StatusConflict, err.Error())
	default:
		responderError(w, http.StatusInternalServerError, "error interno")
	}
}

func responderError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
