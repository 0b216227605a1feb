package empresa

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type empresaRequest struct {
	Nombre    string `json:"name"`
	Industria string `json:"industry"`
	SitioWeb  string `json:"website"`
	Telefono  string `json:"phone"`
}

// POST /empresas
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req empresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Nombre == "" {
		http.Error(w, "el campo 'name' es obligatorio", http.StatusBadRequest)
		return
	}

	e := Empresa{
		Nombre:    req.Nombre,
		Industria: req.Industria,
		SitioWeb:  req.SitioWeb,
		Telefono:  req.Telefono,
		UsuarioID: usuarioID,
	}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		http.Error(w, "error al crear la empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// GET /empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	list, err := h.Repository.ListarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "error al listar empresas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	e, err := h.Repository.BuscarPorIDYUsuario(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "empresa no encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// PUT /empresas/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	e, err := h.Repository.BuscarPorIDYUsuario(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "empresa no encontrada", http.StatusNotFound)
		return
	}

	var req empresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	e.Nombre = req.Nombre
	e.Industria = req.Industria
	e.SitioWeb = req.SitioWeb
	e.Telefono = req.Telefono

	if err := h.Repository.Actualizar(h.DB, e); err != nil {
		http.Error(w, "error al actualizar la empresa", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// DELETE /empresas/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	filas, err := h.Repository.Eliminar(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "error al eliminar la empresa", http.StatusInternalServerError)
		return
	}
	if filas == 0 {
		http.Error(w, "empresa no encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
