package contacto

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

type contactoRequest struct {
	Nombre    string `json:"firstName"`
	Apellido  string `json:"lastName"`
	Email     string `json:"email"`
	Telefono  string `json:"phone"`
	Cargo     string `json:"position"`
	EmpresaID *uint  `json:"companyId"`
}

// POST /contactos
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req contactoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Nombre == "" || req.Apellido == "" {
		http.Error(w, "'firstName' y 'lastName' son obligatorios", http.StatusBadRequest)
		return
	}

	c := Contacto{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Cargo:     req.Cargo,
		EmpresaID: req.EmpresaID,
		UsuarioID: usuarioID,
	}
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "error al crear el contacto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contactos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	list, err := h.Repository.ListarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "error al listar contactos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /contactos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Repository.BuscarPorIDYUsuario(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "contacto no encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /contactos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Repository.BuscarPorIDYUsuario(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "contacto no encontrado", http.StatusNotFound)
		return
	}

	var req contactoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c.Nombre = req.Nombre
	c.Apellido = req.Apellido
	c.Email = req.Email
	c.Telefono = req.Telefono
	c.Cargo = req.Cargo
	c.EmpresaID = req.EmpresaID

	if err := h.Repository.Actualizar(h.DB, c); err != nil {
		http.Error(w, "error al actualizar el contacto", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /contactos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	filas, err := h.Repository.Eliminar(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "error al eliminar el contacto", http.StatusInternalServerError)
		return
	}
	if filas == 0 {
		http.Error(w, "contacto no encontrado", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
