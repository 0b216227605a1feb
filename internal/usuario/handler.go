package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/NexoCRM/api-crm/internal/utils"
	"gorm.io/gorm"
)

// request DTOs
type registroRequest struct {
	Nombre   string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler devuelve un handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Registro crea una cuenta nueva (libre de autenticación)
func (h *Handler) Registro(w http.ResponseWriter, r *http.Request) {
	var req registroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responderError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Nombre == "" || req.Email == "" || req.Password == "" {
		responderError(w, http.StatusBadRequest, "todos los campos son requeridos")
		return
	}

	// Verifica si el email ya está registrado
	if _, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		responderError(w, http.StatusBadRequest, "el email ya está registrado")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		responderError(w, http.StatusInternalServerError, "error al crear el usuario")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responderError(w, http.StatusInternalServerError, "error al procesar la contraseña")
		return
	}

	u := Usuario{Nombre: req.Nombre, Email: req.Email, Password: hash}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		responderError(w, http.StatusInternalServerError, "error al crear el usuario")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"message": "usuario creado", "userId": u.ID})
}

// Login genera un JWT para credenciales válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responderError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		responderError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	if !utils.VerificarPassword(u.Password, req.Password) {
		responderError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	token, err := auth.GenerarToken(u.ID)
	if err != nil {
		responderError(w, http.StatusInternalServerError, "error al generar el token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"token": token, "user": u})
}

// Perfil devuelve los datos del usuario autenticado
func (h *Handler) Perfil(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	u, err := h.Repository.BuscarPorID(h.DB, usuarioID)
	if err != nil {
		responderError(w, http.StatusNotFound, "usuario no encontrado")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

func responderError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
