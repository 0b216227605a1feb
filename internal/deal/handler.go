package deal

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/NexoCRM/api-crm/internal/auth"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
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

type dealRequest struct {
	Titulo              string           `json:"title"`
	Valor               *decimal.Decimal `json:"value"`
	Etapa               *Etapa           `json:"stage"`
	ContactoID          *uint            `json:"contactId"`
	EmpresaID           *uint            `json:"companyId"`
	FechaCierreEsperada *string          `json:"expectedCloseDate"`
}

type cambiarEtapaRequest struct {
	Etapa Etapa `json:"stage"`
}

// POST /deals
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Titulo == "" {
		http.Error(w, "el campo 'title' es obligatorio", http.StatusBadRequest)
		return
	}

	d := Deal{
		Titulo:     req.Titulo,
		Etapa:      EtapaProspecto,
		ContactoID: req.ContactoID,
		EmpresaID:  req.EmpresaID,
		UsuarioID:  usuarioID,
	}
	if req.Valor != nil {
		d.Valor = *req.Valor
	}
	if req.Etapa != nil {
		if !req.Etapa.EsValida() {
			http.Error(w, "etapa inválida", http.StatusBadRequest)
			return
		}
		d.Etapa = *req.Etapa
	}
	if req.FechaCierreEsperada != nil && *req.FechaCierreEsperada != "" {
		fecha, err := time.Parse("2006-01-02", *req.FechaCierreEsperada)
		if err != nil {
			http.Error(w, "'expectedCloseDate' inválida", http.StatusBadRequest)
			return
		}
		d.FechaCierreEsperada = &fecha
	}

	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		http.Error(w, "error al crear el deal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /deals
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	list, err := h.Repository.ListarPorUsuario(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "error al listar deals", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /deals/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	d, err := h.Repository.BuscarPorIDYUsuario(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "deal no encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(d)
}

// PATCH /deals/{id} — cambia la etapa del pipeline
func (h *Handler) CambiarEtapa(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req cambiarEtapaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !req.Etapa.EsValida() {
		http.Error(w, "etapa inválida", http.StatusBadRequest)
		return
	}

	// cerradoEn se fija al entrar a una etapa cerrada
	var cerradoEn *time.Time
	if req.Etapa.EsCerrada() {
		ahora := time.Now()
		cerradoEn = &ahora
	}

	filas, err := h.Repository.CambiarEtapa(h.DB, uint(id), usuarioID, req.Etapa, cerradoEn)
	if err != nil {
		http.Error(w, "error al actualizar el deal", http.StatusInternalServerError)
		return
	}
	if filas == 0 {
		http.Error(w, "deal no encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// DELETE /deals/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	filas, err := h.Repository.Eliminar(h.DB, uint(id), usuarioID)
	if err != nil {
		http.Error(w, "error al eliminar el deal", http.StatusInternalServerError)
		return
	}
	if filas == 0 {
		http.Error(w, "deal no encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
