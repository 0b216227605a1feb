package reportes

import (
	"encoding/json"
	"net/http"

	"github.com/NexoCRM/api-crm/internal/auth"
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

// GET /reportes/pipeline — métricas del pipeline del usuario autenticado
func (h *Handler) Pipeline(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	reporte, err := h.Repository.ResumenPipeline(h.DB, usuarioID)
	if err != nil {
		http.Error(w, "error al generar el reporte", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reporte)
}
