package reportes

import (
	"github.com/NexoCRM/api-crm/internal/deal"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResumenEtapa agrega los deals de una etapa del pipeline.
type ResumenEtapa struct {
	Etapa    deal.Etapa      `json:"stage"`
	Cantidad int64           `json:"count"`
	Valor    decimal.Decimal `json:"value"`
}

// ResumenCotizaciones agrega las cotizaciones del usuario.
type ResumenCotizaciones struct {
	Total         int64           `json:"total"`
	Enviadas      int64           `json:"sent"`
	Aceptadas     int64           `json:"accepted"`
	MontoAceptado decimal.Decimal `json:"acceptedAmount"`
}

// ReportePipeline es la respuesta de GET /reportes/pipeline.
type ReportePipeline struct {
	PorEtapa     []ResumenEtapa      `json:"byStage"`
	Cotizaciones ResumenCotizaciones `json:"quotes"`
}

type Repository interface {
	ResumenPipeline(db *gorm.DB, usuarioID uint) (*ReportePipeline, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ResumenPipeline(db *gorm.DB, usuarioID uint) (*ReportePipeline, error) {
	reporte := &ReportePipeline{PorEtapa: []ResumenEtapa{}}

	err := db.Raw(
		`SELECT etapa, COUNT(*) AS cantidad, COALESCE(SUM(valor), 0) AS valor
		 FROM deals
		 WHERE usuario_id = ? AND deleted_at IS NULL
		 GROUP BY etapa`,
		usuarioID,
	).Scan(&reporte.PorEtapa).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(
		`SELECT COUNT(*) AS total,
		        COUNT(CASE WHEN c.estado = 'ENVIADA' THEN 1 END) AS enviadas,
		        COUNT(CASE WHEN c.estado = 'ACEPTADA' THEN 1 END) AS aceptadas,
		        COALESCE(SUM(CASE WHEN c.estado = 'ACEPTADA' THEN c.total ELSE 0 END), 0) AS monto_aceptado
		 FROM cotizaciones c
		 JOIN deals d ON d.id = c.deal_id AND d.deleted_at IS NULL
		 WHERE d.usuario_id = ? AND c.deleted_at IS NULL`,
		usuarioID,
	).Scan(&reporte.Cotizaciones).Error
	if err != nil {
		return nil, err
	}

	return reporte, nil
}
