package cotizacion

import (
	"time"

	"github.com/NexoCRM/api-crm/internal/deal"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item es una línea de la cotización. El total siempre se recalcula en el
// servidor; nunca se confía en el valor enviado por el cliente.
type Item struct {
	Descripcion string          `json:"description"`
	Cantidad    decimal.Decimal `json:"quantity"`
	PrecioUnit  decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Cotizacion es una propuesta de precio ligada a un deal. Los totales se
// guardan calculados para que las cotizaciones históricas no cambien.
type Cotizacion struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	DealID uint   `gorm:"not null;index" json:"dealId"`
	Numero string `gorm:"size:20;not null;index" json:"quoteNumber"`
	Estado Estado `gorm:"size:20;not null;default:'BORRADOR';index" json:"status"`

	Items        []Item          `gorm:"type:jsonb;serializer:json" json:"items"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Impuesto     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	TasaImpuesto decimal.Decimal `gorm:"type:decimal(5,2);not null;default:16" json:"taxRate"`

	ValidaHasta *time.Time `json:"validUntil,omitempty"`
	EnviadaEn   *time.Time `json:"sentAt,omitempty"`
	Notas       string     `json:"notes,omitempty"`

	Deal *deal.Deal `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"deal,omitempty"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// ContadorCotizacion es la fila de secuencia por (usuario, año) que respalda
// la numeración. El incremento transaccional cierra la carrera del conteo.
type ContadorCotizacion struct {
	UsuarioID uint `gorm:"primaryKey;autoIncrement:false"`
	Anio      int  `gorm:"primaryKey;autoIncrement:false"`
	Ultimo    int  `gorm:"not null;default:0"`
}

func (ContadorCotizacion) TableName() string { return "contadores_cotizacion" }
