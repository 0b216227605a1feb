package cotizacion

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearRequest son los datos ya parseados para crear una cotización.
type CrearRequest struct {
	DealID       uint
	Items        []Item
	TasaImpuesto *decimal.Decimal
	ValidaHasta  *time.Time
	Notas        string
}

// ActualizarRequest son los datos parseados de una edición parcial:
// los campos nil conservan el valor actual.
type ActualizarRequest struct {
	Items        []Item
	TasaImpuesto *decimal.Decimal
	ValidaHasta  *time.Time
	Notas        *string
}

// Cuerpos HTTP. Los ítems entrantes decodifican directo en Item; el campo
// total del cliente se descarta al recalcular.
type crearBody struct {
	DealID       uint             `json:"dealId"`
	Items        []Item           `json:"items"`
	TasaImpuesto *decimal.Decimal `json:"taxRate"`
	ValidaHasta  string           `json:"validUntil"`
	Notas        string           `json:"notes"`
}

type actualizarBody struct {
	Items        []Item           `json:"items"`
	TasaImpuesto *decimal.Decimal `json:"taxRate"`
	ValidaHasta  *string          `json:"validUntil"`
	Notas        *string          `json:"notes"`
}

type cambiarEstadoBody struct {
	Estado Estado `json:"status"`
}

// parsearFecha interpreta una fecha "YYYY-MM-DD" al mediodía UTC, igual que
// el frontend la envía.
func parsearFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	f, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	f = f.Add(12 * time.Hour)
	return &f, nil
}
