package cotizacion

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Totales agrupa los montos calculados de una cotización.
type Totales struct {
	Subtotal decimal.Decimal
	Impuesto decimal.Decimal
	Total    decimal.Decimal
}

var cien = decimal.NewFromInt(100)

// TasaImpuestoPorDefecto es el IVA estándar cuando el cliente no envía tasa.
var TasaImpuestoPorDefecto = decimal.NewFromInt(16)

// CalcularTotales valida los ítems y la tasa y calcula subtotal, impuesto y
// total con aritmética decimal. Devuelve además los ítems con su total
// recalculado en el servidor. Los montos se redondean a 2 decimales
// (half-up), de modo que subtotal == Σ items.total exactamente.
func CalcularTotales(items []Item, tasa decimal.Decimal) (Totales, []Item, error) {
	if len(items) == 0 {
		return Totales{}, nil, fmt.Errorf("%w: agrega al menos un ítem", ErrValidacion)
	}
	if tasa.IsNegative() || tasa.GreaterThan(cien) {
		return Totales{}, nil, fmt.Errorf("%w: la tasa de impuesto debe estar entre 0 y 100", ErrValidacion)
	}

	procesados := make([]Item, 0, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		if it.Cantidad.Sign() <= 0 {
			return Totales{}, nil, fmt.Errorf("%w: la cantidad del ítem %d debe ser mayor a 0", ErrValidacion, i+1)
		}
		if it.PrecioUnit.Sign() <= 0 {
			return Totales{}, nil, fmt.Errorf("%w: el precio del ítem %d debe ser mayor a 0", ErrValidacion, i+1)
		}

		it.Total = it.Cantidad.Mul(it.PrecioUnit).Round(2)
		subtotal = subtotal.Add(it.Total)
		procesados = append(procesados, it)
	}

	impuesto := subtotal.Mul(tasa).Div(cien).Round(2)
	return Totales{
		Subtotal: subtotal,
		Impuesto: impuesto,
		Total:    subtotal.Add(impuesto),
	}, procesados, nil
}
