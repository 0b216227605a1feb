package cotizacion

import "errors"

// Errores del núcleo de cotizaciones. Siempre se devuelven envueltos con %w
// para que el handler los traduzca con errors.Is.
var (
	// ErrValidacion: ítems o tasa de impuesto inválidos.
	ErrValidacion = errors.New("datos de cotización inválidos")
	// ErrNoEncontrada: la cotización o el deal no existe o no pertenece al
	// usuario. No se distingue entre ambos casos a propósito.
	ErrNoEncontrada = errors.New("cotización no encontrada")
	// ErrEstadoInmutable: edición o borrado fuera de BORRADOR.
	ErrEstadoInmutable = errors.New("solo las cotizaciones en BORRADOR se pueden modificar")
	// ErrTransicionInvalida: cambio de estado no permitido por el ciclo de vida.
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	// ErrAlmacenamiento: falla de persistencia; la causa va envuelta.
	ErrAlmacenamiento = errors.New("error de almacenamiento")
)
