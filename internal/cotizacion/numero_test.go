package cotizacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatearNumero(t *testing.T) {
	assert.Equal(t, "COT-2026-001", FormatearNumero(2026, 1))
	assert.Equal(t, "COT-2026-042", FormatearNumero(2026, 42))
	assert.Equal(t, "COT-2025-999", FormatearNumero(2025, 999))
	// Pasada la 999 la secuencia sigue sin tope, con un dígito más.
	assert.Equal(t, "COT-2026-1000", FormatearNumero(2026, 1000))
}
