package cotizacion

import "fmt"

// Formato del número de cotización: COT-<año>-<secuencia>.
// La secuencia va con relleno a 3 dígitos pero no está limitada: después de
// la 999 simplemente aparece un cuarto dígito.
const prefijoNumero = "COT"

// FormatearNumero arma el número legible a partir del año y la secuencia
// asignada por el contador.
func FormatearNumero(anio, secuencia int) string {
	return fmt.Sprintf("%s-%d-%03d", prefijoNumero, anio, secuencia)
}
