package cotizacion

// Estado es el estado del ciclo de vida de una cotización.
type Estado string

const (
	EstadoBorrador  Estado = "BORRADOR"
	EstadoEnviada   Estado = "ENVIADA"
	EstadoAceptada  Estado = "ACEPTADA"
	EstadoRechazada Estado = "RECHAZADA"
)

var estadosValidos = map[Estado]bool{
	EstadoBorrador:  true,
	EstadoEnviada:   true,
	EstadoAceptada:  true,
	EstadoRechazada: true,
}

// Transiciones permitidas del ciclo de vida. ACEPTADA y RECHAZADA son
// terminales; cualquier otro cambio (incluido quedarse en el mismo estado)
// está prohibido.
var transiciones = map[Estado]map[Estado]bool{
	EstadoBorrador:  {EstadoEnviada: true},
	EstadoEnviada:   {EstadoAceptada: true, EstadoRechazada: true},
	EstadoAceptada:  {},
	EstadoRechazada: {},
}

// EsValido indica si el valor pertenece al conjunto cerrado de estados.
func (e Estado) EsValido() bool {
	return estadosValidos[e]
}

// PuedeTransicionar indica si el cambio actual→destino está permitido.
func PuedeTransicionar(actual, destino Estado) bool {
	siguientes, ok := transiciones[actual]
	if !ok {
		return false
	}
	return siguientes[destino]
}
