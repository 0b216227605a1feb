package deal

import "strings"

// Etapa es la posición del deal dentro del pipeline de ventas.
type Etapa string

const (
	EtapaProspecto        Etapa = "PROSPECTO"
	EtapaContactado       Etapa = "CONTACTADO"
	EtapaPropuestaEnviada Etapa = "PROPUESTA_ENVIADA"
	EtapaNegociacion      Etapa = "NEGOCIACION"
	EtapaCerradoGanado    Etapa = "CERRADO_GANADO"
	EtapaCerradoPerdido   Etapa = "CERRADO_PERDIDO"
)

var etapasValidas = map[Etapa]bool{
	EtapaProspecto:        true,
	EtapaContactado:       true,
	EtapaPropuestaEnviada: true,
	EtapaNegociacion:      true,
	EtapaCerradoGanado:    true,
	EtapaCerradoPerdido:   true,
}

// EsValida indica si el valor pertenece al conjunto cerrado de etapas.
func (e Etapa) EsValida() bool {
	return etapasValidas[e]
}

// EsCerrada indica si la etapa corresponde a un deal ya cerrado (ganado o perdido).
func (e Etapa) EsCerrada() bool {
	return strings.HasPrefix(string(e), "CERRADO")
}
