package cotizacion

import (
	"errors"
	"fmt"
	"time"

	"github.com/NexoCRM/api-crm/internal/deal"
	"gorm.io/gorm"
)

// Service implementa el núcleo de cotizaciones: numeración, totales, ciclo
// de vida y sincronización de etapa del deal. Toda mutación corre dentro de
// una transacción: el cambio de estado y la etapa del deal se confirman
// juntos o ninguno.
type Service struct {
	DB    *gorm.DB
	Repo  Repository
	Deals deal.Repository

	// Ahora se captura una sola vez por operación y se usa para enviadaEn,
	// cerradoEn y el año del número. Reemplazable en pruebas.
	Ahora func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:    db,
		Repo:  NewRepository(),
		Deals: deal.NewRepository(),
		Ahora: time.Now,
	}
}

func errAlmacenamiento(err error) error {
	return fmt.Errorf("%w: %v", ErrAlmacenamiento, err)
}

func mapearBusqueda(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrada
	}
	return errAlmacenamiento(err)
}

// Crear valida los ítems, asigna el siguiente número COT-<año>-<seq> del
// usuario y persiste la cotización en BORRADOR, todo en una transacción.
func (s *Service) Crear(usuarioID uint, req CrearRequest) (*Cotizacion, error) {
	tasa := TasaImpuestoPorDefecto
	if req.TasaImpuesto != nil {
		tasa = *req.TasaImpuesto
	}

	totales, items, err := CalcularTotales(req.Items, tasa)
	if err != nil {
		return nil, err
	}

	ahora := s.Ahora()
	var c *Cotizacion
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// El deal debe existir y pertenecer al usuario.
		if _, err := s.Deals.BuscarPorIDYUsuario(tx, req.DealID, usuarioID); err != nil {
			return mapearBusqueda(err)
		}

		secuencia, err := s.Repo.SiguienteNumero(tx, usuarioID, ahora.Year())
		if err != nil {
			return errAlmacenamiento(err)
		}

		c = &Cotizacion{
			DealID:       req.DealID,
			Numero:       FormatearNumero(ahora.Year(), secuencia),
			Estado:       EstadoBorrador,
			Items:        items,
			Subtotal:     totales.Subtotal,
			Impuesto:     totales.Impuesto,
			Total:        totales.Total,
			TasaImpuesto: tasa,
			ValidaHasta:  req.ValidaHasta,
			Notas:        req.Notas,
		}
		if err := s.Repo.Crear(tx, c); err != nil {
			return errAlmacenamiento(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completa, err := s.Repo.BuscarPorIDYUsuario(s.DB, c.ID, usuarioID); err == nil {
		return completa, nil
	}
	return c, nil
}

// Actualizar edita ítems, tasa, vigencia o notas de una cotización en
// BORRADOR y recalcula los totales sobre el resultado final.
func (s *Service) Actualizar(usuarioID, id uint, req ActualizarRequest) (*Cotizacion, error) {
	var c *Cotizacion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		c, err = s.Repo.BuscarPorIDYUsuario(tx, id, usuarioID)
		if err != nil {
			return mapearBusqueda(err)
		}
		if c.Estado != EstadoBorrador {
			return fmt.Errorf("%w: estado actual %s", ErrEstadoInmutable, c.Estado)
		}

		items := c.Items
		if req.Items != nil {
			items = req.Items
		}
		tasa := c.TasaImpuesto
		if req.TasaImpuesto != nil {
			tasa = *req.TasaImpuesto
		}

		totales, procesados, err := CalcularTotales(items, tasa)
		if err != nil {
			return err
		}

		c.Items = procesados
		c.TasaImpuesto = tasa
		c.Subtotal = totales.Subtotal
		c.Impuesto = totales.Impuesto
		c.Total = totales.Total
		if req.ValidaHasta != nil {
			c.ValidaHasta = req.ValidaHasta
		}
		if req.Notas != nil {
			c.Notas = *req.Notas
		}

		if err := s.Repo.Guardar(tx, c); err != nil {
			return errAlmacenamiento(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CambiarEstado aplica una transición del ciclo de vida y, si corresponde,
// la mutación de etapa del deal, en la misma transacción.
func (s *Service) CambiarEstado(usuarioID, id uint, destino Estado) (*Cotizacion, error) {
	if !destino.EsValido() {
		return nil, fmt.Errorf("%w: estado desconocido %q", ErrValidacion, destino)
	}

	ahora := s.Ahora()
	var c *Cotizacion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		c, err = s.Repo.BuscarPorIDYUsuario(tx, id, usuarioID)
		if err != nil {
			return mapearBusqueda(err)
		}

		if !PuedeTransicionar(c.Estado, destino) {
			return fmt.Errorf("%w: %s → %s", ErrTransicionInvalida, c.Estado, destino)
		}

		c.Estado = destino
		// enviadaEn se fija exactamente una vez, en la primera entrada a
		// ENVIADA; las transiciones posteriores no la tocan.
		if destino == EstadoEnviada && c.EnviadaEn == nil {
			c.EnviadaEn = &ahora
		}
		if err := s.Repo.Guardar(tx, c); err != nil {
			return errAlmacenamiento(err)
		}

		// Sincronización de etapa: la etapa destino se fija incondicional
		// (último gana), sin mirar la etapa actual del deal.
		switch destino {
		case EstadoEnviada:
			return s.sincronizarDeal(tx, c.DealID, usuarioID, deal.EtapaPropuestaEnviada, nil)
		case EstadoAceptada:
			return s.sincronizarDeal(tx, c.DealID, usuarioID, deal.EtapaCerradoGanado, &ahora)
		}
		// RECHAZADA no muta el deal.
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completa, err := s.Repo.BuscarPorIDYUsuario(s.DB, c.ID, usuarioID); err == nil {
		return completa, nil
	}
	return c, nil
}

func (s *Service) sincronizarDeal(tx *gorm.DB, dealID, usuarioID uint, etapa deal.Etapa, cerradoEn *time.Time) error {
	filas, err := s.Deals.CambiarEtapa(tx, dealID, usuarioID, etapa, cerradoEn)
	if err != nil {
		return errAlmacenamiento(err)
	}
	// Re-chequeo de propiedad al momento de mutar: 0 filas aborta la
	// transacción completa, incluido el cambio de estado ya escrito.
	if filas == 0 {
		return ErrNoEncontrada
	}
	return nil
}

// Eliminar borra una cotización, permitido solo en BORRADOR.
func (s *Service) Eliminar(usuarioID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.Repo.BuscarPorIDYUsuario(tx, id, usuarioID)
		if err != nil {
			return mapearBusqueda(err)
		}
		if c.Estado != EstadoBorrador {
			return fmt.Errorf("%w: estado actual %s", ErrEstadoInmutable, c.Estado)
		}
		if err := s.Repo.Eliminar(tx, c.ID); err != nil {
			return errAlmacenamiento(err)
		}
		return nil
	})
}

// Listar devuelve las cotizaciones del usuario, con filtros opcionales.
func (s *Service) Listar(usuarioID uint, filtro Filtro) ([]Cotizacion, error) {
	list, err := s.Repo.ListarPorUsuario(s.DB, usuarioID, filtro)
	if err != nil {
		return nil, errAlmacenamiento(err)
	}
	return list, nil
}

// BuscarPorID devuelve el detalle de una cotización del usuario.
func (s *Service) BuscarPorID(usuarioID, id uint) (*Cotizacion, error) {
	c, err := s.Repo.BuscarPorIDYUsuario(s.DB, id, usuarioID)
	if err != nil {
		return nil, mapearBusqueda(err)
	}
	return c, nil
}
