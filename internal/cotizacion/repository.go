package cotizacion

import "gorm.io/gorm"

// Filtro restringe el listado de cotizaciones.
type Filtro struct {
	DealID *uint
	Estado *Estado
}

type Repository interface {
	Crear(db *gorm.DB, c *Cotizacion) error
	ListarPorUsuario(db *gorm.DB, usuarioID uint, filtro Filtro) ([]Cotizacion, error)
	BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Cotizacion, error)
	Guardar(db *gorm.DB, c *Cotizacion) error
	Eliminar(db *gorm.DB, id uint) error
	SiguienteNumero(db *gorm.DB, usuarioID uint, anio int) (int, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, c *Cotizacion) error {
	return db.Create(c).Error
}

// La propiedad siempre se resuelve vía el deal dueño: toda lectura y
// escritura va con JOIN sobre deals.usuario_id, nunca por id de cotización
// a secas.
func conPropietario(db *gorm.DB, usuarioID uint) *gorm.DB {
	return db.
		Joins("JOIN deals ON deals.id = cotizaciones.deal_id AND deals.deleted_at IS NULL").
		Where("deals.usuario_id = ?", usuarioID)
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint, filtro Filtro) ([]Cotizacion, error) {
	q := conPropietario(db.Model(&Cotizacion{}), usuarioID)
	if filtro.DealID != nil {
		q = q.Where("cotizaciones.deal_id = ?", *filtro.DealID)
	}
	if filtro.Estado != nil {
		q = q.Where("cotizaciones.estado = ?", *filtro.Estado)
	}

	var list []Cotizacion
	err := q.
		Preload("Deal").
		Preload("Deal.Contacto").
		Preload("Deal.Empresa").
		Order("cotizaciones.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Cotizacion, error) {
	var c Cotizacion
	err := conPropietario(db, usuarioID).
		Where("cotizaciones.id = ?", id).
		Preload("Deal").
		Preload("Deal.Contacto").
		Preload("Deal.Empresa").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Guardar(db *gorm.DB, c *Cotizacion) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&Cotizacion{}, id).Error
}

// SiguienteNumero asigna la próxima secuencia para (usuario, año) con un
// incremento atómico sobre la fila del contador. Debe llamarse dentro de la
// transacción que crea la cotización: así dos creaciones concurrentes nunca
// observan el mismo valor.
func (r *repositoryImpl) SiguienteNumero(db *gorm.DB, usuarioID uint, anio int) (int, error) {
	if err := db.Exec(
		`INSERT INTO contadores_cotizacion (usuario_id, anio, ultimo) VALUES (?, ?, 0)
		 ON CONFLICT (usuario_id, anio) DO NOTHING`,
		usuarioID, anio,
	).Error; err != nil {
		return 0, err
	}

	var siguiente int
	err := db.Raw(
		`UPDATE contadores_cotizacion SET ultimo = ultimo + 1
		 WHERE usuario_id = ? AND anio = ?
		 RETURNING ultimo`,
		usuarioID, anio,
	).Scan(&siguiente).Error
	return siguiente, err
}
