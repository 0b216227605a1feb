package contacto

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Contacto) error
	ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Contacto, error)
	BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Contacto, error)
	Actualizar(db *gorm.DB, c *Contacto) error
	Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Contacto) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Contacto, error) {
	var list []Contacto
	err := db.
		Where("usuario_id = ?", usuarioID).
		Preload("Empresa").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Contacto, error) {
	var c Contacto
	err := db.
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Preload("Empresa").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, c *Contacto) error {
	return db.Save(c).Error
}

// Eliminar borra el contacto solo si pertenece al usuario; devuelve filas afectadas.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error) {
	res := db.Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&Contacto{})
	return res.RowsAffected, res.Error
}
