package empresa

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, e *Empresa) error
	ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Empresa, error)
	BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Empresa, error)
	Actualizar(db *gorm.DB, e *Empresa) error
	Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Empresa, error) {
	var list []Empresa
	err := db.
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Empresa, error) {
	var e Empresa
	err := db.Where("id = ? AND usuario_id = ?", id, usuarioID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

// Eliminar borra la empresa solo si pertenece al usuario; devuelve filas afectadas.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error) {
	res := db.Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&Empresa{})
	return res.RowsAffected, res.Error
}
