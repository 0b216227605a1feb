package deal

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, d *Deal) error
	ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Deal, error)
	BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Deal, error)
	Actualizar(db *gorm.DB, d *Deal) error
	CambiarEtapa(db *gorm.DB, id, usuarioID uint, etapa Etapa, cerradoEn *time.Time) (int64, error)
	Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Deal) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarPorUsuario(db *gorm.DB, usuarioID uint) ([]Deal, error) {
	var list []Deal
	err := db.
		Where("usuario_id = ?", usuarioID).
		Preload("Contacto").
		Preload("Empresa").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorIDYUsuario(db *gorm.DB, id, usuarioID uint) (*Deal, error) {
	var d Deal
	err := db.
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Preload("Contacto").
		Preload("Empresa").
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, d *Deal) error {
	return db.Save(d).Error
}

// CambiarEtapa fija la etapa (y cerradoEn si aplica) en un solo UPDATE
// condicionado a la propiedad del usuario. Devuelve filas afectadas: 0
// significa que el deal no existe o no pertenece al usuario.
func (r *repositoryImpl) CambiarEtapa(db *gorm.DB, id, usuarioID uint, etapa Etapa, cerradoEn *time.Time) (int64, error) {
	valores := map[string]interface{}{"etapa": etapa}
	if cerradoEn != nil {
		valores["cerrado_en"] = *cerradoEn
	}
	res := db.Model(&Deal{}).
		Where("id = ? AND usuario_id = ?", id, usuarioID).
		Updates(valores)
	return res.RowsAffected, res.Error
}

// Eliminar borra el deal solo si pertenece al usuario; devuelve filas afectadas.
func (r *repositoryImpl) Eliminar(db *gorm.DB, id, usuarioID uint) (int64, error) {
	res := db.Where("id = ? AND usuario_id = ?", id, usuarioID).Delete(&Deal{})
	return res.RowsAffected, res.Error
}
