package empresa

import "gorm.io/gorm"

// Empresa representa una organización asociada a contactos y deals del usuario.
type Empresa struct {
	gorm.Model
	Nombre    string `gorm:"size:150;not null" json:"name"`
	Industria string `gorm:"size:100" json:"industry,omitempty"`
	SitioWeb  string `gorm:"size:255" json:"website,omitempty"`
	Telefono  string `gorm:"size:30" json:"phone,omitempty"`
	UsuarioID uint   `gorm:"not null;index" json:"userId"`
}

func (Empresa) TableName() string { return "empresas" }
