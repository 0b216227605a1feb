package usuario

import "gorm.io/gorm"

// Usuario es el freelancer dueño de sus contactos, empresas, deals y cotizaciones.
type Usuario struct {
	gorm.Model
	Nombre   string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }
