package contacto

import (
	"github.com/NexoCRM/api-crm/internal/empresa"
	"gorm.io/gorm"
)

// Contacto representa una persona del directorio del usuario,
// opcionalmente vinculada a una empresa.
type Contacto struct {
	gorm.Model
	Nombre    string `gorm:"size:100;not null" json:"firstName"`
	Apellido  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:100" json:"email,omitempty"`
	Telefono  string `gorm:"size:30" json:"phone,omitempty"`
	Cargo     string `gorm:"size:100" json:"position,omitempty"`
	EmpresaID *uint  `gorm:"index" json:"companyId,omitempty"`
	UsuarioID uint   `gorm:"not null;index" json:"userId"`

	Empresa *empresa.Empresa `gorm:"foreignKey:EmpresaID;constraint:OnDelete:SET NULL" json:"company,omitempty"`
}

func (Contacto) TableName() string { return "contactos" }
