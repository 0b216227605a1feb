package deal

import (
	"time"

	"github.com/NexoCRM/api-crm/internal/contacto"
	"github.com/NexoCRM/api-crm/internal/empresa"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deal representa una oportunidad de venta en el pipeline del usuario.
type Deal struct {
	gorm.Model
	Titulo              string          `gorm:"size:200;not null" json:"title"`
	Valor               decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"value"`
	Etapa               Etapa           `gorm:"size:30;not null;default:'PROSPECTO';index" json:"stage"`
	ContactoID          *uint           `gorm:"index" json:"contactId,omitempty"`
	EmpresaID           *uint           `gorm:"index" json:"companyId,omitempty"`
	UsuarioID           uint            `gorm:"not null;index" json:"userId"`
	FechaCierreEsperada *time.Time      `json:"expectedCloseDate,omitempty"`
	CerradoEn           *time.Time      `json:"closedAt,omitempty"`

	Contacto *contacto.Contacto `gorm:"foreignKey:ContactoID;constraint:OnDelete:SET NULL" json:"contact,omitempty"`
	Empresa  *empresa.Empresa   `gorm:"foreignKey:EmpresaID;constraint:OnDelete:SET NULL" json:"company,omitempty"`
}

func (Deal) TableName() string { return "deals" }
