package equipment

import (
	"time"

	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
)

type EquipmentCategory struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description *string   `json:"description,omitempty" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (EquipmentCategory) TableName() string {
	return "equipment_categories"
}

type Equipment struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	Name                 string    `json:"name" gorm:"column:name;not null"`
	SerialNumber         *string   `json:"serial_number,omitempty" gorm:"column:serial_number"`
	CategoryID           *string   `json:"category_id,omitempty" gorm:"column:category_id"`
	TeamID               *string   `json:"team_id,omitempty" gorm:"column:team_id"`
	AssignedTechnicianID *string   `json:"assigned_technician_id,omitempty" gorm:"column:assigned_technician_id"`
	Department           *string   `json:"department,omitempty" gorm:"column:department"`
	AssignedEmployee     *string   `json:"assigned_employee,omitempty" gorm:"column:assigned_employee"`
	PurchaseDate         *time.Time `json:"purchase_date,omitempty" gorm:"column:purchase_date;type:date"`
	WarrantyExpiry       *time.Time `json:"warranty_expiry,omitempty" gorm:"column:warranty_expiry;type:date"`
	Location             *string   `json:"location,omitempty" gorm:"column:location"`
	Status               string    `json:"status" gorm:"column:status;default:active"`
	Notes                *string   `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`

	Category           *EquipmentCategory        `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Team               *teamDatamodel.Team       `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
	AssignedTechnician *profileDatamodel.Profile `json:"assigned_technician,omitempty" gorm:"foreignKey:AssignedTechnicianID;references:ID"`
}

func (Equipment) TableName() string {
	return "equipment"
}
