package request

import (
	"time"

	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
)

// MaintenanceRequest is the central mutable entity; rows are never hard-deleted.
type MaintenanceRequest struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Subject       string     `json:"subject" gorm:"column:subject;not null"`
	Description   *string    `json:"description,omitempty" gorm:"column:description"`
	EquipmentID   string     `json:"equipment_id" gorm:"column:equipment_id;not null"`
	CategoryID    *string    `json:"category_id,omitempty" gorm:"column:category_id"`
	TeamID        *string    `json:"team_id,omitempty" gorm:"column:team_id"`
	AssignedTo    *string    `json:"assigned_to,omitempty" gorm:"column:assigned_to"`
	RequestedBy   string     `json:"requested_by" gorm:"column:requested_by;not null"`
	RequestType   string     `json:"request_type" gorm:"column:request_type;default:corrective"`
	Stage         string     `json:"stage" gorm:"column:stage;default:new"`
	Priority      string     `json:"priority" gorm:"column:priority;default:medium"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty" gorm:"column:scheduled_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty" gorm:"column:completed_date"`
	DurationHours *float64   `json:"duration_hours,omitempty" gorm:"column:duration_hours"`
	Notes         *string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at;default:now()"`

	Equipment        *equipmentDatamodel.Equipment         `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;references:ID"`
	Category         *equipmentDatamodel.EquipmentCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Team             *teamDatamodel.Team                   `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
	AssignedProfile  *profileDatamodel.Profile             `json:"assigned_profile,omitempty" gorm:"foreignKey:AssignedTo;references:ID"`
	RequesterProfile *profileDatamodel.Profile             `json:"requester_profile,omitempty" gorm:"foreignKey:RequestedBy;references:ID"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
