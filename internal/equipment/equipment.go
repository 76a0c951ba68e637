package equipment

import (
	"time"

	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
)

// Status is the equipment lifecycle status.
type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusScrapped    Status = "scrapped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusScrapped:
		return true
	}
	return false
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Equipment is a physical asset. Its category, team and assigned technician
// act as the template copied onto new maintenance requests.
type Equipment struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	SerialNumber         *string    `json:"serial_number,omitempty"`
	CategoryID           *string    `json:"category_id,omitempty"`
	TeamID               *string    `json:"team_id,omitempty"`
	AssignedTechnicianID *string    `json:"assigned_technician_id,omitempty"`
	Department           *string    `json:"department,omitempty"`
	AssignedEmployee     *string    `json:"assigned_employee,omitempty"`
	PurchaseDate         *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpiry       *time.Time `json:"warranty_expiry,omitempty"`
	Location             *string    `json:"location,omitempty"`
	Status               Status     `json:"status"`
	Notes                *string    `json:"notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	CategoryName *string `json:"category_name,omitempty"`
	TeamName     *string `json:"team_name,omitempty"`
}

func CategoryFromDataModel(record *equipmentDatamodel.EquipmentCategory) *Category {
	return &Category{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}

func CategoriesFromDataModel(records []*equipmentDatamodel.EquipmentCategory) []*Category {
	result := make([]*Category, len(records))
	for i, record := range records {
		result[i] = CategoryFromDataModel(record)
	}
	return result
}

func FromDataModel(record *equipmentDatamodel.Equipment) *Equipment {
	eq := &Equipment{
		ID:                   record.ID,
		Name:                 record.Name,
		SerialNumber:         record.SerialNumber,
		CategoryID:           record.CategoryID,
		TeamID:               record.TeamID,
		AssignedTechnicianID: record.AssignedTechnicianID,
		Department:           record.Department,
		AssignedEmployee:     record.AssignedEmployee,
		PurchaseDate:         record.PurchaseDate,
		WarrantyExpiry:       record.WarrantyExpiry,
		Location:             record.Location,
		Status:               Status(record.Status),
		Notes:                record.Notes,
		CreatedAt:            record.CreatedAt,
		UpdatedAt:            record.UpdatedAt,
	}
	if record.Category != nil {
		eq.CategoryName = &record.Category.Name
	}
	if record.Team != nil {
		eq.TeamName = &record.Team.Name
	}
	return eq
}

func FromDataModelSlice(records []*equipmentDatamodel.Equipment) []*Equipment {
	result := make([]*Equipment, len(records))
	for i, record := range records {
		result[i] = FromDataModel(record)
	}
	return result
}
