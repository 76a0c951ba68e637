package equipment

import (
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	"github.com/adiwarna/maintenance-management/internal/core/common/validation"
)

type CreateEquipmentDTO struct {
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
	Status               string     `json:"status,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
}

func (dto CreateEquipmentDTO) Validate() error {
	if err := validation.ValidateName("name", dto.Name); err != nil {
		return err
	}
	if dto.Status != "" && !Status(dto.Status).Valid() {
		return internal.NewValidationError("status must be one of active, maintenance, scrapped", internal.ErrCodeInvalidStatus)
	}
	return nil
}

type UpdateEquipmentDTO struct {
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
	Status               string     `json:"status"`
	Notes                *string    `json:"notes,omitempty"`
}

func (dto UpdateEquipmentDTO) Validate() error {
	if err := validation.ValidateName("name", dto.Name); err != nil {
		return err
	}
	if !Status(dto.Status).Valid() {
		return internal.NewValidationError("status must be one of active, maintenance, scrapped", internal.ErrCodeInvalidStatus)
	}
	return nil
}

type CreateCategoryDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (dto CreateCategoryDTO) Validate() error {
	if err := validation.ValidateName("name", dto.Name); err != nil {
		return err
	}
	return nil
}
