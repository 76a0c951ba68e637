package request

import (
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	"github.com/adiwarna/maintenance-management/internal/core/common/validation"
)

type CreateRequestDTO struct {
	Subject       string     `json:"subject"`
	Description   *string    `json:"description,omitempty"`
	EquipmentID   string     `json:"equipment_id"`
	CategoryID    *string    `json:"category_id,omitempty"`
	TeamID        *string    `json:"team_id,omitempty"`
	AssignedTo    *string    `json:"assigned_to,omitempty"`
	RequestType   string     `json:"request_type,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func (dto CreateRequestDTO) Validate() error {
	if err := validation.ValidateSubject(dto.Subject); err != nil {
		return err
	}

	validator := validation.NewValidator()
	validator.Field("equipment_id", dto.EquipmentID).Required()
	if err := validator.Validate(); err != nil {
		return err
	}

	if dto.RequestType != "" && !RequestType(dto.RequestType).Valid() {
		return internal.NewValidationError("request_type must be one of corrective, preventive", internal.ErrCodeInvalidType)
	}
	if dto.Priority != "" && !Priority(dto.Priority).Valid() {
		return internal.NewValidationError("priority must be one of low, medium, high, urgent", internal.ErrCodeInvalidPriority)
	}
	return nil
}

type TransitionDTO struct {
	Stage         string   `json:"stage"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

func (dto TransitionDTO) Validate() error {
	if !Stage(dto.Stage).Valid() {
		return internal.NewValidationError("stage must be one of new, in_progress, repaired, scrap", internal.ErrCodeInvalidStage)
	}
	if dto.DurationHours != nil && *dto.DurationHours < 0 {
		return internal.NewValidationError("duration_hours must not be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

type AssignDTO struct {
	AssignedTo *string `json:"assigned_to"`
}
