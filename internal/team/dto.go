package team

import (
	"github.com/adiwarna/maintenance-management/internal/core/common/validation"
)

type CreateTeamDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (dto CreateTeamDTO) Validate() error {
	if err := validation.ValidateName("name", dto.Name); err != nil {
		return err
	}
	return nil
}

type UpdateTeamDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (dto UpdateTeamDTO) Validate() error {
	if err := validation.ValidateName("name", dto.Name); err != nil {
		return err
	}
	return nil
}

type AddMemberDTO struct {
	UserID string `json:"user_id"`
}

func (dto AddMemberDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("user_id", dto.UserID).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
