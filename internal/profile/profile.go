package profile

import (
	"time"

	"github.com/adiwarna/maintenance-management/internal/auth"
	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
)

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      auth.Role `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) CanManage() bool {
	return p.Role.CanManage()
}

// DisplayName prefers the full name and falls back to the email.
func (p *Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}

func FromDataModel(record *profileDatamodel.Profile) *Profile {
	return &Profile{
		ID:        record.ID,
		Email:     record.Email,
		FullName:  record.FullName,
		AvatarURL: record.AvatarURL,
		Role:      auth.Role(record.Role),
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func FromDataModelSlice(records []*profileDatamodel.Profile) []*Profile {
	result := make([]*Profile, len(records))
	for i, record := range records {
		result[i] = FromDataModel(record)
	}
	return result
}
