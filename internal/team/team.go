package team

import (
	"time"

	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
	"github.com/adiwarna/maintenance-management/internal/profile"
)

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Members []*Member `json:"members,omitempty"`
}

type Member struct {
	ID        string           `json:"id"`
	TeamID    string           `json:"team_id"`
	UserID    string           `json:"user_id"`
	CreatedAt time.Time        `json:"created_at"`
	Profile   *profile.Profile `json:"profile,omitempty"`
}

func FromDataModel(record *teamDatamodel.Team) *Team {
	return &Team{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func FromDataModelSlice(records []*teamDatamodel.Team) []*Team {
	result := make([]*Team, len(records))
	for i, record := range records {
		result[i] = FromDataModel(record)
	}
	return result
}

func MemberFromDataModel(record *teamDatamodel.TeamMember) *Member {
	member := &Member{
		ID:        record.ID,
		TeamID:    record.TeamID,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
	}
	if record.Profile != nil {
		member.Profile = profile.FromDataModel(record.Profile)
	}
	return member
}

func MembersFromDataModel(records []*teamDatamodel.TeamMember) []*Member {
	result := make([]*Member, len(records))
	for i, record := range records {
		result[i] = MemberFromDataModel(record)
	}
	return result
}
