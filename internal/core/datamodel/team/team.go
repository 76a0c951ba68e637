package team

import (
	"time"

	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
)

type Team struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description *string   `json:"description,omitempty" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember joins a team and a profile; unique per (team_id, user_id).
type TeamMember struct {
	ID        string                   `json:"id" gorm:"primaryKey"`
	TeamID    string                   `json:"team_id" gorm:"column:team_id;uniqueIndex:idx_team_members_team_user;not null"`
	UserID    string                   `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_team_members_team_user;not null"`
	CreatedAt time.Time                `json:"created_at" gorm:"column:created_at;default:now()"`
	Profile   *profileDatamodel.Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Team      *Team                    `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
