package profile

import (
	"time"
)

// Profile is the identity record created on account signup.
type Profile struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	FullName     *string   `json:"full_name,omitempty" gorm:"column:full_name"`
	AvatarURL    *string   `json:"avatar_url,omitempty" gorm:"column:avatar_url"`
	Role         string    `json:"role" gorm:"column:role;default:technician"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Profile) TableName() string {
	return "profiles"
}
