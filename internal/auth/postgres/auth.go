package postgres

import (
	"github.com/adiwarna/maintenance-management/internal/auth"
	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmail(email string) (*profileDatamodel.Profile, error) {
	var record profileDatamodel.Profile
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AuthRepository) GetByID(id string) (*profileDatamodel.Profile, error) {
	var record profileDatamodel.Profile
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
