package postgres

import (
	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
	"github.com/adiwarna/maintenance-management/internal/profile"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) profile.RepositoryAPI {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(id string) (*profileDatamodel.Profile, error) {
	var record profileDatamodel.Profile
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ProfileRepository) ListByRole(role string) ([]*profileDatamodel.Profile, error) {
	var records []*profileDatamodel.Profile
	err := r.db.Where("role = ? AND is_active = ?", role, true).
		Order("full_name ASC").
		Find(&records).Error
	return records, err
}

func (r *ProfileRepository) List() ([]*profileDatamodel.Profile, error) {
	var records []*profileDatamodel.Profile
	err := r.db.Order("full_name ASC").Find(&records).Error
	return records, err
}
