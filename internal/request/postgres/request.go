package postgres

import (
	requestDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/request"
	"github.com/adiwarna/maintenance-management/internal/request"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) request.RepositoryAPI {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(record *requestDatamodel.MaintenanceRequest) error {
	return r.db.Create(record).Error
}

func (r *RequestRepository) GetByID(id string) (*requestDatamodel.MaintenanceRequest, error) {
	var record requestDatamodel.MaintenanceRequest
	err := r.db.Where("id = ?", id).
		Preload("Equipment").
		Preload("Category").
		Preload("Team").
		Preload("AssignedProfile").
		Preload("RequesterProfile").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RequestRepository) List(stage string) ([]*requestDatamodel.MaintenanceRequest, error) {
	query := r.db.
		Preload("Equipment").
		Preload("Category").
		Preload("Team").
		Preload("AssignedProfile").
		Preload("RequesterProfile").
		Order("created_at DESC")

	if stage != "" {
		query = query.Where("stage = ?", stage)
	}

	var records []*requestDatamodel.MaintenanceRequest
	err := query.Find(&records).Error
	return records, err
}

func (r *RequestRepository) Update(record *requestDatamodel.MaintenanceRequest) error {
	return r.db.Save(record).Error
}
