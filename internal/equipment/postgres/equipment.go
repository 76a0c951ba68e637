package postgres

import (
	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	"github.com/adiwarna/maintenance-management/internal/equipment"
	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) equipment.RepositoryAPI {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(record *equipmentDatamodel.Equipment) error {
	return r.db.Create(record).Error
}

func (r *EquipmentRepository) GetByID(id string) (*equipmentDatamodel.Equipment, error) {
	var record equipmentDatamodel.Equipment
	err := r.db.Where("id = ?", id).
		Preload("Category").
		Preload("Team").
		Preload("AssignedTechnician").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *EquipmentRepository) List() ([]*equipmentDatamodel.Equipment, error) {
	var records []*equipmentDatamodel.Equipment
	err := r.db.Preload("Category").
		Preload("Team").
		Order("name ASC").
		Find(&records).Error
	return records, err
}

func (r *EquipmentRepository) Update(record *equipmentDatamodel.Equipment) error {
	return r.db.Save(record).Error
}

func (r *EquipmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&equipmentDatamodel.Equipment{}).Error
}

func (r *EquipmentRepository) CreateCategory(record *equipmentDatamodel.EquipmentCategory) error {
	return r.db.Create(record).Error
}

func (r *EquipmentRepository) ListCategories() ([]*equipmentDatamodel.EquipmentCategory, error) {
	var records []*equipmentDatamodel.EquipmentCategory
	err := r.db.Order("name ASC").Find(&records).Error
	return records, err
}
