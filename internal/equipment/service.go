package equipment

import (
	"log/slog"
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	Create(record *equipmentDatamodel.Equipment) error
	GetByID(id string) (*equipmentDatamodel.Equipment, error)
	List() ([]*equipmentDatamodel.Equipment, error)
	Update(record *equipmentDatamodel.Equipment) error
	Delete(id string) error

	CreateCategory(record *equipmentDatamodel.EquipmentCategory) error
	ListCategories() ([]*equipmentDatamodel.EquipmentCategory, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment validation failed", "error", err)
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = string(StatusActive)
	}

	now := time.Now()
	record := &equipmentDatamodel.Equipment{
		ID:                   uuid.NewString(),
		Name:                 dto.Name,
		SerialNumber:         dto.SerialNumber,
		CategoryID:           dto.CategoryID,
		TeamID:               dto.TeamID,
		AssignedTechnicianID: dto.AssignedTechnicianID,
		Department:           dto.Department,
		AssignedEmployee:     dto.AssignedEmployee,
		PurchaseDate:         dto.PurchaseDate,
		WarrantyExpiry:       dto.WarrantyExpiry,
		Location:             dto.Location,
		Status:               status,
		Notes:                dto.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create equipment", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("equipment created", "equipment_id", record.ID, "name", record.Name)
	return FromDataModel(record), nil
}

func (s *Service) GetEquipment(id string) (*Equipment, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get equipment", "error", err, "equipment_id", id)
		return nil, internal.ErrEquipmentNotFound
	}
	return FromDataModel(record), nil
}

func (s *Service) ListEquipment() ([]*Equipment, error) {
	records, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list equipment", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) UpdateEquipment(id string, dto UpdateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEquipmentNotFound
	}

	record.Name = dto.Name
	record.SerialNumber = dto.SerialNumber
	record.CategoryID = dto.CategoryID
	record.TeamID = dto.TeamID
	record.AssignedTechnicianID = dto.AssignedTechnicianID
	record.Department = dto.Department
	record.AssignedEmployee = dto.AssignedEmployee
	record.PurchaseDate = dto.PurchaseDate
	record.WarrantyExpiry = dto.WarrantyExpiry
	record.Location = dto.Location
	record.Status = dto.Status
	record.Notes = dto.Notes
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update equipment", "error", err, "equipment_id", id)
		return nil, err
	}

	return FromDataModel(record), nil
}

func (s *Service) DeleteEquipment(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrEquipmentNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete equipment", "error", err, "equipment_id", id)
		return err
	}

	s.logger.Info("equipment deleted", "equipment_id", id)
	return nil
}

func (s *Service) CreateCategory(dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &equipmentDatamodel.EquipmentCategory{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateCategory(record); err != nil {
		s.logger.Error("failed to create equipment category", "error", err, "name", dto.Name)
		return nil, err
	}

	return CategoryFromDataModel(record), nil
}

func (s *Service) ListCategories() ([]*Category, error) {
	records, err := s.repo.ListCategories()
	if err != nil {
		s.logger.Error("failed to list equipment categories", "error", err)
		return nil, err
	}
	return CategoriesFromDataModel(records), nil
}
