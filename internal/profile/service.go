package profile

import (
	"log/slog"

	"github.com/adiwarna/maintenance-management/internal"
	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
)

type RepositoryAPI interface {
	GetByID(id string) (*profileDatamodel.Profile, error)
	ListByRole(role string) ([]*profileDatamodel.Profile, error)
	List() ([]*profileDatamodel.Profile, error)
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

func (s *Service) GetByID(id string) (*Profile, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get profile", "error", err, "profile_id", id)
		return nil, internal.ErrProfileNotFound
	}
	return FromDataModel(record), nil
}

// ListTechnicians returns the profiles offered in assignment pickers.
func (s *Service) ListTechnicians() ([]*Profile, error) {
	records, err := s.repo.ListByRole("technician")
	if err != nil {
		s.logger.Error("failed to list technicians", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) ListProfiles() ([]*Profile, error) {
	records, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}
