package report

import (
	"log/slog"

	"github.com/adiwarna/maintenance-management/internal/equipment"
	"github.com/adiwarna/maintenance-management/internal/request"
	"github.com/adiwarna/maintenance-management/internal/team"
)

// RequestSourceAPI is the slice of the request service the reports need.
type RequestSourceAPI interface {
	ListRequests(stage string) ([]*request.Request, error)
}

// EquipmentSourceAPI provides the equipment collection for dashboard counts.
type EquipmentSourceAPI interface {
	ListEquipment() ([]*equipment.Equipment, error)
}

// TeamSourceAPI provides the team collection for dashboard counts.
type TeamSourceAPI interface {
	ListTeams() ([]*team.Team, error)
}

type Service struct {
	requests  RequestSourceAPI
	equipment EquipmentSourceAPI
	teams     TeamSourceAPI
	logger    *slog.Logger
}

func NewService(requests RequestSourceAPI, equipment EquipmentSourceAPI, teams TeamSourceAPI, logger *slog.Logger) *Service {
	return &Service{
		requests:  requests,
		equipment: equipment,
		teams:     teams,
		logger:    logger,
	}
}

func (s *Service) Summary() (*Summary, error) {
	items, err := s.requests.ListRequests("")
	if err != nil {
		s.logger.Error("failed to load requests for summary", "error", err)
		return nil, err
	}
	summary := Summarize(items)
	return &summary, nil
}

func (s *Service) Stats() (*Stats, error) {
	items, err := s.requests.ListRequests("")
	if err != nil {
		s.logger.Error("failed to load requests for stats", "error", err)
		return nil, err
	}

	equipmentItems, err := s.equipment.ListEquipment()
	if err != nil {
		s.logger.Error("failed to load equipment for stats", "error", err)
		return nil, err
	}

	teamItems, err := s.teams.ListTeams()
	if err != nil {
		s.logger.Error("failed to load teams for stats", "error", err)
		return nil, err
	}

	stats := ComputeStats(items, len(equipmentItems), len(teamItems))
	return &stats, nil
}
