package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	"github.com/adiwarna/maintenance-management/internal/auth"
	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	requestDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/request"
	"github.com/adiwarna/maintenance-management/internal/core/events"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	Create(record *requestDatamodel.MaintenanceRequest) error
	GetByID(id string) (*requestDatamodel.MaintenanceRequest, error)
	List(stage string) ([]*requestDatamodel.MaintenanceRequest, error)
	Update(record *requestDatamodel.MaintenanceRequest) error
}

// EquipmentGetter is the slice of the equipment repository the request
// service needs for default resolution.
type EquipmentGetter interface {
	GetByID(id string) (*equipmentDatamodel.Equipment, error)
}

type Service struct {
	repo      RepositoryAPI
	equipment EquipmentGetter
	bus       *events.EventBus
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo RepositoryAPI, equipment EquipmentGetter, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		equipment: equipment,
		bus:       bus,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateRequest builds a new request in stage "new". Category, team and
// assignee left empty by the submitter are copied from the equipment.
func (s *Service) CreateRequest(actor *auth.User, dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err)
		return nil, err
	}

	eq, err := s.equipment.GetByID(dto.EquipmentID)
	if err != nil {
		s.logger.Error("equipment lookup failed", "error", err, "equipment_id", dto.EquipmentID)
		return nil, internal.ErrEquipmentNotFound
	}

	defaults := DefaultsFromEquipment(eq, dto.CategoryID, dto.TeamID, dto.AssignedTo)

	requestType := dto.RequestType
	if requestType == "" {
		requestType = string(TypeCorrective)
	}
	priority := dto.Priority
	if priority == "" {
		priority = string(PriorityMedium)
	}

	now := s.now()
	record := &requestDatamodel.MaintenanceRequest{
		ID:            uuid.NewString(),
		Subject:       dto.Subject,
		Description:   dto.Description,
		EquipmentID:   dto.EquipmentID,
		CategoryID:    defaults.CategoryID,
		TeamID:        defaults.TeamID,
		AssignedTo:    defaults.AssignedTo,
		RequestedBy:   actor.ID,
		RequestType:   requestType,
		Stage:         string(StageNew),
		Priority:      priority,
		ScheduledDate: dto.ScheduledDate,
		Notes:         dto.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create maintenance request", "error", err, "subject", dto.Subject)
		return nil, err
	}

	s.logger.Info("maintenance request created",
		"request_id", record.ID,
		"equipment_id", record.EquipmentID,
		"requested_by", actor.ID)

	stored, err := s.repo.GetByID(record.ID)
	if err != nil {
		return FromDataModel(record, now), nil
	}
	return FromDataModel(stored, now), nil
}

func (s *Service) GetRequest(id string) (*Request, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get maintenance request", "error", err, "request_id", id)
		return nil, internal.ErrRequestNotFound
	}
	return FromDataModel(record, s.now()), nil
}

func (s *Service) ListRequests(stage string) ([]*Request, error) {
	if stage != "" && !Stage(stage).Valid() {
		return nil, internal.NewValidationError("stage must be one of new, in_progress, repaired, scrap", internal.ErrCodeInvalidStage)
	}

	records, err := s.repo.List(stage)
	if err != nil {
		s.logger.Error("failed to list maintenance requests", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records, s.now()), nil
}

// Transition moves a request to a new stage. Only a manager-level actor or
// the assigned technician may transition; reaching "repaired" stamps the
// completion date.
func (s *Service) Transition(ctx context.Context, actor *auth.User, id string, dto TransitionDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrRequestNotFound
	}

	if !actor.CanManage() && (record.AssignedTo == nil || *record.AssignedTo != actor.ID) {
		s.logger.Warn("stage transition denied",
			"request_id", id,
			"actor_id", actor.ID,
			"actor_role", actor.Role)
		return nil, internal.ErrUnauthorizedAccess
	}

	from := Stage(record.Stage)
	target := Stage(dto.Stage)
	if !from.CanTransitionTo(target) {
		return nil, internal.ErrStageNotAllowed
	}

	now := s.now()
	record.Stage = string(target)
	if target == StageRepaired {
		record.CompletedDate = &now
	}
	if dto.DurationHours != nil {
		record.DurationHours = dto.DurationHours
	}
	if dto.Notes != nil {
		record.Notes = dto.Notes
	}
	record.UpdatedAt = now

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update maintenance request stage", "error", err, "request_id", id)
		return nil, err
	}

	if s.bus != nil {
		event := events.NewRequestStageChanged(record.ID, string(from), string(target), actor.ID)
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish stage change event", "error", err, "request_id", id)
		}
	}

	s.logger.Info("maintenance request stage changed",
		"request_id", id,
		"from_stage", from,
		"to_stage", target,
		"actor_id", actor.ID)

	stored, err := s.repo.GetByID(record.ID)
	if err != nil {
		return FromDataModel(record, now), nil
	}
	return FromDataModel(stored, now), nil
}

// Assign sets or clears the assigned technician. Manager-level only.
func (s *Service) Assign(actor *auth.User, id string, dto AssignDTO) (*Request, error) {
	if !actor.CanManage() {
		s.logger.Warn("assignment denied", "request_id", id, "actor_id", actor.ID, "actor_role", actor.Role)
		return nil, internal.ErrUnauthorizedAccess
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrRequestNotFound
	}

	now := s.now()
	record.AssignedTo = dto.AssignedTo
	record.UpdatedAt = now

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to assign maintenance request", "error", err, "request_id", id)
		return nil, err
	}

	stored, err := s.repo.GetByID(record.ID)
	if err != nil {
		return FromDataModel(record, now), nil
	}
	return FromDataModel(stored, now), nil
}
