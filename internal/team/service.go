package team

import (
	"log/slog"
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	Create(record *teamDatamodel.Team) error
	GetByID(id string) (*teamDatamodel.Team, error)
	List() ([]*teamDatamodel.Team, error)
	Update(record *teamDatamodel.Team) error
	Delete(id string) error

	AddMember(record *teamDatamodel.TeamMember) error
	GetMember(teamID, userID string) (*teamDatamodel.TeamMember, error)
	ListMembers(teamID string) ([]*teamDatamodel.TeamMember, error)
	RemoveMember(teamID, userID string) error
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

func (s *Service) CreateTeam(dto CreateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("team validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	record := &teamDatamodel.Team{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create team", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("team created", "team_id", record.ID, "name", record.Name)
	return FromDataModel(record), nil
}

func (s *Service) GetTeam(id string) (*Team, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get team", "error", err, "team_id", id)
		return nil, internal.ErrTeamNotFound
	}

	team := FromDataModel(record)

	members, err := s.repo.ListMembers(id)
	if err != nil {
		s.logger.Error("failed to list team members", "error", err, "team_id", id)
		return nil, err
	}
	team.Members = MembersFromDataModel(members)

	return team, nil
}

func (s *Service) ListTeams() ([]*Team, error) {
	records, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list teams", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) UpdateTeam(id string, dto UpdateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrTeamNotFound
	}

	record.Name = dto.Name
	record.Description = dto.Description
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update team", "error", err, "team_id", id)
		return nil, err
	}

	return FromDataModel(record), nil
}

// DeleteTeam is a hard delete; members are removed with the team.
func (s *Service) DeleteTeam(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return internal.ErrTeamNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete team", "error", err, "team_id", id)
		return err
	}

	s.logger.Info("team deleted", "team_id", id)
	return nil
}

// AddMember enforces (team, user) uniqueness in the core in addition to the
// store's unique index, so duplicates surface as a conflict rather than a
// driver error.
func (s *Service) AddMember(teamID string, dto AddMemberDTO) (*Member, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, internal.ErrTeamNotFound
	}

	if existing, err := s.repo.GetMember(teamID, dto.UserID); err == nil && existing != nil {
		s.logger.Warn("member already on team", "team_id", teamID, "user_id", dto.UserID)
		return nil, internal.ErrMemberAlreadyExists
	}

	record := &teamDatamodel.TeamMember{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		UserID:    dto.UserID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.AddMember(record); err != nil {
		s.logger.Error("failed to add team member", "error", err, "team_id", teamID, "user_id", dto.UserID)
		return nil, err
	}

	s.logger.Info("team member added", "team_id", teamID, "user_id", dto.UserID)
	return MemberFromDataModel(record), nil
}

func (s *Service) RemoveMember(teamID, userID string) error {
	member, err := s.repo.GetMember(teamID, userID)
	if err != nil || member == nil {
		return internal.ErrMemberNotFound
	}

	if err := s.repo.RemoveMember(teamID, userID); err != nil {
		s.logger.Error("failed to remove team member", "error", err, "team_id", teamID, "user_id", userID)
		return err
	}

	s.logger.Info("team member removed", "team_id", teamID, "user_id", userID)
	return nil
}
