package postgres

import (
	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
	"github.com/adiwarna/maintenance-management/internal/team"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.RepositoryAPI {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(record *teamDatamodel.Team) error {
	return r.db.Create(record).Error
}

func (r *TeamRepository) GetByID(id string) (*teamDatamodel.Team, error) {
	var record teamDatamodel.Team
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TeamRepository) List() ([]*teamDatamodel.Team, error) {
	var records []*teamDatamodel.Team
	err := r.db.Order("name ASC").Find(&records).Error
	return records, err
}

func (r *TeamRepository) Update(record *teamDatamodel.Team) error {
	return r.db.Save(record).Error
}

// Delete is a hard delete; membership rows go with the team.
func (r *TeamRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&teamDatamodel.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&teamDatamodel.Team{}).Error
	})
}

func (r *TeamRepository) AddMember(record *teamDatamodel.TeamMember) error {
	return r.db.Create(record).Error
}

func (r *TeamRepository) GetMember(teamID, userID string) (*teamDatamodel.TeamMember, error) {
	var record teamDatamodel.TeamMember
	err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TeamRepository) ListMembers(teamID string) ([]*teamDatamodel.TeamMember, error) {
	var records []*teamDatamodel.TeamMember
	err := r.db.Where("team_id = ?", teamID).
		Preload("Profile").
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *TeamRepository) RemoveMember(teamID, userID string) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&teamDatamodel.TeamMember{}).Error
}
