package team_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adiwarna/maintenance-management/internal"
	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
	"github.com/adiwarna/maintenance-management/internal/team"
)

func TestTeam(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Team Suite")
}

// Mock repository for testing
type mockTeamRepository struct {
	teams       map[string]*teamDatamodel.Team
	members     map[string][]*teamDatamodel.TeamMember
	createError error
	memberError error
}

func newMockTeamRepository() *mockTeamRepository {
	return &mockTeamRepository{
		teams:   make(map[string]*teamDatamodel.Team),
		members: make(map[string][]*teamDatamodel.TeamMember),
	}
}

func (m *mockTeamRepository) Create(record *teamDatamodel.Team) error {
	if m.createError != nil {
		return m.createError
	}
	m.teams[record.ID] = record
	return nil
}

func (m *mockTeamRepository) GetByID(id string) (*teamDatamodel.Team, error) {
	record, exists := m.teams[id]
	if !exists {
		return nil, errors.New("team not found")
	}
	return record, nil
}

func (m *mockTeamRepository) List() ([]*teamDatamodel.Team, error) {
	result := make([]*teamDatamodel.Team, 0, len(m.teams))
	for _, record := range m.teams {
		result = append(result, record)
	}
	return result, nil
}

func (m *mockTeamRepository) Update(record *teamDatamodel.Team) error {
	m.teams[record.ID] = record
	return nil
}

func (m *mockTeamRepository) Delete(id string) error {
	delete(m.teams, id)
	delete(m.members, id)
	return nil
}

func (m *mockTeamRepository) AddMember(record *teamDatamodel.TeamMember) error {
	if m.memberError != nil {
		return m.memberError
	}
	m.members[record.TeamID] = append(m.members[record.TeamID], record)
	return nil
}

func (m *mockTeamRepository) GetMember(teamID, userID string) (*teamDatamodel.TeamMember, error) {
	for _, member := range m.members[teamID] {
		if member.UserID == userID {
			return member, nil
		}
	}
	return nil, errors.New("member not found")
}

func (m *mockTeamRepository) ListMembers(teamID string) ([]*teamDatamodel.TeamMember, error) {
	return m.members[teamID], nil
}

func (m *mockTeamRepository) RemoveMember(teamID, userID string) error {
	remaining := make([]*teamDatamodel.TeamMember, 0)
	for _, member := range m.members[teamID] {
		if member.UserID != userID {
			remaining = append(remaining, member)
		}
	}
	m.members[teamID] = remaining
	return nil
}

var _ = Describe("TeamService", func() {
	var (
		service  *team.Service
		mockRepo *mockTeamRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockTeamRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = team.NewService(mockRepo, logger)
	})

	Describe("CreateTeam", func() {
		It("should create a team with a generated id", func() {
			result, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Mekanik"})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).ToNot(BeEmpty())
			Expect(result.Name).To(Equal("Tim Mekanik"))
		})

		It("should reject an empty name", func() {
			_, err := service.CreateTeam(team.CreateTeamDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetTeam", func() {
		It("should return the team with its members", func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Listrik"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(created.ID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())

			result, err := service.GetTeam(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Members).To(HaveLen(1))
			Expect(result.Members[0].UserID).To(Equal("u1"))
		})

		It("should return not found for an unknown id", func() {
			_, err := service.GetTeam("missing")
			Expect(err).To(Equal(internal.ErrTeamNotFound))
		})
	})

	Describe("AddMember", func() {
		var teamID string

		BeforeEach(func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Mekanik"})
			Expect(err).ToNot(HaveOccurred())
			teamID = created.ID
		})

		It("should add a member once", func() {
			member, err := service.AddMember(teamID, team.AddMemberDTO{UserID: "u1"})

			Expect(err).ToNot(HaveOccurred())
			Expect(member.TeamID).To(Equal(teamID))
			Expect(member.UserID).To(Equal("u1"))
			Expect(member.CreatedAt).To(BeTemporally("~", time.Now(), time.Second))
		})

		It("should reject a duplicate membership as a conflict", func() {
			_, err := service.AddMember(teamID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(teamID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).To(Equal(internal.ErrMemberAlreadyExists))
		})

		It("should allow the same user on different teams", func() {
			other, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Listrik"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(teamID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.AddMember(other.ID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should fail when the team does not exist", func() {
			_, err := service.AddMember("missing", team.AddMemberDTO{UserID: "u1"})
			Expect(err).To(Equal(internal.ErrTeamNotFound))
		})
	})

	Describe("RemoveMember", func() {
		var teamID string

		BeforeEach(func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Mekanik"})
			Expect(err).ToNot(HaveOccurred())
			teamID = created.ID

			_, err = service.AddMember(teamID, team.AddMemberDTO{UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should remove an existing member", func() {
			Expect(service.RemoveMember(teamID, "u1")).To(Succeed())

			result, err := service.GetTeam(teamID)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Members).To(BeEmpty())
		})

		It("should fail for a user who is not a member", func() {
			err := service.RemoveMember(teamID, "u9")
			Expect(err).To(Equal(internal.ErrMemberNotFound))
		})
	})

	Describe("DeleteTeam", func() {
		It("should hard delete the team", func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Tim Sementara"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteTeam(created.ID)).To(Succeed())

			_, err = service.GetTeam(created.ID)
			Expect(err).To(Equal(internal.ErrTeamNotFound))
		})

		It("should fail for an unknown team", func() {
			Expect(service.DeleteTeam("missing")).To(Equal(internal.ErrTeamNotFound))
		})
	})
})
