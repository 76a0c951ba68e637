package postgres

import (
	"testing"
	"time"

	teamDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/team"
	"github.com/adiwarna/maintenance-management/internal/team"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestTeamRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TeamRepository Suite")
}

type SQLiteProfile struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	FullName     *string
	Role         string `gorm:"default:technician"`
	PasswordHash string
	IsActive     bool `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SQLiteProfile) TableName() string {
	return "profiles"
}

type SQLiteTeam struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SQLiteTeam) TableName() string {
	return "teams"
}

type SQLiteTeamMember struct {
	ID        string `gorm:"primaryKey"`
	TeamID    string `gorm:"column:team_id;uniqueIndex:idx_team_members_team_user;not null"`
	UserID    string `gorm:"column:user_id;uniqueIndex:idx_team_members_team_user;not null"`
	CreatedAt time.Time
}

func (SQLiteTeamMember) TableName() string {
	return "team_members"
}

var _ = Describe("TeamRepository", func() {
	var (
		db   *gorm.DB
		repo team.RepositoryAPI
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteProfile{}, &SQLiteTeam{}, &SQLiteTeamMember{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewTeamRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	newTeam := func(id, name string) *teamDatamodel.Team {
		now := time.Now()
		return &teamDatamodel.Team{
			ID:        id,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	Describe("Create and GetByID", func() {
		It("should round-trip a team", func() {
			Expect(repo.Create(newTeam("t1", "Tim Mekanik"))).To(Succeed())

			record, err := repo.GetByID("t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Name).To(Equal("Tim Mekanik"))
		})

		It("should error for an unknown id", func() {
			_, err := repo.GetByID("missing")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("List", func() {
		It("should order teams by name", func() {
			Expect(repo.Create(newTeam("t2", "Tim Listrik"))).To(Succeed())
			Expect(repo.Create(newTeam("t1", "Tim Mekanik"))).To(Succeed())

			records, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Name).To(Equal("Tim Listrik"))
			Expect(records[1].Name).To(Equal("Tim Mekanik"))
		})
	})

	Describe("Members", func() {
		BeforeEach(func() {
			Expect(repo.Create(newTeam("t1", "Tim Mekanik"))).To(Succeed())

			name := "Tono Teknisi"
			profile := &SQLiteProfile{
				ID:       "u1",
				Email:    "teknisi@mail.com",
				FullName: &name,
				Role:     "technician",
				IsActive: true,
			}
			Expect(db.Create(profile).Error).To(Succeed())
		})

		It("should add and load members with their profiles", func() {
			member := &teamDatamodel.TeamMember{
				ID:        "tm1",
				TeamID:    "t1",
				UserID:    "u1",
				CreatedAt: time.Now(),
			}
			Expect(repo.AddMember(member)).To(Succeed())

			members, err := repo.ListMembers("t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
			Expect(members[0].UserID).To(Equal("u1"))
			Expect(members[0].Profile).NotTo(BeNil())
			Expect(members[0].Profile.Email).To(Equal("teknisi@mail.com"))
		})

		It("should enforce the unique (team, user) index", func() {
			first := &teamDatamodel.TeamMember{ID: "tm1", TeamID: "t1", UserID: "u1", CreatedAt: time.Now()}
			Expect(repo.AddMember(first)).To(Succeed())

			duplicate := &teamDatamodel.TeamMember{ID: "tm2", TeamID: "t1", UserID: "u1", CreatedAt: time.Now()}
			Expect(repo.AddMember(duplicate)).NotTo(Succeed())
		})

		It("should remove a member", func() {
			member := &teamDatamodel.TeamMember{ID: "tm1", TeamID: "t1", UserID: "u1", CreatedAt: time.Now()}
			Expect(repo.AddMember(member)).To(Succeed())

			Expect(repo.RemoveMember("t1", "u1")).To(Succeed())

			members, err := repo.ListMembers("t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("should remove the team together with its membership rows", func() {
			Expect(repo.Create(newTeam("t1", "Tim Mekanik"))).To(Succeed())
			member := &teamDatamodel.TeamMember{ID: "tm1", TeamID: "t1", UserID: "u1", CreatedAt: time.Now()}
			Expect(repo.AddMember(member)).To(Succeed())

			Expect(repo.Delete("t1")).To(Succeed())

			_, err := repo.GetByID("t1")
			Expect(err).To(HaveOccurred())

			members, err := repo.ListMembers("t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(BeEmpty())
		})
	})
})
