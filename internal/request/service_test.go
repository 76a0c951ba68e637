package request_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adiwarna/maintenance-management/internal"
	"github.com/adiwarna/maintenance-management/internal/auth"
	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	requestDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/request"
	"github.com/adiwarna/maintenance-management/internal/request"
)

// Mock repository for testing
type mockRequestRepository struct {
	requests    map[string]*requestDatamodel.MaintenanceRequest
	order       []string
	createError error
	getError    error
	updateError error
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{
		requests: make(map[string]*requestDatamodel.MaintenanceRequest),
	}
}

func (m *mockRequestRepository) Create(record *requestDatamodel.MaintenanceRequest) error {
	if m.createError != nil {
		return m.createError
	}
	stored := *record
	m.requests[record.ID] = &stored
	m.order = append(m.order, record.ID)
	return nil
}

func (m *mockRequestRepository) GetByID(id string) (*requestDatamodel.MaintenanceRequest, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	record, exists := m.requests[id]
	if !exists {
		return nil, errors.New("record not found")
	}
	copied := *record
	return &copied, nil
}

func (m *mockRequestRepository) List(stage string) ([]*requestDatamodel.MaintenanceRequest, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var result []*requestDatamodel.MaintenanceRequest
	for _, id := range m.order {
		record := m.requests[id]
		if stage != "" && record.Stage != stage {
			continue
		}
		copied := *record
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockRequestRepository) Update(record *requestDatamodel.MaintenanceRequest) error {
	if m.updateError != nil {
		return m.updateError
	}
	stored := *record
	m.requests[record.ID] = &stored
	return nil
}

// Mock equipment lookup for default resolution
type mockEquipmentGetter struct {
	equipment map[string]*equipmentDatamodel.Equipment
	getError  error
}

func newMockEquipmentGetter() *mockEquipmentGetter {
	return &mockEquipmentGetter{
		equipment: make(map[string]*equipmentDatamodel.Equipment),
	}
}

func (m *mockEquipmentGetter) GetByID(id string) (*equipmentDatamodel.Equipment, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	eq, exists := m.equipment[id]
	if !exists {
		return nil, errors.New("equipment not found")
	}
	return eq, nil
}

var _ = Describe("RequestService", func() {
	var (
		service   *request.Service
		mockRepo  *mockRequestRepository
		mockEquip *mockEquipmentGetter
		logger    *slog.Logger

		technician *auth.User
		manager    *auth.User
		requester  *auth.User
	)

	BeforeEach(func() {
		mockRepo = newMockRequestRepository()
		mockEquip = newMockEquipmentGetter()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = request.NewService(mockRepo, mockEquip, nil, logger)

		technician = &auth.User{ID: "u1", Email: "teknisi@mail.com", Role: auth.RoleTechnician}
		manager = &auth.User{ID: "m1", Email: "manager@mail.com", Role: auth.RoleManager}
		requester = &auth.User{ID: "r1", Email: "requester@mail.com", Role: auth.RoleTechnician}

		mockEquip.equipment["e1"] = &equipmentDatamodel.Equipment{
			ID:                   "e1",
			Name:                 "Mesin Bubut A-01",
			CategoryID:           strPtr("c1"),
			TeamID:               strPtr("t1"),
			AssignedTechnicianID: strPtr("u1"),
		}
	})

	Describe("CreateRequest", func() {
		It("should start in stage new with equipment defaults applied", func() {
			dto := request.CreateRequestDTO{
				Subject:     "Spindle berisik",
				EquipmentID: "e1",
			}

			result, err := service.CreateRequest(requester, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stage).To(Equal(request.StageNew))
			Expect(result.TeamID).To(Equal(strPtr("t1")))
			Expect(result.AssignedTo).To(Equal(strPtr("u1")))
			Expect(result.CategoryID).To(Equal(strPtr("c1")))
			Expect(result.RequestedBy).To(Equal("r1"))
			Expect(result.RequestType).To(Equal(request.TypeCorrective))
			Expect(result.Priority).To(Equal(request.PriorityMedium))
		})

		It("should keep submitter overrides over equipment defaults", func() {
			dto := request.CreateRequestDTO{
				Subject:     "Servis berkala",
				EquipmentID: "e1",
				AssignedTo:  strPtr("u2"),
				RequestType: "preventive",
				Priority:    "high",
			}

			result, err := service.CreateRequest(requester, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.AssignedTo).To(Equal(strPtr("u2")))
			Expect(result.TeamID).To(Equal(strPtr("t1")))
			Expect(result.RequestType).To(Equal(request.TypePreventive))
			Expect(result.Priority).To(Equal(request.PriorityHigh))
		})

		It("should reject a missing subject", func() {
			_, err := service.CreateRequest(requester, request.CreateRequestDTO{EquipmentID: "e1"})
			Expect(err).To(HaveOccurred())
		})

		It("should fail when the equipment does not exist", func() {
			_, err := service.CreateRequest(requester, request.CreateRequestDTO{
				Subject:     "Mesin mati total",
				EquipmentID: "missing",
			})
			Expect(err).To(Equal(internal.ErrEquipmentNotFound))
		})
	})

	Describe("Transition", func() {
		var requestID string

		BeforeEach(func() {
			result, err := service.CreateRequest(requester, request.CreateRequestDTO{
				Subject:     "Spindle berisik",
				EquipmentID: "e1",
			})
			Expect(err).ToNot(HaveOccurred())
			requestID = result.ID
		})

		It("should allow the assigned technician to start work", func() {
			result, err := service.Transition(context.Background(), technician, requestID, request.TransitionDTO{Stage: "in_progress"})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stage).To(Equal(request.StageInProgress))
			Expect(result.CompletedDate).To(BeNil())
		})

		It("should stamp the completion date when work reaches repaired", func() {
			_, err := service.Transition(context.Background(), technician, requestID, request.TransitionDTO{Stage: "in_progress"})
			Expect(err).ToNot(HaveOccurred())

			before := time.Now()
			duration := 2.5
			result, err := service.Transition(context.Background(), technician, requestID, request.TransitionDTO{
				Stage:         "repaired",
				DurationHours: &duration,
			})
			after := time.Now()

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stage).To(Equal(request.StageRepaired))
			Expect(result.CompletedDate).ToNot(BeNil())
			Expect(result.CompletedDate.Before(before)).To(BeFalse())
			Expect(result.CompletedDate.After(after)).To(BeFalse())
			Expect(result.CompletedDate.After(result.CreatedAt)).To(BeTrue())
			Expect(result.DurationHours).To(Equal(&duration))
		})

		It("should allow scrapping a new request", func() {
			result, err := service.Transition(context.Background(), manager, requestID, request.TransitionDTO{Stage: "scrap"})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stage).To(Equal(request.StageScrap))
		})

		It("should reject skipping straight from new to repaired", func() {
			_, err := service.Transition(context.Background(), manager, requestID, request.TransitionDTO{Stage: "repaired"})
			Expect(err).To(Equal(internal.ErrStageNotAllowed))
		})

		It("should reject any transition out of repaired", func() {
			_, err := service.Transition(context.Background(), technician, requestID, request.TransitionDTO{Stage: "in_progress"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Transition(context.Background(), technician, requestID, request.TransitionDTO{Stage: "repaired"})
			Expect(err).ToNot(HaveOccurred())

			for _, target := range []string{"new", "in_progress", "scrap"} {
				_, err = service.Transition(context.Background(), manager, requestID, request.TransitionDTO{Stage: target})
				Expect(err).To(Equal(internal.ErrStageNotAllowed))
			}
		})

		It("should deny a technician who is not the assignee", func() {
			other := &auth.User{ID: "u9", Email: "other@mail.com", Role: auth.RoleTechnician}
			_, err := service.Transition(context.Background(), other, requestID, request.TransitionDTO{Stage: "in_progress"})
			Expect(err).To(Equal(internal.ErrUnauthorizedAccess))
		})

		It("should allow a manager who is not the assignee", func() {
			result, err := service.Transition(context.Background(), manager, requestID, request.TransitionDTO{Stage: "in_progress"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stage).To(Equal(request.StageInProgress))
		})

		It("should fail for an unknown request id", func() {
			_, err := service.Transition(context.Background(), manager, "missing", request.TransitionDTO{Stage: "in_progress"})
			Expect(err).To(Equal(internal.ErrRequestNotFound))
		})

		It("should reject an invalid target stage", func() {
			_, err := service.Transition(context.Background(), manager, requestID, request.TransitionDTO{Stage: "done"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Assign", func() {
		var requestID string

		BeforeEach(func() {
			result, err := service.CreateRequest(requester, request.CreateRequestDTO{
				Subject:     "Spindle berisik",
				EquipmentID: "e1",
			})
			Expect(err).ToNot(HaveOccurred())
			requestID = result.ID
		})

		It("should let a manager reassign the technician", func() {
			result, err := service.Assign(manager, requestID, request.AssignDTO{AssignedTo: strPtr("u2")})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.AssignedTo).To(Equal(strPtr("u2")))
		})

		It("should let a manager clear the assignment", func() {
			result, err := service.Assign(manager, requestID, request.AssignDTO{AssignedTo: nil})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.AssignedTo).To(BeNil())
		})

		It("should deny a technician", func() {
			_, err := service.Assign(technician, requestID, request.AssignDTO{AssignedTo: strPtr("u2")})
			Expect(err).To(Equal(internal.ErrUnauthorizedAccess))
		})
	})

	Describe("ListRequests", func() {
		BeforeEach(func() {
			for _, subject := range []string{"satu", "dua", "tiga"} {
				_, err := service.CreateRequest(requester, request.CreateRequestDTO{
					Subject:     subject,
					EquipmentID: "e1",
				})
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("should return everything without a filter", func() {
			items, err := service.ListRequests("")
			Expect(err).ToNot(HaveOccurred())
			Expect(items).To(HaveLen(3))
		})

		It("should filter by stage", func() {
			all, err := service.ListRequests("")
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Transition(context.Background(), manager, all[0].ID, request.TransitionDTO{Stage: "in_progress"})
			Expect(err).ToNot(HaveOccurred())

			open, err := service.ListRequests("new")
			Expect(err).ToNot(HaveOccurred())
			Expect(open).To(HaveLen(2))

			started, err := service.ListRequests("in_progress")
			Expect(err).ToNot(HaveOccurred())
			Expect(started).To(HaveLen(1))
		})

		It("should reject an invalid stage filter", func() {
			_, err := service.ListRequests("bogus")
			Expect(err).To(HaveOccurred())
		})
	})
})
