package request_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
	"github.com/adiwarna/maintenance-management/internal/request"
)

func TestMaintenanceRequest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MaintenanceRequest Suite")
}

func strPtr(s string) *string {
	return &s
}

var _ = Describe("Stage", func() {
	Describe("CanTransitionTo", func() {
		It("should allow new to in_progress", func() {
			Expect(request.StageNew.CanTransitionTo(request.StageInProgress)).To(BeTrue())
		})

		It("should allow in_progress to repaired", func() {
			Expect(request.StageInProgress.CanTransitionTo(request.StageRepaired)).To(BeTrue())
		})

		It("should allow scrap from any non-terminal stage", func() {
			Expect(request.StageNew.CanTransitionTo(request.StageScrap)).To(BeTrue())
			Expect(request.StageInProgress.CanTransitionTo(request.StageScrap)).To(BeTrue())
		})

		It("should not allow new to repaired directly", func() {
			Expect(request.StageNew.CanTransitionTo(request.StageRepaired)).To(BeFalse())
		})

		It("should not allow any transition out of repaired", func() {
			for _, target := range []request.Stage{request.StageNew, request.StageInProgress, request.StageScrap} {
				Expect(request.StageRepaired.CanTransitionTo(target)).To(BeFalse())
			}
		})

		It("should not allow any transition out of scrap", func() {
			for _, target := range []request.Stage{request.StageNew, request.StageInProgress, request.StageRepaired} {
				Expect(request.StageScrap.CanTransitionTo(target)).To(BeFalse())
			}
		})
	})

	Describe("Terminal", func() {
		It("should treat repaired and scrap as end states", func() {
			Expect(request.StageRepaired.Terminal()).To(BeTrue())
			Expect(request.StageScrap.Terminal()).To(BeTrue())
			Expect(request.StageNew.Terminal()).To(BeFalse())
			Expect(request.StageInProgress.Terminal()).To(BeFalse())
		})
	})
})

var _ = Describe("IsOverdue", func() {
	var now time.Time

	BeforeEach(func() {
		now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})

	It("should be true for a past scheduled date on an open request", func() {
		scheduled := now.AddDate(0, 0, -3)
		Expect(request.IsOverdue(&scheduled, request.StageNew, now)).To(BeTrue())
		Expect(request.IsOverdue(&scheduled, request.StageInProgress, now)).To(BeTrue())
	})

	It("should be false without a scheduled date", func() {
		Expect(request.IsOverdue(nil, request.StageNew, now)).To(BeFalse())
	})

	It("should be false for a future scheduled date", func() {
		scheduled := now.AddDate(0, 0, 2)
		Expect(request.IsOverdue(&scheduled, request.StageNew, now)).To(BeFalse())
	})

	It("should be false for terminal stages regardless of the scheduled date", func() {
		scheduled := now.AddDate(0, -1, 0)
		Expect(request.IsOverdue(&scheduled, request.StageRepaired, now)).To(BeFalse())
		Expect(request.IsOverdue(&scheduled, request.StageScrap, now)).To(BeFalse())
	})
})

var _ = Describe("DefaultsFromEquipment", func() {
	var eq *equipmentDatamodel.Equipment

	BeforeEach(func() {
		eq = &equipmentDatamodel.Equipment{
			ID:                   "e1",
			Name:                 "Mesin Bubut A-01",
			CategoryID:           strPtr("c1"),
			TeamID:               strPtr("t1"),
			AssignedTechnicianID: strPtr("u1"),
		}
	})

	It("should copy category, team and technician from the equipment", func() {
		defaults := request.DefaultsFromEquipment(eq, nil, nil, nil)
		Expect(defaults.CategoryID).To(Equal(strPtr("c1")))
		Expect(defaults.TeamID).To(Equal(strPtr("t1")))
		Expect(defaults.AssignedTo).To(Equal(strPtr("u1")))
	})

	It("should keep submitter overrides over the equipment values", func() {
		defaults := request.DefaultsFromEquipment(eq, strPtr("c2"), nil, strPtr("u9"))
		Expect(defaults.CategoryID).To(Equal(strPtr("c2")))
		Expect(defaults.TeamID).To(Equal(strPtr("t1")))
		Expect(defaults.AssignedTo).To(Equal(strPtr("u9")))
	})

	It("should leave fields unset when the equipment has none", func() {
		defaults := request.DefaultsFromEquipment(&equipmentDatamodel.Equipment{ID: "e2", Name: "bare"}, nil, nil, nil)
		Expect(defaults.CategoryID).To(BeNil())
		Expect(defaults.TeamID).To(BeNil())
		Expect(defaults.AssignedTo).To(BeNil())
	})
})
