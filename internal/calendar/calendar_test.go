package calendar_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adiwarna/maintenance-management/internal/calendar"
	"github.com/adiwarna/maintenance-management/internal/request"
)

func TestCalendar(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Calendar Suite")
}

func scheduledOn(t time.Time) *request.Request {
	return &request.Request{ScheduledDate: &t}
}

var _ = Describe("Month", func() {
	Describe("Previous", func() {
		It("should roll January over to December of the prior year", func() {
			month := calendar.Month{Year: 2025, Month: time.January}
			Expect(month.Previous()).To(Equal(calendar.Month{Year: 2024, Month: time.December}))
		})

		It("should step back within the same year otherwise", func() {
			month := calendar.Month{Year: 2025, Month: time.June}
			Expect(month.Previous()).To(Equal(calendar.Month{Year: 2025, Month: time.May}))
		})
	})

	Describe("Next", func() {
		It("should roll December over to January of the next year", func() {
			month := calendar.Month{Year: 2025, Month: time.December}
			Expect(month.Next()).To(Equal(calendar.Month{Year: 2026, Month: time.January}))
		})

		It("should step forward within the same year otherwise", func() {
			month := calendar.Month{Year: 2025, Month: time.June}
			Expect(month.Next()).To(Equal(calendar.Month{Year: 2025, Month: time.July}))
		})
	})

	Describe("Days", func() {
		It("should know month lengths including leap February", func() {
			Expect(calendar.Month{Year: 2024, Month: time.February}.Days()).To(Equal(29))
			Expect(calendar.Month{Year: 2025, Month: time.February}.Days()).To(Equal(28))
			Expect(calendar.Month{Year: 2025, Month: time.June}.Days()).To(Equal(30))
			Expect(calendar.Month{Year: 2025, Month: time.July}.Days()).To(Equal(31))
		})
	})
})

var _ = Describe("Project", func() {
	var month calendar.Month

	BeforeEach(func() {
		month = calendar.Month{Year: 2025, Month: time.June}
	})

	It("should bucket requests by day of month", func() {
		requests := []*request.Request{
			scheduledOn(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)),
			scheduledOn(time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)),
			scheduledOn(time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC)),
		}

		view := calendar.Project(requests, month, 3)

		Expect(view.DaysInMonth).To(Equal(30))
		Expect(view.Days).To(HaveLen(30))
		Expect(view.Days[2].Day).To(Equal(3))
		Expect(view.Days[2].Items).To(HaveLen(2))
		Expect(view.Days[19].Items).To(HaveLen(1))
		Expect(view.Days[0].Items).To(BeEmpty())
	})

	It("should cap day cells and expose the remainder", func() {
		day := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
		requests := []*request.Request{
			scheduledOn(day), scheduledOn(day), scheduledOn(day), scheduledOn(day), scheduledOn(day),
		}

		view := calendar.Project(requests, month, 3)

		Expect(view.Days[9].Items).To(HaveLen(3))
		Expect(view.Days[9].Remainder).To(Equal(2))
	})

	It("should ignore unscheduled requests and other months", func() {
		requests := []*request.Request{
			{ScheduledDate: nil},
			scheduledOn(time.Date(2025, 5, 31, 8, 0, 0, 0, time.UTC)),
			scheduledOn(time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)),
		}

		view := calendar.Project(requests, month, 3)

		for _, day := range view.Days {
			Expect(day.Items).To(BeEmpty())
			Expect(day.Remainder).To(BeZero())
		}
	})

	It("should carry the navigation months", func() {
		view := calendar.Project(nil, calendar.Month{Year: 2025, Month: time.January}, 3)
		Expect(view.Previous).To(Equal(calendar.Month{Year: 2024, Month: time.December}))
		Expect(view.Next).To(Equal(calendar.Month{Year: 2025, Month: time.February}))
	})
})
