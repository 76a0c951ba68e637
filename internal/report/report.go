package report

import (
	"fmt"
	"sort"

	"github.com/adiwarna/maintenance-management/internal/request"
)

// recentRequestLimit caps the dashboard's recent-activity list.
const recentRequestLimit = 5

// Summary aggregates the full request collection for the reports page.
type Summary struct {
	TotalRequests        int            `json:"total_requests"`
	StageCounts          map[string]int `json:"stage_counts"`
	TypeCounts           map[string]int `json:"type_counts"`
	TeamCounts           map[string]int `json:"team_counts"`
	CategoryCounts       map[string]int `json:"category_counts"`
	CompletionRate       string         `json:"completion_rate"`
	AvgCompletionHours   float64        `json:"avg_completion_hours"`
	AvgWorkDurationHours float64        `json:"avg_work_duration_hours"`
}

// Summarize computes all report figures over an in-memory collection. Stage
// and type buckets are zero-filled; team and category buckets only count
// requests whose relation is populated.
func Summarize(requests []*request.Request) Summary {
	summary := Summary{
		TotalRequests: len(requests),
		StageCounts: map[string]int{
			string(request.StageNew):        0,
			string(request.StageInProgress): 0,
			string(request.StageRepaired):   0,
			string(request.StageScrap):      0,
		},
		TypeCounts: map[string]int{
			string(request.TypeCorrective): 0,
			string(request.TypePreventive): 0,
		},
		TeamCounts:     map[string]int{},
		CategoryCounts: map[string]int{},
	}

	var completionHoursSum float64
	var durationHoursSum float64
	completedCount := 0

	for _, req := range requests {
		summary.StageCounts[string(req.Stage)]++
		summary.TypeCounts[string(req.RequestType)]++

		if req.TeamName != nil {
			summary.TeamCounts[*req.TeamName]++
		}
		if req.CategoryName != nil {
			summary.CategoryCounts[*req.CategoryName]++
		}

		if req.Stage == request.StageRepaired && req.CompletedDate != nil {
			completedCount++
			completionHoursSum += req.CompletedDate.Sub(req.CreatedAt).Hours()
			if req.DurationHours != nil {
				durationHoursSum += *req.DurationHours
			}
		}
	}

	summary.CompletionRate = completionRate(summary.StageCounts[string(request.StageRepaired)], summary.TotalRequests)
	if completedCount > 0 {
		summary.AvgCompletionHours = completionHoursSum / float64(completedCount)
		summary.AvgWorkDurationHours = durationHoursSum / float64(completedCount)
	}
	return summary
}

// completionRate returns repaired/total as a percentage with one decimal,
// or "0" when there are no requests at all.
func completionRate(repaired, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(repaired)/float64(total)*100)
}

// Stats is the dashboard headline view.
type Stats struct {
	TotalEquipment  int                `json:"total_equipment"`
	TotalTeams      int                `json:"total_teams"`
	TotalRequests   int                `json:"total_requests"`
	NewRequests     int                `json:"new_requests"`
	InProgress      int                `json:"in_progress"`
	Repaired        int                `json:"repaired"`
	Scrapped        int                `json:"scrapped"`
	OverdueRequests int                `json:"overdue_requests"`
	RecentRequests  []*request.Request `json:"recent_requests"`
}

func ComputeStats(requests []*request.Request, equipmentCount, teamCount int) Stats {
	stats := Stats{
		TotalEquipment: equipmentCount,
		TotalTeams:     teamCount,
		TotalRequests:  len(requests),
	}
	for _, req := range requests {
		switch req.Stage {
		case request.StageNew:
			stats.NewRequests++
		case request.StageInProgress:
			stats.InProgress++
		case request.StageRepaired:
			stats.Repaired++
		case request.StageScrap:
			stats.Scrapped++
		}
		if req.Overdue {
			stats.OverdueRequests++
		}
	}
	stats.RecentRequests = recentRequests(requests)
	return stats
}

// recentRequests returns the newest requests first, capped at the
// dashboard limit.
func recentRequests(requests []*request.Request) []*request.Request {
	recent := make([]*request.Request, len(requests))
	copy(recent, requests)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentRequestLimit {
		recent = recent[:recentRequestLimit]
	}
	return recent
}
