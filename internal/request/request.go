package request

import (
	"time"

	requestDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/request"
)

// Stage is the maintenance request workflow stage. Repaired and scrap are
// terminal: once reached, the request never changes stage again.
type Stage string

const (
	StageNew        Stage = "new"
	StageInProgress Stage = "in_progress"
	StageRepaired   Stage = "repaired"
	StageScrap      Stage = "scrap"
)

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

func (s Stage) Terminal() bool {
	return s == StageRepaired || s == StageScrap
}

// CanTransitionTo reports whether the workflow allows moving from s to target.
// new -> in_progress, in_progress -> repaired, and any non-terminal stage may
// go to scrap.
func (s Stage) CanTransitionTo(target Stage) bool {
	if s.Terminal() || s == target {
		return false
	}
	switch target {
	case StageInProgress:
		return s == StageNew
	case StageRepaired:
		return s == StageInProgress
	case StageScrap:
		return true
	}
	return false
}

type RequestType string

const (
	TypeCorrective RequestType = "corrective"
	TypePreventive RequestType = "preventive"
)

func (t RequestType) Valid() bool {
	return t == TypeCorrective || t == TypePreventive
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsOverdue reports whether a request with the given scheduled date and stage
// is past due at the reference time. Terminal requests are never overdue.
func IsOverdue(scheduledDate *time.Time, stage Stage, now time.Time) bool {
	if scheduledDate == nil || stage.Terminal() {
		return false
	}
	return scheduledDate.Before(now)
}

// Request is the maintenance request as exposed to callers. Relation names
// are denormalized so clients never need a second fetch.
type Request struct {
	ID            string      `json:"id"`
	Subject       string      `json:"subject"`
	Description   *string     `json:"description,omitempty"`
	EquipmentID   string      `json:"equipment_id"`
	CategoryID    *string     `json:"category_id,omitempty"`
	TeamID        *string     `json:"team_id,omitempty"`
	AssignedTo    *string     `json:"assigned_to,omitempty"`
	RequestedBy   string      `json:"requested_by"`
	RequestType   RequestType `json:"request_type"`
	Stage         Stage       `json:"stage"`
	Priority      Priority    `json:"priority"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time  `json:"completed_date,omitempty"`
	DurationHours *float64    `json:"duration_hours,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	EquipmentName *string `json:"equipment_name,omitempty"`
	CategoryName  *string `json:"category_name,omitempty"`
	TeamName      *string `json:"team_name,omitempty"`
	AssignedName  *string `json:"assigned_name,omitempty"`
	RequesterName *string `json:"requester_name,omitempty"`

	Overdue bool `json:"overdue"`
}

func FromDataModel(record *requestDatamodel.MaintenanceRequest, now time.Time) *Request {
	req := &Request{
		ID:            record.ID,
		Subject:       record.Subject,
		Description:   record.Description,
		EquipmentID:   record.EquipmentID,
		CategoryID:    record.CategoryID,
		TeamID:        record.TeamID,
		AssignedTo:    record.AssignedTo,
		RequestedBy:   record.RequestedBy,
		RequestType:   RequestType(record.RequestType),
		Stage:         Stage(record.Stage),
		Priority:      Priority(record.Priority),
		ScheduledDate: record.ScheduledDate,
		CompletedDate: record.CompletedDate,
		DurationHours: record.DurationHours,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
	req.Overdue = IsOverdue(req.ScheduledDate, req.Stage, now)

	if record.Equipment != nil {
		req.EquipmentName = &record.Equipment.Name
	}
	if record.Category != nil {
		req.CategoryName = &record.Category.Name
	}
	if record.Team != nil {
		req.TeamName = &record.Team.Name
	}
	if record.AssignedProfile != nil {
		req.AssignedName = displayName(record.AssignedProfile.FullName, record.AssignedProfile.Email)
	}
	if record.RequesterProfile != nil {
		req.RequesterName = displayName(record.RequesterProfile.FullName, record.RequesterProfile.Email)
	}
	return req
}

func FromDataModelSlice(records []*requestDatamodel.MaintenanceRequest, now time.Time) []*Request {
	result := make([]*Request, len(records))
	for i, record := range records {
		result[i] = FromDataModel(record, now)
	}
	return result
}

func displayName(fullName *string, email string) *string {
	if fullName != nil && *fullName != "" {
		return fullName
	}
	return &email
}
