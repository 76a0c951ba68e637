package request

import (
	equipmentDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/equipment"
)

// Defaults are the category, team and technician copied from the selected
// equipment onto a new request.
type Defaults struct {
	CategoryID *string
	TeamID     *string
	AssignedTo *string
}

// DefaultsFromEquipment resolves the effective category, team and assignee for
// a new request: a value the submitter set explicitly wins, otherwise the
// equipment's own value is copied.
func DefaultsFromEquipment(eq *equipmentDatamodel.Equipment, categoryID, teamID, assignedTo *string) Defaults {
	d := Defaults{
		CategoryID: categoryID,
		TeamID:     teamID,
		AssignedTo: assignedTo,
	}
	if d.CategoryID == nil {
		d.CategoryID = eq.CategoryID
	}
	if d.TeamID == nil {
		d.TeamID = eq.TeamID
	}
	if d.AssignedTo == nil {
		d.AssignedTo = eq.AssignedTechnicianID
	}
	return d
}
