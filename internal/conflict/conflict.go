// Package conflict implements the rule engine that cross-references pilots,
// drones, and missions and surfaces scheduling and resource conflicts.
package conflict

import "encoding/json"

// Type tags one of the five conflict rules.
type Type string

const (
	TypeDoubleBooking    Type = "Double Booking"
	TypeSkillMismatch    Type = "Skill/Cert Mismatch"
	TypeLocationMismatch Type = "Location Mismatch"
	TypeMaintenance      Type = "Maintenance Required"
	TypeUnavailable      Type = "Unavailable Assignment"
)

// Severity grades how urgent a conflict is.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Conflict is one detected inconsistency. The shape (type, severity,
// description, affected_entity, details) is the stable contract consumed by
// reporting layers; they never re-derive severity or descriptions.
type Conflict struct {
	Type           Type     `json:"type"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	AffectedEntity string   `json:"affected_entity"`
	Details        Details  `json:"details"`
}

// Details is the typed payload of a conflict, one variant per rule.
type Details interface {
	isDetails()
}

// DoubleBookingDetails names the overlapping mission pair for one assigned
// pilot.
type DoubleBookingDetails struct {
	Pilot              string `json:"pilot"`
	CurrentMission     string `json:"current_mission"`
	ConflictingMission string `json:"conflicting_mission"`
}

// SkillMismatchDetails lists exactly the required tokens the pilot lacks.
type SkillMismatchDetails struct {
	Pilot         string   `json:"pilot"`
	Mission       string   `json:"mission"`
	MissingSkills []string `json:"missing_skills"`
	MissingCerts  []string `json:"missing_certs"`
}

// LocationMismatchDetails records the differing location strings.
type LocationMismatchDetails struct {
	Pilot           string `json:"pilot"`
	PilotLocation   string `json:"pilot_location"`
	MissionLocation string `json:"mission_location"`
	Mission         string `json:"mission"`
}

// MaintenanceDetails records an assigned drone whose maintenance is due.
type MaintenanceDetails struct {
	Drone          string `json:"drone"`
	Model          string `json:"model"`
	Assignment     string `json:"assignment"`
	MaintenanceDue string `json:"maintenance_due"`
}

// UnavailableDetails records a non-Available pilot holding an assignment.
type UnavailableDetails struct {
	Pilot      string `json:"pilot"`
	Status     string `json:"status"`
	Assignment string `json:"assignment"`
}

func (DoubleBookingDetails) isDetails()    {}
func (SkillMismatchDetails) isDetails()    {}
func (LocationMismatchDetails) isDetails() {}
func (MaintenanceDetails) isDetails()      {}
func (UnavailableDetails) isDetails()      {}

// DetailsJSON renders the typed payload as JSON for persistence.
func DetailsJSON(c Conflict) string {
	b, err := json.Marshal(c.Details)
	if err != nil {
		return "{}"
	}
	return string(b)
}
