// Package report derives read-only summaries from a snapshot: availability
// counts, per-mission status, and filtered roster/fleet queries.
package report

import (
	"strings"
	"time"

	"github.com/skyops/airboss/internal/snapshot"
)

// PilotCounts summarizes the roster.
type PilotCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Assigned  int `json:"assigned"`
	OnLeave   int `json:"on_leave"`
}

// DroneCounts summarizes the fleet.
type DroneCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Deployed    int `json:"deployed"`
	Maintenance int `json:"maintenance"`
}

// MissionCounts summarizes the mission portfolio. Active and Upcoming only
// count missions with valid date ranges.
type MissionCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Upcoming int `json:"upcoming"`
	Urgent   int `json:"urgent"`
}

// Summary is the availability overview across all three datasets.
type Summary struct {
	Pilots   PilotCounts   `json:"pilots"`
	Drones   DroneCounts   `json:"drones"`
	Missions MissionCounts `json:"missions"`
}

// Summarize computes the availability overview for the given day.
func Summarize(snap *snapshot.Snapshot, today time.Time) Summary {
	day := snapshot.Midnight(today)
	var s Summary

	s.Pilots.Total = len(snap.Pilots)
	for _, p := range snap.Pilots {
		if p.Status == "Available" {
			s.Pilots.Available++
		}
		if p.Status == "On Leave" {
			s.Pilots.OnLeave++
		}
		if p.Assignment != nil {
			s.Pilots.Assigned++
		}
	}

	s.Drones.Total = len(snap.Drones)
	for _, d := range snap.Drones {
		switch d.Status {
		case "Available":
			s.Drones.Available++
		case "Deployed":
			s.Drones.Deployed++
		case "Maintenance":
			s.Drones.Maintenance++
		}
	}

	s.Missions.Total = len(snap.Missions)
	for _, m := range snap.Missions {
		if m.Priority == "Urgent" {
			s.Missions.Urgent++
		}
		if !m.Start.Valid || !m.End.Valid {
			continue
		}
		switch {
		case !m.Start.Time.After(day) && !m.End.Time.Before(day):
			s.Missions.Active++
		case m.Start.Time.After(day):
			s.Missions.Upcoming++
		}
	}
	return s
}

// AssignedPilot is a roster entry attached to a mission detail.
type AssignedPilot struct {
	PilotID        string `json:"pilot_id"`
	Name           string `json:"name"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
}

// MissionDetail is the status view of one mission.
type MissionDetail struct {
	ProjectID      string          `json:"project_id"`
	Client         string          `json:"client"`
	Location       string          `json:"location"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	RequiredSkills string          `json:"required_skills"`
	RequiredCerts  string          `json:"required_certs"`
	AssignedPilots []AssignedPilot `json:"assigned_pilots"`
}

// MissionStatus returns the detail view for one mission, or nil when the
// project ID is unknown. Status is Active, Upcoming, Completed, or Unknown
// when the dates don't parse.
func MissionStatus(snap *snapshot.Snapshot, missionID string, today time.Time) *MissionDetail {
	mission := snap.Mission(missionID)
	if mission == nil {
		return nil
	}
	day := snapshot.Midnight(today)

	status := "Unknown"
	if mission.Start.Valid && mission.End.Valid {
		switch {
		case !mission.Start.Time.After(day) && !mission.End.Time.Before(day):
			status = "Active"
		case mission.Start.Time.After(day):
			status = "Upcoming"
		default:
			status = "Completed"
		}
	}

	detail := &MissionDetail{
		ProjectID:      mission.ID,
		Client:         mission.Client,
		Location:       mission.Location,
		StartDate:      mission.Start.Format(),
		EndDate:        mission.End.Format(),
		Priority:       mission.Priority,
		Status:         status,
		RequiredSkills: mission.RawRequiredSkills,
		RequiredCerts:  mission.RawRequiredCerts,
	}
	for _, p := range snap.Pilots {
		if p.Assignment != nil && *p.Assignment == mission.ID {
			detail.AssignedPilots = append(detail.AssignedPilots, AssignedPilot{
				PilotID:        p.ID,
				Name:           p.Name,
				Skills:         p.RawSkills,
				Certifications: p.RawCerts,
			})
		}
	}
	return detail
}

// AvailablePilots returns pilots with status Available, optionally filtered
// by skill token, certification token, and exact location.
func AvailablePilots(snap *snapshot.Snapshot, skill, cert, location string) []snapshot.Pilot {
	skill = strings.ToLower(strings.TrimSpace(skill))
	cert = strings.ToLower(strings.TrimSpace(cert))
	var out []snapshot.Pilot
	for _, p := range snap.Pilots {
		if p.Status != "Available" {
			continue
		}
		if skill != "" && !snapshot.Contains(p.Skills, skill) {
			continue
		}
		if cert != "" && !snapshot.Contains(p.Certs, cert) {
			continue
		}
		if location != "" && p.Location != location {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AvailableDrones returns drones with status Available, optionally filtered
// by capability token and exact location.
func AvailableDrones(snap *snapshot.Snapshot, capability, location string) []snapshot.Drone {
	capability = strings.ToLower(strings.TrimSpace(capability))
	var out []snapshot.Drone
	for _, d := range snap.Drones {
		if d.Status != "Available" {
			continue
		}
		if capability != "" && !snapshot.Contains(d.Capabilities, capability) {
			continue
		}
		if location != "" && d.Location != location {
			continue
		}
		out = append(out, d)
	}
	return out
}
