package conflict

import (
	"fmt"
	"time"

	"github.com/skyops/airboss/internal/snapshot"
)

// Detect runs all five conflict checks over one snapshot and returns the
// conflicts in check order. It is deterministic for a given snapshot and
// today value, has no side effects, and is safe to call repeatedly. The
// checks are independent: later checks never see earlier results.
func Detect(snap *snapshot.Snapshot, today time.Time) []Conflict {
	day := snapshot.Midnight(today)

	var conflicts []Conflict
	conflicts = append(conflicts, detectDoubleBookings(snap)...)
	conflicts = append(conflicts, detectSkillMismatches(snap, day)...)
	conflicts = append(conflicts, detectLocationMismatches(snap)...)
	conflicts = append(conflicts, detectMaintenanceDue(snap, day)...)
	conflicts = append(conflicts, detectUnavailableAssignments(snap)...)
	return conflicts
}

// detectDoubleBookings flags, for each assigned pilot, every other mission
// whose valid date range overlaps the assigned mission's (inclusive both
// ends). The check runs per assigned pilot, not per mission pair, so two
// pilots on overlapping missions each get their own conflict and symmetric
// duplicates are expected rather than deduplicated.
func detectDoubleBookings(snap *snapshot.Snapshot) []Conflict {
	var out []Conflict
	for _, pilot := range snap.Pilots {
		if pilot.Assignment == nil {
			continue
		}
		mission := snap.Mission(*pilot.Assignment)
		if mission == nil {
			continue
		}
		if !mission.Start.Valid || !mission.End.Valid {
			continue
		}
		for i := range snap.Missions {
			other := &snap.Missions[i]
			if other.ID == mission.ID {
				continue
			}
			if !other.Start.Valid || !other.End.Valid {
				continue
			}
			if other.Start.OnOrBefore(mission.End) && mission.Start.OnOrBefore(other.End) {
				out = append(out, Conflict{
					Type:     TypeDoubleBooking,
					Severity: SeverityHigh,
					Description: fmt.Sprintf("Pilot %s assigned to %s overlaps with %s",
						pilot.Name, mission.ID, other.ID),
					AffectedEntity: pilot.ID,
					Details: DoubleBookingDetails{
						Pilot:              pilot.Name,
						CurrentMission:     mission.ID,
						ConflictingMission: other.ID,
					},
				})
			}
		}
	}
	return out
}

// detectSkillMismatches flags pilots assigned to active or upcoming missions
// who lack any required skill or certification, listing exactly the missing
// tokens. Missions with invalid dates are skipped entirely.
func detectSkillMismatches(snap *snapshot.Snapshot, today time.Time) []Conflict {
	var out []Conflict
	for i := range snap.Missions {
		mission := &snap.Missions[i]
		if !mission.Start.Valid || !mission.End.Valid {
			continue
		}
		active := !mission.Start.Time.After(today) && !mission.End.Time.Before(today)
		upcoming := mission.Start.Time.After(today)
		if !active && !upcoming {
			continue
		}

		for _, pilot := range snap.Pilots {
			if pilot.Assignment == nil || *pilot.Assignment != mission.ID {
				continue
			}
			missingSkills := snapshot.Missing(mission.RequiredSkills, pilot.Skills)
			missingCerts := snapshot.Missing(mission.RequiredCerts, pilot.Certs)
			if len(missingSkills) == 0 && len(missingCerts) == 0 {
				continue
			}
			out = append(out, Conflict{
				Type:     TypeSkillMismatch,
				Severity: SeverityHigh,
				Description: fmt.Sprintf("Pilot %s lacks required skills/certs for %s",
					pilot.Name, mission.ID),
				AffectedEntity: pilot.ID,
				Details: SkillMismatchDetails{
					Pilot:         pilot.Name,
					Mission:       mission.ID,
					MissingSkills: missingSkills,
					MissingCerts:  missingCerts,
				},
			})
		}
	}
	return out
}

// detectLocationMismatches flags assigned pilots whose location string
// differs from their mission's, using an exact case-sensitive compare.
// Date validity is irrelevant here.
func detectLocationMismatches(snap *snapshot.Snapshot) []Conflict {
	var out []Conflict
	for _, pilot := range snap.Pilots {
		if pilot.Assignment == nil {
			continue
		}
		mission := snap.Mission(*pilot.Assignment)
		if mission == nil {
			continue
		}
		if pilot.Location == mission.Location {
			continue
		}
		out = append(out, Conflict{
			Type:     TypeLocationMismatch,
			Severity: SeverityMedium,
			Description: fmt.Sprintf("Pilot %s in %s assigned to mission in %s",
				pilot.Name, pilot.Location, mission.Location),
			AffectedEntity: pilot.ID,
			Details: LocationMismatchDetails{
				Pilot:           pilot.Name,
				PilotLocation:   pilot.Location,
				MissionLocation: mission.Location,
				Mission:         *pilot.Assignment,
			},
		})
	}
	return out
}

// detectMaintenanceDue flags assigned drones whose maintenance-due date is
// on or before today. Drones with no assignment or an invalid due date are
// skipped.
func detectMaintenanceDue(snap *snapshot.Snapshot, today time.Time) []Conflict {
	var out []Conflict
	for _, drone := range snap.Drones {
		if drone.Assignment == nil || !drone.MaintenanceDue.Valid {
			continue
		}
		if drone.MaintenanceDue.Time.After(today) {
			continue
		}
		out = append(out, Conflict{
			Type:     TypeMaintenance,
			Severity: SeverityHigh,
			Description: fmt.Sprintf("Drone %s needs maintenance but is assigned to %s",
				drone.ID, *drone.Assignment),
			AffectedEntity: drone.ID,
			Details: MaintenanceDetails{
				Drone:          drone.ID,
				Model:          drone.Model,
				Assignment:     *drone.Assignment,
				MaintenanceDue: drone.MaintenanceDue.Format(),
			},
		})
	}
	return out
}

// detectUnavailableAssignments flags any pilot whose status is not exactly
// "Available" while holding an assignment. This deliberately fires for the
// ordinary "Assigned" status too: the rule is a catch-all review queue for
// status/assignment combinations, and downstream consumers rely on seeing
// them, so it is preserved rather than narrowed.
func detectUnavailableAssignments(snap *snapshot.Snapshot) []Conflict {
	var out []Conflict
	for _, pilot := range snap.Pilots {
		if pilot.Status == "Available" || pilot.Assignment == nil {
			continue
		}
		out = append(out, Conflict{
			Type:     TypeUnavailable,
			Severity: SeverityHigh,
			Description: fmt.Sprintf("Pilot %s status is '%s' but assigned to %s",
				pilot.Name, pilot.Status, *pilot.Assignment),
			AffectedEntity: pilot.ID,
			Details: UnavailableDetails{
				Pilot:      pilot.Name,
				Status:     pilot.Status,
				Assignment: *pilot.Assignment,
			},
		})
	}
	return out
}
