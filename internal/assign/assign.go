// Package assign applies pilot↔mission assignments and releases against the
// record store. Assignment is deliberately permissive: the only hard gate is
// skill/certification completeness. Double bookings, location mismatches,
// and maintenance issues are surfaced afterward by the conflict detector,
// never blocked here.
package assign

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
)

// Error kinds, matched with errors.Is. NotFound, validation, and state
// failures are local conditions reported back to the caller; ErrStore marks
// a record store failure, after which the in-memory view must be assumed
// stale but the store write is known not to have been applied in full.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("requirements not met")
	ErrState      = errors.New("invalid state")
	ErrStore      = errors.New("record store failure")
)

// noAssignment is what the store's assignment column holds for an
// unassigned pilot, matching the upstream spreadsheet sentinel.
const noAssignment = "–"

// Assign assigns a pilot to a mission. It fails without touching the store
// if either record is missing or the pilot lacks any required skill or
// certification. On success the pilot becomes Assigned with available_from
// pushed to the mission's end date (when valid), and the caller should
// rebuild its snapshot from the store.
func Assign(st store.Store, pilotID, missionID string) (string, error) {
	snap, err := snapshot.FromStore(st)
	if err != nil {
		return "", fmt.Errorf("assign: %w: %v", ErrStore, err)
	}

	pilot := snap.Pilot(pilotID)
	if pilot == nil {
		return "", fmt.Errorf("assign: pilot %s: %w", pilotID, ErrNotFound)
	}
	mission := snap.Mission(missionID)
	if mission == nil {
		return "", fmt.Errorf("assign: mission %s: %w", missionID, ErrNotFound)
	}

	missingSkills := snapshot.Missing(mission.RequiredSkills, pilot.Skills)
	missingCerts := snapshot.Missing(mission.RequiredCerts, pilot.Certs)
	if len(missingSkills) > 0 || len(missingCerts) > 0 {
		var parts []string
		if len(missingSkills) > 0 {
			parts = append(parts, "missing skills: "+strings.Join(missingSkills, ", "))
		}
		if len(missingCerts) > 0 {
			parts = append(parts, "missing certifications: "+strings.Join(missingCerts, ", "))
		}
		return "", fmt.Errorf("assign: %w: %s", ErrValidation, strings.Join(parts, "; "))
	}

	updates := map[string]string{
		"status":             "Assigned",
		"current_assignment": missionID,
	}
	if mission.End.Valid {
		updates["available_from"] = mission.End.Format()
	}

	if err := st.UpdateFields(store.KindPilots, "pilot_id", pilotID, updates); err != nil {
		return "", fmt.Errorf("assign: write pilot %s: %w: %v", pilotID, ErrStore, err)
	}

	return fmt.Sprintf("Successfully assigned %s to %s", pilot.Name, missionID), nil
}

// Unassign releases a pilot from their current mission. The pilot becomes
// Available with available_from set to now.
func Unassign(st store.Store, pilotID string, now time.Time) (string, error) {
	snap, err := snapshot.FromStore(st)
	if err != nil {
		return "", fmt.Errorf("unassign: %w: %v", ErrStore, err)
	}

	pilot := snap.Pilot(pilotID)
	if pilot == nil {
		return "", fmt.Errorf("unassign: pilot %s: %w", pilotID, ErrNotFound)
	}
	if pilot.Assignment == nil {
		return "", fmt.Errorf("unassign: pilot %s is not currently assigned: %w", pilot.Name, ErrState)
	}
	previous := *pilot.Assignment

	updates := map[string]string{
		"status":             "Available",
		"current_assignment": noAssignment,
		"available_from":     snapshot.Midnight(now).Format("2006-01-02"),
	}
	if err := st.UpdateFields(store.KindPilots, "pilot_id", pilotID, updates); err != nil {
		return "", fmt.Errorf("unassign: write pilot %s: %w: %v", pilotID, ErrStore, err)
	}

	return fmt.Sprintf("Successfully unassigned %s from %s", pilot.Name, previous), nil
}
