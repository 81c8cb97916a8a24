// Package snapshot builds normalized in-memory views of the pilot, drone,
// and mission datasets. A Snapshot is immutable once built; after any write
// to the record store, callers rebuild it rather than patching it in place.
package snapshot

import (
	"fmt"

	"github.com/skyops/airboss/internal/store"
)

// Pilot is a normalized roster record.
type Pilot struct {
	ID       string
	Name     string
	Location string
	Status   string
	// Skills and Certs are lowercased, trimmed tokens. RawSkills and
	// RawCerts keep the original comma-separated text for display.
	Skills        []string
	Certs         []string
	RawSkills     string
	RawCerts      string
	Assignment    *string
	AvailableFrom Date
}

// Drone is a normalized fleet record.
type Drone struct {
	ID             string
	Model          string
	Location       string
	Status         string
	Capabilities   []string
	Assignment     *string
	MaintenanceDue Date
}

// Mission is a normalized project record. Missions with invalid dates stay
// in the snapshot but are excluded from all date-based checks.
type Mission struct {
	ID                string
	Client            string
	Location          string
	Priority          string
	RequiredSkills    []string
	RequiredCerts     []string
	RawRequiredSkills string
	RawRequiredCerts  string
	Start             Date
	End               Date
}

// Snapshot is the normalized state of all three datasets at load time.
type Snapshot struct {
	Pilots   []Pilot
	Drones   []Drone
	Missions []Mission
}

// FromStore loads all three datasets from the record store and normalizes
// them. This is the constructor used against a live store handle.
func FromStore(st store.Store) (*Snapshot, error) {
	pilots, err := st.Load(store.KindPilots)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	drones, err := st.Load(store.KindDrones)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	missions, err := st.Load(store.KindMissions)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return FromTables(pilots, drones, missions), nil
}

// FromTables normalizes three pre-loaded row tables. It never fails:
// missing or malformed fields become empty values or invalid dates.
func FromTables(pilots, drones, missions []store.Row) *Snapshot {
	snap := &Snapshot{
		Pilots:   make([]Pilot, len(pilots)),
		Drones:   make([]Drone, len(drones)),
		Missions: make([]Mission, len(missions)),
	}
	for i, row := range pilots {
		snap.Pilots[i] = normalizePilot(row)
	}
	for i, row := range drones {
		snap.Drones[i] = normalizeDrone(row)
	}
	for i, row := range missions {
		snap.Missions[i] = normalizeMission(row)
	}
	return snap
}

func normalizePilot(row store.Row) Pilot {
	return Pilot{
		ID:            row["pilot_id"],
		Name:          row["name"],
		Location:      row["location"],
		Status:        row["status"],
		Skills:        SplitList(row["skills"]),
		Certs:         SplitList(row["certifications"]),
		RawSkills:     row["skills"],
		RawCerts:      row["certifications"],
		Assignment:    NormalizeAssignment(row["current_assignment"]),
		AvailableFrom: ParseDate(row["available_from"]),
	}
}

func normalizeDrone(row store.Row) Drone {
	return Drone{
		ID:             row["drone_id"],
		Model:          row["model"],
		Location:       row["location"],
		Status:         row["status"],
		Capabilities:   SplitList(row["capabilities"]),
		Assignment:     NormalizeAssignment(row["current_assignment"]),
		MaintenanceDue: ParseDate(row["maintenance_due"]),
	}
}

func normalizeMission(row store.Row) Mission {
	return Mission{
		ID:                row["project_id"],
		Client:            row["client"],
		Location:          row["location"],
		Priority:          row["priority"],
		RequiredSkills:    SplitList(row["required_skills"]),
		RequiredCerts:     SplitList(row["required_certs"]),
		RawRequiredSkills: row["required_skills"],
		RawRequiredCerts:  row["required_certs"],
		Start:             ParseDate(row["start_date"]),
		End:               ParseDate(row["end_date"]),
	}
}

// Pilot returns the pilot with the given ID, or nil.
func (s *Snapshot) Pilot(id string) *Pilot {
	for i := range s.Pilots {
		if s.Pilots[i].ID == id {
			return &s.Pilots[i]
		}
	}
	return nil
}

// Drone returns the drone with the given ID, or nil.
func (s *Snapshot) Drone(id string) *Drone {
	for i := range s.Drones {
		if s.Drones[i].ID == id {
			return &s.Drones[i]
		}
	}
	return nil
}

// Mission returns the mission with the given project ID, or nil. A dangling
// assignment reference simply yields nil here, never a failure.
func (s *Snapshot) Mission(id string) *Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i]
		}
	}
	return nil
}
