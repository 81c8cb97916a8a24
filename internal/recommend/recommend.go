// Package recommend scores available pilots against a mission's requirements
// and ranks them. It is a fixed weighted score, not a search over assignment
// space: each candidate is scored independently and the list is sorted.
package recommend

import (
	"fmt"
	"sort"

	"github.com/skyops/airboss/internal/snapshot"
)

// Scoring weights. A candidate reaching perfectThreshold is flagged as a
// perfect match, used for highlighting only, never as a hard gate.
const (
	skillWeight      = 10
	certWeight       = 15
	locationBonus    = 20
	availableBonus   = 5
	perfectThreshold = 50
)

// Candidate is one scored pilot. Reasons holds the per-term explanation
// strings in scoring order, for transparency in any consumer.
type Candidate struct {
	PilotID        string   `json:"pilot_id"`
	Name           string   `json:"name"`
	Score          int      `json:"score"`
	Location       string   `json:"location"`
	Skills         string   `json:"skills"`
	Certifications string   `json:"certifications"`
	Reasons        []string `json:"reasons"`
	PerfectMatch   bool     `json:"is_perfect_match"`
}

// FindBestPilots ranks pilots with status exactly "Available" against the
// mission's requirements and returns the top n. The result is empty when the
// mission is unknown or no pilot is Available. Ties keep roster order.
func FindBestPilots(snap *snapshot.Snapshot, missionID string, topN int) []Candidate {
	mission := snap.Mission(missionID)
	if mission == nil {
		return nil
	}

	var candidates []Candidate
	for _, pilot := range snap.Pilots {
		if pilot.Status != "Available" {
			continue
		}
		candidates = append(candidates, scorePilot(&pilot, mission))
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

func scorePilot(pilot *snapshot.Pilot, mission *snapshot.Mission) Candidate {
	score := 0
	var reasons []string

	skillMatch := snapshot.Intersection(mission.RequiredSkills, pilot.Skills)
	score += skillMatch * skillWeight
	if skillMatch == len(mission.RequiredSkills) {
		reasons = append(reasons, "all required skills")
	} else {
		reasons = append(reasons, fmt.Sprintf("%d/%d skills", skillMatch, len(mission.RequiredSkills)))
	}

	certMatch := snapshot.Intersection(mission.RequiredCerts, pilot.Certs)
	score += certMatch * certWeight
	if certMatch == len(mission.RequiredCerts) {
		reasons = append(reasons, "all required certifications")
	} else {
		reasons = append(reasons, fmt.Sprintf("%d/%d certifications", certMatch, len(mission.RequiredCerts)))
	}

	if pilot.Location == mission.Location {
		score += locationBonus
		reasons = append(reasons, fmt.Sprintf("same location (%s)", pilot.Location))
	} else {
		reasons = append(reasons, fmt.Sprintf("different location (pilot in %s, mission in %s)",
			pilot.Location, mission.Location))
	}

	// Availability bonus only when both dates parsed; an invalid date on
	// either side means no bonus and no penalty, and no reason line.
	if pilot.AvailableFrom.Valid && mission.Start.Valid {
		if pilot.AvailableFrom.OnOrBefore(mission.Start) {
			score += availableBonus
			reasons = append(reasons, "available before mission start")
		} else {
			reasons = append(reasons, "not available until after mission start")
		}
	}

	return Candidate{
		PilotID:        pilot.ID,
		Name:           pilot.Name,
		Score:          score,
		Location:       pilot.Location,
		Skills:         pilot.RawSkills,
		Certifications: pilot.RawCerts,
		Reasons:        reasons,
		PerfectMatch:   score >= perfectThreshold,
	}
}
