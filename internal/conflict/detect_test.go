package conflict

import (
	"testing"
	"time"

	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
)

// day parses a YYYY-MM-DD test date.
func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func pilotRow(id, name, location, status, skills, certs, assignment string) store.Row {
	return store.Row{
		"pilot_id":           id,
		"name":               name,
		"location":           location,
		"status":             status,
		"skills":             skills,
		"certifications":     certs,
		"current_assignment": assignment,
	}
}

func missionRow(id, location, start, end string) store.Row {
	return store.Row{
		"project_id": id,
		"location":   location,
		"start_date": start,
		"end_date":   end,
	}
}

func ofType(conflicts []Conflict, typ Type) []Conflict {
	var out []Conflict
	for _, c := range conflicts {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func TestDetect_DoubleBooking_OverlappingPair(t *testing.T) {
	snap := snapshot.FromTables(
		[]store.Row{pilotRow("P001", "Arjun", "Bangalore", "Assigned", "", "", "PRJ001")},
		nil,
		[]store.Row{
			missionRow("PRJ001", "Bangalore", "2024-01-01", "2024-01-10"),
			missionRow("PRJ002", "Bangalore", "2024-01-05", "2024-01-15"),
		},
	)

	got := ofType(Detect(snap, day("2024-01-03")), TypeDoubleBooking)
	if len(got) != 1 {
		t.Fatalf("double bookings = %d, want 1", len(got))
	}
	c := got[0]
	if c.Severity != SeverityHigh || c.AffectedEntity != "P001" {
		t.Errorf("conflict = %+v", c)
	}
	d, ok := c.Details.(DoubleBookingDetails)
	if !ok {
		t.Fatalf("details type = %T", c.Details)
	}
	if d.CurrentMission != "PRJ001" || d.ConflictingMission != "PRJ002" {
		t.Errorf("details = %+v, want PRJ001 vs PRJ002", d)
	}
}

func TestDetect_DoubleBooking_InclusiveBoundaries(t *testing.T) {
	// Missions touching at a single day still overlap (inclusive both ends).
	snap := snapshot.FromTables(
		[]store.Row{pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001")},
		nil,
		[]store.Row{
			missionRow("PRJ001", "X", "2024-01-01", "2024-01-10"),
			missionRow("PRJ002", "X", "2024-01-10", "2024-01-20"),
		},
	)
	if got := ofType(Detect(snap, day("2024-01-05")), TypeDoubleBooking); len(got) != 1 {
		t.Errorf("touching ranges: conflicts = %d, want 1", len(got))
	}

	// Disjoint ranges produce nothing.
	snap = snapshot.FromTables(
		[]store.Row{pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001")},
		nil,
		[]store.Row{
			missionRow("PRJ001", "X", "2024-01-01", "2024-01-10"),
			missionRow("PRJ002", "X", "2024-01-11", "2024-01-20"),
		},
	)
	if got := ofType(Detect(snap, day("2024-01-05")), TypeDoubleBooking); len(got) != 0 {
		t.Errorf("disjoint ranges: conflicts = %d, want 0", len(got))
	}
}

func TestDetect_DoubleBooking_PerPilotNotPerPair(t *testing.T) {
	// Two pilots assigned to the two overlapping missions: each assigned
	// pilot gets its own conflict, symmetric duplicates are expected.
	snap := snapshot.FromTables(
		[]store.Row{
			pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001"),
			pilotRow("P002", "Sara", "X", "Assigned", "", "", "PRJ002"),
		},
		nil,
		[]store.Row{
			missionRow("PRJ001", "X", "2024-01-01", "2024-01-10"),
			missionRow("PRJ002", "X", "2024-01-05", "2024-01-15"),
		},
	)
	got := ofType(Detect(snap, day("2024-01-03")), TypeDoubleBooking)
	if len(got) != 2 {
		t.Fatalf("conflicts = %d, want 2 (one per assigned pilot)", len(got))
	}
}

func TestDetect_DoubleBooking_SkipsInvalidDatesAndDanglingRefs(t *testing.T) {
	snap := snapshot.FromTables(
		[]store.Row{
			pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001"),
			pilotRow("P002", "Sara", "X", "Assigned", "", "", "PRJ404"), // dangling
		},
		nil,
		[]store.Row{
			missionRow("PRJ001", "X", "not-a-date", "2024-01-10"),
			missionRow("PRJ002", "X", "2024-01-05", "2024-01-15"),
		},
	)
	if got := ofType(Detect(snap, day("2024-01-03")), TypeDoubleBooking); len(got) != 0 {
		t.Errorf("conflicts = %d, want 0 (invalid dates excluded, dangling ref ignored)", len(got))
	}
}

func TestDetect_SkillMismatch_ListsExactlyMissing(t *testing.T) {
	pilots := []store.Row{
		pilotRow("P001", "Arjun", "Bangalore", "Assigned", "mapping", "dgca-small", "PRJ001"),
	}
	missions := []store.Row{{
		"project_id":      "PRJ001",
		"location":        "Bangalore",
		"required_skills": "mapping, thermal, lidar",
		"required_certs":  "dgca-small, night-ops",
		"start_date":      "2024-01-01",
		"end_date":        "2024-01-31",
	}}
	snap := snapshot.FromTables(pilots, nil, missions)

	got := ofType(Detect(snap, day("2024-01-15")), TypeSkillMismatch)
	if len(got) != 1 {
		t.Fatalf("skill mismatches = %d, want 1", len(got))
	}
	d := got[0].Details.(SkillMismatchDetails)
	if len(d.MissingSkills) != 2 || d.MissingSkills[0] != "thermal" || d.MissingSkills[1] != "lidar" {
		t.Errorf("missing skills = %v, want [thermal lidar]", d.MissingSkills)
	}
	if len(d.MissingCerts) != 1 || d.MissingCerts[0] != "night-ops" {
		t.Errorf("missing certs = %v, want [night-ops]", d.MissingCerts)
	}
}

func TestDetect_SkillMismatch_OnlyActiveOrUpcoming(t *testing.T) {
	pilots := []store.Row{
		pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001"),
	}
	missions := []store.Row{{
		"project_id":      "PRJ001",
		"location":        "X",
		"required_skills": "thermal",
		"start_date":      "2024-01-01",
		"end_date":        "2024-01-10",
	}}
	snap := snapshot.FromTables(pilots, nil, missions)

	// Completed mission: no mismatch reported.
	if got := ofType(Detect(snap, day("2024-06-01")), TypeSkillMismatch); len(got) != 0 {
		t.Errorf("completed mission mismatches = %d, want 0", len(got))
	}
	// Active on the end date itself.
	if got := ofType(Detect(snap, day("2024-01-10")), TypeSkillMismatch); len(got) != 1 {
		t.Errorf("end-date mismatches = %d, want 1", len(got))
	}
	// Upcoming.
	if got := ofType(Detect(snap, day("2023-12-01")), TypeSkillMismatch); len(got) != 1 {
		t.Errorf("upcoming mismatches = %d, want 1", len(got))
	}
}

func TestDetect_LocationMismatch(t *testing.T) {
	snap := snapshot.FromTables(
		[]store.Row{
			pilotRow("P001", "Arjun", "Bangalore", "Assigned", "", "", "PRJ001"),
			pilotRow("P002", "Sara", "Mumbai", "Assigned", "", "", "PRJ001"),
		},
		nil,
		// No dates at all: location check ignores date validity.
		[]store.Row{missionRow("PRJ001", "Mumbai", "", "")},
	)

	got := ofType(Detect(snap, day("2024-01-01")), TypeLocationMismatch)
	if len(got) != 1 {
		t.Fatalf("location mismatches = %d, want 1", len(got))
	}
	c := got[0]
	if c.Severity != SeverityMedium || c.AffectedEntity != "P001" {
		t.Errorf("conflict = %+v", c)
	}
	d := c.Details.(LocationMismatchDetails)
	if d.PilotLocation != "Bangalore" || d.MissionLocation != "Mumbai" {
		t.Errorf("details = %+v", d)
	}
}

func TestDetect_LocationMismatch_CaseSensitive(t *testing.T) {
	snap := snapshot.FromTables(
		[]store.Row{pilotRow("P001", "Arjun", "bangalore", "Assigned", "", "", "PRJ001")},
		nil,
		[]store.Row{missionRow("PRJ001", "Bangalore", "", "")},
	)
	if got := ofType(Detect(snap, day("2024-01-01")), TypeLocationMismatch); len(got) != 1 {
		t.Errorf("case-differing locations should mismatch, got %d", len(got))
	}
}

func TestDetect_MaintenanceRequired(t *testing.T) {
	drones := []store.Row{
		{"drone_id": "D001", "model": "Matrice 350", "current_assignment": "PRJ002", "maintenance_due": "2020-01-01"},
		{"drone_id": "D002", "model": "Mavic 3E", "current_assignment": "PRJ002", "maintenance_due": "2099-01-01"},
		{"drone_id": "D003", "model": "Mavic 3E", "current_assignment": "–", "maintenance_due": "2020-01-01"},
		{"drone_id": "D004", "model": "Mavic 3E", "current_assignment": "PRJ002", "maintenance_due": "unknown"},
	}
	snap := snapshot.FromTables(nil, drones, nil)

	got := ofType(Detect(snap, day("2024-01-01")), TypeMaintenance)
	if len(got) != 1 {
		t.Fatalf("maintenance conflicts = %d, want 1 (assigned + past due only)", len(got))
	}
	c := got[0]
	if c.Severity != SeverityHigh || c.AffectedEntity != "D001" {
		t.Errorf("conflict = %+v", c)
	}
	d := c.Details.(MaintenanceDetails)
	if d.MaintenanceDue != "2020-01-01" || d.Assignment != "PRJ002" {
		t.Errorf("details = %+v", d)
	}
}

func TestDetect_MaintenanceRequired_DueTodayFires(t *testing.T) {
	drones := []store.Row{
		{"drone_id": "D001", "model": "M", "current_assignment": "PRJ001", "maintenance_due": "2024-05-01"},
	}
	snap := snapshot.FromTables(nil, drones, nil)
	if got := ofType(Detect(snap, day("2024-05-01")), TypeMaintenance); len(got) != 1 {
		t.Errorf("due-today conflicts = %d, want 1 (on or before today)", len(got))
	}
}

func TestDetect_UnavailableAssignment_FiresForAssignedStatusToo(t *testing.T) {
	// The catch-all fires even for a normal Assigned pilot with a valid
	// assignment; consumers treat it as a review queue.
	snap := snapshot.FromTables(
		[]store.Row{
			pilotRow("P001", "Arjun", "X", "Assigned", "", "", "PRJ001"),
			pilotRow("P002", "Sara", "X", "On Leave", "", "", "PRJ001"),
			pilotRow("P003", "Dev", "X", "Available", "", "", "PRJ001"),
			pilotRow("P004", "Mia", "X", "On Leave", "", "", "–"),
		},
		nil,
		[]store.Row{missionRow("PRJ001", "X", "", "")},
	)

	got := ofType(Detect(snap, day("2024-01-01")), TypeUnavailable)
	if len(got) != 2 {
		t.Fatalf("unavailable assignments = %d, want 2 (P001, P002)", len(got))
	}
	if got[0].AffectedEntity != "P001" || got[1].AffectedEntity != "P002" {
		t.Errorf("affected = %s, %s", got[0].AffectedEntity, got[1].AffectedEntity)
	}
	d := got[0].Details.(UnavailableDetails)
	if d.Status != "Assigned" || d.Assignment != "PRJ001" {
		t.Errorf("details = %+v", d)
	}
}

func TestDetect_OrderAndDeterminism(t *testing.T) {
	pilots := []store.Row{
		pilotRow("P001", "Arjun", "Bangalore", "Assigned", "mapping", "", "PRJ001"),
	}
	drones := []store.Row{
		{"drone_id": "D001", "model": "M", "current_assignment": "PRJ001", "maintenance_due": "2020-01-01"},
	}
	missions := []store.Row{
		{"project_id": "PRJ001", "location": "Mumbai", "required_skills": "thermal",
			"start_date": "2024-01-01", "end_date": "2024-12-31"},
		missionRow("PRJ002", "Mumbai", "2024-06-01", "2024-06-10"),
	}
	snap := snapshot.FromTables(pilots, drones, missions)
	today := day("2024-06-05")

	first := Detect(snap, today)
	second := Detect(snap, today)
	if len(first) != len(second) {
		t.Fatalf("repeat detection sizes differ: %d vs %d", len(first), len(second))
	}

	// Check order: all five rules hit once, in rule order.
	wantOrder := []Type{TypeDoubleBooking, TypeSkillMismatch, TypeLocationMismatch, TypeMaintenance, TypeUnavailable}
	if len(first) != len(wantOrder) {
		t.Fatalf("conflicts = %d, want %d: %+v", len(first), len(wantOrder), first)
	}
	for i, want := range wantOrder {
		if first[i].Type != want {
			t.Errorf("conflict[%d] = %s, want %s", i, first[i].Type, want)
		}
		if first[i].Type != second[i].Type || first[i].Description != second[i].Description {
			t.Errorf("detection not deterministic at %d", i)
		}
	}
}

func TestDetailsJSON_FieldNames(t *testing.T) {
	c := Conflict{
		Type:     TypeDoubleBooking,
		Severity: SeverityHigh,
		Details: DoubleBookingDetails{
			Pilot:              "Arjun",
			CurrentMission:     "PRJ001",
			ConflictingMission: "PRJ002",
		},
	}
	got := DetailsJSON(c)
	want := `{"pilot":"Arjun","current_mission":"PRJ001","conflicting_mission":"PRJ002"}`
	if got != want {
		t.Errorf("DetailsJSON = %s, want %s", got, want)
	}
}
