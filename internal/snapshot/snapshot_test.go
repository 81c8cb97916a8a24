package snapshot

import (
	"testing"

	"github.com/skyops/airboss/internal/store"
)

func samplePilotRow() store.Row {
	return store.Row{
		"pilot_id":           "P001",
		"name":               "Arjun Mehta",
		"location":           "Bangalore",
		"status":             "Available",
		"skills":             "Mapping, Thermal",
		"certifications":     "dgca-small",
		"current_assignment": "–",
		"available_from":     "2024-01-01",
	}
}

func TestFromTables_NormalizesPilot(t *testing.T) {
	snap := FromTables([]store.Row{samplePilotRow()}, nil, nil)
	if len(snap.Pilots) != 1 {
		t.Fatalf("pilots = %d, want 1", len(snap.Pilots))
	}
	p := snap.Pilots[0]
	if p.ID != "P001" || p.Name != "Arjun Mehta" {
		t.Errorf("identity fields wrong: %+v", p)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "mapping" || p.Skills[1] != "thermal" {
		t.Errorf("skills = %v, want lowercased [mapping thermal]", p.Skills)
	}
	if p.RawSkills != "Mapping, Thermal" {
		t.Errorf("raw skills = %q, want original text", p.RawSkills)
	}
	if p.Assignment != nil {
		t.Errorf("assignment = %v, want nil for en-dash sentinel", *p.Assignment)
	}
	if !p.AvailableFrom.Valid {
		t.Error("available_from should parse")
	}
}

func TestFromTables_MissingColumns(t *testing.T) {
	// A row missing most columns must not panic; fields come back empty.
	snap := FromTables(
		[]store.Row{{"pilot_id": "P009"}},
		[]store.Row{{"drone_id": "D009"}},
		[]store.Row{{"project_id": "PRJ009"}},
	)
	p := snap.Pilots[0]
	if p.ID != "P009" || len(p.Skills) != 0 || p.Assignment != nil || p.AvailableFrom.Valid {
		t.Errorf("sparse pilot normalized wrong: %+v", p)
	}
	m := snap.Missions[0]
	if m.Start.Valid || m.End.Valid {
		t.Error("missing dates should be invalid")
	}
	d := snap.Drones[0]
	if d.MaintenanceDue.Valid || d.Assignment != nil {
		t.Errorf("sparse drone normalized wrong: %+v", d)
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	snap := FromTables(
		[]store.Row{samplePilotRow()},
		[]store.Row{{"drone_id": "D001", "model": "Matrice 350"}},
		[]store.Row{{"project_id": "PRJ001", "client": "Metro Rail"}},
	)

	if snap.Pilot("P001") == nil {
		t.Error("Pilot(P001) = nil")
	}
	if snap.Pilot("P404") != nil {
		t.Error("Pilot(P404) should be nil")
	}
	if snap.Drone("D001") == nil {
		t.Error("Drone(D001) = nil")
	}
	if m := snap.Mission("PRJ001"); m == nil || m.Client != "Metro Rail" {
		t.Errorf("Mission(PRJ001) = %+v", m)
	}
	// Dangling assignment reference: lookup yields nil, never a crash.
	if snap.Mission("PRJ999") != nil {
		t.Error("Mission(PRJ999) should be nil")
	}
}

// stubStore serves fixed tables and fails on demand.
type stubStore struct {
	pilots, drones, missions []store.Row
	failKind                 store.Kind
}

func (s *stubStore) Load(kind store.Kind) ([]store.Row, error) {
	if kind == s.failKind {
		return nil, errStub
	}
	switch kind {
	case store.KindPilots:
		return s.pilots, nil
	case store.KindDrones:
		return s.drones, nil
	default:
		return s.missions, nil
	}
}

func (s *stubStore) UpdateFields(store.Kind, string, string, map[string]string) error { return nil }
func (s *stubStore) Append(store.Kind, map[string]string) error                       { return nil }
func (s *stubStore) Delete(store.Kind, string, string) error                          { return nil }

var errStub = &stubErr{}

type stubErr struct{}

func (*stubErr) Error() string { return "stub failure" }

func TestFromStore(t *testing.T) {
	st := &stubStore{pilots: []store.Row{samplePilotRow()}}
	snap, err := FromStore(st)
	if err != nil {
		t.Fatalf("FromStore: %v", err)
	}
	if len(snap.Pilots) != 1 || len(snap.Drones) != 0 {
		t.Errorf("snapshot shape wrong: %d pilots, %d drones", len(snap.Pilots), len(snap.Drones))
	}
}

func TestFromStore_LoadError(t *testing.T) {
	st := &stubStore{failKind: store.KindMissions}
	if _, err := FromStore(st); err == nil {
		t.Fatal("expected error when a load fails")
	}
}
