package main

import (
	"strings"
	"testing"
)

func TestMissionAddShowUpdateDelete(t *testing.T) {
	cfg := initStore(t)

	out, err := run(t, "mission", "add", "PRJ100",
		"--client", "AgriCo",
		"--location", "Bangalore",
		"--priority", "Urgent",
		"--required-skills", "mapping",
		"--start", "2024-06-01",
		"--end", "2099-06-10",
		"-c", cfg)
	if err != nil {
		t.Fatalf("mission add: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Added mission PRJ100") {
		t.Errorf("output = %s", out)
	}

	out, err = run(t, "mission", "show", "PRJ100", "-c", cfg)
	if err != nil {
		t.Fatalf("mission show: %v", err)
	}
	for _, want := range []string{"Mission PRJ100", "AgriCo", "Status:   Active", "No pilots currently assigned."} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "mission", "update", "PRJ100", "--location", "Mumbai", "--priority", "Standard", "-c", cfg)
	if err != nil {
		t.Fatalf("mission update: %v", err)
	}
	if !strings.Contains(out, "Updated mission PRJ100 (2 fields)") {
		t.Errorf("output = %s", out)
	}

	out, _ = run(t, "mission", "show", "PRJ100", "-c", cfg)
	if !strings.Contains(out, "Location: Mumbai") {
		t.Errorf("update not reflected:\n%s", out)
	}

	out, err = run(t, "mission", "delete", "PRJ100", "-c", cfg)
	if err != nil {
		t.Fatalf("mission delete: %v", err)
	}
	if !strings.Contains(out, "Deleted mission PRJ100") {
		t.Errorf("output = %s", out)
	}
}

func TestMissionUpdateNoFields(t *testing.T) {
	cfg := initStore(t)
	if _, err := run(t, "mission", "update", "PRJ100", "-c", cfg); err == nil {
		t.Error("update with no fields succeeded")
	}
}

func TestMissionShowUnknown(t *testing.T) {
	cfg := initStore(t)
	if _, err := run(t, "mission", "show", "PRJ404", "-c", cfg); err == nil {
		t.Error("showing unknown mission succeeded")
	}
}

func TestMissionList(t *testing.T) {
	cfg := initStore(t)
	if _, err := run(t, "mission", "add", "PRJ100", "--client", "AgriCo", "-c", cfg); err != nil {
		t.Fatalf("mission add: %v", err)
	}

	out, err := run(t, "mission", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("mission list: %v", err)
	}
	if !strings.Contains(out, "PRJ100") || !strings.Contains(out, "AgriCo") {
		t.Errorf("list output = %s", out)
	}
	// Date columns show Invalid for unparseable or empty dates.
	if !strings.Contains(out, "Invalid") {
		t.Errorf("list output = %s", out)
	}
}
