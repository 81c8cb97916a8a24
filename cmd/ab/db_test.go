package main

import (
	"strings"
	"testing"
)

func TestDBInit(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, "db", "init", "-c", cfg)
	if err != nil {
		t.Fatalf("db init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Migrated") {
		t.Errorf("output missing migration line: %s", out)
	}
	if !strings.Contains(out, "initialized successfully") {
		t.Errorf("output = %s", out)
	}
}

func TestDBInitWithSeed(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, "db", "init", "--seed", "-c", cfg)
	if err != nil {
		t.Fatalf("db init --seed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Seeded demo pilots, drones, and missions") {
		t.Errorf("output missing seed line: %s", out)
	}

	// Seeded data is visible through the regular commands.
	out, err = run(t, "pilot", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("pilot list: %v", err)
	}
	if !strings.Contains(out, "P001") {
		t.Errorf("seeded pilot missing from list: %s", out)
	}
}

func TestDBInitRerunIsIdempotent(t *testing.T) {
	cfg := writeTestConfig(t)

	if _, err := run(t, "db", "init", "-c", cfg); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if _, err := run(t, "db", "init", "-c", cfg); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestDBPing(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := run(t, "db", "init", "-c", cfg); err != nil {
		t.Fatalf("db init: %v", err)
	}

	out, err := run(t, "db", "ping", "-c", cfg)
	if err != nil {
		t.Fatalf("db ping: %v", err)
	}
	if !strings.Contains(out, "Record store reachable (driver sqlite)") {
		t.Errorf("output = %s", out)
	}
}

func TestDBInitMissingConfig(t *testing.T) {
	if _, err := run(t, "db", "init", "-c", "/nonexistent/airboss.yaml"); err == nil {
		t.Error("db init with missing config succeeded")
	}
}
