package db

import (
	"fmt"

	"github.com/skyops/airboss/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDemo upserts a small demo roster, fleet, and mission set so a fresh
// install has data to scan. Existing rows with the same keys are overwritten.
func SeedDemo(db *gorm.DB) error {
	pilots := []models.Pilot{
		{PilotID: "P001", Name: "Arjun Mehta", Location: "Bangalore", Status: "Available",
			Skills: "mapping, thermal", Certifications: "dgca-small, night-ops",
			CurrentAssignment: "–", AvailableFrom: "2024-01-01"},
		{PilotID: "P002", Name: "Sara Iyer", Location: "Mumbai", Status: "Assigned",
			Skills: "surveying, inspection", Certifications: "dgca-small",
			CurrentAssignment: "PRJ001", AvailableFrom: "2024-02-15"},
		{PilotID: "P003", Name: "Dev Kapoor", Location: "Delhi", Status: "On Leave",
			Skills: "mapping", Certifications: "",
			CurrentAssignment: "–", AvailableFrom: ""},
	}
	drones := []models.Drone{
		{DroneID: "D001", Model: "Matrice 350", Capabilities: "thermal, zoom",
			Status: "Available", Location: "Bangalore", CurrentAssignment: "–", MaintenanceDue: "2024-06-01"},
		{DroneID: "D002", Model: "Mavic 3E", Capabilities: "mapping",
			Status: "Deployed", Location: "Mumbai", CurrentAssignment: "PRJ001", MaintenanceDue: "2024-01-15"},
	}
	missions := []models.Mission{
		{ProjectID: "PRJ001", Client: "Metro Rail", Location: "Mumbai", Priority: "Urgent",
			RequiredSkills: "surveying", RequiredCerts: "dgca-small",
			StartDate: "2024-02-01", EndDate: "2024-02-14"},
		{ProjectID: "PRJ002", Client: "AgriCo", Location: "Bangalore", Priority: "Standard",
			RequiredSkills: "mapping, thermal", RequiredCerts: "",
			StartDate: "2024-02-10", EndDate: "2024-02-20"},
	}

	for _, p := range pilots {
		if err := upsert(db, &p, "pilot_id", []string{"name", "location", "status", "skills", "certifications", "current_assignment", "available_from"}); err != nil {
			return fmt.Errorf("db: seed pilot %s: %w", p.PilotID, err)
		}
	}
	for _, d := range drones {
		if err := upsert(db, &d, "drone_id", []string{"model", "capabilities", "status", "location", "current_assignment", "maintenance_due"}); err != nil {
			return fmt.Errorf("db: seed drone %s: %w", d.DroneID, err)
		}
	}
	for _, m := range missions {
		if err := upsert(db, &m, "project_id", []string{"client", "location", "priority", "required_skills", "required_certs", "start_date", "end_date"}); err != nil {
			return fmt.Errorf("db: seed mission %s: %w", m.ProjectID, err)
		}
	}
	return nil
}

func upsert(db *gorm.DB, row interface{}, keyCol string, updateCols []string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: keyCol}},
		DoUpdates: clause.AssignmentColumns(updateCols),
	}).Create(row).Error
}
