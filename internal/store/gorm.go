package store

import (
	"fmt"

	"github.com/skyops/airboss/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM database (SQLite locally,
// MySQL-protocol server for shared deployments). Load always reads the
// current table state, so a reload after write is a plain Load.
type GormStore struct {
	db *gorm.DB
}

// NewGorm wraps a GORM handle in the record store contract.
func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// kindColumns whitelists the column names of each dataset. Field names
// arriving from callers are checked against this before being interpolated
// into a query.
var kindColumns = map[Kind][]string{
	KindPilots:   {"pilot_id", "name", "location", "status", "skills", "certifications", "current_assignment", "available_from"},
	KindDrones:   {"drone_id", "model", "capabilities", "status", "location", "current_assignment", "maintenance_due"},
	KindMissions: {"project_id", "client", "location", "priority", "required_skills", "required_certs", "start_date", "end_date"},
}

// kindModel returns a fresh model pointer for the kind, used to target the
// right table in update and delete queries.
func kindModel(kind Kind) interface{} {
	switch kind {
	case KindPilots:
		return &models.Pilot{}
	case KindDrones:
		return &models.Drone{}
	case KindMissions:
		return &models.Mission{}
	default:
		return nil
	}
}

func validColumn(kind Kind, col string) bool {
	for _, c := range kindColumns[kind] {
		if c == col {
			return true
		}
	}
	return false
}

// Load returns all rows of one entity kind as raw named fields.
func (s *GormStore) Load(kind Kind) ([]Row, error) {
	switch kind {
	case KindPilots:
		var pilots []models.Pilot
		if err := s.db.Order("pilot_id ASC").Find(&pilots).Error; err != nil {
			return nil, fmt.Errorf("store: load pilots: %w", err)
		}
		rows := make([]Row, len(pilots))
		for i, p := range pilots {
			rows[i] = Row{
				"pilot_id":           p.PilotID,
				"name":               p.Name,
				"location":           p.Location,
				"status":             p.Status,
				"skills":             p.Skills,
				"certifications":     p.Certifications,
				"current_assignment": p.CurrentAssignment,
				"available_from":     p.AvailableFrom,
			}
		}
		return rows, nil
	case KindDrones:
		var drones []models.Drone
		if err := s.db.Order("drone_id ASC").Find(&drones).Error; err != nil {
			return nil, fmt.Errorf("store: load drones: %w", err)
		}
		rows := make([]Row, len(drones))
		for i, d := range drones {
			rows[i] = Row{
				"drone_id":           d.DroneID,
				"model":              d.Model,
				"capabilities":       d.Capabilities,
				"status":             d.Status,
				"location":           d.Location,
				"current_assignment": d.CurrentAssignment,
				"maintenance_due":    d.MaintenanceDue,
			}
		}
		return rows, nil
	case KindMissions:
		var missions []models.Mission
		if err := s.db.Order("project_id ASC").Find(&missions).Error; err != nil {
			return nil, fmt.Errorf("store: load missions: %w", err)
		}
		rows := make([]Row, len(missions))
		for i, m := range missions {
			rows[i] = Row{
				"project_id":      m.ProjectID,
				"client":          m.Client,
				"location":        m.Location,
				"priority":        m.Priority,
				"required_skills": m.RequiredSkills,
				"required_certs":  m.RequiredCerts,
				"start_date":      m.StartDate,
				"end_date":        m.EndDate,
			}
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("store: unknown kind %q", kind)
	}
}

// UpdateFields applies field-level updates to the row keyed by keyCol=keyVal.
func (s *GormStore) UpdateFields(kind Kind, keyCol, keyVal string, updates map[string]string) error {
	model := kindModel(kind)
	if model == nil {
		return fmt.Errorf("store: unknown kind %q", kind)
	}
	if !validColumn(kind, keyCol) {
		return fmt.Errorf("store: %s has no column %q", kind, keyCol)
	}
	vals := make(map[string]interface{}, len(updates))
	for col, v := range updates {
		if !validColumn(kind, col) {
			return fmt.Errorf("store: %s has no column %q", kind, col)
		}
		vals[col] = v
	}

	result := s.db.Model(model).Where(keyCol+" = ?", keyVal).Updates(vals)
	if result.Error != nil {
		return fmt.Errorf("store: update %s %s=%s: %w", kind, keyCol, keyVal, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("store: update %s %s=%s: %w", kind, keyCol, keyVal, ErrRowNotFound)
	}
	return nil
}

// Append inserts a new row built from the given fields. Unknown field names
// are rejected; omitted columns default to empty.
func (s *GormStore) Append(kind Kind, fields map[string]string) error {
	for col := range fields {
		if !validColumn(kind, col) {
			return fmt.Errorf("store: %s has no column %q", kind, col)
		}
	}

	var row interface{}
	switch kind {
	case KindPilots:
		row = &models.Pilot{
			PilotID:           fields["pilot_id"],
			Name:              fields["name"],
			Location:          fields["location"],
			Status:            fields["status"],
			Skills:            fields["skills"],
			Certifications:    fields["certifications"],
			CurrentAssignment: fields["current_assignment"],
			AvailableFrom:     fields["available_from"],
		}
	case KindDrones:
		row = &models.Drone{
			DroneID:           fields["drone_id"],
			Model:             fields["model"],
			Capabilities:      fields["capabilities"],
			Status:            fields["status"],
			Location:          fields["location"],
			CurrentAssignment: fields["current_assignment"],
			MaintenanceDue:    fields["maintenance_due"],
		}
	case KindMissions:
		row = &models.Mission{
			ProjectID:      fields["project_id"],
			Client:         fields["client"],
			Location:       fields["location"],
			Priority:       fields["priority"],
			RequiredSkills: fields["required_skills"],
			RequiredCerts:  fields["required_certs"],
			StartDate:      fields["start_date"],
			EndDate:        fields["end_date"],
		}
	default:
		return fmt.Errorf("store: unknown kind %q", kind)
	}

	if err := s.db.Create(row).Error; err != nil {
		return fmt.Errorf("store: append to %s: %w", kind, err)
	}
	return nil
}

// Delete removes the row keyed by keyCol=keyVal.
func (s *GormStore) Delete(kind Kind, keyCol, keyVal string) error {
	model := kindModel(kind)
	if model == nil {
		return fmt.Errorf("store: unknown kind %q", kind)
	}
	if !validColumn(kind, keyCol) {
		return fmt.Errorf("store: %s has no column %q", kind, keyCol)
	}

	result := s.db.Where(keyCol+" = ?", keyVal).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("store: delete %s %s=%s: %w", kind, keyCol, keyVal, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("store: delete %s %s=%s: %w", kind, keyCol, keyVal, ErrRowNotFound)
	}
	return nil
}
