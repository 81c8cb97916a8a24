package dashboard

import (
	"fmt"

	"github.com/skyops/airboss/internal/models"
	"gorm.io/gorm"
)

// ScanWithEvents is one historical scan plus its recorded conflicts.
type ScanWithEvents struct {
	models.ScanRecord
	Events []models.ConflictEvent `json:"events"`
}

// RecentScans returns the most recent scans, newest first, with their
// conflict events attached.
func RecentScans(db *gorm.DB, limit int) ([]ScanWithEvents, error) {
	if limit <= 0 {
		limit = 50
	}
	var scans []models.ScanRecord
	if err := db.Order("ran_at DESC").Limit(limit).Find(&scans).Error; err != nil {
		return nil, fmt.Errorf("dashboard: load scans: %w", err)
	}

	out := make([]ScanWithEvents, len(scans))
	for i, s := range scans {
		out[i].ScanRecord = s
		if err := db.Where("scan_id = ?", s.ID).Order("id ASC").
			Find(&out[i].Events).Error; err != nil {
			return nil, fmt.Errorf("dashboard: load events for scan %d: %w", s.ID, err)
		}
	}
	return out, nil
}
