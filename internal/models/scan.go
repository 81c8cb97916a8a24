package models

import "time"

// ScanRecord captures one conflict-detection pass run by the watch daemon.
type ScanRecord struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RanAt  time.Time `gorm:"index" json:"ran_at"`
	Total  int       `json:"total"`
	High   int       `json:"high"`
	Medium int       `json:"medium"`
	Low    int       `json:"low"`
}

// ConflictEvent is one conflict observed during a scan, kept for history and
// dashboard display. Details holds the typed payload as JSON.
type ConflictEvent struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ScanID         uint   `gorm:"index" json:"scan_id"`
	Type           string `gorm:"size:32;index" json:"type"`
	Severity       string `gorm:"size:16" json:"severity"`
	Description    string `gorm:"type:text" json:"description"`
	AffectedEntity string `gorm:"size:32;index" json:"affected_entity"`
	Details        string `gorm:"type:json" json:"details"`
	CreatedAt      time.Time
}
