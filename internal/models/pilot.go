package models

// Pilot is a roster row as stored in the record store. All fields are kept
// as raw strings; parsing into typed values happens in the snapshot layer so
// that malformed spreadsheet-style input round-trips unchanged.
type Pilot struct {
	PilotID           string `gorm:"primaryKey;size:32" json:"pilot_id"`
	Name              string `gorm:"size:128" json:"name"`
	Location          string `gorm:"size:64;index" json:"location"`
	Status            string `gorm:"size:32;index" json:"status"`
	Skills            string `gorm:"type:text" json:"skills"`
	Certifications    string `gorm:"type:text" json:"certifications"`
	CurrentAssignment string `gorm:"size:32" json:"current_assignment"`
	AvailableFrom     string `gorm:"size:32" json:"available_from"`
}
