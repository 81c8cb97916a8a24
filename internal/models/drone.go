package models

// Drone is a fleet row as stored in the record store.
type Drone struct {
	DroneID           string `gorm:"primaryKey;size:32" json:"drone_id"`
	Model             string `gorm:"size:64" json:"model"`
	Capabilities      string `gorm:"type:text" json:"capabilities"`
	Status            string `gorm:"size:32;index" json:"status"`
	Location          string `gorm:"size:64;index" json:"location"`
	CurrentAssignment string `gorm:"size:32" json:"current_assignment"`
	MaintenanceDue    string `gorm:"size:32" json:"maintenance_due"`
}
