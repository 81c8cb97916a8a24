package models

// Mission is a project row as stored in the record store. Date columns stay
// raw; missions with unparsable dates are excluded from date-based checks
// downstream rather than rejected here.
type Mission struct {
	ProjectID      string `gorm:"primaryKey;size:32" json:"project_id"`
	Client         string `gorm:"size:128" json:"client"`
	Location       string `gorm:"size:64;index" json:"location"`
	Priority       string `gorm:"size:32;index" json:"priority"`
	RequiredSkills string `gorm:"type:text" json:"required_skills"`
	RequiredCerts  string `gorm:"type:text" json:"required_certs"`
	StartDate      string `gorm:"size:32" json:"start_date"`
	EndDate        string `gorm:"size:32" json:"end_date"`
}
