package models

import "time"

// Injury severity and status are closed sets enforced at the API boundary.
const (
	SeverityMinor    = "Minor"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"

	InjuryStatusActive     = "Active"
	InjuryStatusRecovering = "Recovering"
	InjuryStatusResolved   = "Resolved"
)

// ValidSeverity reports whether s is an accepted severity. Empty is allowed:
// an injury can be logged before triage.
func ValidSeverity(s string) bool {
	switch s {
	case "", SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// ValidInjuryStatus reports whether s is an accepted status.
func ValidInjuryStatus(s string) bool {
	switch s {
	case "", InjuryStatusActive, InjuryStatusRecovering, InjuryStatusResolved:
		return true
	}
	return false
}

// Injury is an append-only injury record for one athlete.
type Injury struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AthleteID uint `gorm:"not null;index" json:"athlete_id"`

	DateReported *Date  `gorm:"type:date" json:"date_reported"`
	Area         string `gorm:"size:100" json:"area"`
	Severity     string `gorm:"size:20" json:"severity"`
	Status       string `gorm:"size:20;index" json:"status"`
	RecoveryPlan string `gorm:"type:text" json:"recovery_plan"`
	Notes        string `gorm:"type:text" json:"notes"`

	// Profile preview extras
	Diagnosis string `gorm:"type:text" json:"diagnosis"`
	Mechanism string `gorm:"type:text" json:"mechanism"`

	CreatedAt time.Time `json:"created_at"`
}
