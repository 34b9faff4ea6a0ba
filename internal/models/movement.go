package models

import (
	"time"

	"gorm.io/datatypes"
)

// MovementAssessment stores a movement screening. Selections and Analysis
// are opaque JSON written by the client; the server round-trips them without
// interpreting their shape.
type MovementAssessment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AthleteID uint `gorm:"not null;index" json:"athlete_id"`

	Selections datatypes.JSON `gorm:"type:jsonb" json:"selections_json"`
	Analysis   datatypes.JSON `gorm:"type:jsonb" json:"analysis_json"`

	AthleteComment string `gorm:"type:text" json:"athlete_comment"`
	CoachComment   string `gorm:"type:text" json:"coach_comment"`

	CreatedAt time.Time `json:"created_at"`
}
