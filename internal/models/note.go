package models

import (
	"time"

	"gorm.io/datatypes"
)

// Note is a free-text coach note on an athlete. Tags is a JSON array of
// strings; pinned notes sort ahead of everything else in listings.
type Note struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AthleteID uint `gorm:"not null;index" json:"athlete_id"`

	Text   string         `gorm:"type:text;not null" json:"text"`
	Tags   datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Pinned bool           `gorm:"default:false;index" json:"pinned"`
	Author string         `gorm:"size:100" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
