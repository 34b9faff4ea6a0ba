package models

import "time"

// Assessment is a single force-plate testing session. Rows are append-only:
// the API exposes create and list, never update or delete.
type Assessment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AthleteID uint `gorm:"not null;index" json:"athlete_id"`

	Date   *Date    `gorm:"type:date" json:"date"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`

	CMFLeft  float64 `gorm:"not null" json:"cmf_left"`
	CMFRight float64 `gorm:"not null" json:"cmf_right"`
	CMPLeft  float64 `gorm:"not null" json:"cmp_left"`
	CMPRight float64 `gorm:"not null" json:"cmp_right"`

	RatioLeft    *float64 `json:"ratio_left"`
	RatioRight   *float64 `json:"ratio_right"`
	CustomTarget *float64 `json:"custom_target"`

	Goal                  string `gorm:"size:255" json:"goal"`
	RecommendationSummary string `gorm:"type:text" json:"recommendation_summary"`
	CoachComment          string `gorm:"type:text" json:"coach_comment"`

	CreatedAt time.Time `json:"created_at"`
}
