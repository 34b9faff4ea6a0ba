package dto

import (
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/models"
)

type AthleteSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Level     string `json:"level"`
	Sport     string `json:"sport"`
}

type AssessmentSummary struct {
	ID        uint         `json:"id"`
	AthleteID uint         `json:"athlete_id"`
	Date      *models.Date `json:"date"`
	CreatedAt time.Time    `json:"created_at"`
}

type MovementSummary struct {
	ID        uint      `json:"id"`
	AthleteID uint      `json:"athlete_id"`
	CreatedAt time.Time `json:"created_at"`
}

type InjurySummary struct {
	ID           uint         `json:"id"`
	AthleteID    uint         `json:"athlete_id"`
	Status       string       `json:"status"`
	Area         string       `json:"area"`
	DateReported *models.Date `json:"date_reported"`
}

// DashboardOverview aggregates independent reads; the counts and lists may
// reflect slightly different moments under concurrent writes.
type DashboardOverview struct {
	TotalAthletes            int64 `json:"total_athletes"`
	TotalAssessments         int64 `json:"total_assessments"`
	TotalMovementAssessments int64 `json:"total_movement_assessments"`
	InjuredAthletes          int64 `json:"injured_athletes"`

	LatestAthletes    []AthleteSummary    `json:"latest_athletes"`
	LatestAssessments []AssessmentSummary `json:"latest_assessments"`
	LatestMovements   []MovementSummary   `json:"latest_movements"`
	LatestInjuries    []InjurySummary     `json:"latest_injuries"`
}
