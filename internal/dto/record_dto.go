package dto

import (
	"encoding/json"

	"github.com/coachdesk/coachdesk-backend/internal/models"
)

// CreateAssessmentRequest carries one force-plate session. The four CM
// measurements are required; pointers distinguish missing from zero.
type CreateAssessmentRequest struct {
	AthleteID uint         `json:"athlete_id"`
	Date      *models.Date `json:"date"`
	Age       *int         `json:"age"`
	Weight    *float64     `json:"weight"`

	CMFLeft  *float64 `json:"cmf_left"`
	CMFRight *float64 `json:"cmf_right"`
	CMPLeft  *float64 `json:"cmp_left"`
	CMPRight *float64 `json:"cmp_right"`

	CustomTarget *float64 `json:"custom_target"`
	Goal         string   `json:"goal"`
	CoachComment string   `json:"coach_comment"`
}

// CreateMovementRequest carries one movement screening. The two blobs are
// opaque JSON documents produced by the screening UI.
type CreateMovementRequest struct {
	AthleteID      uint            `json:"athlete_id"`
	SelectionsJSON json.RawMessage `json:"selections_json"`
	AnalysisJSON   json.RawMessage `json:"analysis_json"`
	AthleteComment string          `json:"athlete_comment"`
	CoachComment   string          `json:"coach_comment"`
}

type CreateInjuryRequest struct {
	AthleteID    uint         `json:"athlete_id"`
	DateReported *models.Date `json:"date_reported"`
	Area         string       `json:"area"`
	Severity     string       `json:"severity"`
	Status       string       `json:"status"`
	RecoveryPlan string       `json:"recovery_plan"`
	Notes        string       `json:"notes"`
	Diagnosis    string       `json:"diagnosis"`
	Mechanism    string       `json:"mechanism"`
}

type CreateNoteRequest struct {
	AthleteID uint     `json:"athlete_id"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags"`
	Author    string   `json:"author"`
}

type PinRequest struct {
	Pinned bool `json:"pinned"`
}
