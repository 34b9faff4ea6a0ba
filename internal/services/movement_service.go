package services

import (
	"fmt"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MovementService struct {
	db *gorm.DB
}

func NewMovementService(db *gorm.DB) *MovementService {
	return &MovementService{db: db}
}

// ListByAthlete returns screenings oldest first. Unlike every other listing
// this one reads chronologically, because the profile view charts movement
// development over time.
func (s *MovementService) ListByAthlete(athleteID uint) ([]models.MovementAssessment, error) {
	items := []models.MovementAssessment{}
	err := s.db.Where("athlete_id = ?", athleteID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movement assessments: %w", err)
	}
	return items, nil
}

// Create stores one screening. The selections and analysis documents are
// written through untouched; their shape belongs to the client.
func (s *MovementService) Create(req *dto.CreateMovementRequest) (*models.MovementAssessment, error) {
	if req.AthleteID == 0 {
		return nil, ErrAthleteRequired
	}

	ok, err := athleteExists(s.db, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAthleteNotFound
	}

	item := models.MovementAssessment{
		AthleteID:      req.AthleteID,
		Selections:     datatypes.JSON(req.SelectionsJSON),
		Analysis:       datatypes.JSON(req.AnalysisJSON),
		AthleteComment: req.AthleteComment,
		CoachComment:   req.CoachComment,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create movement assessment: %w", err)
	}
	return &item, nil
}
