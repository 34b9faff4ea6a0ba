package services

import (
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/gorm"
)

var ErrMeasurementsRequired = errors.New("cmf_left, cmf_right, cmp_left and cmp_right are required")

type AssessmentService struct {
	db *gorm.DB
}

func NewAssessmentService(db *gorm.DB) *AssessmentService {
	return &AssessmentService{db: db}
}

// ListByAthlete returns sessions newest first by session date, undated rows
// last, creation time breaking ties.
func (s *AssessmentService) ListByAthlete(athleteID uint) ([]models.Assessment, error) {
	items := []models.Assessment{}
	err := s.db.Where("athlete_id = ?", athleteID).
		Order("date DESC NULLS LAST").
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return items, nil
}

// Create persists one session. Assessments are immutable history: there is
// no update or delete path.
func (s *AssessmentService) Create(req *dto.CreateAssessmentRequest) (*models.Assessment, error) {
	if req.AthleteID == 0 {
		return nil, ErrAthleteRequired
	}
	if req.CMFLeft == nil || req.CMFRight == nil || req.CMPLeft == nil || req.CMPRight == nil {
		return nil, ErrMeasurementsRequired
	}

	ok, err := athleteExists(s.db, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAthleteNotFound
	}

	item := models.Assessment{
		AthleteID:    req.AthleteID,
		Date:         req.Date,
		Age:          req.Age,
		Weight:       req.Weight,
		CMFLeft:      *req.CMFLeft,
		CMFRight:     *req.CMFRight,
		CMPLeft:      *req.CMPLeft,
		CMPRight:     *req.CMPRight,
		CustomTarget: req.CustomTarget,
		Goal:         req.Goal,
		CoachComment: req.CoachComment,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	return &item, nil
}
