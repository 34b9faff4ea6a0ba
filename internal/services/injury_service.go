package services

import (
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidSeverity = errors.New("severity must be Minor, Moderate or Severe")
	ErrInvalidStatus   = errors.New("status must be Active, Recovering or Resolved")
)

type InjuryService struct {
	db *gorm.DB
}

func NewInjuryService(db *gorm.DB) *InjuryService {
	return &InjuryService{db: db}
}

func (s *InjuryService) ListByAthlete(athleteID uint) ([]models.Injury, error) {
	items := []models.Injury{}
	err := s.db.Where("athlete_id = ?", athleteID).
		Order("date_reported DESC NULLS LAST").
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list injuries: %w", err)
	}
	return items, nil
}

// Create validates severity and status against their closed sets before
// anything reaches the store; the columns themselves are plain text.
func (s *InjuryService) Create(req *dto.CreateInjuryRequest) (*models.Injury, error) {
	if req.AthleteID == 0 {
		return nil, ErrAthleteRequired
	}
	if !models.ValidSeverity(req.Severity) {
		return nil, ErrInvalidSeverity
	}
	if !models.ValidInjuryStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	ok, err := athleteExists(s.db, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAthleteNotFound
	}

	item := models.Injury{
		AthleteID:    req.AthleteID,
		DateReported: req.DateReported,
		Area:         req.Area,
		Severity:     req.Severity,
		Status:       req.Status,
		RecoveryPlan: req.RecoveryPlan,
		Notes:        req.Notes,
		Diagnosis:    req.Diagnosis,
		Mechanism:    req.Mechanism,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create injury: %w", err)
	}
	return &item, nil
}
