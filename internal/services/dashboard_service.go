package services

import (
	"fmt"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/gorm"
)

const dashboardLatestLimit = 10

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Overview runs its reads independently, without a shared snapshot. Counts
// and lists may straddle concurrent writes; for a summary screen that is an
// accepted trade, not something to coordinate around.
func (s *DashboardService) Overview() (*dto.DashboardOverview, error) {
	// Non-nil slices so empty lists serialize as [] rather than null.
	out := dto.DashboardOverview{
		LatestAthletes:    []dto.AthleteSummary{},
		LatestAssessments: []dto.AssessmentSummary{},
		LatestMovements:   []dto.MovementSummary{},
		LatestInjuries:    []dto.InjurySummary{},
	}

	if err := s.db.Model(&models.Athlete{}).Count(&out.TotalAthletes).Error; err != nil {
		return nil, fmt.Errorf("failed to count athletes: %w", err)
	}
	if err := s.db.Model(&models.Assessment{}).Count(&out.TotalAssessments).Error; err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}
	if err := s.db.Model(&models.MovementAssessment{}).Count(&out.TotalMovementAssessments).Error; err != nil {
		return nil, fmt.Errorf("failed to count movement assessments: %w", err)
	}

	err := s.db.Model(&models.Injury{}).
		Where("status IN ?", []string{models.InjuryStatusActive, models.InjuryStatusRecovering}).
		Distinct("athlete_id").
		Count(&out.InjuredAthletes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count injured athletes: %w", err)
	}

	if err := s.latest(&models.Athlete{}, &out.LatestAthletes); err != nil {
		return nil, err
	}
	if err := s.latest(&models.Assessment{}, &out.LatestAssessments); err != nil {
		return nil, err
	}
	if err := s.latest(&models.MovementAssessment{}, &out.LatestMovements); err != nil {
		return nil, err
	}
	if err := s.latest(&models.Injury{}, &out.LatestInjuries); err != nil {
		return nil, err
	}

	return &out, nil
}

// latest selects the newest rows of model projected into the summary slice.
func (s *DashboardService) latest(model interface{}, dest interface{}) error {
	err := s.db.Model(model).
		Order("created_at DESC, id DESC").
		Limit(dashboardLatestLimit).
		Find(dest).Error
	if err != nil {
		return fmt.Errorf("failed to load latest rows: %w", err)
	}
	return nil
}
