package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrAthleteRequired = errors.New("athlete_id is required")
	ErrNameRequired    = errors.New("first_name and last_name are required")
)

type AthleteService struct {
	db        *gorm.DB
	uploadDir string
}

func NewAthleteService(db *gorm.DB, uploadDir string) *AthleteService {
	return &AthleteService{db: db, uploadDir: uploadDir}
}

// List returns every athlete, newest first. The roster is small enough that
// pagination has never been needed.
func (s *AthleteService) List() ([]models.Athlete, error) {
	athletes := []models.Athlete{}
	if err := s.db.Order("id DESC").Find(&athletes).Error; err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

func (s *AthleteService) Get(id uint) (*models.Athlete, error) {
	var athlete models.Athlete
	if err := s.db.First(&athlete, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to load athlete: %w", err)
	}
	return &athlete, nil
}

func (s *AthleteService) Create(req *dto.CreateAthleteRequest) (*models.Athlete, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrNameRequired
	}

	athlete := req.ToModel()
	if err := s.db.Create(&athlete).Error; err != nil {
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}
	return &athlete, nil
}

// Update applies only the fields present in the request body.
func (s *AthleteService) Update(id uint, req *dto.UpdateAthleteRequest) (*models.Athlete, error) {
	athlete, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if first, ok := updates["first_name"].(string); ok && strings.TrimSpace(first) == "" {
		return nil, ErrNameRequired
	}
	if last, ok := updates["last_name"].(string); ok && strings.TrimSpace(last) == "" {
		return nil, ErrNameRequired
	}

	if len(updates) > 0 {
		if err := s.db.Model(athlete).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update athlete: %w", err)
		}
	}

	return s.Get(id)
}

// Delete removes the athlete and every dependent record in one transaction.
// The FK constraints cascade as well, but the explicit deletes keep the
// invariant independent of the store's configuration. The stored photo is
// unlinked afterwards, best effort.
func (s *AthleteService) Delete(id uint) error {
	athlete, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("athlete_id = ?", id).Delete(&models.Assessment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", id).Delete(&models.MovementAssessment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", id).Delete(&models.Injury{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", id).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		return tx.Delete(athlete).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}

	s.removePhoto(athlete.PhotoURL)
	return nil
}

func (s *AthleteService) removePhoto(photoURL string) {
	if !strings.HasPrefix(photoURL, "/uploads/") {
		return
	}
	name := filepath.Base(strings.TrimPrefix(photoURL, "/uploads/"))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return
	}
	if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove athlete photo", "file", name, "error", err)
	}
}

// athleteExists is shared by the child-record services so a create against a
// missing athlete fails as not-found instead of an FK violation.
func athleteExists(db *gorm.DB, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := db.Model(&models.Athlete{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check athlete: %w", err)
	}
	return count > 0, nil
}
