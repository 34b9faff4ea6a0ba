package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/coachdesk/coachdesk-backend/internal/dto"
	"github.com/coachdesk/coachdesk-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrTextRequired = errors.New("text is required")
)

const defaultNoteAuthor = "Coach"

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// ListByAthlete returns pinned notes first, then the rest newest first.
func (s *NoteService) ListByAthlete(athleteID uint) ([]models.Note, error) {
	notes := []models.Note{}
	err := s.db.Where("athlete_id = ?", athleteID).
		Order("pinned DESC").
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Create(req *dto.CreateNoteRequest) (*models.Note, error) {
	if req.AthleteID == 0 {
		return nil, ErrAthleteRequired
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}

	ok, err := athleteExists(s.db, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAthleteNotFound
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	author := req.Author
	if author == "" {
		author = defaultNoteAuthor
	}

	note := models.Note{
		AthleteID: req.AthleteID,
		Text:      req.Text,
		Tags:      datatypes.JSON(tagsJSON),
		Author:    author,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *NoteService) SetPinned(id uint, pinned bool) (*models.Note, error) {
	var note models.Note
	if err := s.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to load note: %w", err)
	}

	if err := s.db.Model(&note).Update("pinned", pinned).Error; err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &note, nil
}

// Delete is idempotent: removing an id that does not exist is a no-op.
func (s *NoteService) Delete(id uint) error {
	if err := s.db.Delete(&models.Note{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
