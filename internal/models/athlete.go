package models

import "time"

// Athlete is the coach-facing profile. Only the name is mandatory; everything
// else gets filled in over time from intake forms and coach sessions.
type Athlete struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Identity
	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth *Date  `gorm:"type:date" json:"date_of_birth"`
	Gender      string `gorm:"size:50" json:"gender"`
	Sport       string `gorm:"size:100" json:"sport"`
	Position    string `gorm:"size:100" json:"position"`
	PhotoURL    string `gorm:"size:500" json:"photo_url"`
	Email       string `gorm:"size:255" json:"email"`
	City        string `gorm:"size:100" json:"city"`

	// Summary
	Level    string `gorm:"size:100" json:"level"`
	ClubTeam string `gorm:"size:100" json:"club_team"`
	MomName  string `gorm:"size:100" json:"mom_name"`
	DadName  string `gorm:"size:100" json:"dad_name"`

	// Medical history
	MedicalConditions string `gorm:"type:text" json:"medical_conditions"`
	Allergies         string `gorm:"type:text" json:"allergies"`
	Medications       string `gorm:"type:text" json:"medications"`

	// Background and experience
	Achievements      string `gorm:"type:text" json:"achievements"`
	PracticeFrequency string `gorm:"size:100" json:"practice_frequency"`
	WorkoutFrequency  string `gorm:"size:100" json:"workout_frequency"`
	SkillFrequency    string `gorm:"size:100" json:"skill_frequency"`
	DevelopmentLevel  string `gorm:"size:100" json:"development_level"`
	NutritionHabits   string `gorm:"type:text" json:"nutrition_habits"`
	HydrationHabits   string `gorm:"type:text" json:"hydration_habits"`
	Supplements       string `gorm:"type:text" json:"supplements"`
	SleepHabits       string `gorm:"type:text" json:"sleep_habits"`

	// Training objectives
	GoalLongTerm        string `gorm:"type:text" json:"goal_long_term"`
	GoalSportSpecific   string `gorm:"type:text" json:"goal_sport_specific"`
	GoalAthleteSpecific string `gorm:"type:text" json:"goal_athlete_specific"`

	// Coach evaluation
	CoachAthleteMentality   string `gorm:"type:text" json:"coach_athlete_mentality"`
	CoachAthletePersonality string `gorm:"type:text" json:"coach_athlete_personality"`
	CoachPrehabNeeds        string `gorm:"type:text" json:"coach_prehab_needs"`
	CoachTestingRequest     string `gorm:"type:text" json:"coach_testing_request"`
	CoachSupplementRequests string `gorm:"type:text" json:"coach_supplement_requests"`
	CoachNotes              string `gorm:"type:text" json:"coach_notes"`

	// Coach IQ
	IQTrainingStyle           string `gorm:"type:text" json:"iq_training_style"`
	IQMotivationWorkEthic     string `gorm:"type:text" json:"iq_motivation_work_ethic"`
	IQLearningPreference      string `gorm:"type:text" json:"iq_learning_preference"`
	IQCommunicationPreference string `gorm:"type:text" json:"iq_communication_preference"`

	AdditionalComments string `gorm:"type:text" json:"additional_comments"`

	CreatedAt time.Time `json:"created_at"`

	// Child records. The FK constraints give the store cascade-on-delete;
	// the delete path still removes children explicitly in its transaction.
	Assessments         []Assessment         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MovementAssessments []MovementAssessment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Injuries            []Injury             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notes               []Note               `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
