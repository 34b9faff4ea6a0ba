package dto

import "github.com/coachdesk/coachdesk-backend/internal/models"

// CreateAthleteRequest carries the full intake form. Only the name fields
// are required.
type CreateAthleteRequest struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	DateOfBirth *models.Date `json:"date_of_birth"`
	Gender      string       `json:"gender"`
	Sport       string       `json:"sport"`
	Position    string       `json:"position"`
	PhotoURL    string       `json:"photo_url"`
	Email       string       `json:"email"`
	City        string       `json:"city"`

	Level    string `json:"level"`
	ClubTeam string `json:"club_team"`
	MomName  string `json:"mom_name"`
	DadName  string `json:"dad_name"`

	MedicalConditions string `json:"medical_conditions"`
	Allergies         string `json:"allergies"`
	Medications       string `json:"medications"`

	Achievements      string `json:"achievements"`
	PracticeFrequency string `json:"practice_frequency"`
	WorkoutFrequency  string `json:"workout_frequency"`
	SkillFrequency    string `json:"skill_frequency"`
	DevelopmentLevel  string `json:"development_level"`
	NutritionHabits   string `json:"nutrition_habits"`
	HydrationHabits   string `json:"hydration_habits"`
	Supplements       string `json:"supplements"`
	SleepHabits       string `json:"sleep_habits"`

	GoalLongTerm        string `json:"goal_long_term"`
	GoalSportSpecific   string `json:"goal_sport_specific"`
	GoalAthleteSpecific string `json:"goal_athlete_specific"`

	CoachAthleteMentality   string `json:"coach_athlete_mentality"`
	CoachAthletePersonality string `json:"coach_athlete_personality"`
	CoachPrehabNeeds        string `json:"coach_prehab_needs"`
	CoachTestingRequest     string `json:"coach_testing_request"`
	CoachSupplementRequests string `json:"coach_supplement_requests"`
	CoachNotes              string `json:"coach_notes"`

	IQTrainingStyle           string `json:"iq_training_style"`
	IQMotivationWorkEthic     string `json:"iq_motivation_work_ethic"`
	IQLearningPreference      string `json:"iq_learning_preference"`
	IQCommunicationPreference string `json:"iq_communication_preference"`

	AdditionalComments string `json:"additional_comments"`
}

func (r *CreateAthleteRequest) ToModel() models.Athlete {
	return models.Athlete{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Sport:       r.Sport,
		Position:    r.Position,
		PhotoURL:    r.PhotoURL,
		Email:       r.Email,
		City:        r.City,

		Level:    r.Level,
		ClubTeam: r.ClubTeam,
		MomName:  r.MomName,
		DadName:  r.DadName,

		MedicalConditions: r.MedicalConditions,
		Allergies:         r.Allergies,
		Medications:       r.Medications,

		Achievements:      r.Achievements,
		PracticeFrequency: r.PracticeFrequency,
		WorkoutFrequency:  r.WorkoutFrequency,
		SkillFrequency:    r.SkillFrequency,
		DevelopmentLevel:  r.DevelopmentLevel,
		NutritionHabits:   r.NutritionHabits,
		HydrationHabits:   r.HydrationHabits,
		Supplements:       r.Supplements,
		SleepHabits:       r.SleepHabits,

		GoalLongTerm:        r.GoalLongTerm,
		GoalSportSpecific:   r.GoalSportSpecific,
		GoalAthleteSpecific: r.GoalAthleteSpecific,

		CoachAthleteMentality:   r.CoachAthleteMentality,
		CoachAthletePersonality: r.CoachAthletePersonality,
		CoachPrehabNeeds:        r.CoachPrehabNeeds,
		CoachTestingRequest:     r.CoachTestingRequest,
		CoachSupplementRequests: r.CoachSupplementRequests,
		CoachNotes:              r.CoachNotes,

		IQTrainingStyle:           r.IQTrainingStyle,
		IQMotivationWorkEthic:     r.IQMotivationWorkEthic,
		IQLearningPreference:      r.IQLearningPreference,
		IQCommunicationPreference: r.IQCommunicationPreference,

		AdditionalComments: r.AdditionalComments,
	}
}

// UpdateAthleteRequest is the PATCH body. Every field is a pointer so the
// handler can distinguish "absent" from "set to empty".
type UpdateAthleteRequest struct {
	FirstName   *string      `json:"first_name"`
	LastName    *string      `json:"last_name"`
	DateOfBirth *models.Date `json:"date_of_birth"`
	Gender      *string      `json:"gender"`
	Sport       *string      `json:"sport"`
	Position    *string      `json:"position"`
	PhotoURL    *string      `json:"photo_url"`
	Email       *string      `json:"email"`
	City        *string      `json:"city"`

	Level    *string `json:"level"`
	ClubTeam *string `json:"club_team"`
	MomName  *string `json:"mom_name"`
	DadName  *string `json:"dad_name"`

	MedicalConditions *string `json:"medical_conditions"`
	Allergies         *string `json:"allergies"`
	Medications       *string `json:"medications"`

	Achievements      *string `json:"achievements"`
	PracticeFrequency *string `json:"practice_frequency"`
	WorkoutFrequency  *string `json:"workout_frequency"`
	SkillFrequency    *string `json:"skill_frequency"`
	DevelopmentLevel  *string `json:"development_level"`
	NutritionHabits   *string `json:"nutrition_habits"`
	HydrationHabits   *string `json:"hydration_habits"`
	Supplements       *string `json:"supplements"`
	SleepHabits       *string `json:"sleep_habits"`

	GoalLongTerm        *string `json:"goal_long_term"`
	GoalSportSpecific   *string `json:"goal_sport_specific"`
	GoalAthleteSpecific *string `json:"goal_athlete_specific"`

	CoachAthleteMentality   *string `json:"coach_athlete_mentality"`
	CoachAthletePersonality *string `json:"coach_athlete_personality"`
	CoachPrehabNeeds        *string `json:"coach_prehab_needs"`
	CoachTestingRequest     *string `json:"coach_testing_request"`
	CoachSupplementRequests *string `json:"coach_supplement_requests"`
	CoachNotes              *string `json:"coach_notes"`

	IQTrainingStyle           *string `json:"iq_training_style"`
	IQMotivationWorkEthic     *string `json:"iq_motivation_work_ethic"`
	IQLearningPreference      *string `json:"iq_learning_preference"`
	IQCommunicationPreference *string `json:"iq_communication_preference"`

	AdditionalComments *string `json:"additional_comments"`
}

// Updates returns a column→value map holding only the fields present in the
// request, ready for a partial GORM update.
func (r *UpdateAthleteRequest) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	setString := func(col string, v *string) {
		if v != nil {
			u[col] = *v
		}
	}

	setString("first_name", r.FirstName)
	setString("last_name", r.LastName)
	if r.DateOfBirth != nil {
		u["date_of_birth"] = r.DateOfBirth
	}
	setString("gender", r.Gender)
	setString("sport", r.Sport)
	setString("position", r.Position)
	setString("photo_url", r.PhotoURL)
	setString("email", r.Email)
	setString("city", r.City)

	setString("level", r.Level)
	setString("club_team", r.ClubTeam)
	setString("mom_name", r.MomName)
	setString("dad_name", r.DadName)

	setString("medical_conditions", r.MedicalConditions)
	setString("allergies", r.Allergies)
	setString("medications", r.Medications)

	setString("achievements", r.Achievements)
	setString("practice_frequency", r.PracticeFrequency)
	setString("workout_frequency", r.WorkoutFrequency)
	setString("skill_frequency", r.SkillFrequency)
	setString("development_level", r.DevelopmentLevel)
	setString("nutrition_habits", r.NutritionHabits)
	setString("hydration_habits", r.HydrationHabits)
	setString("supplements", r.Supplements)
	setString("sleep_habits", r.SleepHabits)

	setString("goal_long_term", r.GoalLongTerm)
	setString("goal_sport_specific", r.GoalSportSpecific)
	setString("goal_athlete_specific", r.GoalAthleteSpecific)

	setString("coach_athlete_mentality", r.CoachAthleteMentality)
	setString("coach_athlete_personality", r.CoachAthletePersonality)
	setString("coach_prehab_needs", r.CoachPrehabNeeds)
	setString("coach_testing_request", r.CoachTestingRequest)
	setString("coach_supplement_requests", r.CoachSupplementRequests)
	setString("coach_notes", r.CoachNotes)

	setString("iq_training_style", r.IQTrainingStyle)
	setString("iq_motivation_work_ethic", r.IQMotivationWorkEthic)
	setString("iq_learning_preference", r.IQLearningPreference)
	setString("iq_communication_preference", r.IQCommunicationPreference)

	setString("additional_comments", r.AdditionalComments)

	return u
}
