package model

import "time"

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUndisclosed Gender = "undisclosed"
	GenderUnspecified Gender = "unspecified"
)

type UnitType string

const (
	UnitMetric   UnitType = "metric"
	UnitImperial UnitType = "imperial"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalLoseWeight          Goal = "lose_weight"
	GoalGainMuscle          Goal = "gain_muscle"
	GoalDefineBody          Goal = "define_body"
	GoalImproveConditioning Goal = "improve_conditioning"
	GoalMaintainWeight      Goal = "maintain_weight"
	GoalReduceMeasurements  Goal = "reduce_measurements"
	GoalHealthyLifestyle    Goal = "healthy_lifestyle"
)

// SimplifiedGoal is the 3-way tag the expanded goal enum normalizes to.
type SimplifiedGoal string

const (
	SimplifiedLose     SimplifiedGoal = "lose"
	SimplifiedMaintain SimplifiedGoal = "maintain"
	SimplifiedGain     SimplifiedGoal = "gain"
)

type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
	CategorySnack     MealCategory = "snack"
)

// MealCategories lists the fixed category buckets in display order.
var MealCategories = []MealCategory{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack}

// Profile is the full biometric and preference record for one user.
// The *Goal fields are derived; they are overwritten by the goal
// calculator whenever any of age/gender/weight/height/activity/goal
// changes and must never be edited by hand.
type Profile struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Gender   Gender   `json:"gender"`
	Weight   float64  `json:"weight"`
	Height   float64  `json:"height"`
	UnitType UnitType `json:"unit_type"`

	DailyActivityLevel ActivityLevel `json:"daily_activity_level"`
	PracticesSports    bool          `json:"practices_sports"`
	SportName          string        `json:"sport_name,omitempty"`

	Goal              Goal    `json:"goal"`
	DesiredWeight     float64 `json:"desired_weight,omitempty"`
	EstimatedDeadline string  `json:"estimated_deadline,omitempty"`

	HealthIssues     []string `json:"health_issues,omitempty"`
	OtherHealthIssue string   `json:"other_health_issue,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	OtherAllergy     string   `json:"other_allergy,omitempty"`

	EatingStyle        string   `json:"eating_style,omitempty"`
	Preferences        []string `json:"preferences,omitempty"`
	WaterConsumption   string   `json:"water_consumption,omitempty"`
	AlcoholConsumption string   `json:"alcohol_consumption,omitempty"`

	SleepHours   string `json:"sleep_hours,omitempty"`
	SleepQuality string `json:"sleep_quality,omitempty"`

	DisciplineLevel        string   `json:"discipline_level,omitempty"`
	MotivationType         []string `json:"motivation_type,omitempty"`
	NotificationPreference string   `json:"notification_preference,omitempty"`

	AllowLocalSaving             string `json:"allow_local_saving,omitempty"`
	WantAutomaticPersonalization string `json:"want_automatic_personalization,omitempty"`

	CaloriesGoal int `json:"calories_goal"`
	ProteinGoalG int `json:"protein_goal_g"`
	CarbGoalG    int `json:"carb_goal_g"`
	FatGoalG     int `json:"fat_goal_g"`
	WaterGoalML  int `json:"water_goal_ml"`

	OnboardingComplete bool `json:"onboarding_complete"`
}

// MealItem is one logged consumption event. Immutable once created
// except for deletion.
type MealItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	PortionG float64   `json:"portion_g"`
	Calories float64   `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	LoggedAt time.Time `json:"logged_at"`
	Source   string    `json:"source"`
	ImageURL string    `json:"image_url,omitempty"`
}

// Meal item sources.
const (
	SourceManual = "manual"
	SourceAI     = "ai"
	SourceRecipe = "recipe"
)

// NotificationFlags are sticky per-day, per-goal-type markers. They
// never un-set within the same day.
type NotificationFlags struct {
	CalorieToastShown  bool `json:"calorie_toast_shown,omitempty"`
	CalorieAlmostShown bool `json:"calorie_almost_shown,omitempty"`
	WaterToastShown    bool `json:"water_toast_shown,omitempty"`
}

// DailyLog is one calendar day's record for one user. The *Consumed
// fields are always the arithmetic sum of all meal items across the
// four category buckets; they are recomputed on every meal mutation.
type DailyLog struct {
	Date             string                      `json:"date"`
	Meals            map[MealCategory][]MealItem `json:"meals"`
	WaterIntakeML    int                         `json:"water_intake_ml"`
	CaloriesConsumed float64                     `json:"calories_consumed"`
	ProteinConsumed  float64                     `json:"protein_consumed"`
	CarbsConsumed    float64                     `json:"carbs_consumed"`
	FatConsumed      float64                     `json:"fat_consumed"`
	Notifications    NotificationFlags           `json:"notifications"`
}

// NewDailyLog returns an empty log for date with all category buckets
// initialized.
func NewDailyLog(date string) *DailyLog {
	meals := make(map[MealCategory][]MealItem, len(MealCategories))
	for _, c := range MealCategories {
		meals[c] = []MealItem{}
	}
	return &DailyLog{Date: date, Meals: meals}
}

// FastingState tracks one wall-clock-deadline fast for a user.
type FastingState struct {
	Active             bool       `json:"active"`
	StartTime          *time.Time `json:"start_time,omitempty"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	DurationHours      float64    `json:"duration_hours"`
	CompletionNotified bool       `json:"completion_notified"`
}

type Reminder struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Time   string `json:"time"` // HH:MM
	Active bool   `json:"active"`
}

type ChallengeProgress struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type Challenge struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	TargetDays    int                 `json:"target_days"`
	Progress      []ChallengeProgress `json:"progress"`
	CompletedDate string              `json:"completed_date,omitempty"`
	IsCompleted   bool                `json:"is_completed"`
	MedalEarned   bool                `json:"medal_earned"`
	Type          string              `json:"type"` // standard | custom
}

// RecipeItem is a meal-item template carried by a recipe; logging the
// recipe stamps each template with a fresh id and timestamp.
type RecipeItem struct {
	Name     string  `json:"name"`
	PortionG float64 `json:"portion_g"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Calories    float64      `json:"calories"`
	ProteinG    float64      `json:"protein_g"`
	CarbsG      float64      `json:"carbs_g"`
	FatG        float64      `json:"fat_g"`
	Items       []RecipeItem `json:"items"`
	CreatedAt   time.Time    `json:"created_at"`
}
