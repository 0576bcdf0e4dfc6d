package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

type AddMealItemInput struct {
	Date     string
	Category model.MealCategory
	Name     string
	PortionG float64
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Source   string
	ImageURL string
	LoggedAt time.Time
}

func validCategory(c model.MealCategory) bool {
	for _, known := range model.MealCategories {
		if c == known {
			return true
		}
	}
	return false
}

// loadOrCreateDailyLog returns the stored log for date, or a fresh
// empty one. Logs come into existence lazily on first food or water.
func loadOrCreateDailyLog(st store.Store, user, date string) (*model.DailyLog, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	log, err := st.DailyLog(user, date)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = model.NewDailyLog(date)
	}
	if log.Meals == nil {
		log.Meals = model.NewDailyLog(date).Meals
	}
	return log, nil
}

// AddMealItem appends one consumption event to a day's category
// bucket, recomputes the consumed totals, evaluates the notification
// policy, and persists the log.
func AddMealItem(st store.Store, user string, in AddMealItemInput) (*model.MealItem, []Notification, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, nil, fmt.Errorf("food name is required")
	}
	if !validCategory(in.Category) {
		return nil, nil, fmt.Errorf("unknown meal category %q", in.Category)
	}
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"portion", in.PortionG},
		{"calories", in.Calories},
		{"protein", in.ProteinG},
		{"carbs", in.CarbsG},
		{"fat", in.FatG},
	} {
		if check.value < 0 {
			return nil, nil, fmt.Errorf("%s must be >= 0", check.name)
		}
	}
	if strings.TrimSpace(in.Source) == "" {
		in.Source = model.SourceManual
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	log, err := loadOrCreateDailyLog(st, user, in.Date)
	if err != nil {
		return nil, nil, err
	}

	item := model.MealItem{
		ID:       uuid.NewString(),
		Name:     in.Name,
		PortionG: in.PortionG,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		LoggedAt: in.LoggedAt,
		Source:   in.Source,
		ImageURL: in.ImageURL,
	}
	log.Meals[in.Category] = append(log.Meals[in.Category], item)

	events, err := finishMutation(st, user, log)
	if err != nil {
		return nil, nil, err
	}
	return &item, events, nil
}

// DeleteMealItem removes a logged item by id, searching every category
// bucket, then recomputes and persists.
func DeleteMealItem(st store.Store, user, date, itemID string) ([]Notification, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("item id is required")
	}
	log, err := loadOrCreateDailyLog(st, user, date)
	if err != nil {
		return nil, err
	}

	found := false
	for category, items := range log.Meals {
		for i, item := range items {
			if item.ID == itemID {
				log.Meals[category] = append(items[:i:i], items[i+1:]...)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("meal item %s not found on %s", itemID, log.Date)
	}

	return finishMutation(st, user, log)
}

// AdjustWater applies a signed delta in ml, clamped at zero, then
// evaluates the notification policy and persists.
func AdjustWater(st store.Store, user, date string, deltaML int) (*model.DailyLog, []Notification, error) {
	log, err := loadOrCreateDailyLog(st, user, date)
	if err != nil {
		return nil, nil, err
	}

	log.WaterIntakeML += deltaML
	if log.WaterIntakeML < 0 {
		log.WaterIntakeML = 0
	}

	events, err := finishMutation(st, user, log)
	if err != nil {
		return nil, nil, err
	}
	return log, events, nil
}

// finishMutation is the shared tail of every daily-log mutation:
// recompute totals, run the notification policy against the current
// profile, persist.
func finishMutation(st store.Store, user string, log *model.DailyLog) ([]Notification, error) {
	RecomputeTotals(log)

	profile, err := st.Profile(user)
	if err != nil {
		return nil, err
	}
	events := EvaluateNotifications(log, profile)

	if err := st.SaveDailyLog(user, log); err != nil {
		return nil, err
	}
	return events, nil
}

// DayStatus is the daily consumption compared against the profile's
// targets, for display.
type DayStatus struct {
	Date              string  `json:"date"`
	CaloriesConsumed  float64 `json:"calories_consumed"`
	ProteinConsumedG  float64 `json:"protein_consumed_g"`
	CarbsConsumedG    float64 `json:"carbs_consumed_g"`
	FatConsumedG      float64 `json:"fat_consumed_g"`
	WaterIntakeML     int     `json:"water_intake_ml"`
	CaloriesGoal      int     `json:"calories_goal,omitempty"`
	ProteinGoalG      int     `json:"protein_goal_g,omitempty"`
	CarbGoalG         int     `json:"carb_goal_g,omitempty"`
	FatGoalG          int     `json:"fat_goal_g,omitempty"`
	WaterGoalML       int     `json:"water_goal_ml,omitempty"`
	RemainingCalories float64 `json:"remaining_calories,omitempty"`
	RemainingWaterML  int     `json:"remaining_water_ml,omitempty"`
	HasGoal           bool    `json:"has_goal"`
}

// DaySummary aggregates a stored day (or an empty one) against the
// profile's current targets.
func DaySummary(st store.Store, user, date string) (*DayStatus, error) {
	log, err := loadOrCreateDailyLog(st, user, date)
	if err != nil {
		return nil, err
	}
	totals := AggregateDailyLog(log)

	status := &DayStatus{
		Date:             log.Date,
		CaloriesConsumed: totals.Calories,
		ProteinConsumedG: totals.ProteinG,
		CarbsConsumedG:   totals.CarbsG,
		FatConsumedG:     totals.FatG,
		WaterIntakeML:    log.WaterIntakeML,
	}

	profile, err := st.Profile(user)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.CaloriesGoal > 0 {
		status.HasGoal = true
		status.CaloriesGoal = profile.CaloriesGoal
		status.ProteinGoalG = profile.ProteinGoalG
		status.CarbGoalG = profile.CarbGoalG
		status.FatGoalG = profile.FatGoalG
		status.WaterGoalML = profile.WaterGoalML
		status.RemainingCalories = float64(profile.CaloriesGoal) - totals.Calories
		status.RemainingWaterML = profile.WaterGoalML - log.WaterIntakeML
	}
	return status, nil
}
