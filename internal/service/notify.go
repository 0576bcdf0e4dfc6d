package service

import "github.com/rafavit29-crypto/app-calorix/internal/model"

// Notification is a transient, user-visible event. It is not persisted
// beyond the sticky per-day flags on the DailyLog that guard it.
type Notification struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"` // success | info
	Message string `json:"message"`
}

// Notification types.
const (
	NotifyCalorieGoalReached = "calorie_goal_reached"
	NotifyCalorieGoalClose   = "calorie_goal_close"
	NotifyWaterGoalReached   = "water_goal_reached"
	NotifyFastingComplete    = "fasting_complete"
)

// Share of the calorie goal at which the almost-there event fires.
const calorieAlmostShare = 0.9

// EvaluateNotifications compares a day's consumption against the
// profile's targets and returns the one-shot events that are due,
// marking their sticky flags on the log. The caller persists the log.
// Flags never re-arm within the day: deleting food after reaching a
// goal does not fire the event again.
//
// Must run after every consumption mutation and after goal changes.
func EvaluateNotifications(log *model.DailyLog, p *model.Profile) []Notification {
	if log == nil || p == nil || !p.OnboardingComplete {
		return nil
	}

	var events []Notification

	if p.CaloriesGoal > 0 && !log.Notifications.CalorieToastShown {
		goal := float64(p.CaloriesGoal)
		switch {
		case log.CaloriesConsumed >= goal:
			log.Notifications.CalorieToastShown = true
			log.Notifications.CalorieAlmostShown = true
			events = append(events, Notification{
				Type:    NotifyCalorieGoalReached,
				Kind:    "success",
				Message: "Congratulations! You reached your calorie goal 🎉",
			})
		case log.CaloriesConsumed >= goal*calorieAlmostShare && !log.Notifications.CalorieAlmostShown:
			log.Notifications.CalorieAlmostShown = true
			events = append(events, Notification{
				Type:    NotifyCalorieGoalClose,
				Kind:    "info",
				Message: "Almost there! You are close to your calorie goal ⚡",
			})
		}
	}

	if p.WaterGoalML > 0 && !log.Notifications.WaterToastShown &&
		log.WaterIntakeML >= p.WaterGoalML {
		log.Notifications.WaterToastShown = true
		events = append(events, Notification{
			Type:    NotifyWaterGoalReached,
			Kind:    "success",
			Message: "Excellent! You reached your water goal 💧",
		})
	}

	return events
}
