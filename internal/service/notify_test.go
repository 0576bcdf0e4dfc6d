package service_test

import (
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func completeProfile(caloriesGoal, waterGoalML int) *model.Profile {
	return &model.Profile{
		Name:               "Ana",
		OnboardingComplete: true,
		CaloriesGoal:       caloriesGoal,
		WaterGoalML:        waterGoalML,
	}
}

func eventTypes(events []service.Notification) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestCalorieGoalReachedFiresOnce(t *testing.T) {
	t.Parallel()
	p := completeProfile(2000, 2500)
	log := model.NewDailyLog("2026-03-01")

	// Crossing from 90% straight to 100% fires the almost event, then
	// the reached event, each exactly once.
	log.CaloriesConsumed = 1800
	events := service.EvaluateNotifications(log, p)
	if len(events) != 1 || events[0].Type != service.NotifyCalorieGoalClose {
		t.Fatalf("expected close event at 90%%, got %v", eventTypes(events))
	}

	log.CaloriesConsumed = 2000
	events = service.EvaluateNotifications(log, p)
	if len(events) != 1 || events[0].Type != service.NotifyCalorieGoalReached {
		t.Fatalf("expected reached event at 100%%, got %v", eventTypes(events))
	}

	// Decrease below the goal, then exceed it again: no re-fire.
	log.CaloriesConsumed = 1500
	if events = service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no events after decrease, got %v", eventTypes(events))
	}
	log.CaloriesConsumed = 2400
	if events = service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no re-fire above goal, got %v", eventTypes(events))
	}
}

func TestCalorieGoalJumpSkipsAlmost(t *testing.T) {
	t.Parallel()
	p := completeProfile(2000, 2500)
	log := model.NewDailyLog("2026-03-01")

	// Jumping straight past the goal emits only the reached event, and
	// the almost event is suppressed for the rest of the day.
	log.CaloriesConsumed = 2100
	events := service.EvaluateNotifications(log, p)
	if len(events) != 1 || events[0].Type != service.NotifyCalorieGoalReached {
		t.Fatalf("expected only reached event, got %v", eventTypes(events))
	}
	log.CaloriesConsumed = 1850
	if events = service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no almost event after reached, got %v", eventTypes(events))
	}
}

func TestWaterGoalReachedFiresOnce(t *testing.T) {
	t.Parallel()
	p := completeProfile(2000, 2100)
	log := model.NewDailyLog("2026-03-01")

	log.WaterIntakeML = 2000
	if events := service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no events below water goal, got %v", eventTypes(events))
	}

	log.WaterIntakeML = 2100
	events := service.EvaluateNotifications(log, p)
	if len(events) != 1 || events[0].Type != service.NotifyWaterGoalReached {
		t.Fatalf("expected water reached event, got %v", eventTypes(events))
	}

	log.WaterIntakeML = 3000
	if events = service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no re-fire for water, got %v", eventTypes(events))
	}
}

func TestCalorieAndWaterFireTogether(t *testing.T) {
	t.Parallel()
	p := completeProfile(2000, 2100)
	log := model.NewDailyLog("2026-03-01")
	log.CaloriesConsumed = 2050
	log.WaterIntakeML = 2200

	events := service.EvaluateNotifications(log, p)
	if len(events) != 2 {
		t.Fatalf("expected both events, got %v", eventTypes(events))
	}
}

func TestNoNotificationsWithoutProfile(t *testing.T) {
	t.Parallel()
	log := model.NewDailyLog("2026-03-01")
	log.CaloriesConsumed = 5000
	log.WaterIntakeML = 5000

	if events := service.EvaluateNotifications(log, nil); events != nil {
		t.Fatalf("expected nil for missing profile, got %v", eventTypes(events))
	}

	incomplete := completeProfile(2000, 2100)
	incomplete.OnboardingComplete = false
	if events := service.EvaluateNotifications(log, incomplete); events != nil {
		t.Fatalf("expected nil for incomplete onboarding, got %v", eventTypes(events))
	}

	if events := service.EvaluateNotifications(nil, completeProfile(2000, 2100)); events != nil {
		t.Fatalf("expected nil for missing log, got %v", eventTypes(events))
	}
}

func TestZeroGoalsNeverNotify(t *testing.T) {
	t.Parallel()
	p := completeProfile(0, 0)
	log := model.NewDailyLog("2026-03-01")
	log.CaloriesConsumed = 9000
	log.WaterIntakeML = 9000

	if events := service.EvaluateNotifications(log, p); len(events) != 0 {
		t.Fatalf("expected no events for zero goals, got %v", eventTypes(events))
	}
}
