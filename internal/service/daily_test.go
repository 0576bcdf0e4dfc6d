package service_test

import (
	"strings"
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func TestAddMealItemCreatesLogLazily(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	item, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date:     "2026-03-01",
		Category: model.CategoryBreakfast,
		Name:     "Oatmeal",
		PortionG: 60,
		Calories: 210,
		ProteinG: 8.6,
		CarbsG:   34,
		FatG:     4.4,
	})
	if err != nil {
		t.Fatalf("add meal item: %v", err)
	}
	if item.ID == "" || item.Source != model.SourceManual {
		t.Fatalf("expected generated id and manual source, got %+v", item)
	}

	log, err := st.DailyLog(testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("load daily log: %v", err)
	}
	if log == nil {
		t.Fatal("expected daily log to be created lazily")
	}
	if log.CaloriesConsumed != 210 {
		t.Fatalf("expected stored calories 210, got %v", log.CaloriesConsumed)
	}
	if len(log.Meals[model.CategoryBreakfast]) != 1 {
		t.Fatalf("expected one breakfast item, got %d", len(log.Meals[model.CategoryBreakfast]))
	}
}

func TestAddThenDeleteRestoresTotals(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	base := []service.AddMealItemInput{
		{Date: "2026-03-01", Category: model.CategoryBreakfast, Name: "Yogurt", Calories: 100, ProteinG: 7},
		{Date: "2026-03-01", Category: model.CategoryLunch, Name: "Rice", Calories: 200, CarbsG: 44},
		{Date: "2026-03-01", Category: model.CategorySnack, Name: "Cereal bar", Calories: 50, FatG: 1.2},
	}
	for _, in := range base {
		if _, _, err := service.AddMealItem(st, testUser, in); err != nil {
			t.Fatalf("seed item %s: %v", in.Name, err)
		}
	}

	before, err := st.DailyLog(testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("load log: %v", err)
	}
	if before.CaloriesConsumed != 350 {
		t.Fatalf("expected 350 calories before, got %v", before.CaloriesConsumed)
	}

	extra, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: model.CategoryDinner, Name: "Pasta", Calories: 480, CarbsG: 70,
	})
	if err != nil {
		t.Fatalf("add extra item: %v", err)
	}
	if _, err := service.DeleteMealItem(st, testUser, "2026-03-01", extra.ID); err != nil {
		t.Fatalf("delete extra item: %v", err)
	}

	after, err := st.DailyLog(testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("reload log: %v", err)
	}
	if after.CaloriesConsumed != before.CaloriesConsumed ||
		after.ProteinConsumed != before.ProteinConsumed ||
		after.CarbsConsumed != before.CarbsConsumed ||
		after.FatConsumed != before.FatConsumed {
		t.Fatalf("totals not restored: before %+v after %+v", before, after)
	}
	if len(after.Meals[model.CategoryDinner]) != 0 {
		t.Fatalf("expected dinner bucket to be empty again")
	}
}

func TestDeleteMealItemUnknownID(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	_, err := service.DeleteMealItem(st, testUser, "2026-03-01", "nope")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAddMealItemValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: model.CategoryLunch, Name: "  ",
	}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: "brunch", Name: "Toast",
	}); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: model.CategoryLunch, Name: "Toast", Calories: -1,
	}); err == nil {
		t.Fatal("expected error for negative calories")
	}
	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "03/01/2026", Category: model.CategoryLunch, Name: "Toast",
	}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestAdjustWaterClampsAtZero(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	log, _, err := service.AdjustWater(st, testUser, "2026-03-01", 500)
	if err != nil {
		t.Fatalf("add water: %v", err)
	}
	if log.WaterIntakeML != 500 {
		t.Fatalf("expected 500ml, got %d", log.WaterIntakeML)
	}

	log, _, err = service.AdjustWater(st, testUser, "2026-03-01", -800)
	if err != nil {
		t.Fatalf("remove water: %v", err)
	}
	if log.WaterIntakeML != 0 {
		t.Fatalf("expected clamp at 0ml, got %d", log.WaterIntakeML)
	}
}

func TestDaySummaryAgainstGoals(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	profile := seedProfile(t, st, model.Profile{
		Name:               "Ana",
		Age:                30,
		Gender:             model.GenderFemale,
		Weight:             60,
		Height:             165,
		DailyActivityLevel: model.ActivityLight,
		Goal:               model.GoalMaintainWeight,
	})

	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: model.CategoryLunch, Name: "Salad bowl", Calories: 420,
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	status, err := service.DaySummary(st, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if !status.HasGoal {
		t.Fatal("expected goal to be present")
	}
	if status.CaloriesGoal != profile.CaloriesGoal {
		t.Fatalf("expected calories goal %d, got %d", profile.CaloriesGoal, status.CaloriesGoal)
	}
	if status.RemainingCalories != float64(profile.CaloriesGoal)-420 {
		t.Fatalf("unexpected remaining calories %v", status.RemainingCalories)
	}

	// A day with no log still summarizes to zeros.
	empty, err := service.DaySummary(st, testUser, "2026-03-02")
	if err != nil {
		t.Fatalf("empty day summary: %v", err)
	}
	if empty.CaloriesConsumed != 0 || empty.WaterIntakeML != 0 {
		t.Fatalf("expected zero consumption for empty day, got %+v", empty)
	}
}
