package service_test

import (
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func TestAggregateDailyLogSumsAllCategories(t *testing.T) {
	t.Parallel()
	log := model.NewDailyLog("2026-03-01")
	log.Meals[model.CategoryBreakfast] = []model.MealItem{{Calories: 100, ProteinG: 10, CarbsG: 5, FatG: 2}}
	log.Meals[model.CategoryLunch] = []model.MealItem{{Calories: 200, ProteinG: 20, CarbsG: 15, FatG: 8}}
	log.Meals[model.CategorySnack] = []model.MealItem{{Calories: 50, ProteinG: 1, CarbsG: 9, FatG: 1.5}}

	got := service.AggregateDailyLog(log)
	if got.Calories != 350 {
		t.Fatalf("expected 350 calories, got %v", got.Calories)
	}
	if got.ProteinG != 31 || got.CarbsG != 29 || got.FatG != 11.5 {
		t.Fatalf("unexpected macro totals: %+v", got)
	}
}

func TestAggregateDailyLogEmptyIsZero(t *testing.T) {
	t.Parallel()
	got := service.AggregateDailyLog(model.NewDailyLog("2026-03-01"))
	if got != (service.DailyTotals{}) {
		t.Fatalf("expected all-zero totals for empty log, got %+v", got)
	}
}

func TestAggregateDailyLogNilAndPartial(t *testing.T) {
	t.Parallel()
	if got := service.AggregateDailyLog(nil); got != (service.DailyTotals{}) {
		t.Fatalf("expected zero totals for nil log, got %+v", got)
	}

	// A log with a missing category bucket aggregates the rest.
	partial := &model.DailyLog{
		Date: "2026-03-01",
		Meals: map[model.MealCategory][]model.MealItem{
			model.CategoryDinner: {{Calories: 400, ProteinG: 30, CarbsG: 40, FatG: 12}},
		},
	}
	got := service.AggregateDailyLog(partial)
	if got.Calories != 400 {
		t.Fatalf("expected 400 calories from partial log, got %v", got.Calories)
	}

	if got := service.AggregateDailyLog(&model.DailyLog{Date: "2026-03-01"}); got != (service.DailyTotals{}) {
		t.Fatalf("expected zero totals for nil meals map, got %+v", got)
	}
}

func TestRecomputeTotalsSynchronizesStoredFields(t *testing.T) {
	t.Parallel()
	log := model.NewDailyLog("2026-03-01")
	log.Meals[model.CategoryBreakfast] = []model.MealItem{{Calories: 120, ProteinG: 8, CarbsG: 14, FatG: 4}}
	// Stale hand-set values must be overwritten.
	log.CaloriesConsumed = 9999

	service.RecomputeTotals(log)
	if log.CaloriesConsumed != 120 || log.ProteinConsumed != 8 || log.CarbsConsumed != 14 || log.FatConsumed != 4 {
		t.Fatalf("totals not synchronized: %+v", log)
	}
}
