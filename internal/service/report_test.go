package service_test

import (
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func TestBuildReportAverages(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	seedProfile(t, st, model.Profile{
		Name:               "Ana",
		Age:                30,
		Gender:             model.GenderFemale,
		Weight:             60,
		Height:             165,
		DailyActivityLevel: model.ActivityLight,
		Goal:               model.GoalMaintainWeight,
	})

	// Three logged days inside the window, one outside it.
	for _, day := range []struct {
		date     string
		calories float64
		waterML  int
	}{
		{"2026-03-01", 1800, 2100},
		{"2026-03-03", 2000, 1500},
		{"2026-03-05", 1600, 2400},
		{"2026-02-20", 9999, 9999},
	} {
		if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
			Date: day.date, Category: model.CategoryLunch, Name: "Meal", Calories: day.calories,
		}); err != nil {
			t.Fatalf("seed %s: %v", day.date, err)
		}
		if _, _, err := service.AdjustWater(st, testUser, day.date, day.waterML); err != nil {
			t.Fatalf("seed water %s: %v", day.date, err)
		}
	}

	report, err := service.BuildReport(st, testUser, "2026-03-07", 7)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.FromDate != "2026-03-01" || report.ToDate != "2026-03-07" {
		t.Fatalf("unexpected window: %s..%s", report.FromDate, report.ToDate)
	}
	if report.LoggedDays != 3 {
		t.Fatalf("expected 3 logged days, got %d", report.LoggedDays)
	}
	if report.AvgCalories != 1800 {
		t.Fatalf("expected 1800 avg calories, got %v", report.AvgCalories)
	}
	if report.AvgWaterML != 2000 {
		t.Fatalf("expected 2000 avg water, got %v", report.AvgWaterML)
	}
	if !report.HasGoal || report.CaloriesGoal <= 0 {
		t.Fatalf("expected goal in report, got %+v", report)
	}
	// Water goal is 2100 ml at 60kg; the 2100 and 2400 days reach it.
	if report.WaterGoalDays != 2 {
		t.Fatalf("expected 2 water goal days, got %d", report.WaterGoalDays)
	}
	if report.Days[0].Date != "2026-03-01" || report.Days[2].Date != "2026-03-05" {
		t.Fatalf("days not sorted: %+v", report.Days)
	}
}

func TestBuildReportEmptyWindow(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	report, err := service.BuildReport(st, testUser, "2026-03-07", 7)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.LoggedDays != 0 || report.AvgCalories != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if report.HasGoal {
		t.Fatal("expected no goal without a profile")
	}
}

func TestBuildReportValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := service.BuildReport(st, testUser, "2026-03-07", 0); err == nil {
		t.Fatal("expected error for zero-day window")
	}
	if _, err := service.BuildReport(st, testUser, "bad-date", 7); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
