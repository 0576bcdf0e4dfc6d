package service_test

import (
	"encoding/json"
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func TestExportUserData(t *testing.T) {
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
	if _, _, err := service.AddMealItem(st, testUser, service.AddMealItemInput{
		Date: "2026-03-01", Category: model.CategoryLunch, Name: "Rice", Calories: 130,
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := service.AddReminder(st, testUser, "Drink water", "10:00"); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	bundle, err := service.ExportUserData(st, testUser)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if bundle.User != testUser {
		t.Fatalf("expected user %s, got %s", testUser, bundle.User)
	}
	if bundle.Profile == nil || bundle.Profile.Name != "Ana" {
		t.Fatalf("expected profile in bundle, got %+v", bundle.Profile)
	}
	if len(bundle.DailyLogs) != 1 || bundle.DailyLogs["2026-03-01"] == nil {
		t.Fatalf("expected one daily log, got %+v", bundle.DailyLogs)
	}
	if len(bundle.Reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(bundle.Reminders))
	}

	raw, err := service.ExportJSON(st, testUser)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	var decoded service.ExportBundle
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if decoded.Profile == nil || decoded.Profile.CaloriesGoal != bundle.Profile.CaloriesGoal {
		t.Fatalf("decoded export mismatch: %+v", decoded.Profile)
	}
}
