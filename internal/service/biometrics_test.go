package service_test

import (
	"math"
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
)

func TestBMRMaleFemaleOffset(t *testing.T) {
	t.Parallel()
	// Male and female formulas differ only in the constant: +5 vs -161,
	// so the gap is exactly 166 for identical inputs.
	male := service.BMR(30, model.GenderMale, 80, 180)
	female := service.BMR(30, model.GenderFemale, 80, 180)
	if diff := male - female; diff != 166 {
		t.Fatalf("expected male-female BMR offset of 166, got %v", diff)
	}
}

func TestBMRNonMaleUsesFemaleFormula(t *testing.T) {
	t.Parallel()
	female := service.BMR(30, model.GenderFemale, 80, 180)
	for _, g := range []model.Gender{model.GenderUndisclosed, model.GenderUnspecified} {
		if got := service.BMR(30, g, 80, 180); got != female {
			t.Fatalf("expected gender %q to use the female formula (%v), got %v", g, female, got)
		}
	}
}

func TestBMRKnownValue(t *testing.T) {
	t.Parallel()
	// 10*70 + 6.25*175 - 5*25 + 5 = 1673.75
	got := service.BMR(25, model.GenderMale, 70, 175)
	if got != 1673.75 {
		t.Fatalf("expected male BMR 1673.75, got %v", got)
	}
}

func TestTDEEMonotonicInActivity(t *testing.T) {
	t.Parallel()
	levels := []model.ActivityLevel{
		model.ActivitySedentary,
		model.ActivityLight,
		model.ActivityModerate,
		model.ActivityActive,
		model.ActivityVeryActive,
	}
	const bmr = 1500.0
	prev := 0.0
	for _, level := range levels {
		got := service.TDEE(bmr, level)
		if got <= prev {
			t.Fatalf("expected TDEE to increase with activity, %s gave %v after %v", level, got, prev)
		}
		prev = got
	}
}

func TestTDEEUnknownLevelDefaultsToSedentary(t *testing.T) {
	t.Parallel()
	const bmr = 1500.0
	sedentary := service.TDEE(bmr, model.ActivitySedentary)
	for _, level := range []model.ActivityLevel{"", "extreme", "couch"} {
		if got := service.TDEE(bmr, level); got != sedentary {
			t.Fatalf("expected level %q to fall back to sedentary (%v), got %v", level, sedentary, got)
		}
	}
}

func TestWaterTargetFloor(t *testing.T) {
	t.Parallel()
	// 40kg * 35 = 1400, below the 2000ml floor.
	if got := service.WaterTargetML(40); got != 2000 {
		t.Fatalf("expected 2000ml floor for 40kg, got %v", got)
	}
	if got := service.WaterTargetML(100); got != 3500 {
		t.Fatalf("expected 3500ml for 100kg, got %v", got)
	}
	// Crossover point: 2000/35 ≈ 57.14kg.
	if got := service.WaterTargetML(60); math.Abs(got-2100) > 1e-9 {
		t.Fatalf("expected 2100ml for 60kg, got %v", got)
	}
}
