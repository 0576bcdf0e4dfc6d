package service

import "github.com/rafavit29-crypto/app-calorix/internal/model"

// activityFactors maps activity levels to their TDEE multiplier.
// Single source of truth for valid activity levels.
var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Every
// non-male gender uses the female constant. Callers are responsible
// for rejecting or defaulting non-positive inputs first.
func BMR(age int, gender model.Gender, weightKg, heightCm float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales a BMR by the activity factor. An unknown or empty level
// falls back to the sedentary factor.
func TDEE(bmr float64, level model.ActivityLevel) float64 {
	factor, ok := activityFactors[level]
	if !ok {
		factor = activityFactors[model.ActivitySedentary]
	}
	return bmr * factor
}

// WaterTargetML is ~35ml per kg of body weight with a 2000ml floor.
func WaterTargetML(weightKg float64) float64 {
	target := weightKg * 35
	if target < 2000 {
		return 2000
	}
	return target
}
