package service

import (
	"math"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
)

// Biometric defaults substituted for non-positive inputs. Onboarding
// never hard-fails on a malformed number; it computes a plausible
// bundle and lets commit-time validation catch the bad field.
const (
	defaultAge      = 25
	defaultWeightKg = 70
	defaultHeightCm = 170
)

// Safety floors applied to the caloric goal.
const (
	calorieFloorFemale = 1200
	calorieFloorMale   = 1500
)

// Goal-to-adjustment mapping on top of TDEE.
const (
	loseWeightDeficit = 500
	gainMuscleSurplus = 300
)

// Macro split: 30% protein, 45% carbs, 25% fat at 4/4/9 kcal per gram.
const (
	proteinCalorieShare = 0.30
	carbCalorieShare    = 0.45
	fatCalorieShare     = 0.25
)

type GoalInput struct {
	Age           int
	Gender        model.Gender
	WeightKg      float64
	HeightCm      float64
	ActivityLevel model.ActivityLevel
	Goal          model.Goal
}

// GoalTargets is always a complete bundle; CalculateGoals never
// returns a partial result.
type GoalTargets struct {
	CaloriesGoal int                  `json:"calories_goal"`
	ProteinGoalG int                  `json:"protein_goal_g"`
	CarbGoalG    int                  `json:"carb_goal_g"`
	FatGoalG     int                  `json:"fat_goal_g"`
	WaterGoalML  int                  `json:"water_goal_ml"`
	Simplified   model.SimplifiedGoal `json:"simplified_goal"`
}

// sanitizeBiometrics substitutes documented defaults for non-positive
// numeric inputs instead of failing. Kept as its own step so a stricter
// mode can bolt on later without touching the math.
func sanitizeBiometrics(in GoalInput) GoalInput {
	if in.Age <= 0 {
		in.Age = defaultAge
	}
	if in.WeightKg <= 0 {
		in.WeightKg = defaultWeightKg
	}
	if in.HeightCm <= 0 {
		in.HeightCm = defaultHeightCm
	}
	return in
}

// SimplifyGoal normalizes the expanded goal enum to the 3-way tag that
// drives the caloric adjustment.
func SimplifyGoal(g model.Goal) model.SimplifiedGoal {
	switch g {
	case model.GoalLoseWeight, model.GoalReduceMeasurements:
		return model.SimplifiedLose
	case model.GoalGainMuscle:
		return model.SimplifiedGain
	default:
		return model.SimplifiedMaintain
	}
}

// CalculateGoals converts a biometric bundle into daily calorie, macro,
// and water targets. Pure; the caller persists the result.
func CalculateGoals(in GoalInput) GoalTargets {
	in = sanitizeBiometrics(in)

	bmr := BMR(in.Age, in.Gender, in.WeightKg, in.HeightCm)
	tdee := TDEE(bmr, in.ActivityLevel)

	simplified := SimplifyGoal(in.Goal)
	calories := tdee
	switch simplified {
	case model.SimplifiedLose:
		calories = tdee - loseWeightDeficit
	case model.SimplifiedGain:
		calories = tdee + gainMuscleSurplus
	}

	if in.Gender == model.GenderFemale && calories < calorieFloorFemale {
		calories = calorieFloorFemale
	}
	if in.Gender == model.GenderMale && calories < calorieFloorMale {
		calories = calorieFloorMale
	}

	return GoalTargets{
		CaloriesGoal: int(math.Round(calories)),
		ProteinGoalG: int(math.Round(calories * proteinCalorieShare / 4)),
		CarbGoalG:    int(math.Round(calories * carbCalorieShare / 4)),
		FatGoalG:     int(math.Round(calories * fatCalorieShare / 9)),
		WaterGoalML:  int(math.Round(WaterTargetML(in.WeightKg))),
		Simplified:   simplified,
	}
}

// ApplyGoals recomputes targets from the profile's current biometric
// tuple and merges them in. Must run before persisting whenever any of
// age, gender, weight, height, activity level, or goal changes.
func ApplyGoals(p *model.Profile) GoalTargets {
	targets := CalculateGoals(GoalInput{
		Age:           p.Age,
		Gender:        p.Gender,
		WeightKg:      p.Weight,
		HeightCm:      p.Height,
		ActivityLevel: p.DailyActivityLevel,
		Goal:          p.Goal,
	})
	p.CaloriesGoal = targets.CaloriesGoal
	p.ProteinGoalG = targets.ProteinGoalG
	p.CarbGoalG = targets.CarbGoalG
	p.FatGoalG = targets.FatGoalG
	p.WaterGoalML = targets.WaterGoalML
	return targets
}
