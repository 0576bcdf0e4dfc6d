package service

import "github.com/rafavit29-crypto/app-calorix/internal/model"

// DailyTotals are unrounded sums; display layers round as needed.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// AggregateDailyLog sums the four numeric fields over every meal item
// in every category bucket. A nil log or missing buckets count as
// empty, never as an error.
func AggregateDailyLog(log *model.DailyLog) DailyTotals {
	var t DailyTotals
	if log == nil || log.Meals == nil {
		return t
	}
	for _, items := range log.Meals {
		for _, item := range items {
			t.Calories += item.Calories
			t.ProteinG += item.ProteinG
			t.CarbsG += item.CarbsG
			t.FatG += item.FatG
		}
	}
	return t
}

// RecomputeTotals synchronizes the stored consumed fields with the
// meals map. Every meal mutation must call this before persisting.
func RecomputeTotals(log *model.DailyLog) {
	t := AggregateDailyLog(log)
	log.CaloriesConsumed = t.Calories
	log.ProteinConsumed = t.ProteinG
	log.CarbsConsumed = t.CarbsG
	log.FatConsumed = t.FatG
}
