package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

// ReportDay is one day's consumption inside a report window.
type ReportDay struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	WaterML  int     `json:"water_ml"`
}

// Report summarizes the last N days of logs against the current
// targets. Averages are taken over days that have a log, not over the
// whole window; an empty window reports zero logged days.
type Report struct {
	FromDate        string      `json:"from_date"`
	ToDate          string      `json:"to_date"`
	LoggedDays      int         `json:"logged_days"`
	AvgCalories     float64     `json:"avg_calories"`
	AvgProteinG     float64     `json:"avg_protein_g"`
	AvgCarbsG       float64     `json:"avg_carbs_g"`
	AvgFatG         float64     `json:"avg_fat_g"`
	AvgWaterML      float64     `json:"avg_water_ml"`
	CaloriesGoal    int         `json:"calories_goal,omitempty"`
	WaterGoalML     int         `json:"water_goal_ml,omitempty"`
	HasGoal         bool        `json:"has_goal"`
	CalorieGoalDays int         `json:"calorie_goal_days"`
	WaterGoalDays   int         `json:"water_goal_days"`
	Days            []ReportDay `json:"days"`
}

// BuildReport aggregates the window of `days` calendar days ending at
// endDate (inclusive; empty endDate means today).
func BuildReport(st store.Store, user, endDate string, days int) (*Report, error) {
	if days <= 0 {
		return nil, fmt.Errorf("report window must be > 0 days")
	}
	endDate = strings.TrimSpace(endDate)
	if endDate == "" {
		endDate = time.Now().Format("2006-01-02")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", endDate)
	}
	from := end.AddDate(0, 0, -(days - 1))

	logs, err := st.DailyLogs(user)
	if err != nil {
		return nil, err
	}

	report := &Report{
		FromDate: from.Format("2006-01-02"),
		ToDate:   end.Format("2006-01-02"),
	}

	for date, log := range logs {
		if date < report.FromDate || date > report.ToDate {
			continue
		}
		totals := AggregateDailyLog(log)
		report.Days = append(report.Days, ReportDay{
			Date:     date,
			Calories: totals.Calories,
			ProteinG: totals.ProteinG,
			CarbsG:   totals.CarbsG,
			FatG:     totals.FatG,
			WaterML:  log.WaterIntakeML,
		})
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})
	report.LoggedDays = len(report.Days)
	if report.LoggedDays == 0 {
		return report, nil
	}

	var totalWater int
	for _, d := range report.Days {
		report.AvgCalories += d.Calories
		report.AvgProteinG += d.ProteinG
		report.AvgCarbsG += d.CarbsG
		report.AvgFatG += d.FatG
		totalWater += d.WaterML
	}
	div := float64(report.LoggedDays)
	report.AvgCalories /= div
	report.AvgProteinG /= div
	report.AvgCarbsG /= div
	report.AvgFatG /= div
	report.AvgWaterML = float64(totalWater) / div

	profile, err := st.Profile(user)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.CaloriesGoal > 0 {
		report.HasGoal = true
		report.CaloriesGoal = profile.CaloriesGoal
		report.WaterGoalML = profile.WaterGoalML
		for _, d := range report.Days {
			if d.Calories >= float64(profile.CaloriesGoal) {
				report.CalorieGoalDays++
			}
			if profile.WaterGoalML > 0 && d.WaterML >= profile.WaterGoalML {
				report.WaterGoalDays++
			}
		}
	}
	return report, nil
}
