package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

// ExportBundle is a full JSON snapshot of one user's records.
type ExportBundle struct {
	ExportedAt time.Time                  `json:"exported_at"`
	User       string                     `json:"user"`
	Profile    *model.Profile             `json:"profile,omitempty"`
	DailyLogs  map[string]*model.DailyLog `json:"daily_logs"`
	Fasting    *model.FastingState        `json:"fasting,omitempty"`
	Reminders  []model.Reminder           `json:"reminders"`
	Challenges []model.Challenge          `json:"challenges"`
	Recipes    []model.Recipe             `json:"recipes"`
}

func ExportUserData(st store.Store, user string) (*ExportBundle, error) {
	bundle := &ExportBundle{ExportedAt: time.Now(), User: user}

	var err error
	if bundle.Profile, err = st.Profile(user); err != nil {
		return nil, err
	}
	if bundle.DailyLogs, err = st.DailyLogs(user); err != nil {
		return nil, err
	}
	if bundle.Fasting, err = st.FastingState(user); err != nil {
		return nil, err
	}
	if bundle.Reminders, err = st.Reminders(user); err != nil {
		return nil, err
	}
	if bundle.Challenges, err = st.Challenges(user); err != nil {
		return nil, err
	}
	if bundle.Recipes, err = st.Recipes(user); err != nil {
		return nil, err
	}
	return bundle, nil
}

// ExportJSON renders the bundle as indented JSON.
func ExportJSON(st store.Store, user string) ([]byte, error) {
	bundle, err := ExportUserData(st, user)
	if err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export bundle: %w", err)
	}
	return raw, nil
}
