// Package store persists user records as JSON documents keyed by
// (user email, record kind, record key). The engine only sees the
// Store interface; SQLite is an implementation detail.
package store

import "github.com/rafavit29-crypto/app-calorix/internal/model"

// Record kinds.
const (
	KindProfile    = "profile"
	KindDailyLog   = "daily_log"
	KindFasting    = "fasting"
	KindReminders  = "reminders"
	KindChallenges = "challenges"
	KindRecipes    = "recipes"
)

// Config keys held in app_config.
const (
	ConfigCurrentUser = "current_user"
)

type Store interface {
	// Profile returns nil without error when the user has no profile yet.
	Profile(user string) (*model.Profile, error)
	SaveProfile(user string, p *model.Profile) error

	// DailyLog returns nil without error when nothing was logged on date.
	DailyLog(user, date string) (*model.DailyLog, error)
	SaveDailyLog(user string, log *model.DailyLog) error
	DailyLogs(user string) (map[string]*model.DailyLog, error)

	FastingState(user string) (*model.FastingState, error)
	SaveFastingState(user string, s *model.FastingState) error
	ClearFastingState(user string) error

	Reminders(user string) ([]model.Reminder, error)
	SaveReminders(user string, rs []model.Reminder) error

	Challenges(user string) ([]model.Challenge, error)
	SaveChallenges(user string, cs []model.Challenge) error

	Recipes(user string) ([]model.Recipe, error)
	SaveRecipes(user string, rs []model.Recipe) error

	EnsureUser(email string) error
	Users() ([]string, error)

	SetConfig(key, value string) error
	GetConfig(key string) (string, bool, error)
}
