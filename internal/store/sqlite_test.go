package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafavit29-crypto/app-calorix/internal/db"
	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

func newTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calorix.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.NewSQLite(sqldb, nil)
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	p, err := st.Profile("ana@example.com")
	assert.NoError(t, err)
	assert.Nil(t, p, "missing profile should read as nil")

	want := &model.Profile{
		Name:               "Ana",
		Age:                30,
		Gender:             model.GenderFemale,
		Weight:             60,
		Height:             165,
		UnitType:           model.UnitMetric,
		DailyActivityLevel: model.ActivityLight,
		Goal:               model.GoalMaintainWeight,
		HealthIssues:       []string{"hypertension"},
		OnboardingComplete: true,
	}
	assert.NoError(t, st.SaveProfile("ana@example.com", want))

	got, err := st.Profile("ana@example.com")
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	// Profiles are isolated per user.
	other, err := st.Profile("bob@example.com")
	assert.NoError(t, err)
	assert.Nil(t, other)
}

func TestDailyLogKeyedByDate(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	user := "ana@example.com"

	missing, err := st.DailyLog(user, "2026-03-01")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	first := model.NewDailyLog("2026-03-01")
	first.WaterIntakeML = 500
	second := model.NewDailyLog("2026-03-02")
	second.WaterIntakeML = 750
	assert.NoError(t, st.SaveDailyLog(user, first))
	assert.NoError(t, st.SaveDailyLog(user, second))

	got, err := st.DailyLog(user, "2026-03-02")
	assert.NoError(t, err)
	assert.Equal(t, 750, got.WaterIntakeML)

	all, err := st.DailyLogs(user)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// Overwriting the same date replaces the record, not duplicates it.
	first.WaterIntakeML = 1000
	assert.NoError(t, st.SaveDailyLog(user, first))
	all, err = st.DailyLogs(user)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1000, all["2026-03-01"].WaterIntakeML)
}

func TestSaveDailyLogRequiresDate(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	err := st.SaveDailyLog("ana@example.com", &model.DailyLog{})
	assert.Error(t, err)
}

func TestFastingStateClear(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	user := "ana@example.com"

	assert.NoError(t, st.SaveFastingState(user, &model.FastingState{Active: true, DurationHours: 16}))
	got, err := st.FastingState(user)
	assert.NoError(t, err)
	assert.True(t, got.Active)

	assert.NoError(t, st.ClearFastingState(user))
	got, err = st.FastingState(user)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestListRecordsDefaultEmpty(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	user := "ana@example.com"

	rs, err := st.Reminders(user)
	assert.NoError(t, err)
	assert.Empty(t, rs)

	cs, err := st.Challenges(user)
	assert.NoError(t, err)
	assert.Empty(t, cs)

	recipes, err := st.Recipes(user)
	assert.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestUsersAndConfig(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	assert.Error(t, st.EnsureUser("not-an-email"))
	assert.NoError(t, st.EnsureUser("Ana@Example.com"))
	assert.NoError(t, st.EnsureUser("ana@example.com"), "ensure is idempotent")

	users, err := st.Users()
	assert.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, users)

	_, found, err := st.GetConfig(store.ConfigCurrentUser)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, st.SetConfig(store.ConfigCurrentUser, "ana@example.com"))
	value, found, err := st.GetConfig(store.ConfigCurrentUser)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ana@example.com", value)
}
