package service_test

import (
	"path/filepath"
	"testing"

	"github.com/rafavit29-crypto/app-calorix/internal/db"
	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

const testUser = "ana@example.com"

func newTestStore(t *testing.T) store.Store {
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

// seedProfile stores a committed profile with freshly computed targets.
func seedProfile(t *testing.T, st store.Store, p model.Profile) model.Profile {
	t.Helper()
	p.OnboardingComplete = true
	if _, err := service.SaveProfile(st, testUser, &p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}
