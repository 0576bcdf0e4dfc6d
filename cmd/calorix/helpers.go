package calorix

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rafavit29-crypto/app-calorix/internal/app"
	"github.com/rafavit29-crypto/app-calorix/internal/config"
	"github.com/rafavit29-crypto/app-calorix/internal/db"
	"github.com/rafavit29-crypto/app-calorix/internal/logging"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

// withStore opens the database, applies migrations, and runs fn with a
// ready Store. Every data command goes through here.
func withStore(run func(store.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	return run(store.NewSQLite(sqldb, log))
}

// resolveDBPath prefers the --db flag, then the config file, then the
// platform default under the user config dir.
func resolveDBPath(cfg config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

// resolveUser prefers the --user flag over the logged-in user stored
// in app_config.
func resolveUser(st store.Store) (string, error) {
	if u := strings.TrimSpace(strings.ToLower(userFlag)); u != "" {
		if err := st.EnsureUser(u); err != nil {
			return "", err
		}
		return u, nil
	}
	current, ok, err := st.GetConfig(store.ConfigCurrentUser)
	if err != nil {
		return "", err
	}
	if !ok || current == "" {
		return "", fmt.Errorf("no user selected; run 'calorix user login <email>' or pass --user")
	}
	return current, nil
}

// defaultDate fills an empty --date with today.
func defaultDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return time.Now().Format("2006-01-02")
	}
	return strings.TrimSpace(date)
}

func printNotifications(w io.Writer, events []service.Notification) {
	for _, e := range events {
		fmt.Fprintln(w, e.Message)
	}
}
