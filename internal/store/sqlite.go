package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
)

// SQLite stores records in the sqlite database opened by internal/db.
// Write failures are logged before being returned so a flow that
// chooses to ignore them still leaves a trace.
type SQLite struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewSQLite(db *sql.DB, log *zap.SugaredLogger) *SQLite {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SQLite{db: db, log: log}
}

func (s *SQLite) get(user, kind, key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`
SELECT value_json FROM records
WHERE user_email = ? AND kind = ? AND record_key = ?
`, user, kind, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s record for %s: %w", kind, user, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s record for %s: %w", kind, user, err)
	}
	return true, nil
}

func (s *SQLite) put(user, kind, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s record for %s: %w", kind, user, err)
	}
	_, err = s.db.Exec(`
INSERT INTO records(user_email, kind, record_key, value_json, updated_at)
VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_email, kind, record_key) DO UPDATE SET
  value_json=excluded.value_json,
  updated_at=excluded.updated_at
`, user, kind, key, string(raw))
	if err != nil {
		s.log.Errorw("persist record failed", "user", user, "kind", kind, "key", key, "error", err)
		return fmt.Errorf("save %s record for %s: %w", kind, user, err)
	}
	return nil
}

func (s *SQLite) delete(user, kind, key string) error {
	if _, err := s.db.Exec(`
DELETE FROM records WHERE user_email = ? AND kind = ? AND record_key = ?
`, user, kind, key); err != nil {
		s.log.Errorw("delete record failed", "user", user, "kind", kind, "key", key, "error", err)
		return fmt.Errorf("delete %s record for %s: %w", kind, user, err)
	}
	return nil
}

func (s *SQLite) Profile(user string) (*model.Profile, error) {
	var p model.Profile
	found, err := s.get(user, KindProfile, "", &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) SaveProfile(user string, p *model.Profile) error {
	return s.put(user, KindProfile, "", p)
}

func (s *SQLite) DailyLog(user, date string) (*model.DailyLog, error) {
	var l model.DailyLog
	found, err := s.get(user, KindDailyLog, date, &l)
	if err != nil || !found {
		return nil, err
	}
	return &l, nil
}

func (s *SQLite) SaveDailyLog(user string, log *model.DailyLog) error {
	if strings.TrimSpace(log.Date) == "" {
		return fmt.Errorf("daily log date is required")
	}
	return s.put(user, KindDailyLog, log.Date, log)
}

func (s *SQLite) DailyLogs(user string) (map[string]*model.DailyLog, error) {
	rows, err := s.db.Query(`
SELECT record_key, value_json FROM records
WHERE user_email = ? AND kind = ?
ORDER BY record_key ASC
`, user, KindDailyLog)
	if err != nil {
		return nil, fmt.Errorf("list daily logs for %s: %w", user, err)
	}
	defer rows.Close()

	logs := make(map[string]*model.DailyLog)
	for rows.Next() {
		var date, raw string
		if err := rows.Scan(&date, &raw); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		var l model.DailyLog
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("decode daily log %s for %s: %w", date, user, err)
		}
		logs[date] = &l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily logs: %w", err)
	}
	return logs, nil
}

func (s *SQLite) FastingState(user string) (*model.FastingState, error) {
	var f model.FastingState
	found, err := s.get(user, KindFasting, "", &f)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

func (s *SQLite) SaveFastingState(user string, f *model.FastingState) error {
	return s.put(user, KindFasting, "", f)
}

func (s *SQLite) ClearFastingState(user string) error {
	return s.delete(user, KindFasting, "")
}

func (s *SQLite) Reminders(user string) ([]model.Reminder, error) {
	rs := []model.Reminder{}
	if _, err := s.get(user, KindReminders, "", &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *SQLite) SaveReminders(user string, rs []model.Reminder) error {
	return s.put(user, KindReminders, "", rs)
}

func (s *SQLite) Challenges(user string) ([]model.Challenge, error) {
	cs := []model.Challenge{}
	if _, err := s.get(user, KindChallenges, "", &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *SQLite) SaveChallenges(user string, cs []model.Challenge) error {
	return s.put(user, KindChallenges, "", cs)
}

func (s *SQLite) Recipes(user string) ([]model.Recipe, error) {
	rs := []model.Recipe{}
	if _, err := s.get(user, KindRecipes, "", &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *SQLite) SaveRecipes(user string, rs []model.Recipe) error {
	return s.put(user, KindRecipes, "", rs)
}

func (s *SQLite) EnsureUser(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid user email %q", email)
	}
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO users(email) VALUES(?)`, email); err != nil {
		return fmt.Errorf("ensure user %s: %w", email, err)
	}
	return nil
}

func (s *SQLite) Users() ([]string, error) {
	rows, err := s.db.Query(`SELECT email FROM users ORDER BY email ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (s *SQLite) SetConfig(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		s.log.Errorw("persist config failed", "key", key, "error", err)
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) GetConfig(key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}
