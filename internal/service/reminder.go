package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

func AddReminder(st store.Store, user, name, at string) (*model.Reminder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("reminder name is required")
	}
	at = strings.TrimSpace(at)
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid reminder time %q (expected HH:MM)", at)
	}

	reminders, err := st.Reminders(user)
	if err != nil {
		return nil, err
	}
	r := model.Reminder{
		ID:     uuid.NewString(),
		Name:   name,
		Time:   at,
		Active: true,
	}
	reminders = append(reminders, r)
	if err := st.SaveReminders(user, reminders); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReminders returns the user's reminders ordered by time of day.
func ListReminders(st store.Store, user string) ([]model.Reminder, error) {
	reminders, err := st.Reminders(user)
	if err != nil {
		return nil, err
	}
	sort.Slice(reminders, func(i, j int) bool {
		if reminders[i].Time != reminders[j].Time {
			return reminders[i].Time < reminders[j].Time
		}
		return reminders[i].Name < reminders[j].Name
	})
	return reminders, nil
}

// ToggleReminder flips a reminder's active flag and returns the new
// value.
func ToggleReminder(st store.Store, user, id string) (bool, error) {
	reminders, err := st.Reminders(user)
	if err != nil {
		return false, err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			reminders[i].Active = !reminders[i].Active
			if err := st.SaveReminders(user, reminders); err != nil {
				return false, err
			}
			return reminders[i].Active, nil
		}
	}
	return false, fmt.Errorf("reminder %s not found", id)
}

func DeleteReminder(st store.Store, user, id string) error {
	reminders, err := st.Reminders(user)
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			reminders = append(reminders[:i:i], reminders[i+1:]...)
			return st.SaveReminders(user, reminders)
		}
	}
	return fmt.Errorf("reminder %s not found", id)
}
