package service

import (
	"fmt"
	"time"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

// StartFast begins a fast of the given duration from now. An already
// active fast must be cancelled first.
func StartFast(st store.Store, user string, hours float64, now time.Time) (*model.FastingState, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("fast duration must be > 0 hours")
	}
	current, err := st.FastingState(user)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Active {
		return nil, fmt.Errorf("a fast is already active until %s", current.EndTime.Format(time.RFC3339))
	}

	end := now.Add(time.Duration(hours * float64(time.Hour)))
	state := &model.FastingState{
		Active:        true,
		StartTime:     &now,
		EndTime:       &end,
		DurationHours: hours,
	}
	if err := st.SaveFastingState(user, state); err != nil {
		return nil, err
	}
	return state, nil
}

// CancelFast clears the fasting state immediately, effective before
// the next tick.
func CancelFast(st store.Store, user string) error {
	current, err := st.FastingState(user)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no fast to cancel")
	}
	return st.ClearFastingState(user)
}

// TickFast is the once-per-tick deadline poll: when the wall clock
// passes the stored end instant the fast transitions to inactive
// exactly once, emitting a one-shot completion notification guarded by
// the persisted completionNotified flag (so re-runs and reloads cannot
// fire it again).
func TickFast(st store.Store, user string, now time.Time) (*model.FastingState, *Notification, error) {
	state, err := st.FastingState(user)
	if err != nil {
		return nil, nil, err
	}
	if state == nil || !state.Active || state.EndTime == nil {
		return state, nil, nil
	}
	if now.Before(*state.EndTime) {
		return state, nil, nil
	}

	state.Active = false
	if state.CompletionNotified {
		if err := st.SaveFastingState(user, state); err != nil {
			return nil, nil, err
		}
		return state, nil, nil
	}
	state.CompletionNotified = true
	if err := st.SaveFastingState(user, state); err != nil {
		return nil, nil, err
	}
	event := &Notification{
		Type:    NotifyFastingComplete,
		Kind:    "success",
		Message: fmt.Sprintf("Congratulations! Your %gh fast is complete 🎉", state.DurationHours),
	}
	return state, event, nil
}

// FastingRemaining reports the time left on an active fast, floored at
// zero.
func FastingRemaining(state *model.FastingState, now time.Time) time.Duration {
	if state == nil || !state.Active || state.EndTime == nil {
		return 0
	}
	remaining := state.EndTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
