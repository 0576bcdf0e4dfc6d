package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

type AddChallengeInput struct {
	Name        string
	Description string
	TargetDays  int
	Type        string // standard | custom, defaults to custom
}

func AddChallenge(st store.Store, user string, in AddChallengeInput) (*model.Challenge, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("challenge name is required")
	}
	if in.TargetDays <= 0 {
		return nil, fmt.Errorf("target days must be > 0")
	}
	switch in.Type {
	case "":
		in.Type = "custom"
	case "standard", "custom":
	default:
		return nil, fmt.Errorf("unknown challenge type %q (standard, custom)", in.Type)
	}

	challenges, err := st.Challenges(user)
	if err != nil {
		return nil, err
	}
	c := model.Challenge{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		TargetDays:  in.TargetDays,
		Progress:    []model.ChallengeProgress{},
		Type:        in.Type,
	}
	challenges = append(challenges, c)
	if err := st.SaveChallenges(user, challenges); err != nil {
		return nil, err
	}
	return &c, nil
}

func ListChallenges(st store.Store, user string) ([]model.Challenge, error) {
	return st.Challenges(user)
}

// CheckInChallenge records one completed day. A date can only be
// checked in once; reaching targetDays completed days marks the
// challenge completed and awards the medal.
func CheckInChallenge(st store.Store, user, id, date string) (*model.Challenge, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	challenges, err := st.Challenges(user)
	if err != nil {
		return nil, err
	}
	for i := range challenges {
		c := &challenges[i]
		if c.ID != id {
			continue
		}
		if c.IsCompleted {
			return nil, fmt.Errorf("challenge %q is already completed", c.Name)
		}
		for _, p := range c.Progress {
			if p.Date == date {
				return nil, fmt.Errorf("already checked in on %s", date)
			}
		}
		c.Progress = append(c.Progress, model.ChallengeProgress{Date: date, Completed: true})

		completed := 0
		for _, p := range c.Progress {
			if p.Completed {
				completed++
			}
		}
		if completed >= c.TargetDays {
			c.IsCompleted = true
			c.MedalEarned = true
			c.CompletedDate = date
		}

		if err := st.SaveChallenges(user, challenges); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("challenge %s not found", id)
}

func DeleteChallenge(st store.Store, user, id string) error {
	challenges, err := st.Challenges(user)
	if err != nil {
		return err
	}
	for i := range challenges {
		if challenges[i].ID == id {
			challenges = append(challenges[:i:i], challenges[i+1:]...)
			return st.SaveChallenges(user, challenges)
		}
	}
	return fmt.Errorf("challenge %s not found", id)
}
