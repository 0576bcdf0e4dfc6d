package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var validate = validator.New()

// profileCommit is the required-field subset checked when a profile is
// committed (onboarding confirm or profile-edit save). Optional fields
// stay optional; only these four block a commit.
type profileCommit struct {
	Name   string  `validate:"required"`
	Age    int     `validate:"gt=0"`
	Weight float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
}

var commitFieldNames = map[string]string{
	"Name":   "name",
	"Age":    "age",
	"Weight": "weight",
	"Height": "height",
}

// ValidateCommit enforces the commit-time contract: name non-empty,
// age/weight/height positive. The error message enumerates every
// missing or invalid field.
func ValidateCommit(p *model.Profile) error {
	c := profileCommit{
		Name:   strings.TrimSpace(p.Name),
		Age:    p.Age,
		Weight: p.Weight,
		Height: p.Height,
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate profile: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, commitFieldNames[fe.StructField()])
	}
	return fmt.Errorf("missing or invalid profile fields: %s", strings.Join(fields, ", "))
}

// SaveProfile validates, recomputes the derived targets, and persists.
// This is the single commit path for both onboarding confirmation and
// profile edits, so derived fields can never go stale. The notification
// policy runs against today's log before returning: a goal change can
// retroactively satisfy today's targets, and the one-shot events must
// fire at edit time, not on the next meal mutation.
func SaveProfile(st store.Store, user string, p *model.Profile) ([]Notification, error) {
	if err := ValidateCommit(p); err != nil {
		return nil, err
	}
	ApplyGoals(p)
	if err := st.SaveProfile(user, p); err != nil {
		return nil, err
	}
	return refreshTodayNotifications(st, user, p)
}

func refreshTodayNotifications(st store.Store, user string, p *model.Profile) ([]Notification, error) {
	today := time.Now().Format("2006-01-02")
	log, err := st.DailyLog(user, today)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	events := EvaluateNotifications(log, p)
	if len(events) == 0 {
		return nil, nil
	}
	if err := st.SaveDailyLog(user, log); err != nil {
		return nil, err
	}
	return events, nil
}

// ProfileUpdateInput carries a partial edit. Nil fields are left
// untouched. Any set field among the biometric tuple triggers a goal
// recomputation on save.
type ProfileUpdateInput struct {
	Name          *string
	Age           *int
	Gender        *model.Gender
	Weight        *float64
	Height        *float64
	ActivityLevel *model.ActivityLevel
	Goal          *model.Goal
	DesiredWeight *float64
	SportName     *string
}

// UpdateProfile applies a partial edit to the stored profile and saves
// it through the commit path, returning any notifications the goal
// change made due.
func UpdateProfile(st store.Store, user string, in ProfileUpdateInput) (*model.Profile, []Notification, error) {
	p, err := st.Profile(user)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, fmt.Errorf("no profile for %s; complete onboarding first", user)
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.ActivityLevel != nil {
		p.DailyActivityLevel = *in.ActivityLevel
	}
	if in.Goal != nil {
		p.Goal = *in.Goal
	}
	if in.DesiredWeight != nil {
		p.DesiredWeight = *in.DesiredWeight
	}
	if in.SportName != nil {
		p.SportName = strings.TrimSpace(*in.SportName)
	}

	events, err := SaveProfile(st, user, p)
	if err != nil {
		return nil, nil, err
	}
	return p, events, nil
}

// ParseGender maps user-facing gender strings onto the enum.
func ParseGender(s string) (model.Gender, error) {
	switch model.Gender(strings.TrimSpace(strings.ToLower(s))) {
	case model.GenderMale:
		return model.GenderMale, nil
	case model.GenderFemale:
		return model.GenderFemale, nil
	case model.GenderUndisclosed:
		return model.GenderUndisclosed, nil
	case model.GenderUnspecified, "":
		return model.GenderUnspecified, nil
	}
	return "", fmt.Errorf("unknown gender %q (male, female, undisclosed, unspecified)", s)
}

// ParseActivityLevel validates an activity level string. The empty
// string is accepted; downstream math treats it as sedentary.
func ParseActivityLevel(s string) (model.ActivityLevel, error) {
	level := model.ActivityLevel(strings.TrimSpace(strings.ToLower(s)))
	if level == "" {
		return level, nil
	}
	if _, ok := activityFactors[level]; !ok {
		return "", fmt.Errorf("unknown activity level %q (sedentary, light, moderate, active, very_active)", s)
	}
	return level, nil
}

// ParseGoal validates a goal string against the expanded enum.
func ParseGoal(s string) (model.Goal, error) {
	g := model.Goal(strings.TrimSpace(strings.ToLower(s)))
	switch g {
	case model.GoalLoseWeight, model.GoalGainMuscle, model.GoalDefineBody,
		model.GoalImproveConditioning, model.GoalMaintainWeight,
		model.GoalReduceMeasurements, model.GoalHealthyLifestyle:
		return g, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}
