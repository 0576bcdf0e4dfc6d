package service

import (
	"fmt"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

type OnboardingState string

const (
	StateLanding   OnboardingState = "landing"
	StateForm      OnboardingState = "form"
	StateSummary   OnboardingState = "summary"
	StateConfirmed OnboardingState = "confirmed"
)

// FormSections are the eight fixed wizard sections, in order.
var FormSections = []string{
	"User Profile",
	"Activity Routine",
	"Goals",
	"Health Status",
	"Eating Routine",
	"Sleep Habits",
	"Behavioral Data",
	"Privacy & Personalization",
}

// Onboarding is a linear wizard with backtracking over the form
// sections. It accumulates partial profile answers; required-field
// validation happens only at Confirm, never per step.
type Onboarding struct {
	state OnboardingState
	step  int
	data  model.Profile
}

// NewOnboarding starts at the landing state. A non-nil initial profile
// seeds the accumulator (re-running onboarding keeps prior answers).
func NewOnboarding(initial *model.Profile) *Onboarding {
	o := &Onboarding{state: StateLanding}
	if initial != nil {
		o.data = *initial
	}
	return o
}

func (o *Onboarding) State() OnboardingState { return o.state }

// Step is the current 0-based section index; meaningful only in the
// form state.
func (o *Onboarding) Step() int { return o.step }

func (o *Onboarding) SectionTitle() string {
	if o.step >= 0 && o.step < len(FormSections) {
		return FormSections[o.step]
	}
	return ""
}

// Data returns a copy of the accumulator.
func (o *Onboarding) Data() model.Profile { return o.data }

func (o *Onboarding) Start() error {
	if o.state != StateLanding {
		return fmt.Errorf("cannot start from %s state", o.state)
	}
	o.state = StateForm
	o.step = 0
	return nil
}

// Next advances one section, carrying the accumulated answers forward;
// from the last section it enters the summary.
func (o *Onboarding) Next() error {
	if o.state != StateForm {
		return fmt.Errorf("cannot advance from %s state", o.state)
	}
	if o.step < len(FormSections)-1 {
		o.step++
		return nil
	}
	o.state = StateSummary
	return nil
}

// Back retreats one section; from the first section it returns to the
// landing state.
func (o *Onboarding) Back() error {
	if o.state != StateForm {
		return fmt.Errorf("cannot go back from %s state", o.state)
	}
	if o.step > 0 {
		o.step--
		return nil
	}
	o.state = StateLanding
	return nil
}

// Edit re-enters the form at the last section from the summary,
// clearing any confirmation.
func (o *Onboarding) Edit() error {
	if o.state != StateSummary {
		return fmt.Errorf("cannot edit from %s state", o.state)
	}
	o.state = StateForm
	o.step = len(FormSections) - 1
	o.data.OnboardingComplete = false
	return nil
}

// Confirm commits the accumulated profile: required fields are
// validated, goals are recomputed on the full data, onboardingComplete
// is set, and the result is persisted. Notifications that today's
// consumption already satisfies come back with the profile. Idempotent;
// confirming again re-commits the same data.
func (o *Onboarding) Confirm(st store.Store, user string) (*model.Profile, []Notification, error) {
	if o.state != StateSummary && o.state != StateConfirmed {
		return nil, nil, fmt.Errorf("cannot confirm from %s state", o.state)
	}
	o.data.OnboardingComplete = true
	committed := o.data
	events, err := SaveProfile(st, user, &committed)
	if err != nil {
		o.data.OnboardingComplete = false
		return nil, nil, err
	}
	o.data = committed
	o.state = StateConfirmed
	return &committed, events, nil
}

// Set applies one named answer to the accumulator. Conditional
// sub-fields (sport_name, other_health_issue, other_allergy) are not
// cleared when their guard later flips off; the stale value is kept
// for a possible re-toggle and is simply ignored by presenters.
func (o *Onboarding) Set(field string, value any) error {
	if o.state != StateForm {
		return fmt.Errorf("cannot set fields in %s state", o.state)
	}
	switch field {
	case "name":
		return setString(field, value, &o.data.Name)
	case "age":
		return setInt(field, value, &o.data.Age)
	case "gender":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		g, err := ParseGender(s)
		if err != nil {
			return err
		}
		o.data.Gender = g
	case "weight":
		return setFloat(field, value, &o.data.Weight)
	case "height":
		return setFloat(field, value, &o.data.Height)
	case "unit_type":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		switch model.UnitType(s) {
		case model.UnitMetric, model.UnitImperial:
			o.data.UnitType = model.UnitType(s)
		default:
			return fmt.Errorf("unknown unit type %q (metric, imperial)", s)
		}
	case "daily_activity_level":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		level, err := ParseActivityLevel(s)
		if err != nil {
			return err
		}
		o.data.DailyActivityLevel = level
	case "practices_sports":
		return setBool(field, value, &o.data.PracticesSports)
	case "sport_name":
		return setString(field, value, &o.data.SportName)
	case "goal":
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		g, err := ParseGoal(s)
		if err != nil {
			return err
		}
		o.data.Goal = g
	case "desired_weight":
		return setFloat(field, value, &o.data.DesiredWeight)
	case "estimated_deadline":
		return setString(field, value, &o.data.EstimatedDeadline)
	case "health_issues":
		return setStrings(field, value, &o.data.HealthIssues)
	case "other_health_issue":
		return setString(field, value, &o.data.OtherHealthIssue)
	case "allergies":
		return setStrings(field, value, &o.data.Allergies)
	case "other_allergy":
		return setString(field, value, &o.data.OtherAllergy)
	case "eating_style":
		return setString(field, value, &o.data.EatingStyle)
	case "preferences":
		return setStrings(field, value, &o.data.Preferences)
	case "water_consumption":
		return setString(field, value, &o.data.WaterConsumption)
	case "alcohol_consumption":
		return setString(field, value, &o.data.AlcoholConsumption)
	case "sleep_hours":
		return setString(field, value, &o.data.SleepHours)
	case "sleep_quality":
		return setString(field, value, &o.data.SleepQuality)
	case "discipline_level":
		return setString(field, value, &o.data.DisciplineLevel)
	case "motivation_type":
		return setStrings(field, value, &o.data.MotivationType)
	case "notification_preference":
		return setString(field, value, &o.data.NotificationPreference)
	case "allow_local_saving":
		return setString(field, value, &o.data.AllowLocalSaving)
	case "want_automatic_personalization":
		return setString(field, value, &o.data.WantAutomaticPersonalization)
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}
	return nil
}

func asString(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q expects a string, got %T", field, value)
	}
	return s, nil
}

func setString(field string, value any, dst *string) error {
	s, err := asString(field, value)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setInt(field string, value any, dst *int) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("field %q expects an int, got %T", field, value)
	}
	*dst = n
	return nil
}

func setFloat(field string, value any, dst *float64) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return fmt.Errorf("field %q expects a number, got %T", field, value)
	}
	return nil
}

func setBool(field string, value any, dst *bool) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("field %q expects a bool, got %T", field, value)
	}
	*dst = b
	return nil
}

func setStrings(field string, value any, dst *[]string) error {
	vs, ok := value.([]string)
	if !ok {
		return fmt.Errorf("field %q expects a string list, got %T", field, value)
	}
	*dst = vs
	return nil
}
