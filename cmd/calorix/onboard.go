package calorix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the interactive profile wizard",
	Long:  "onboard walks through the profile questionnaire section by section. Type 'back' at any prompt to return to the previous section; press Enter to skip an optional question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			existing, err := st.Profile(user)
			if err != nil {
				return err
			}
			w := newWizard(cmd.InOrStdin(), cmd.OutOrStdout(), service.NewOnboarding(existing))
			return w.run(st, user)
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

// errBack is the sentinel a prompt returns when the answer is "back".
var errBack = fmt.Errorf("back")

type wizard struct {
	in  *bufio.Scanner
	out io.Writer
	o   *service.Onboarding
}

func newWizard(in io.Reader, out io.Writer, o *service.Onboarding) *wizard {
	return &wizard{in: bufio.NewScanner(in), out: out, o: o}
}

func (w *wizard) run(st store.Store, user string) error {
	fmt.Fprintln(w.out, "Welcome to calorix! Let's set up your profile.")
	fmt.Fprint(w.out, "Press Enter to begin... ")
	if !w.in.Scan() {
		return fmt.Errorf("input closed")
	}
	if err := w.o.Start(); err != nil {
		return err
	}

	sections := []func() error{
		w.userProfile,
		w.activityRoutine,
		w.goals,
		w.healthStatus,
		w.eatingRoutine,
		w.sleepHabits,
		w.behavioralData,
		w.privacy,
	}

	for w.o.State() == service.StateForm {
		fmt.Fprintf(w.out, "\n[%d/%d] %s\n", w.o.Step()+1, len(service.FormSections), w.o.SectionTitle())
		err := sections[w.o.Step()]()
		switch {
		case err == errBack:
			if err := w.o.Back(); err != nil {
				return err
			}
			if w.o.State() == service.StateLanding {
				fmt.Fprintln(w.out, "Onboarding cancelled; nothing was saved.")
				return nil
			}
		case err != nil:
			return err
		default:
			if err := w.o.Next(); err != nil {
				return err
			}
		}
	}

	return w.confirmLoop(st, user)
}

func (w *wizard) confirmLoop(st store.Store, user string) error {
	for {
		data := w.o.Data()
		fmt.Fprintln(w.out, "\nSummary")
		fmt.Fprintf(w.out, "  Name: %s\n", data.Name)
		fmt.Fprintf(w.out, "  Age: %d  Gender: %s\n", data.Age, data.Gender)
		fmt.Fprintf(w.out, "  Weight: %.1f kg  Height: %.1f cm\n", data.Weight, data.Height)
		fmt.Fprintf(w.out, "  Activity: %s  Goal: %s\n", data.DailyActivityLevel, data.Goal)

		answer, err := w.ask("Confirm profile? (yes/edit)")
		if err == errBack {
			answer = "edit"
		} else if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			profile, events, err := w.o.Confirm(st, user)
			if err != nil {
				fmt.Fprintf(w.out, "Cannot confirm yet: %v\n", err)
				if err := w.o.Edit(); err != nil {
					return err
				}
				return fmt.Errorf("onboarding incomplete: %v", err)
			}
			fmt.Fprintf(w.out, "\nProfile saved. Daily targets:\n")
			fmt.Fprintf(w.out, "  Calories: %d kcal\n", profile.CaloriesGoal)
			fmt.Fprintf(w.out, "  Protein: %dg  Carbs: %dg  Fat: %dg\n",
				profile.ProteinGoalG, profile.CarbGoalG, profile.FatGoalG)
			fmt.Fprintf(w.out, "  Water: %d ml\n", profile.WaterGoalML)
			for _, e := range events {
				fmt.Fprintln(w.out, e.Message)
			}
			return nil
		case "edit", "e":
			if err := w.o.Edit(); err != nil {
				return err
			}
			// Re-run the form from the last section onward.
			sections := []func() error{
				w.userProfile, w.activityRoutine, w.goals, w.healthStatus,
				w.eatingRoutine, w.sleepHabits, w.behavioralData, w.privacy,
			}
			for w.o.State() == service.StateForm {
				fmt.Fprintf(w.out, "\n[%d/%d] %s\n", w.o.Step()+1, len(service.FormSections), w.o.SectionTitle())
				err := sections[w.o.Step()]()
				if err == errBack {
					if err := w.o.Back(); err != nil {
						return err
					}
					continue
				}
				if err != nil {
					return err
				}
				if err := w.o.Next(); err != nil {
					return err
				}
			}
		default:
			fmt.Fprintln(w.out, "Please answer 'yes' or 'edit'.")
		}
	}
}

func (w *wizard) userProfile() error {
	if err := w.setString("name", "Your name"); err != nil {
		return err
	}
	if err := w.setInt("age", "Age"); err != nil {
		return err
	}
	if err := w.setChoice("gender", "Gender", "male", "female", "undisclosed", "unspecified"); err != nil {
		return err
	}
	if err := w.setFloat("weight", "Weight (kg)"); err != nil {
		return err
	}
	if err := w.setFloat("height", "Height (cm)"); err != nil {
		return err
	}
	return w.setChoice("unit_type", "Units", "metric", "imperial")
}

func (w *wizard) activityRoutine() error {
	if err := w.setChoice("daily_activity_level", "Daily activity level",
		"sedentary", "light", "moderate", "active", "very_active"); err != nil {
		return err
	}
	practices, err := w.askBool("Do you practice sports? (yes/no)")
	if err != nil {
		return err
	}
	if err := w.o.Set("practices_sports", practices); err != nil {
		return err
	}
	if practices {
		return w.setString("sport_name", "Which sport")
	}
	return nil
}

func (w *wizard) goals() error {
	if err := w.setChoice("goal", "Main goal",
		"lose_weight", "gain_muscle", "define_body", "improve_conditioning",
		"maintain_weight", "reduce_measurements", "healthy_lifestyle"); err != nil {
		return err
	}
	if err := w.setFloat("desired_weight", "Desired weight (kg, Enter to skip)"); err != nil {
		return err
	}
	return w.setString("estimated_deadline", "Target date (Enter to skip)")
}

func (w *wizard) healthStatus() error {
	if err := w.setList("health_issues", "Health issues (comma separated, 'other' allowed, Enter for none)"); err != nil {
		return err
	}
	if containsOther(w.o.Data().HealthIssues) {
		if err := w.setString("other_health_issue", "Describe the other health issue"); err != nil {
			return err
		}
	}
	if err := w.setList("allergies", "Allergies (comma separated, 'other' allowed, Enter for none)"); err != nil {
		return err
	}
	if containsOther(w.o.Data().Allergies) {
		return w.setString("other_allergy", "Describe the other allergy")
	}
	return nil
}

func containsOther(values []string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), "other") {
			return true
		}
	}
	return false
}

func (w *wizard) eatingRoutine() error {
	if err := w.setString("eating_style", "Eating style (Enter to skip)"); err != nil {
		return err
	}
	if err := w.setString("water_consumption", "How much water do you drink daily? (Enter to skip)"); err != nil {
		return err
	}
	return w.setString("alcohol_consumption", "How often do you drink alcohol? (Enter to skip)")
}

func (w *wizard) sleepHabits() error {
	if err := w.setString("sleep_hours", "Hours of sleep per night (Enter to skip)"); err != nil {
		return err
	}
	return w.setString("sleep_quality", "Sleep quality (Enter to skip)")
}

func (w *wizard) behavioralData() error {
	if err := w.setString("discipline_level", "How disciplined are you? (Enter to skip)"); err != nil {
		return err
	}
	if err := w.setList("motivation_type", "What motivates you? (comma separated, Enter to skip)"); err != nil {
		return err
	}
	return w.setString("notification_preference", "Notification preference (Enter to skip)")
}

func (w *wizard) privacy() error {
	if err := w.setString("allow_local_saving", "Allow saving data locally? (Enter to skip)"); err != nil {
		return err
	}
	return w.setString("want_automatic_personalization", "Want automatic personalization? (Enter to skip)")
}

func (w *wizard) ask(prompt string) (string, error) {
	fmt.Fprintf(w.out, "%s: ", prompt)
	if !w.in.Scan() {
		return "", fmt.Errorf("input closed")
	}
	answer := strings.TrimSpace(w.in.Text())
	if strings.EqualFold(answer, "back") {
		return "", errBack
	}
	return answer, nil
}

func (w *wizard) setString(field, prompt string) error {
	answer, err := w.ask(prompt)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	return w.o.Set(field, answer)
}

func (w *wizard) setInt(field, prompt string) error {
	for {
		answer, err := w.ask(prompt)
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintf(w.out, "Please enter a whole number.\n")
			continue
		}
		return w.o.Set(field, n)
	}
}

func (w *wizard) setFloat(field, prompt string) error {
	for {
		answer, err := w.ask(prompt)
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintf(w.out, "Please enter a number.\n")
			continue
		}
		return w.o.Set(field, f)
	}
}

func (w *wizard) setChoice(field, prompt string, options ...string) error {
	for {
		answer, err := w.ask(fmt.Sprintf("%s (%s)", prompt, strings.Join(options, ", ")))
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		if err := w.o.Set(field, strings.ToLower(answer)); err != nil {
			fmt.Fprintf(w.out, "%v\n", err)
			continue
		}
		return nil
	}
}

func (w *wizard) setList(field, prompt string) error {
	answer, err := w.ask(prompt)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	parts := strings.Split(answer, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return w.o.Set(field, values)
}

func (w *wizard) askBool(prompt string) (bool, error) {
	for {
		answer, err := w.ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y", "true":
			return true, nil
		case "no", "n", "false", "":
			return false, nil
		}
		fmt.Fprintln(w.out, "Please answer yes or no.")
	}
}
