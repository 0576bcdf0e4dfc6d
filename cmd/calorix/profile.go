package calorix

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile and daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			p, err := st.Profile(user)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile for %s; run 'calorix onboard' first", user)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Weight: %.1f kg\n", p.Weight)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.Height)
			fmt.Fprintf(out, "Activity: %s\n", p.DailyActivityLevel)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			if p.SportName != "" && p.PracticesSports {
				fmt.Fprintf(out, "Sport: %s\n", p.SportName)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Calories goal: %d kcal\n", p.CaloriesGoal)
			fmt.Fprintf(out, "Protein goal: %dg\n", p.ProteinGoalG)
			fmt.Fprintf(out, "Carb goal: %dg\n", p.CarbGoalG)
			fmt.Fprintf(out, "Fat goal: %dg\n", p.FatGoalG)
			fmt.Fprintf(out, "Water goal: %d ml\n", p.WaterGoalML)
			return nil
		})
	},
}

var (
	profileSetName      string
	profileSetAge       int
	profileSetGender    string
	profileSetWeight    float64
	profileSetHeight    float64
	profileSetActivity  string
	profileSetGoal      string
	profileSetDesiredKg float64
	profileSetSport     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit profile fields; goals are recomputed automatically",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileUpdateInput{}
		if cmd.Flags().Changed("name") {
			in.Name = &profileSetName
		}
		if cmd.Flags().Changed("age") {
			in.Age = &profileSetAge
		}
		if cmd.Flags().Changed("gender") {
			g, err := service.ParseGender(profileSetGender)
			if err != nil {
				return err
			}
			in.Gender = &g
		}
		if cmd.Flags().Changed("weight") {
			in.Weight = &profileSetWeight
		}
		if cmd.Flags().Changed("height") {
			in.Height = &profileSetHeight
		}
		if cmd.Flags().Changed("activity") {
			level, err := service.ParseActivityLevel(profileSetActivity)
			if err != nil {
				return err
			}
			in.ActivityLevel = &level
		}
		if cmd.Flags().Changed("goal") {
			g, err := service.ParseGoal(profileSetGoal)
			if err != nil {
				return err
			}
			in.Goal = &g
		}
		if cmd.Flags().Changed("desired-weight") {
			in.DesiredWeight = &profileSetDesiredKg
		}
		if cmd.Flags().Changed("sport") {
			in.SportName = &profileSetSport
		}

		if in == (service.ProfileUpdateInput{}) {
			return fmt.Errorf("nothing to update; pass at least one flag (see 'calorix profile set --help')")
		}

		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			p, events, err := service.UpdateProfile(st, user, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated. Calories goal: %d kcal, water goal: %d ml\n",
				p.CaloriesGoal, p.WaterGoalML)
			printNotifications(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	flags := profileSetCmd.Flags()
	flags.StringVar(&profileSetName, "name", "", "Display name")
	flags.IntVar(&profileSetAge, "age", 0, "Age in years")
	flags.StringVar(&profileSetGender, "gender", "", "Gender (male, female, undisclosed, unspecified)")
	flags.Float64Var(&profileSetWeight, "weight", 0, "Weight in kg")
	flags.Float64Var(&profileSetHeight, "height", 0, "Height in cm")
	flags.StringVar(&profileSetActivity, "activity", "", "Activity level (sedentary, light, moderate, active, very_active)")
	flags.StringVar(&profileSetGoal, "goal", "", "Goal ("+strings.Join(goalNames(), ", ")+")")
	flags.Float64Var(&profileSetDesiredKg, "desired-weight", 0, "Desired weight in kg")
	flags.StringVar(&profileSetSport, "sport", "", "Sport name")
}

func goalNames() []string {
	return []string{
		"lose_weight", "gain_muscle", "define_body", "improve_conditioning",
		"maintain_weight", "reduce_measurements", "healthy_lifestyle",
	}
}
