package calorix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
}

var (
	recipeDescription string
	recipeItems       []string
	recipeLogDate     string
	recipeLogCategory string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a recipe from --item specs",
	Long:  "Each --item has the form name:portion_g:kcal:protein_g:carbs_g:fat_g, for example --item 'Greek yogurt:150:130:15:6:5'.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]model.RecipeItem, 0, len(recipeItems))
		for _, spec := range recipeItems {
			item, err := parseRecipeItem(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			r, err := service.AddRecipe(st, user, service.AddRecipeInput{
				Name:        args[0],
				Description: recipeDescription,
				Items:       items,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %s: %.0f kcal, %d items (%s)\n",
				r.Name, r.Calories, len(r.Items), r.ID)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			recipes, err := service.ListRecipes(st, user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recipes) == 0 {
				fmt.Fprintln(out, "No recipes")
				return nil
			}
			fmt.Fprintln(out, "ID\tNAME\tITEMS\tKCAL\tP\tC\tF")
			for _, r := range recipes {
				fmt.Fprintf(out, "%s\t%s\t%d\t%.0f\t%.1f\t%.1f\t%.1f\n",
					r.ID, r.Name, len(r.Items), r.Calories, r.ProteinG, r.CarbsG, r.FatG)
			}
			return nil
		})
	},
}

var recipeLogCmd = &cobra.Command{
	Use:   "log <id|name>",
	Short: "Log every item of a recipe as a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			events, err := service.LogRecipe(st, user, args[0], recipeLogDate,
				model.MealCategory(recipeLogCategory))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Recipe logged")
			printNotifications(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

// parseRecipeItem parses "name:portion:kcal:protein:carbs:fat".
func parseRecipeItem(spec string) (model.RecipeItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 6 {
		return model.RecipeItem{}, fmt.Errorf("invalid --item %q (expected name:portion_g:kcal:protein_g:carbs_g:fat_g)", spec)
	}
	values := make([]float64, 5)
	for i, raw := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return model.RecipeItem{}, fmt.Errorf("invalid number %q in --item %q", raw, spec)
		}
		values[i] = v
	}
	return model.RecipeItem{
		Name:     strings.TrimSpace(parts[0]),
		PortionG: values[0],
		Calories: values[1],
		ProteinG: values[2],
		CarbsG:   values[3],
		FatG:     values[4],
	}, nil
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeLogCmd)

	recipeAddCmd.Flags().StringVar(&recipeDescription, "description", "", "Recipe description")
	recipeAddCmd.Flags().StringArrayVar(&recipeItems, "item", nil, "Recipe item as name:portion_g:kcal:protein_g:carbs_g:fat_g (repeatable)")
	recipeLogCmd.Flags().StringVar(&recipeLogDate, "date", "", "Date (YYYY-MM-DD, default today)")
	recipeLogCmd.Flags().StringVar(&recipeLogCategory, "category", "snack", "Meal category (breakfast, lunch, dinner, snack)")
}
