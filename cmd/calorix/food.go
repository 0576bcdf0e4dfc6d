package calorix

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafavit29-crypto/app-calorix/internal/catalog"
	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/service"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and manage meals",
}

var (
	foodName     string
	foodCategory string
	foodDate     string
	foodPortion  float64
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodBarcode  string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food item to a day's meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddMealItemInput{
			Date:     foodDate,
			Category: model.MealCategory(foodCategory),
			Name:     foodName,
			PortionG: foodPortion,
			Calories: foodCalories,
			ProteinG: foodProtein,
			CarbsG:   foodCarbs,
			FatG:     foodFat,
		}
		if foodBarcode != "" {
			product, ok := catalog.ByBarcode(foodBarcode)
			if !ok {
				return fmt.Errorf("no product with barcode %s", foodBarcode)
			}
			if in.Name == "" {
				in.Name = product.Name
			}
			if !cmd.Flags().Changed("portion") {
				in.PortionG = product.PortionG
			}
			if !cmd.Flags().Changed("calories") {
				in.Calories = product.Calories
			}
			if !cmd.Flags().Changed("protein") {
				in.ProteinG = product.ProteinG
			}
			if !cmd.Flags().Changed("carbs") {
				in.CarbsG = product.CarbsG
			}
			if !cmd.Flags().Changed("fat") {
				in.FatG = product.FatG
			}
		}

		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			item, events, err := service.AddMealItem(st, user, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%.0f kcal) to %s\n", item.Name, item.Calories, in.Category)
			printNotifications(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete a logged food item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			events, err := service.DeleteMealItem(st, user, foodDate, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			printNotifications(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's logged food",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store) error {
			user, err := resolveUser(st)
			if err != nil {
				return err
			}
			log, err := st.DailyLog(user, defaultDate(foodDate))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if log == nil {
				fmt.Fprintln(out, "Nothing logged yet")
				return nil
			}
			fmt.Fprintln(out, "ID\tCATEGORY\tNAME\tKCAL\tP\tC\tF")
			for _, category := range model.MealCategories {
				for _, item := range log.Meals[category] {
					fmt.Fprintf(out, "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
						item.ID, category, item.Name, item.Calories, item.ProteinG, item.CarbsG, item.FatG)
				}
			}
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the built-in product catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches := catalog.Search(args[0])
		out := cmd.OutOrStdout()
		if len(matches) == 0 {
			fmt.Fprintln(out, "No products found")
			return nil
		}
		fmt.Fprintln(out, "BARCODE\tNAME\tPORTION\tKCAL\tP\tC\tF")
		for _, p := range matches {
			fmt.Fprintf(out, "%s\t%s\t%.0fg\t%.0f\t%.1f\t%.1f\t%.1f\n",
				p.Barcode, p.Name, p.PortionG, p.Calories, p.ProteinG, p.CarbsG, p.FatG)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodSearchCmd)

	addFlags := foodAddCmd.Flags()
	addFlags.StringVar(&foodName, "name", "", "Food name")
	addFlags.StringVar(&foodCategory, "category", "snack", "Meal category (breakfast, lunch, dinner, snack)")
	addFlags.StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")
	addFlags.Float64Var(&foodPortion, "portion", 0, "Portion in grams")
	addFlags.Float64Var(&foodCalories, "calories", 0, "Calories (kcal)")
	addFlags.Float64Var(&foodProtein, "protein", 0, "Protein in grams")
	addFlags.Float64Var(&foodCarbs, "carbs", 0, "Carbs in grams")
	addFlags.Float64Var(&foodFat, "fat", 0, "Fat in grams")
	addFlags.StringVar(&foodBarcode, "barcode", "", "Prefill from the product catalog by barcode")

	foodDeleteCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")
	foodListCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
