package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafavit29-crypto/app-calorix/internal/model"
	"github.com/rafavit29-crypto/app-calorix/internal/store"
)

type AddRecipeInput struct {
	Name        string
	Description string
	Items       []model.RecipeItem
}

// AddRecipe stores a recipe; its nutritional totals are derived from
// its items, never supplied independently.
func AddRecipe(st store.Store, user string, in AddRecipeInput) (*model.Recipe, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("recipe name is required")
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("recipe needs at least one item")
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("recipe item name is required")
		}
		if item.Calories < 0 || item.ProteinG < 0 || item.CarbsG < 0 || item.FatG < 0 || item.PortionG < 0 {
			return nil, fmt.Errorf("recipe item %q has negative nutrition values", item.Name)
		}
	}

	recipes, err := st.Recipes(user)
	if err != nil {
		return nil, err
	}
	for _, existing := range recipes {
		if strings.EqualFold(existing.Name, in.Name) {
			return nil, fmt.Errorf("recipe %q already exists", in.Name)
		}
	}

	r := model.Recipe{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Items:       in.Items,
		CreatedAt:   time.Now(),
	}
	for _, item := range in.Items {
		r.Calories += item.Calories
		r.ProteinG += item.ProteinG
		r.CarbsG += item.CarbsG
		r.FatG += item.FatG
	}

	recipes = append(recipes, r)
	if err := st.SaveRecipes(user, recipes); err != nil {
		return nil, err
	}
	return &r, nil
}

func ListRecipes(st store.Store, user string) ([]model.Recipe, error) {
	return st.Recipes(user)
}

// LogRecipe appends every item of a recipe to a day's category bucket
// through the normal meal mutation path, so totals and notifications
// stay synchronized.
func LogRecipe(st store.Store, user, recipeID, date string, category model.MealCategory) ([]Notification, error) {
	recipes, err := st.Recipes(user)
	if err != nil {
		return nil, err
	}
	var recipe *model.Recipe
	for i := range recipes {
		if recipes[i].ID == recipeID || strings.EqualFold(recipes[i].Name, recipeID) {
			recipe = &recipes[i]
			break
		}
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s not found", recipeID)
	}

	var events []Notification
	for _, item := range recipe.Items {
		_, itemEvents, err := AddMealItem(st, user, AddMealItemInput{
			Date:     date,
			Category: category,
			Name:     item.Name,
			PortionG: item.PortionG,
			Calories: item.Calories,
			ProteinG: item.ProteinG,
			CarbsG:   item.CarbsG,
			FatG:     item.FatG,
			Source:   model.SourceRecipe,
		})
		if err != nil {
			return events, fmt.Errorf("log recipe item %q: %w", item.Name, err)
		}
		events = append(events, itemEvents...)
	}
	return events, nil
}
