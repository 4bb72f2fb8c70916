package recipes

import (
	"context"
	"testing"

	"forkful/models"
)

// Payload cases that fail before any tag or ingredient lookup, so they
// need no database.
func TestRecipePayloadValidateLocalRules(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		payload    recipePayload
		wantFields []string
	}{
		{
			"everything missing",
			recipePayload{},
			[]string{"name", "text", "cooking_time", "image", "tags", "ingredients"},
		},
		{
			"duplicate tags and ingredients",
			recipePayload{
				Name:        "soup",
				Text:        "boil it",
				CookingTime: 10,
				Image:       "data:image/png;base64,xxxx",
				Tags:        []string{"t1", "t1"},
				Ingredients: []models.RecipeIngredient{
					{IngredientID: "i1", Amount: 2},
					{IngredientID: "i1", Amount: 3},
				},
			},
			[]string{"tags", "ingredients"},
		},
		{
			"zero amount",
			recipePayload{
				Name:        "soup",
				Text:        "boil it",
				CookingTime: 10,
				Image:       "data:image/png;base64,xxxx",
				Tags:        []string{"t1", "t1"},
				Ingredients: []models.RecipeIngredient{
					{IngredientID: "i1", Amount: 0},
				},
			},
			[]string{"tags", "ingredients"},
		},
		{
			"cooking time below minimum",
			recipePayload{
				Name:        "soup",
				Text:        "boil it",
				CookingTime: 0,
				Image:       "data:image/png;base64,xxxx",
				Tags:        []string{"t1", "t1"},
				Ingredients: []models.RecipeIngredient{
					{IngredientID: "i1", Amount: 1},
					{IngredientID: "i1", Amount: 1},
				},
			},
			[]string{"cooking_time", "tags", "ingredients"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.payload.validate(ctx, true)
			if len(errs) != len(tc.wantFields) {
				t.Fatalf("validate() = %v, want errors on %v", errs, tc.wantFields)
			}
			for _, field := range tc.wantFields {
				if len(errs[field]) == 0 {
					t.Errorf("validate() missing error for %q: %v", field, errs)
				}
			}
		})
	}
}

func TestRecipePayloadImageOptionalOnUpdate(t *testing.T) {
	p := recipePayload{
		Name:        "soup",
		Text:        "boil it",
		CookingTime: 5,
		Tags:        []string{"t1", "t1"},
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "i1", Amount: 1},
			{IngredientID: "i1", Amount: 1},
		},
	}
	errs := p.validate(context.Background(), false)
	if len(errs["image"]) != 0 {
		t.Errorf("image flagged on update: %v", errs["image"])
	}
	errs = p.validate(context.Background(), true)
	if len(errs["image"]) == 0 {
		t.Error("image not flagged on create")
	}
}
