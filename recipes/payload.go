package recipes

import (
	"context"

	"forkful/db"
	"forkful/models"

	"go.mongodb.org/mongo-driver/bson"
)

const minCookingTime = 1

type recipePayload struct {
	Ingredients []models.RecipeIngredient `json:"ingredients"`
	Tags        []string                  `json:"tags"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
}

// validate applies the write-side rules: at least one unique existing tag
// and ingredient, positive amounts, minimum cooking time, and an image on
// create. Returns field-keyed messages.
func (p recipePayload) validate(ctx context.Context, requireImage bool) map[string][]string {
	errs := map[string][]string{}

	if p.Name == "" {
		errs["name"] = append(errs["name"], "This field is required.")
	}
	if p.Text == "" {
		errs["text"] = append(errs["text"], "This field is required.")
	}
	if p.CookingTime < minCookingTime {
		errs["cooking_time"] = append(errs["cooking_time"], "Cooking time must be at least 1 minute.")
	}
	if requireImage && p.Image == "" {
		errs["image"] = append(errs["image"], "Recipe must include an image.")
	}

	if len(p.Tags) == 0 {
		errs["tags"] = append(errs["tags"], "At least one tag is required.")
	} else {
		seen := map[string]bool{}
		dup := false
		for _, id := range p.Tags {
			if seen[id] {
				dup = true
			}
			seen[id] = true
		}
		if dup {
			errs["tags"] = append(errs["tags"], "Tags must be unique.")
		} else if n, err := db.TagCollection.CountDocuments(ctx, bson.M{"tagid": bson.M{"$in": p.Tags}}); err != nil || n != int64(len(p.Tags)) {
			errs["tags"] = append(errs["tags"], "Some tags do not exist.")
		}
	}

	if len(p.Ingredients) == 0 {
		errs["ingredients"] = append(errs["ingredients"], "At least one ingredient is required.")
	} else {
		seen := map[string]bool{}
		dup := false
		badAmount := false
		ids := make([]string, 0, len(p.Ingredients))
		for _, ing := range p.Ingredients {
			if seen[ing.IngredientID] {
				dup = true
			}
			seen[ing.IngredientID] = true
			if ing.Amount < 1 {
				badAmount = true
			}
			ids = append(ids, ing.IngredientID)
		}
		switch {
		case dup:
			errs["ingredients"] = append(errs["ingredients"], "Ingredients must be unique.")
		case badAmount:
			errs["ingredients"] = append(errs["ingredients"], "Amount must be at least 1.")
		default:
			if n, err := db.IngredientCollection.CountDocuments(ctx, bson.M{"ingid": bson.M{"$in": ids}}); err != nil || n != int64(len(ids)) {
				errs["ingredients"] = append(errs["ingredients"], "Some ingredients do not exist.")
			}
		}
	}

	return errs
}
