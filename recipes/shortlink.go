package recipes

import (
	"context"
	"errors"
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/rdx"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// newShortCode issues a short-link code: a few tries at 3 hex chars, then
// 4 chars until free. Codes are checked against the sparse unique index.
func newShortCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := utils.NewShortCode(3)
		n, err := db.RecipeCollection.CountDocuments(ctx, bson.M{"shortCode": code})
		if err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	for attempt := 0; attempt < 100; attempt++ {
		code := utils.NewShortCode(4)
		n, err := db.RecipeCollection.CountDocuments(ctx, bson.M{"shortCode": code})
		if err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", errors.New("short code space exhausted")
}

// GetShortLink returns the recipe's share URL.
func GetShortLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}

	// recipes imported before short links existed get one lazily
	if recipe.ShortCode == "" {
		code, err := newShortCode(ctx)
		if err != nil {
			utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to build short link.")
			return
		}
		if _, err := db.RecipeCollection.UpdateOne(ctx, bson.M{"recipeid": recipe.RecipeID}, bson.M{"$set": bson.M{"shortCode": code}}); err != nil {
			utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to build short link.")
			return
		}
		recipe.ShortCode = code
	}

	rdx.CacheShortLink(ctx, recipe.ShortCode, recipe.RecipeID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"short-link": utils.RequestBaseURL(r) + "/s/" + recipe.ShortCode,
	})
}

// RedirectShortLink resolves /s/:code and 302s to the recipe page.
func RedirectShortLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	code := ps.ByName("code")

	recipeID := rdx.LookupShortLink(ctx, code)
	if recipeID == "" {
		var recipe models.Recipe
		if err := db.RecipeCollection.FindOne(ctx, bson.M{"shortCode": code}).Decode(&recipe); err != nil {
			utils.RespondWithDetail(w, http.StatusNotFound, "Unknown short link.")
			return
		}
		recipeID = recipe.RecipeID
		rdx.CacheShortLink(ctx, code, recipeID)
	}

	http.Redirect(w, r, "/recipes/"+recipeID, http.StatusFound)
}
