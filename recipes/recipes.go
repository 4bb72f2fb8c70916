package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"forkful/db"
	"forkful/feed"
	"forkful/models"
	"forkful/mq"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LiveFeed, when set, receives publish notifications for followers.
var LiveFeed *feed.Hub

// buildListFilter translates the documented query params into a mongo
// filter. Filters that require a viewer are ignored for anonymous requests.
func buildListFilter(ctx context.Context, r *http.Request, viewerID string) (bson.M, error) {
	filter := bson.M{}
	q := r.URL.Query()

	if author := q.Get("author"); author != "" {
		filter["userid"] = author
	}

	if slugs := q["tags"]; len(slugs) > 0 {
		cursor, err := db.TagCollection.Find(ctx, bson.M{"slug": bson.M{"$in": slugs}})
		if err != nil {
			return nil, err
		}
		var matched []models.Tag
		if err := cursor.All(ctx, &matched); err != nil {
			return nil, err
		}
		tagIDs := make([]string, 0, len(matched))
		for _, tag := range matched {
			tagIDs = append(tagIDs, tag.TagID)
		}
		// unknown slugs match nothing, not everything
		filter["tags"] = bson.M{"$in": tagIDs}
	}

	if viewerID != "" {
		if q.Get("is_favorited") == "1" {
			set := loadRecipeSet(ctx, "favorites", viewerID)
			filter["recipeid"] = bson.M{"$in": keys(set)}
		}
		if q.Get("is_in_shopping_cart") == "1" {
			set := loadRecipeSet(ctx, "cart", viewerID)
			// both filters can apply; intersect via $and semantics
			if existing, ok := filter["recipeid"]; ok {
				filter["$and"] = []bson.M{
					{"recipeid": existing},
					{"recipeid": bson.M{"$in": keys(set)}},
				}
				delete(filter, "recipeid")
			} else {
				filter["recipeid"] = bson.M{"$in": keys(set)}
			}
		}
	}

	return filter, nil
}

// GetRecipes lists recipes newest-first in the paginated envelope.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	params := utils.ParsePageParams(r)

	filter, err := buildListFilter(ctx, r, viewerID)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipes.")
		return
	}

	count, err := db.RecipeCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipes.")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit))
	cursor, err := db.RecipeCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipes.")
		return
	}
	defer cursor.Close(ctx)

	var page []models.Recipe
	if err := cursor.All(ctx, &page); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipes.")
		return
	}

	views, err := buildViews(ctx, r, page, viewerID)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipes.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewPageEnvelope(r, params, count, views))
}

// CreateRecipe publishes a recipe from the base64-image JSON payload.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	var payload recipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if errs := payload.validate(ctx, true); len(errs) > 0 {
		utils.RespondWithFieldErrors(w, errs)
		return
	}

	imagePath, err := utils.SaveBase64Image(payload.Image, "recipes", 0)
	if err != nil {
		utils.RespondWithFieldErrors(w, map[string][]string{"image": {"Invalid image data."}})
		return
	}

	code, err := newShortCode(ctx)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create recipe.")
		return
	}

	recipe := models.Recipe{
		RecipeID:    utils.NewID(),
		AuthorID:    viewerID,
		Name:        payload.Name,
		Text:        payload.Text,
		Image:       imagePath,
		CookingTime: payload.CookingTime,
		TagIDs:      payload.Tags,
		Ingredients: payload.Ingredients,
		ShortCode:   code,
		CreatedAt:   time.Now().Unix(),
	}
	if _, err := db.RecipeCollection.InsertOne(ctx, recipe); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create recipe.")
		return
	}

	mq.Emit("recipe-created", mq.Index{EntityType: "recipe", Action: "create", EntityID: recipe.RecipeID, ActorID: viewerID})
	if LiveFeed != nil {
		LiveFeed.NotifyRecipePublished(ctx, viewerID, shortView(r, recipe))
	}

	views, err := buildViews(ctx, r, []models.Recipe{recipe}, viewerID)
	if err != nil || len(views) == 0 {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to create recipe.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, views[0])
}

func findRecipe(ctx context.Context, recipeID string) (models.Recipe, bool) {
	var recipe models.Recipe
	if err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": recipeID}).Decode(&recipe); err != nil {
		return models.Recipe{}, false
	}
	return recipe, true
}

// GetRecipe serves GET /api/recipes/:id/. The shopping-list download lives
// on the same segment, so it is dispatched here.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "download_shopping_cart" {
		DownloadShoppingCart(w, r, ps)
		return
	}

	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}
	views, err := buildViews(ctx, r, []models.Recipe{recipe}, viewerID)
	if err != nil || len(views) == 0 {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch recipe.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views[0])
}

// UpdateRecipe handles PATCH. Author-only; tags and ingredients are always
// re-validated in full, the image may be omitted to keep the current one.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}
	if recipe.AuthorID != viewerID {
		utils.RespondWithDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
		return
	}

	var payload recipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if errs := payload.validate(ctx, false); len(errs) > 0 {
		utils.RespondWithFieldErrors(w, errs)
		return
	}

	updates := bson.M{
		"name":        payload.Name,
		"text":        payload.Text,
		"cookingTime": payload.CookingTime,
		"tags":        payload.Tags,
		"ingredients": payload.Ingredients,
	}
	if payload.Image != "" {
		imagePath, err := utils.SaveBase64Image(payload.Image, "recipes", 0)
		if err != nil {
			utils.RespondWithFieldErrors(w, map[string][]string{"image": {"Invalid image data."}})
			return
		}
		updates["image"] = imagePath
		utils.RemoveMedia(recipe.Image)
		recipe.Image = imagePath
	}
	if _, err := db.RecipeCollection.UpdateOne(ctx, bson.M{"recipeid": recipe.RecipeID}, bson.M{"$set": updates}); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to update recipe.")
		return
	}

	recipe.Name = payload.Name
	recipe.Text = payload.Text
	recipe.CookingTime = payload.CookingTime
	recipe.TagIDs = payload.Tags
	recipe.Ingredients = payload.Ingredients

	mq.Emit("recipe-updated", mq.Index{EntityType: "recipe", Action: "update", EntityID: recipe.RecipeID, ActorID: viewerID})

	views, err := buildViews(ctx, r, []models.Recipe{recipe}, viewerID)
	if err != nil || len(views) == 0 {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to update recipe.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views[0])
}

// DeleteRecipe removes a recipe (author-only) and scrubs it from every
// favorites and cart document.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}
	if recipe.AuthorID != viewerID {
		utils.RespondWithDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
		return
	}

	if _, err := db.RecipeCollection.DeleteOne(ctx, bson.M{"recipeid": recipe.RecipeID}); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to delete recipe.")
		return
	}
	pull := bson.M{"$pull": bson.M{"recipes": recipe.RecipeID}}
	db.FavoritesCollection.UpdateMany(ctx, bson.M{}, pull)
	db.CartCollection.UpdateMany(ctx, bson.M{}, pull)
	utils.RemoveMedia(recipe.Image)

	mq.Emit("recipe-deleted", mq.Index{EntityType: "recipe", Action: "delete", EntityID: recipe.RecipeID, ActorID: viewerID})
	w.WriteHeader(http.StatusNoContent)
}
