package recipes

import (
	"context"
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/users"
	"forkful/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func shortView(r *http.Request, recipe models.Recipe) models.RecipeShortView {
	return models.RecipeShortView{
		ID:          recipe.RecipeID,
		Name:        recipe.Name,
		Image:       utils.MediaURL(r, recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

// loadRecipeSet loads the viewer's per-user recipe set (favorites or cart)
// as a lookup map. Anonymous viewers get an empty set.
func loadRecipeSet(ctx context.Context, collName, viewerID string) map[string]bool {
	set := map[string]bool{}
	if viewerID == "" {
		return set
	}
	coll := db.FavoritesCollection
	if collName == "cart" {
		coll = db.CartCollection
	}
	var doc models.RecipeSet
	if err := coll.FindOne(ctx, bson.M{"userid": viewerID}).Decode(&doc); err != nil {
		return set
	}
	for _, id := range doc.Recipes {
		set[id] = true
	}
	return set
}

// buildViews assembles full recipe representations for a page of recipes,
// batching the tag, ingredient and author lookups.
func buildViews(ctx context.Context, r *http.Request, page []models.Recipe, viewerID string) ([]models.RecipeView, error) {
	views := make([]models.RecipeView, 0, len(page))
	if len(page) == 0 {
		return views, nil
	}

	tagIDs := map[string]bool{}
	ingIDs := map[string]bool{}
	authorIDs := map[string]bool{}
	for _, recipe := range page {
		for _, id := range recipe.TagIDs {
			tagIDs[id] = true
		}
		for _, ing := range recipe.Ingredients {
			ingIDs[ing.IngredientID] = true
		}
		authorIDs[recipe.AuthorID] = true
	}

	tagsByID, err := loadTags(ctx, keys(tagIDs))
	if err != nil {
		return nil, err
	}
	ingsByID, err := loadIngredients(ctx, keys(ingIDs))
	if err != nil {
		return nil, err
	}
	authorsByID, err := loadUsers(ctx, keys(authorIDs))
	if err != nil {
		return nil, err
	}

	favorites := loadRecipeSet(ctx, "favorites", viewerID)
	cart := loadRecipeSet(ctx, "cart", viewerID)
	followed := users.FollowedSet(ctx, viewerID)

	for _, recipe := range page {
		view := models.RecipeView{
			ID:               recipe.RecipeID,
			Tags:             []models.Tag{},
			Ingredients:      []models.RecipeIngredientView{},
			IsFavorited:      favorites[recipe.RecipeID],
			IsInShoppingCart: cart[recipe.RecipeID],
			Name:             recipe.Name,
			Image:            utils.MediaURL(r, recipe.Image),
			Text:             recipe.Text,
			CookingTime:      recipe.CookingTime,
		}
		for _, id := range recipe.TagIDs {
			if tag, ok := tagsByID[id]; ok {
				view.Tags = append(view.Tags, tag)
			}
		}
		for _, ri := range recipe.Ingredients {
			ing, ok := ingsByID[ri.IngredientID]
			if !ok {
				continue
			}
			view.Ingredients = append(view.Ingredients, models.RecipeIngredientView{
				ID:              ing.IngredientID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          ri.Amount,
			})
		}
		if author, ok := authorsByID[recipe.AuthorID]; ok {
			subscribed := followed[author.UserID] && author.UserID != viewerID
			view.Author = users.ViewOf(r, author, subscribed)
		}
		views = append(views, view)
	}
	return views, nil
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func loadTags(ctx context.Context, ids []string) (map[string]models.Tag, error) {
	out := map[string]models.Tag{}
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := db.TagCollection.Find(ctx, bson.M{"tagid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var tags []models.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	for _, tag := range tags {
		out[tag.TagID] = tag
	}
	return out, nil
}

func loadIngredients(ctx context.Context, ids []string) (map[string]models.Ingredient, error) {
	out := map[string]models.Ingredient{}
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := db.IngredientCollection.Find(ctx, bson.M{"ingid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var ings []models.Ingredient
	if err := cursor.All(ctx, &ings); err != nil {
		return nil, err
	}
	for _, ing := range ings {
		out[ing.IngredientID] = ing
	}
	return out, nil
}

func loadUsers(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := map[string]models.User{}
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []models.User
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, u := range docs {
		out[u.UserID] = u
	}
	return out, nil
}
