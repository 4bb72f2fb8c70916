package recipes

import (
	"net/http"

	"forkful/db"
	"forkful/mq"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// addToSet puts the recipe in the viewer's favorites or cart document and
// replies with the short recipe form; duplicates are a client error.
func addToSet(w http.ResponseWriter, r *http.Request, ps httprouter.Params, coll *mongo.Collection, event, dupMsg string) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}

	if n, _ := coll.CountDocuments(ctx, bson.M{"userid": viewerID, "recipes": recipe.RecipeID}); n > 0 {
		utils.RespondWithDetail(w, http.StatusBadRequest, dupMsg)
		return
	}
	_, err := coll.UpdateOne(ctx,
		bson.M{"userid": viewerID},
		bson.M{"$addToSet": bson.M{"recipes": recipe.RecipeID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Operation failed.")
		return
	}

	mq.Emit(event, mq.Index{EntityType: "recipe", Action: "add", EntityID: recipe.RecipeID, ActorID: viewerID})
	utils.RespondWithJSON(w, http.StatusCreated, shortView(r, recipe))
}

// removeFromSet pulls the recipe out; removing an absent entry is a client
// error, matching the add side.
func removeFromSet(w http.ResponseWriter, r *http.Request, ps httprouter.Params, coll *mongo.Collection, event, missingMsg string) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	recipe, ok := findRecipe(ctx, ps.ByName("id"))
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "Recipe not found.")
		return
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"userid": viewerID},
		bson.M{"$pull": bson.M{"recipes": recipe.RecipeID}},
	)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Operation failed.")
		return
	}
	if res.ModifiedCount == 0 {
		utils.RespondWithDetail(w, http.StatusBadRequest, missingMsg)
		return
	}

	mq.Emit(event, mq.Index{EntityType: "recipe", Action: "remove", EntityID: recipe.RecipeID, ActorID: viewerID})
	w.WriteHeader(http.StatusNoContent)
}

func AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	addToSet(w, r, ps, db.FavoritesCollection, "recipe-favorited", "Recipe is already in favorites.")
}

func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	removeFromSet(w, r, ps, db.FavoritesCollection, "recipe-unfavorited", "Recipe is not in favorites.")
}

func AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	addToSet(w, r, ps, db.CartCollection, "cart-added", "Recipe is already in the shopping cart.")
}

func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	removeFromSet(w, r, ps, db.CartCollection, "cart-removed", "Recipe is not in the shopping cart.")
}
