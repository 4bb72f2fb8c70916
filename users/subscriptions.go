package users

import (
	"context"
	"net/http"
	"strconv"

	"forkful/db"
	"forkful/models"
	"forkful/mq"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func recipesLimit(r *http.Request) int64 {
	n, err := strconv.Atoi(r.URL.Query().Get("recipes_limit"))
	if err != nil || n < 0 {
		return 0 // no limit
	}
	return int64(n)
}

// recipesView builds the author-with-recipes representation used by the
// subscription endpoints.
func recipesView(ctx context.Context, r *http.Request, author models.User, subscribed bool) (models.UserRecipesView, error) {
	view := models.UserRecipesView{
		UserView: ViewOf(r, author, subscribed),
		Recipes:  []models.RecipeShortView{},
	}

	count, err := db.RecipeCollection.CountDocuments(ctx, bson.M{"userid": author.UserID})
	if err != nil {
		return view, err
	}
	view.RecipesCount = count

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit := recipesLimit(r); limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := db.RecipeCollection.Find(ctx, bson.M{"userid": author.UserID}, opts)
	if err != nil {
		return view, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return view, err
	}
	for _, recipe := range recipes {
		view.Recipes = append(view.Recipes, models.RecipeShortView{
			ID:          recipe.RecipeID,
			Name:        recipe.Name,
			Image:       utils.MediaURL(r, recipe.Image),
			CookingTime: recipe.CookingTime,
		})
	}
	return view, nil
}

// GetSubscriptions lists the authors the viewer follows, with their recipes.
func GetSubscriptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	if viewerID == "" {
		utils.RespondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}
	params := utils.ParsePageParams(r)

	var follow models.UserFollow
	if err := db.FollowingsCollection.FindOne(ctx, bson.M{"userid": viewerID}).Decode(&follow); err != nil {
		follow.Follows = nil
	}
	count := int64(len(follow.Follows))

	views := []models.UserRecipesView{}
	if count > 0 {
		opts := options.Find().
			SetSort(bson.D{{Key: "username", Value: 1}}).
			SetSkip(params.Skip()).
			SetLimit(int64(params.Limit))
		cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": follow.Follows}}, opts)
		if err != nil {
			utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch subscriptions.")
			return
		}
		defer cursor.Close(ctx)

		var authors []models.User
		if err := cursor.All(ctx, &authors); err != nil {
			utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch subscriptions.")
			return
		}
		for _, author := range authors {
			view, err := recipesView(ctx, r, author, true)
			if err != nil {
				utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch subscriptions.")
				return
			}
			views = append(views, view)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.NewPageEnvelope(r, params, count, views))
}

// Subscribe follows an author. Duplicate and self subscriptions are
// rejected, matching the uniqueness and self-follow constraints.
func Subscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	targetID := ps.ByName("id")

	author, ok := FindByID(ctx, targetID)
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}
	if author.UserID == viewerID {
		utils.RespondWithDetail(w, http.StatusBadRequest, "You cannot subscribe to yourself.")
		return
	}
	if IsSubscribed(ctx, viewerID, author.UserID) {
		utils.RespondWithDetail(w, http.StatusBadRequest, "You are already subscribed to this user.")
		return
	}

	_, err := db.FollowingsCollection.UpdateOne(ctx,
		bson.M{"userid": viewerID},
		bson.M{"$addToSet": bson.M{"follows": author.UserID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Subscription failed.")
		return
	}
	mq.Emit("user-subscribed", mq.Index{EntityType: "user", Action: "subscribe", EntityID: author.UserID, ActorID: viewerID})

	view, err := recipesView(ctx, r, author, true)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Subscription failed.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// Unsubscribe stops following an author.
func Unsubscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	targetID := ps.ByName("id")

	if _, ok := FindByID(ctx, targetID); !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}

	res, err := db.FollowingsCollection.UpdateOne(ctx,
		bson.M{"userid": viewerID},
		bson.M{"$pull": bson.M{"follows": targetID}},
	)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Unsubscribe failed.")
		return
	}
	if res.ModifiedCount == 0 {
		utils.RespondWithDetail(w, http.StatusBadRequest, "You are not subscribed to this user.")
		return
	}
	mq.Emit("user-unsubscribed", mq.Index{EntityType: "user", Action: "unsubscribe", EntityID: targetID, ActorID: viewerID})
	w.WriteHeader(http.StatusNoContent)
}
