package tags

import (
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTags returns every tag. Tags are reference data seeded at deploy time;
// the list is small and unpaginated.
func GetTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	cursor, err := db.TagCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch tags.")
		return
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch tags.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tags)
}

func GetTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var tag models.Tag
	if err := db.TagCollection.FindOne(r.Context(), bson.M{"tagid": ps.ByName("id")}).Decode(&tag); err != nil {
		utils.RespondWithDetail(w, http.StatusNotFound, "Tag not found.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tag)
}
