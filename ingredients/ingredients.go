package ingredients

import (
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetIngredients lists reference ingredients, optionally narrowed by a
// case-insensitive name prefix (?name=).
func GetIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{}
	if name := r.URL.Query().Get("name"); name != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + escapeRegex(name), Options: "i"}}
	}

	cursor, err := db.IngredientCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch ingredients.")
		return
	}
	defer cursor.Close(ctx)

	items := []models.Ingredient{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch ingredients.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func GetIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var item models.Ingredient
	if err := db.IngredientCollection.FindOne(r.Context(), bson.M{"ingid": ps.ByName("id")}).Decode(&item); err != nil {
		utils.RespondWithDetail(w, http.StatusNotFound, "Ingredient not found.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// escapeRegex neutralizes regex metacharacters in user input before it is
// embedded in a $regex filter.
func escapeRegex(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
