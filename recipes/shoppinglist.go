package recipes

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShoppingItem is one aggregated line of the shopping list: the total
// amount of an ingredient across every recipe in the cart.
type ShoppingItem struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// FormatShoppingList renders the downloadable text file: aligned columns,
// sorted by the caller, with a generation timestamp.
func FormatShoppingList(items []ShoppingItem, now time.Time) string {
	var b strings.Builder
	b.WriteString("== Your shopping list ==\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%-20s %-10s %5d\n", item.Name, "("+item.MeasurementUnit+")", item.Amount)
	}
	fmt.Fprintf(&b, "\nGenerated: %s\n", now.Format("02-01-2006 15:04"))
	return b.String()
}

// DownloadShoppingCart streams the aggregated list of the viewer's cart as
// a text attachment. Amounts are summed per ingredient across recipes.
func DownloadShoppingCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	if viewerID == "" {
		utils.RespondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var cart models.RecipeSet
	if err := db.CartCollection.FindOne(ctx, bson.M{"userid": viewerID}).Decode(&cart); err != nil {
		cart.Recipes = nil
	}

	items, err := aggregateCart(r, cart.Recipes)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to build shopping list.")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(FormatShoppingList(items, time.Now())))
}

// aggregateCart sums ingredient amounts over the cart's recipes with a
// mongo pipeline, then resolves names and units.
func aggregateCart(r *http.Request, recipeIDs []string) ([]ShoppingItem, error) {
	ctx := r.Context()
	if len(recipeIDs) == 0 {
		return []ShoppingItem{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recipeid": bson.M{"$in": recipeIDs}}}},
		{{Key: "$unwind", Value: "$ingredients"}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$ingredients.ingredientId",
			"amount": bson.M{"$sum": "$ingredients.amount"},
		}}},
	}
	cursor, err := db.RecipeCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []struct {
		IngredientID string `bson:"_id"`
		Amount       int    `bson:"amount"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(totals))
	for _, total := range totals {
		ids = append(ids, total.IngredientID)
	}
	ingsByID, err := loadIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ShoppingItem, 0, len(totals))
	for _, total := range totals {
		ing, ok := ingsByID[total.IngredientID]
		if !ok {
			continue
		}
		items = append(items, ShoppingItem{
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Amount:          total.Amount,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
