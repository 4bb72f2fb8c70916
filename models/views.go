package models

// Response shapes. These mirror what clients already consume, so field
// order and naming stay exactly as documented.

type UserView struct {
	Email        string `json:"email"`
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
	Avatar       string `json:"avatar"`
}

// UserRecipesView extends UserView with the author's recipes, used by the
// subscriptions endpoints.
type UserRecipesView struct {
	UserView
	Recipes      []RecipeShortView `json:"recipes"`
	RecipesCount int64             `json:"recipes_count"`
}

type RecipeShortView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type RecipeIngredientView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeView struct {
	ID               string                 `json:"id"`
	Tags             []Tag                  `json:"tags"`
	Author           UserView               `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}
