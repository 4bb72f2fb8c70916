package models

type Tag struct {
	TagID string `bson:"tagid" json:"id"`
	Name  string `bson:"name" json:"name"`
	Slug  string `bson:"slug" json:"slug"`
}

type Ingredient struct {
	IngredientID    string `bson:"ingid" json:"id"`
	Name            string `bson:"name" json:"name"`
	MeasurementUnit string `bson:"measurement_unit" json:"measurement_unit"`
}

// RecipeIngredient ties an ingredient to a recipe with its amount.
type RecipeIngredient struct {
	IngredientID string `bson:"ingredientId" json:"id"`
	Amount       int    `bson:"amount" json:"amount"`
}

type Recipe struct {
	RecipeID    string             `bson:"recipeid" json:"id"`
	AuthorID    string             `bson:"userid" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Text        string             `bson:"text" json:"text"`
	Image       string             `bson:"image" json:"image"`
	CookingTime int                `bson:"cookingTime" json:"cooking_time"`
	TagIDs      []string           `bson:"tags" json:"tags"`
	Ingredients []RecipeIngredient `bson:"ingredients" json:"ingredients"`
	ShortCode   string             `bson:"shortCode,omitempty" json:"-"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}
