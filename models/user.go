package models

type User struct {
	UserID       string `bson:"userid" json:"id"`
	Email        string `bson:"email" json:"email"`
	Username     string `bson:"username" json:"username"`
	FirstName    string `bson:"first_name" json:"first_name"`
	LastName     string `bson:"last_name" json:"last_name"`
	Avatar       string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash string `bson:"password_hash" json:"-"`
	CreatedAt    int64  `bson:"createdAt" json:"-"`
}

// UserFollow is the per-user document listing followed author ids.
type UserFollow struct {
	UserID  string   `bson:"userid" json:"userid"`
	Follows []string `bson:"follows" json:"follows"`
}

// RecipeSet is the per-user shape shared by the favorites and cart
// collections: one document holding the recipe ids in the set.
type RecipeSet struct {
	UserID  string   `bson:"userid" json:"userid"`
	Recipes []string `bson:"recipes" json:"recipes"`
}
