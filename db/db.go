package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection       *mongo.Collection
	RecipeCollection     *mongo.Collection
	TagCollection        *mongo.Collection
	IngredientCollection *mongo.Collection
	FollowingsCollection *mongo.Collection
	FavoritesCollection  *mongo.Collection
	CartCollection       *mongo.Collection

	Client *mongo.Client
)

// Connect establishes the MongoDB connection and binds the package-level
// collection handles. Must be called before any handler runs.
func Connect(ctx context.Context, uri, dbName string) error {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return err
	}

	Client = client
	database := client.Database(dbName)
	CartCollection = database.Collection("cart")
	FavoritesCollection = database.Collection("favorites")
	FollowingsCollection = database.Collection("followings")
	IngredientCollection = database.Collection("ingredients")
	RecipeCollection = database.Collection("recipes")
	TagCollection = database.Collection("tags")
	UserCollection = database.Collection("users")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the API relies on.
func EnsureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = RecipeCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipeid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shortCode", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = TagCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = IngredientCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "measurement_unit", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	for _, coll := range []*mongo.Collection{FollowingsCollection, FavoritesCollection, CartCollection} {
		_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userid", Value: 1}}, Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
