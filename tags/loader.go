package tags

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"forkful/db"
	"forkful/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tagSeed struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, " ", "-")
}

// ImportFile upserts tags from a JSON seed file, keyed by slug. Returns how
// many were newly added.
func ImportFile(ctx context.Context, path string) (added int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var seeds []tagSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, err
	}

	for _, seed := range seeds {
		slug := seed.Slug
		if slug == "" {
			slug = slugify(seed.Name)
		}
		res, err := db.TagCollection.UpdateOne(ctx,
			bson.M{"slug": slug},
			bson.M{
				"$set":         bson.M{"name": seed.Name},
				"$setOnInsert": bson.M{"tagid": utils.NewID(), "slug": slug},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return added, err
		}
		if res.UpsertedCount > 0 {
			added++
		}
	}
	return added, nil
}
