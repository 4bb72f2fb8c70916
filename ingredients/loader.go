package ingredients

import (
	"context"
	"encoding/json"
	"os"

	"forkful/db"
	"forkful/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ingredientSeed struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// ImportFile loads reference ingredients from a JSON file of
// {name, measurement_unit} objects. Existing pairs are left untouched.
// Returns how many were added and how many already existed.
func ImportFile(ctx context.Context, path string) (added, skipped int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	seeds, err := ParseSeeds(raw)
	if err != nil {
		return 0, 0, err
	}

	for _, seed := range seeds {
		res, err := db.IngredientCollection.UpdateOne(ctx,
			bson.M{"name": seed.Name, "measurement_unit": seed.MeasurementUnit},
			bson.M{"$setOnInsert": bson.M{"ingid": utils.NewID()}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return added, skipped, err
		}
		if res.UpsertedCount > 0 {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, nil
}

// ParseSeeds decodes and validates the seed file contents.
func ParseSeeds(raw []byte) ([]ingredientSeed, error) {
	var seeds []ingredientSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, err
	}
	valid := seeds[:0]
	for _, seed := range seeds {
		if seed.Name == "" || seed.MeasurementUnit == "" {
			continue
		}
		valid = append(valid, seed)
	}
	return valid, nil
}
