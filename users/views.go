package users

import (
	"context"
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// FollowedSet returns the ids the viewer follows, as a lookup set. Empty for
// anonymous viewers.
func FollowedSet(ctx context.Context, viewerID string) map[string]bool {
	set := map[string]bool{}
	if viewerID == "" {
		return set
	}
	var follow models.UserFollow
	if err := db.FollowingsCollection.FindOne(ctx, bson.M{"userid": viewerID}).Decode(&follow); err != nil {
		return set
	}
	for _, id := range follow.Follows {
		set[id] = true
	}
	return set
}

func IsSubscribed(ctx context.Context, viewerID, authorID string) bool {
	if viewerID == "" || viewerID == authorID {
		return false
	}
	count, err := db.FollowingsCollection.CountDocuments(ctx, bson.M{"userid": viewerID, "follows": authorID})
	return err == nil && count > 0
}

// ViewOf builds the profile representation of a user as seen by the viewer.
func ViewOf(r *http.Request, u models.User, isSubscribed bool) models.UserView {
	return models.UserView{
		Email:        u.Email,
		ID:           u.UserID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
		Avatar:       utils.MediaURL(r, u.Avatar),
	}
}

// FindByID loads a user document; the bool reports existence.
func FindByID(ctx context.Context, userID string) (models.User, bool) {
	var u models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&u); err != nil {
		return models.User{}, false
	}
	return u, true
}
