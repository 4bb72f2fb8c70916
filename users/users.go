package users

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"forkful/auth"
	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// Path segments under /api/users/ that can never be account ids.
var restrictedUsernames = map[string]bool{
	"me":            true,
	"set_password":  true,
	"subscriptions": true,
	"admin":         true,
}

type registerPayload struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

func (p registerPayload) validate() map[string][]string {
	errs := map[string][]string{}
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		errs["email"] = append(errs["email"], "Enter a valid email address.")
	}
	if p.Username == "" {
		errs["username"] = append(errs["username"], "This field is required.")
	} else {
		if restrictedUsernames[strings.ToLower(p.Username)] {
			errs["username"] = append(errs["username"], "This username is reserved.")
		}
		if !usernameRe.MatchString(p.Username) {
			errs["username"] = append(errs["username"], "Username contains invalid characters.")
		}
	}
	if p.FirstName == "" {
		errs["first_name"] = append(errs["first_name"], "This field is required.")
	}
	if p.LastName == "" {
		errs["last_name"] = append(errs["last_name"], "This field is required.")
	}
	if len(p.Password) < auth.MinPasswordLength {
		errs["password"] = append(errs["password"], "Password must be at least 8 characters.")
	}
	return errs
}

// Register creates an account and echoes the profile without the password.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if errs := payload.validate(); len(errs) > 0 {
		utils.RespondWithFieldErrors(w, errs)
		return
	}

	ctx := r.Context()
	if n, _ := db.UserCollection.CountDocuments(ctx, bson.M{"email": payload.Email}); n > 0 {
		utils.RespondWithFieldErrors(w, map[string][]string{"email": {"A user with that email already exists."}})
		return
	}
	if n, _ := db.UserCollection.CountDocuments(ctx, bson.M{"username": payload.Username}); n > 0 {
		utils.RespondWithFieldErrors(w, map[string][]string{"username": {"A user with that username already exists."}})
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Registration failed.")
		return
	}

	user := models.User{
		UserID:       utils.NewID(),
		Email:        payload.Email,
		Username:     payload.Username,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().Unix(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Registration failed.")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"email":      user.Email,
		"id":         user.UserID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// GetUsers lists profiles in the paginated envelope.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	params := utils.ParsePageParams(r)

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}}).
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit))
	cursor, err := db.UserCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}
	defer cursor.Close(ctx)

	var page []models.User
	if err := cursor.All(ctx, &page); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}

	followed := FollowedSet(ctx, viewerID)
	views := make([]models.UserView, 0, len(page))
	for _, u := range page {
		views = append(views, ViewOf(r, u, followed[u.UserID] && u.UserID != viewerID))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewPageEnvelope(r, params, count, views))
}

// GetUser serves GET /api/users/:id/. The :id segment doubles as a
// sub-resource selector because the router cannot mix static and param
// routes at this position: "me" and "subscriptions" are dispatched here.
func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	id := ps.ByName("id")

	switch id {
	case "me":
		if viewerID == "" {
			utils.RespondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		id = viewerID
	case "subscriptions":
		GetSubscriptions(w, r, ps)
		return
	}

	user, ok := FindByID(ctx, id)
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ViewOf(r, user, IsSubscribed(ctx, viewerID, user.UserID)))
}

// PostUserAction serves POST /api/users/:id/ — only the set_password
// sub-resource is valid here.
func PostUserAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "set_password" {
		utils.RespondWithDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	SetPassword(w, r, ps)
}

// SetPassword changes the authenticated user's password.
func SetPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)
	if viewerID == "" {
		utils.RespondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var payload struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	user, ok := FindByID(ctx, viewerID)
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, payload.CurrentPassword) {
		utils.RespondWithFieldErrors(w, map[string][]string{"current_password": {"Current password is incorrect."}})
		return
	}
	if len(payload.NewPassword) < auth.MinPasswordLength {
		utils.RespondWithFieldErrors(w, map[string][]string{"new_password": {"Password must be at least 8 characters."}})
		return
	}
	if payload.NewPassword == payload.CurrentPassword {
		utils.RespondWithFieldErrors(w, map[string][]string{"new_password": {"New password must differ from the current one."}})
		return
	}

	hash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Password change failed.")
		return
	}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": viewerID}, bson.M{"$set": bson.M{"password_hash": hash}}); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Password change failed.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateAvatar serves PUT /api/users/me/avatar/ with a base64 image body.
func UpdateAvatar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "me" {
		utils.RespondWithDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	var payload struct {
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Avatar == "" {
		utils.RespondWithFieldErrors(w, map[string][]string{"avatar": {"This field is required."}})
		return
	}

	user, ok := FindByID(ctx, viewerID)
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}

	path, err := utils.SaveBase64Image(payload.Avatar, "users", 512)
	if err != nil {
		utils.RespondWithFieldErrors(w, map[string][]string{"avatar": {"Invalid image data."}})
		return
	}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": viewerID}, bson.M{"$set": bson.M{"avatar": path}}); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Avatar update failed.")
		return
	}
	if user.Avatar != "" {
		utils.RemoveMedia(user.Avatar)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"avatar": utils.MediaURL(r, path)})
}

// DeleteAvatar serves DELETE /api/users/me/avatar/.
func DeleteAvatar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "me" {
		utils.RespondWithDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	ctx := r.Context()
	viewerID := utils.GetUserIDFromContext(ctx)

	user, ok := FindByID(ctx, viewerID)
	if !ok {
		utils.RespondWithDetail(w, http.StatusNotFound, "User not found.")
		return
	}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": viewerID}, bson.M{"$unset": bson.M{"avatar": ""}}); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Avatar removal failed.")
		return
	}
	if user.Avatar != "" {
		utils.RemoveMedia(user.Avatar)
	}
	w.WriteHeader(http.StatusNoContent)
}
