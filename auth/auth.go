package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/rdx"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login exchanges email+password for a bearer token.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": payload.Email}).Decode(&user)
	if err != nil || !CheckPassword(user.PasswordHash, payload.Password) {
		utils.RespondWithDetail(w, http.StatusBadRequest, "Unable to log in with provided credentials.")
		return
	}

	token, err := CreateToken(user)
	if err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Could not issue token.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"auth_token": token})
}

// Logout revokes the current token until its expiry.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenID := utils.GetTokenIDFromContext(r.Context())
	if err := rdx.RevokeToken(context.WithoutCancel(r.Context()), tokenID, TokenTTL); err != nil {
		utils.RespondWithDetail(w, http.StatusInternalServerError, "Logout failed.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
