package middleware

import (
	"context"
	"net/http"
	"strings"

	"forkful/auth"
	"forkful/globals"
	"forkful/rdx"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

func tokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	for _, prefix := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, prefix) {
			return strings.TrimPrefix(header, prefix)
		}
	}
	// websocket clients cannot set headers
	return r.URL.Query().Get("token")
}

func withClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.Subject)
	ctx = context.WithValue(ctx, globals.UsernameKey, claims.Username)
	ctx = context.WithValue(ctx, globals.TokenIDKey, claims.ID)
	return r.WithContext(ctx)
}

// Authenticate rejects the request unless it carries a valid, unrevoked
// bearer token.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			utils.RespondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		claims, err := auth.ParseToken(tokenString)
		if err != nil || rdx.IsTokenRevoked(r.Context(), claims.ID) {
			utils.RespondWithDetail(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		next(w, withClaims(r, claims), ps)
	}
}

// OptionalAuth attaches the user to the context when a valid token is
// present and passes through anonymously otherwise.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if tokenString := tokenFromRequest(r); tokenString != "" {
			if claims, err := auth.ParseToken(tokenString); err == nil && !rdx.IsTokenRevoked(r.Context(), claims.ID) {
				r = withClaims(r, claims)
			}
		}
		next(w, r, ps)
	}
}
