package utils

import (
	"context"
	"net/http"

	"forkful/globals"
)

func GetUserIDFromContext(ctx context.Context) string {
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetTokenIDFromContext(ctx context.Context) string {
	tokenID, ok := ctx.Value(globals.TokenIDKey).(string)
	if !ok {
		return ""
	}
	return tokenID
}

// RequestBaseURL reconstructs scheme://host for absolute links, trusting the
// gateway's X-Forwarded-Proto when present.
func RequestBaseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// MediaURL makes a stored media path absolute for responses. Empty paths
// stay empty so clients see the field as unset.
func MediaURL(r *http.Request, path string) string {
	if path == "" {
		return ""
	}
	return RequestBaseURL(r) + path
}
