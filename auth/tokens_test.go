package auth

import (
	"strings"
	"testing"

	"forkful/models"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{UserID: "abc123def456abcd", Username: "alice"}
	token, err := CreateToken(user)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != user.UserID {
		t.Errorf("subject = %q, want %q", claims.Subject, user.UserID)
	}
	if claims.Username != user.Username {
		t.Errorf("username = %q, want %q", claims.Username, user.Username)
	}
	if claims.ID == "" {
		t.Error("token id is empty")
	}
}

func TestParseTokenRejectsBad(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{UserID: "abc123def456abcd", Username: "alice"}
	token, err := CreateToken(user)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"tampered signature", token[:len(token)-4] + "AAAA"},
		{"tampered payload", replacePayload(token)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseToken(tc.token); err == nil {
				t.Errorf("ParseToken(%q) accepted invalid token", tc.token)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "another-secret")
		if _, err := ParseToken(token); err == nil {
			t.Error("ParseToken accepted token signed with a different secret")
		}
	})
}

func replacePayload(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	parts[1] = "eyJzdWIiOiJldmlsIn0"
	return strings.Join(parts, ".")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword accepted wrong password")
	}
}
