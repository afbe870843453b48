package auth

import (
	"testing"
	"time"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("user-id-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != "user-id-1" {
		t.Errorf("UserID = %q, want user-id-1", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", claims.Email)
	}
}

func TestJWTManager_RefreshToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateRefreshToken("user-id-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-id-1" {
		t.Errorf("UserID = %q, want user-id-1", claims.UserID)
	}
}

func TestJWTManager_RejectsInvalidTokens(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage token",
			token: func() string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)
				token, _ := other.GenerateToken("user-id-1", "alice", "alice@example.com")
				return token
			},
		},
		{
			name: "expired token",
			token: func() string {
				expired := NewJWTManager("test-secret", -time.Hour, 24*time.Hour)
				token, _ := expired.GenerateToken("user-id-1", "alice", "alice@example.com")
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := manager.ValidateToken(tt.token()); err == nil {
				t.Error("ValidateToken() error = nil, want rejection")
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Error("hash equals plaintext")
	}

	if !CheckPasswordHash("password123", hash) {
		t.Error("CheckPasswordHash() = false for correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash() = true for wrong password")
	}
}
