package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	token, err := s.GenerateToken("user-123", "Alice", RolePlayer, 0)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %s, want user-123", claims.Subject)
	}
	if claims.Role != string(RolePlayer) {
		t.Errorf("role = %s, want player", claims.Role)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	token, err := s.GenerateToken("user-123", "Alice", RolePlayer, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	token, err := issuer.GenerateToken("user-123", "Alice", RoleAdmin, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}
