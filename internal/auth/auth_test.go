package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret-key-0123456789abcdef", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := m.Generate("treasurer")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		claims, err := m.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.Operator != "treasurer" {
			t.Errorf("Operator = %q, want treasurer", claims.Operator)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewJWTManager("another-secret", time.Hour).Generate("treasurer")
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-0123456789abcdef", -time.Minute)
		token, _ := expired.Generate("treasurer")
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPasswordAuthenticator(t *testing.T) {
	if _, err := HashPassword("short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	a := NewPasswordAuthenticator("treasurer", hash)
	ctx := context.Background()

	tests := []struct {
		name     string
		operator string
		password string
		wantErr  bool
	}{
		{"valid", "treasurer", "correct horse", false},
		{"wrong password", "treasurer", "battery staple", true},
		{"wrong operator", "someone", "correct horse", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authenticate(ctx, tt.operator, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
