package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"practicecoach/internal/config"
	"practicecoach/internal/model"
)

func newTestAuth() (*AuthService, *fakeProfileRepo) {
	repo := newFakeProfileRepo()
	cfg := config.AuthConfig{JWTSecret: "test-secret-that-is-long-enough-123", TokenTTL: time.Hour}
	return NewAuthService(repo, cfg, zap.NewNop()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newTestAuth()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &model.RegisterRequest{Email: "Ada@Example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User.DisplayName != "ada" || reg.User.Role != model.RoleLearner {
		t.Errorf("unexpected profile %+v", reg.User)
	}
	stored, _ := repo.GetByEmail(ctx, "ada@example.com")
	if stored == nil || stored.PasswordHash == "correct-horse" || stored.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	login, err := svc.Login(ctx, &model.LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != reg.UserID {
		t.Errorf("claims user %s, want %s", claims.UserID, reg.UserID)
	}

	if _, err := svc.Login(ctx, &model.LoginRequest{Email: "ada@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "whatever1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.RegisterRequest
		want error
	}{
		{"bad email", model.RegisterRequest{Email: "not-an-email", Password: "longenough"}, ErrValidation},
		{"short password", model.RegisterRequest{Email: "a@b.co", Password: "short"}, ErrValidation},
		{"password over bcrypt limit", model.RegisterRequest{Email: "a@b.co", Password: strings.Repeat("p", 73)}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, &tt.req); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := svc.Register(ctx, &model.RegisterRequest{Email: "dup@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, &model.RegisterRequest{Email: "DUP@example.com", Password: "longenough"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestValidateTokenRejectsForeignAndExpired(t *testing.T) {
	svc, _ := newTestAuth()

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{UserID: "u1"})
	signed, _ := other.SignedString([]byte("a-different-secret-entirely-000000"))
	if _, err := svc.ValidateToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, _ = expired.SignedString(svc.jwtSecret)
	if _, err := svc.ValidateToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}

	if _, err := svc.ValidateToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
