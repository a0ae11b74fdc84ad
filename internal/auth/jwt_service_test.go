package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := uuid.New().String()

	token, err := svc.Generate(userID, "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, userID, claims.Subject)

	// Expiry sits seven days out.
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Validate(t *testing.T) {
	svc := NewTokenService("test-secret")

	expired := func() string {
		claims := &Claims{
			UserID: uuid.New().String(),
			Email:  "a@x.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return token
	}()

	forged := func() string {
		other := NewTokenService("other-secret")
		token, err := other.Generate(uuid.New().String(), "a@x.com")
		assert.NoError(t, err)
		return token
	}()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage string", token: "not-a-token"},
		{name: "empty string", token: ""},
		{name: "signed with a different secret", token: forged},
		{name: "expired token", token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenService_DistinctSecrets(t *testing.T) {
	// Two services with distinct secrets never accept each other's tokens.
	first := NewTokenService("first")
	second := NewTokenService("second")

	token, err := first.Generate(uuid.New().String(), "a@x.com")
	assert.NoError(t, err)

	_, err = first.Validate(token)
	assert.NoError(t, err)
	_, err = second.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
