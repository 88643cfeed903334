package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"texstock/internal/pkg/token"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := token.NewService("test-secret", time.Minute)
	userID := uuid.New().String()

	tokenString, err := svc.GenerateToken(userID, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "TexStock-API", claims.Issuer)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute)

	tokenString, err := svc.GenerateToken(uuid.New().String(), "staff")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsWrongKey(t *testing.T) {
	issuer := token.NewService("key-one", time.Minute)
	verifier := token.NewService("key-two", time.Minute)

	tokenString, err := issuer.GenerateToken(uuid.New().String(), "staff")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := token.NewService("test-secret", time.Minute)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
