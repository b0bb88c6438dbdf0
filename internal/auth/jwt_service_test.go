package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealbridge/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	account := &model.Account{ID: 42, Username: "trattoria", Role: model.RoleRestaurant}

	token, err := svc.GenerateAccessToken(account)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "trattoria", claims.Username)
	assert.Equal(t, model.RoleRestaurant, claims.Role)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	account := &model.Account{ID: 42, Username: "trattoria", Role: model.RoleNPO}

	token, err := NewJWTService("secret-a").GenerateAccessToken(account)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret")
	account := &model.Account{ID: 42, Username: "trattoria", Role: model.RoleNPO}

	tokenID, token, err := svc.GenerateRefreshToken(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	// Access tokens have no JTI and cannot stand in for refresh tokens.
	accessToken, err := svc.GenerateAccessToken(account)
	assert.NoError(t, err)
	_, err = svc.ExtractTokenID(accessToken)
	assert.Error(t, err)
}
