package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mealbridge/internal/auth"
	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username     string
	Password     string
	Confirm      string
	BusinessName string
	Location     string
	Role         model.Role
}

// AuthService handles registration, login and session teardown.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (accessToken, refreshToken string, account *model.Account, err error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, account *model.Account, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	accountRepo repository.AccountRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.AccountRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Register validates the signup form, persists the account and logs it in.
// Checks run in a fixed order: required fields, username uniqueness,
// business name uniqueness, password confirmation.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, string, *model.Account, error) {
	if in.Username == "" || in.Password == "" || in.Confirm == "" ||
		in.BusinessName == "" || in.Location == "" || !in.Role.Valid() {
		return "", "", nil, errors.ErrMissingFields
	}

	if _, err := s.accountRepo.FindByUsername(ctx, in.Username); err == nil {
		return "", "", nil, errors.ErrUsernameTaken
	} else if err != gorm.ErrRecordNotFound {
		return "", "", nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.accountRepo.FindByBusinessName(ctx, in.BusinessName); err == nil {
		return "", "", nil, errors.ErrBusinessNameTaken
	} else if err != gorm.ErrRecordNotFound {
		return "", "", nil, fmt.Errorf("check business name: %w", err)
	}

	if in.Password != in.Confirm {
		return "", "", nil, errors.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
		BusinessName: in.BusinessName,
		Location:     in.Location,
		Role:         in.Role,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return "", "", nil, fmt.Errorf("create account: %w", err)
	}

	// Registration logs the account straight in.
	return s.issueTokens(ctx, account)
}

// Login authenticates an account and returns a token pair. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, *model.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, account)
}

func (s *authService) issueTokens(ctx context.Context, account *model.Account) (string, string, *model.Account, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(account)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(account)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, account.ID, account.Username, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, account, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	storedAccountID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}
	if storedAccountID != claims.AccountID || storedUsername != claims.Username {
		return "", errors.ErrInvalidRefreshToken
	}

	account := &model.Account{
		ID:       claims.AccountID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	accessToken, err := s.jwtService.GenerateAccessToken(account)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token. Revoking an already-revoked token succeeds.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return errors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
