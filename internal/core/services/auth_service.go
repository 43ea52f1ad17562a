package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardeasy/internal/adapters/persistence/models"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/config"
	"boardeasy/internal/core/domain"
	"boardeasy/internal/pkg/jwt"
	"boardeasy/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrLandlordNotFound      = fmt.Errorf("%w: landlord not found", domain.ErrNotFound)
	ErrLandlordAlreadyExists = fmt.Errorf("%w: username or email already registered", domain.ErrConstraint)
	ErrWeakPassword          = fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	ErrMissingCredentials    = fmt.Errorf("%w: username and password are required", domain.ErrValidation)
)

// AuthService handles landlord authentication business logic
type AuthService struct {
	landlordRepo     repositories.LandlordRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	landlordRepo repositories.LandlordRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		landlordRepo:     landlordRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Landlord     *models.LandlordResponse `json:"landlord"`
	AccessToken  string                   `json:"access_token"`
	RefreshToken string                   `json:"refresh_token"`
}

// Register registers a new landlord account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	// Check if username already exists
	exists, err := s.landlordRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if exists {
		return nil, ErrLandlordAlreadyExists
	}

	// Check if email already exists
	exists, err = s.landlordRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, persistenceErr(err)
	}
	if exists {
		return nil, ErrLandlordAlreadyExists
	}

	// Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	landlord := &models.Landlord{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	}

	if err := s.landlordRepo.Create(ctx, landlord); err != nil {
		return nil, persistenceErr(err)
	}

	return s.buildAuthResponse(ctx, landlord)
}

// Login authenticates a landlord
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	landlord, err := s.landlordRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, persistenceErr(err)
	}

	if !password.Verify(input.Password, landlord.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.buildAuthResponse(ctx, landlord)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, err
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, password.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, persistenceErr(err)
	}
	if stored.IsRevoked() {
		return nil, domain.ErrTokenInvalid
	}
	if stored.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	landlord, err := s.landlordRepo.GetByID(ctx, claims.LandlordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandlordNotFound
		}
		return nil, persistenceErr(err)
	}

	// Rotate: revoke the used token before issuing a new pair
	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, persistenceErr(err)
	}

	return s.buildAuthResponse(ctx, landlord)
}

// Logout revokes all refresh tokens of a landlord
func (s *AuthService) Logout(ctx context.Context, landlordID uint) error {
	if err := s.refreshTokenRepo.RevokeAllByLandlordID(ctx, landlordID); err != nil {
		return persistenceErr(err)
	}
	return nil
}

// GetProfile returns the landlord profile
func (s *AuthService) GetProfile(ctx context.Context, landlordID uint) (*models.LandlordResponse, error) {
	landlord, err := s.landlordRepo.GetByID(ctx, landlordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandlordNotFound
		}
		return nil, persistenceErr(err)
	}
	return landlord.ToResponse(), nil
}

// UpdateProfileInput represents profile update input
type UpdateProfileInput struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// UpdateProfile updates landlord profile fields
func (s *AuthService) UpdateProfile(ctx context.Context, landlordID uint, input *UpdateProfileInput) (*models.LandlordResponse, error) {
	landlord, err := s.landlordRepo.GetByID(ctx, landlordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandlordNotFound
		}
		return nil, persistenceErr(err)
	}

	if input.Email != nil && *input.Email != landlord.Email {
		exists, err := s.landlordRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, persistenceErr(err)
		}
		if exists {
			return nil, ErrLandlordAlreadyExists
		}
		landlord.Email = *input.Email
	}
	if input.FirstName != nil {
		landlord.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		landlord.LastName = *input.LastName
	}
	if input.Phone != nil {
		landlord.Phone = *input.Phone
	}

	if err := s.landlordRepo.Update(ctx, landlord); err != nil {
		return nil, persistenceErr(err)
	}

	return landlord.ToResponse(), nil
}

// ChangePasswordInput represents password change input
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(ctx context.Context, landlordID uint, input *ChangePasswordInput) error {
	landlord, err := s.landlordRepo.GetByID(ctx, landlordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLandlordNotFound
		}
		return persistenceErr(err)
	}

	if !password.Verify(input.CurrentPassword, landlord.Password) {
		return domain.ErrInvalidCredentials
	}
	if !password.ValidatePassword(input.NewPassword) {
		return ErrWeakPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	landlord.Password = hashed

	if err := s.landlordRepo.Update(ctx, landlord); err != nil {
		return persistenceErr(err)
	}

	// Force re-login everywhere after a password change
	return s.Logout(ctx, landlordID)
}

// buildAuthResponse generates a token pair and persists the refresh token hash
func (s *AuthService) buildAuthResponse(ctx context.Context, landlord *models.Landlord) (*AuthResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(
		landlord.ID, landlord.Username,
		s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refreshToken, err := jwt.GenerateRefreshToken(
		landlord.ID, tokenID,
		s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		LandlordID: landlord.ID,
		TokenHash:  password.HashToken(refreshToken),
		ExpiresAt:  time.Now().Add(time.Duration(s.cfg.JWT.RefreshTokenDays) * 24 * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, persistenceErr(err)
	}

	return &AuthResponse{
		Landlord:     landlord.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// persistenceErr tags a storage failure with the persistence taxonomy root
func persistenceErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}
