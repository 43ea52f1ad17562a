package services_test

import (
	"context"
	"testing"

	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/config"
	"boardeasy/internal/core/domain"
	"boardeasy/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *services.AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return services.NewAuthService(
		repositories.NewLandlordRepository(db),
		repositories.NewRefreshTokenRepository(db),
		cfg,
	)
}

func registerLandlord(t *testing.T, svc *services.AuthService) *services.AuthResponse {
	t.Helper()

	resp, err := svc.Register(context.Background(), &services.RegisterInput{
		Username:  "landlord1",
		Email:     "landlord1@example.com",
		Password:  "correct-horse",
		FirstName: "Ana",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp := registerLandlord(t, svc)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "landlord1", resp.Landlord.Username)

	_, err := svc.Register(ctx, &services.RegisterInput{
		Username: "landlord1",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, services.ErrLandlordAlreadyExists)

	_, err = svc.Register(ctx, &services.RegisterInput{
		Username: "landlord2",
		Email:    "landlord1@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, services.ErrLandlordAlreadyExists)

	_, err = svc.Register(ctx, &services.RegisterInput{
		Username: "landlord3",
		Email:    "landlord3@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, services.ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	registerLandlord(t, svc)

	resp, err := svc.Login(ctx, &services.LoginInput{Username: "landlord1", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, &services.LoginInput{Username: "landlord1", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &services.LoginInput{Username: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &services.LoginInput{Username: "", Password: ""})
	assert.ErrorIs(t, err, services.ErrMissingCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	first := registerLandlord(t, svc)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The used token is revoked and cannot be replayed
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// The new token still works
	_, err = svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp := registerLandlord(t, svc)
	require.NoError(t, svc.Logout(ctx, resp.Landlord.ID))

	_, err := svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp := registerLandlord(t, svc)
	landlordID := resp.Landlord.ID

	err := svc.ChangePassword(ctx, landlordID, &services.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, landlordID, &services.ChangePasswordInput{
		CurrentPassword: "correct-horse",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, services.ErrWeakPassword)

	err = svc.ChangePassword(ctx, landlordID, &services.ChangePasswordInput{
		CurrentPassword: "correct-horse",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &services.LoginInput{Username: "landlord1", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &services.LoginInput{Username: "landlord1", Password: "brand-new-pass"})
	require.NoError(t, err)

	// Sessions from before the change are gone
	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp := registerLandlord(t, svc)

	email := "new@example.com"
	phone := "09171234567"
	profile, err := svc.UpdateProfile(ctx, resp.Landlord.ID, &services.UpdateProfileInput{
		Email: &email,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, email, profile.Email)
	assert.Equal(t, phone, profile.Phone)

	_, err = svc.UpdateProfile(ctx, 999, &services.UpdateProfileInput{})
	assert.ErrorIs(t, err, services.ErrLandlordNotFound)
}
