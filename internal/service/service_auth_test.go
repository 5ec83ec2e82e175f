// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tmarnet/go-shop/internal/config"
	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/mock"
	"github.com/tmarnet/go-shop/internal/store"
	"github.com/tmarnet/go-shop/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-secret-key",
		TokenIssuer:   "go-shop-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())
	ctx := context.Background()

	credentials := models.CredentialsRequest{
		Email:    "john@example.com",
		Password: "secret123",
	}

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// the stored hash must verify against the original password
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)))
			user.UserID = 1
			return user, nil
		})

	registered, err := auth.RegisterUser(ctx, credentials)

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, credentials.Email, registered.Email)
}

func TestAuthService_RegisterUser_TrimsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			// a padded address must collapse onto its canonical form before
			// it reaches the store, or the email uniqueness constraint
			// cannot catch the duplicate
			assert.Equal(t, "john@example.com", user.Email)
			user.UserID = 1
			return user, nil
		})

	registered, err := auth.RegisterUser(context.Background(), models.CredentialsRequest{
		Email:    "  john@example.com  ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "john@example.com", registered.Email)
}

func TestAuthService_RegisterUser_PaddedDuplicateEmail(t *testing.T) {
	auth := NewAuthService(store.NewInMemory(logger.Nop()), testAppConfig(), logger.Nop())
	ctx := context.Background()

	_, err := auth.RegisterUser(ctx, models.CredentialsRequest{
		Email:    "john@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// the same address wrapped in whitespace is the same account
	_, err = auth.RegisterUser(ctx, models.CredentialsRequest{
		Email:    " john@example.com ",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_TrimsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: string(hash)}, nil)

	loggedIn, err := auth.Login(context.Background(), models.CredentialsRequest{
		Email:    " john@example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), loggedIn.UserID)
}

func TestAuthService_RegisterUser_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	// repository must not be touched for invalid input
	_, err := auth.RegisterUser(context.Background(), models.CredentialsRequest{
		Email:    "not-an-email",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := auth.RegisterUser(context.Background(), models.CredentialsRequest{
		Email:    "john@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	password := "secret123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := models.User{
		UserID:       7,
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		userRepo.EXPECT().
			FindUserByEmail(gomock.Any(), storedUser.Email).
			Return(storedUser, nil)

		loggedIn, err := auth.Login(context.Background(), models.CredentialsRequest{
			Email:    storedUser.Email,
			Password: password,
		})

		require.NoError(t, err)
		assert.Equal(t, storedUser.UserID, loggedIn.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo.EXPECT().
			FindUserByEmail(gomock.Any(), storedUser.Email).
			Return(storedUser, nil)

		_, err := auth.Login(context.Background(), models.CredentialsRequest{
			Email:    storedUser.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("user not found", func(t *testing.T) {
		userRepo.EXPECT().
			FindUserByEmail(gomock.Any(), "ghost@example.com").
			Return(models.User{}, store.ErrNoUserWasFound)

		_, err := auth.Login(context.Background(), models.CredentialsRequest{
			Email:    "ghost@example.com",
			Password: password,
		})

		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())
	ctx := context.Background()

	user := models.User{UserID: 42, Email: "john@example.com"}

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
	assert.Equal(t, user.Email, parsed.Email)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(userRepo, testAppConfig(), logger.Nop())

	_, err := auth.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
