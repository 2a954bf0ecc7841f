package user_test

import (
	"context"
	"testing"

	"github.com/alexedwards/argon2id"
	appUser "github.com/parceltrack/parceltrack/pkg/app/user"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainUser "github.com/parceltrack/parceltrack/pkg/domain/user"
	userMocks "github.com/parceltrack/parceltrack/pkg/domain/user/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	hash, err := argon2id.CreateHash("correct horse battery", argon2id.DefaultParams)
	require.NoError(t, err)

	repo := new(userMocks.Repository)
	repo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(&domainUser.User{Email: "user@example.com", PasswordHash: hash}, nil)

	authenticator := appUser.NewAuthenticator(repo, logrus.New())

	entity, err := authenticator.Authenticate(context.Background(), "user@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", entity.Email)

	_, err = authenticator.Authenticate(context.Background(), "user@example.com", "wrong password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticator_UnknownEmail(t *testing.T) {
	repo := new(userMocks.Repository)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	authenticator := appUser.NewAuthenticator(repo, logrus.New())

	_, err := authenticator.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegistrar_Register(t *testing.T) {
	repo := new(userMocks.Repository)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domainUser.User) bool {
		// The stored hash must verify against the submitted password and
		// never equal it.
		match, err := argon2id.ComparePasswordAndHash("s3cret-enough", u.PasswordHash)
		return err == nil && match && u.PasswordHash != "s3cret-enough"
	})).Return(nil)

	registrar := appUser.NewRegistrar(repo, logrus.New())

	entity, err := registrar.Register(context.Background(), "new@example.com", "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", entity.Email)
	repo.AssertExpectations(t)
}

func TestRegistrar_EmailTaken(t *testing.T) {
	repo := new(userMocks.Repository)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domainUser.User{Email: "taken@example.com"}, nil)

	registrar := appUser.NewRegistrar(repo, logrus.New())

	_, err := registrar.Register(context.Background(), "taken@example.com", "irrelevant1")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
