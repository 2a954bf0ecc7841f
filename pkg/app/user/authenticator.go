package user

import (
	"context"
	"errors"

	"github.com/alexedwards/argon2id"
	"github.com/parceltrack/parceltrack/pkg/domain"
	domainUser "github.com/parceltrack/parceltrack/pkg/domain/user"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockery --name=Authenticator --dir=. --output=./mocks --filename=authenticator_mock.go --case=underscore --with-expecter
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domainUser.User, error)
}

type authenticator struct {
	repo   domainUser.Repository
	logger *logrus.Logger
}

func NewAuthenticator(repository domainUser.Repository, logger *logrus.Logger) Authenticator {
	return &authenticator{
		repo:   repository,
		logger: logger,
	}
}

// Authenticate returns ErrInvalidCredentials for both unknown email and bad
// password so the response cannot be used to probe registered addresses.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (*domainUser.User, error) {
	entity, err := a.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, entity.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, domain.ErrInvalidCredentials
	}

	return entity, nil
}
