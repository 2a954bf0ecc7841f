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

//go:generate mockery --name=Registrar --dir=. --output=./mocks --filename=registrar_mock.go --case=underscore --with-expecter
type Registrar interface {
	Register(ctx context.Context, email, password string) (*domainUser.User, error)
}

type registrar struct {
	repo   domainUser.Repository
	logger *logrus.Logger
}

func NewRegistrar(repository domainUser.Repository, logger *logrus.Logger) Registrar {
	return &registrar{
		repo:   repository,
		logger: logger,
	}
}

func (r *registrar) Register(ctx context.Context, email, password string) (*domainUser.User, error) {
	// The unique index catches races, but the lookup gives a clean error for
	// the common case.
	if _, err := r.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}

	entity := &domainUser.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := r.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}
