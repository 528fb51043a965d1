package service

import (
	"context"

	"github.com/itchan-dev/forumapi/shared/domain"
)

type UserService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

type User struct {
	storage UserStorage
	hasher  PasswordHasher
	ids     IdGenerator
}

type UserStorage interface {
	// VerifyAvailableUsername fails with a client error if username is taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}

func NewUser(storage UserStorage, hasher PasswordHasher, ids IdGenerator) *User {
	return &User{storage: storage, hasher: hasher, ids: ids}
}

func (u *User) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	registration, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	if err := u.storage.VerifyAvailableUsername(ctx, registration.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := u.hasher.Hash(registration.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	id, err := u.ids.Generate()
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return u.storage.AddUser(ctx, domain.User{
		Id:       id,
		Username: registration.Username,
		PassHash: passHash,
		Fullname: registration.Fullname,
	})
}
