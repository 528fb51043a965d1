package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	sharedpg "github.com/itchan-dev/forumapi/shared/storage/pg"
)

var errUsernameTaken = internal_errors.BadRequest("username tidak tersedia")

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return errUsernameTaken
	}
	return nil
}

// AddUser inserts the user. A concurrent registration of the same username
// loses on the unique constraint and gets the same error as VerifyAvailableUsername.
func (s *Storage) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var registered domain.RegisteredUser
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx,
			"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4) RETURNING id, username, fullname",
			user.Id, user.Username, user.PassHash, user.Fullname,
		).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	})
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.RegisteredUser{}, errUsernameTaken
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, fullname FROM users WHERE username = $1", username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.BadRequest("username tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
