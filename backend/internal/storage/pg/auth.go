package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
)

func (s *Storage) AddToken(ctx context.Context, token domain.RefreshToken) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(ctx context.Context, token domain.RefreshToken) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM authentications WHERE token = $1)", token,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check token: %w", err)
	}
	if !exists {
		return internal_errors.BadRequest("refresh token tidak ditemukan di database")
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, token domain.RefreshToken) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
