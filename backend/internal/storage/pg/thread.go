package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forumapi/shared/domain"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	sharedpg "github.com/itchan-dev/forumapi/shared/storage/pg"
)

// AddThread inserts the thread atomically and returns the stored identity.
func (s *Storage) AddThread(ctx context.Context, thread domain.ThreadCreationData) (domain.AddedThread, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var added domain.AddedThread
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.addThread(ctx, tx, thread)
		return err
	})
	return added, err
}

func (s *Storage) addThread(ctx context.Context, q sharedpg.Querier, thread domain.ThreadCreationData) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := q.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, thread.Id, thread.Title, thread.Body, thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return domain.AddedThread{}, internal_errors.NotFound("user tidak ditemukan")
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}
