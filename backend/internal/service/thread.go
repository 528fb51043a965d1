package service

import (
	"context"

	"github.com/itchan-dev/forumapi/shared/domain"
)

type ThreadService interface {
	Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
}

type Thread struct {
	storage ThreadStorage
	ids     IdGenerator
}

type ThreadStorage interface {
	AddThread(ctx context.Context, thread domain.ThreadCreationData) (domain.AddedThread, error)
}

type IdGenerator interface {
	Generate() (string, error)
}

func NewThread(storage ThreadStorage, ids IdGenerator) *Thread {
	return &Thread{storage: storage, ids: ids}
}

// Add creates a thread owned by owner. owner must come from the verified
// credential; an "owner" field inside payload is ignored. Validation errors
// are returned as domain errors, storage errors as they are.
func (t *Thread) Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	fields := domain.Payload{}
	for _, key := range []string{"title", "body"} {
		if v, ok := payload[key]; ok {
			fields[key] = v
		}
	}
	if owner != "" {
		fields["owner"] = owner
	}

	thread, err := domain.NewThread(fields)
	if err != nil {
		return domain.AddedThread{}, err
	}

	id, err := t.ids.Generate()
	if err != nil {
		return domain.AddedThread{}, err
	}

	return t.storage.AddThread(ctx, domain.ThreadCreationData{
		Id:    id,
		Title: thread.Title(),
		Body:  thread.Body(),
		Owner: thread.Owner(),
	})
}
