package question

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mind-engage/mindengage-english/internal/audit"
	auth "github.com/mind-engage/mindengage-english/internal/auth/middleware"
)

const (
	EventPut    = "question.put"
	EventDelete = "question.delete"
)

// Journal records successful catalog writes.
type Journal interface {
	Append(ctx context.Context, e audit.Event) error
}

type journaledStore struct {
	Store
	j Journal
}

// WithJournal wraps store so that every successful Put and Delete is
// appended to j, attributed to the request subject. A failed append fails
// the call; the write itself stays.
func WithJournal(store Store, j Journal) Store {
	if j == nil {
		return store
	}
	return &journaledStore{Store: store, j: j}
}

func (s *journaledStore) Put(ctx context.Context, q Question) error {
	if err := s.Store.Put(ctx, q); err != nil {
		return err
	}
	data, err := json.Marshal(q.withDefaults())
	if err != nil {
		return err
	}
	return s.j.Append(ctx, audit.Event{Type: EventPut, Key: strconv.Itoa(q.ID), Actor: auth.SubjectFromContext(ctx), DataJSON: string(data)})
}

func (s *journaledStore) Delete(ctx context.Context, id int) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	return s.j.Append(ctx, audit.Event{Type: EventDelete, Key: strconv.Itoa(id), Actor: auth.SubjectFromContext(ctx), DataJSON: "{}"})
}
