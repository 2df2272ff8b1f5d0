package question

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-english/internal/audit"
	auth "github.com/mind-engage/mindengage-english/internal/auth/middleware"
)

type recordingJournal struct{ events []audit.Event }

func (r *recordingJournal) Append(_ context.Context, e audit.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestJournaledStore(t *testing.T) {
	ctx := auth.WithSubject(context.Background(), "ed")
	j := &recordingJournal{}
	s := WithJournal(newTestStore(t), j)

	require.NoError(t, s.Put(ctx, sample[0]))
	require.NoError(t, s.Delete(ctx, sample[0].ID))

	// failed writes are not journaled
	assert.ErrorIs(t, s.Delete(ctx, 42), ErrNotFound)
	assert.Error(t, s.Put(ctx, Question{ID: 9}))

	require.Len(t, j.events, 2)
	assert.Equal(t, EventPut, j.events[0].Type)
	assert.Equal(t, "1", j.events[0].Key)
	assert.Equal(t, "ed", j.events[0].Actor)
	assert.Contains(t, j.events[0].DataJSON, `"en":"I have a red car"`)
	assert.Equal(t, EventDelete, j.events[1].Type)
}

func TestWithJournalNil(t *testing.T) {
	s := newTestStore(t)
	assert.Same(t, Store(s), WithJournal(s, nil))
}
