package cloudsync

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu     sync.Mutex
	pushes []pushRecord
	fail   int
}

type pushRecord struct {
	userID   string
	snapshot string
}

func (f *fakeRemote) Push(_ context.Context, userID string, snapshot []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail > 0 {
		f.fail--
		return errors.New("remote unavailable")
	}
	f.pushes = append(f.pushes, pushRecord{userID: userID, snapshot: string(snapshot)})
	return nil
}

func (f *fakeRemote) recorded() []pushRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pushRecord(nil), f.pushes...)
}

func TestEnqueueDebouncesToLatestSnapshot(t *testing.T) {
	remote := &fakeRemote{}
	s := NewSyncer(remote, nil)
	s.SetDebounce(20 * time.Millisecond)

	s.Enqueue("local", []byte(`{"rev":1}`))
	s.Enqueue("local", []byte(`{"rev":2}`))
	s.Enqueue("local", []byte(`{"rev":3}`))

	require.Eventually(t, func() bool { return len(remote.recorded()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := remote.recorded()
	assert.Equal(t, "local", got[0].userID)
	assert.Equal(t, `{"rev":3}`, got[0].snapshot)
}

func TestFlushPushesImmediately(t *testing.T) {
	remote := &fakeRemote{}
	s := NewSyncer(remote, nil)

	s.Enqueue("local", []byte(`{}`))
	s.Flush(context.Background())

	got := remote.recorded()
	require.Len(t, got, 1)
	assert.Equal(t, "local", got[0].userID)
}

func TestFlushWithNothingPendingIsNoop(t *testing.T) {
	remote := &fakeRemote{}
	s := NewSyncer(remote, nil)

	s.Flush(context.Background())
	assert.Empty(t, remote.recorded())
}

func TestPushRetriesTransientFailure(t *testing.T) {
	remote := &fakeRemote{fail: 1}
	s := NewSyncer(remote, nil)

	s.Enqueue("local", []byte(`{"ok":true}`))
	s.Flush(context.Background())

	got := remote.recorded()
	require.Len(t, got, 1)
	assert.Equal(t, `{"ok":true}`, got[0].snapshot)
}
