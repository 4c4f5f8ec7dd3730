package cloudsync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirRemotePushWritesSnapshotFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewDirRemote(dir)
	require.NoError(t, err)

	require.NoError(t, r.Push(context.Background(), "local", []byte(`{"rev":1}`)))
	require.NoError(t, r.Push(context.Background(), "local", []byte(`{"rev":2}`)))

	got, err := os.ReadFile(filepath.Join(dir, "local.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"rev":2}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDirRemoteRejectsEmptyDir(t *testing.T) {
	_, err := NewDirRemote("")
	assert.Error(t, err)
}

func TestDirRemotePushHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	r, err := NewDirRemote(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Push(ctx, "local", []byte(`{}`)))
}
