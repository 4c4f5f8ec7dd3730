package cloudsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirRemote stores snapshots as files in a directory. It stands in for a real
// cloud backend in local setups; writes are atomic (temp file + rename) and
// last-write-wins, matching the sync policy.
type DirRemote struct {
	dir string
}

func NewDirRemote(dir string) (*DirRemote, error) {
	if dir == "" {
		return nil, fmt.Errorf("sync directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sync directory: %w", err)
	}
	return &DirRemote{dir: dir}, nil
}

func (r *DirRemote) Push(ctx context.Context, userID string, snapshot []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(r.dir, userID+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, snapshot, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	return nil
}
