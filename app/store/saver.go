package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Saver flushes a snapshot of the store to durable storage. It is called with
// the store lock held, so implementations must not call back into the store.
type Saver interface {
	Save(d *Data) error
}

// NopSaver discards snapshots. Used in tests.
type NopSaver struct{}

func (NopSaver) Save(*Data) error { return nil }

// FileSaver writes the snapshot as JSON to a single file. The write goes
// through a temp file and rename so a crash mid-write never corrupts the
// previous snapshot.
type FileSaver struct {
	Path string
}

func (f FileSaver) Save(d *Data) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load restores a store from a previously saved JSON snapshot. A missing file
// yields an empty store.
func Load(path string, saver Saver) (*Store, error) {
	s := New(saver)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	d := newData()
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s.data = d
	return s, nil
}
