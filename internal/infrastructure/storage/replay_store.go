// Package storage persists the last recorded session in the user's data
// directory so it can be replayed in a later run.
package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"

	"github.com/younwookim/webslinger/internal/application/replay"
)

// AppName names the per-user data directory
const AppName = "webslinger"

const lastReplayKey = "last_replay"

// ErrNoReplay is returned by LoadLast when nothing has been saved yet
var ErrNoReplay = errors.New("storage: no saved replay")

// itemStore is the subset of *gdata.Manager the store uses
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ReplayStore keeps the most recent recording
type ReplayStore struct {
	items itemStore
}

// OpenReplayStore opens the store in the user's data directory
func OpenReplayStore() (*ReplayStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	return &ReplayStore{items: m}, nil
}

// SaveLast replaces the stored recording with data
func (s *ReplayStore) SaveLast(data replay.ReplayData) error {
	var buf bytes.Buffer
	if err := replay.Encode(&buf, data); err != nil {
		return err
	}
	if err := s.items.SaveItem(lastReplayKey, buf.Bytes()); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	return nil
}

// LoadLast returns the stored recording
func (s *ReplayStore) LoadLast() (*replay.ReplayData, error) {
	b, err := s.items.LoadItem(lastReplayKey)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}
	if len(b) == 0 {
		return nil, ErrNoReplay
	}
	return replay.Decode(bytes.NewReader(b))
}

// Clear removes the stored recording
func (s *ReplayStore) Clear() error {
	return s.items.SaveItem(lastReplayKey, nil)
}
