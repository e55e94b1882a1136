package store

import (
	"context"
	"encoding/json"
	"fmt"

	"otherhalf_server/storage"
)

// snapshotVersion tags every persisted collection. Loads reject envelopes
// with any other version so a stale or foreign blob cannot be mistaken for a
// well-formed collection.
const snapshotVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func saveCollection(ctx context.Context, adapter storage.Adapter, key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	blob, err := json.Marshal(envelope{Version: snapshotVersion, Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode %q envelope: %w", key, err)
	}
	return adapter.Set(ctx, key, string(blob))
}

// loadCollection hydrates one collection. Returns (false, nil) when no
// snapshot exists and a non-nil error when the stored blob is malformed or
// carries an unrecognized version; the caller falls back to seed data either
// way.
func loadCollection(ctx context.Context, adapter storage.Adapter, key string, out interface{}) (bool, error) {
	blob, ok, err := adapter.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	var env envelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return false, fmt.Errorf("malformed %q snapshot: %w", key, err)
	}
	if env.Version != snapshotVersion {
		return false, fmt.Errorf("unsupported %q snapshot version %d", key, env.Version)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return false, fmt.Errorf("malformed %q snapshot data: %w", key, err)
	}
	return true, nil
}
