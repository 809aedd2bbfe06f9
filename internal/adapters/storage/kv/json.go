package kv

import (
	"context"
	"encoding/json"
	"log/slog"
)

// LoadJSON decodes the JSON blob stored under key into dst. An absent key
// and a blob that fails to decode both report found=false: corrupt stored
// data is treated as absent so callers fall back to their defaults. The
// corruption is logged but never surfaced.
// PRE: dst is a non-nil pointer
// POST: dst is populated iff found is true
func LoadJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("kv_corrupt_value", "key", key, "error", err.Error())
		return false, nil
	}
	return true, nil
}

// SaveJSON serializes v and stores it under key. Failures propagate.
// PRE: v is JSON-serializable
// POST: Blob is persisted
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(raw))
}
