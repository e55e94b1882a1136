package storage

import "context"

// Snapshot keys. One JSON blob per collection, plus the current-user session
// blob. The key names are part of the persisted format and must not change.
const (
	KeyMatches       = "oh_matches"
	KeyChats         = "oh_chats"
	KeyNotifications = "oh_notifications"
	KeyConfessions   = "oh_confessions"
	KeySession       = "otherhalf_session"
)

// Adapter is a string-keyed blob store used for snapshot persistence.
// Implementations must treat a missing key as (value="", ok=false, err=nil).
type Adapter interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
