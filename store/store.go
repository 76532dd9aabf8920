// Package store is the durable key-value persistence layer. Every collection
// is one JSON-serialized whole value under a string key, mirroring the
// browser-storage layout of the persisted state: "users", "reports", one
// "comments_<reportId>" record per report and one "currentUser_<sid>" record
// per logged-in browsing context.
// File: store/store.go
package store

import "fmt"

// Well-known record keys.
const (
	KeyUsers       = "users"
	KeyReports     = "reports"
	KeyCurrentUser = "currentUser"
)

// CommentsKey returns the per-report comment record key.
func CommentsKey(reportID int64) string {
	return fmt.Sprintf("comments_%d", reportID)
}

// SessionKey returns the session record key for one browsing context. Each
// logged-in browser holds its own record; there is no process-wide session.
func SessionKey(sid string) string {
	return fmt.Sprintf("%s_%s", KeyCurrentUser, sid)
}

// Store persists whole-value JSON records. Set always overwrites the entire
// value; there is no partial update. Get decodes into the caller's value and
// reports whether the key existed, leaving the value untouched when it did
// not, so callers keep their empty-collection default.
//
// The only mutation idiom is read, modify in memory, write back. The store
// itself takes no locks across that cycle; each service serializes its own
// cycles. Two processes sharing a data directory can still silently drop each
// other's writes — an accepted limitation of the storage model.
type Store interface {
	Get(key string, into any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
}
