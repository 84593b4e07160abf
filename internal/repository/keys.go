// Package repository persists users, the active session snapshot, and
// per-user order histories as string-keyed JSON blobs in Redis. A single-key
// write is the atomicity unit; there is no cross-key transaction.
package repository

import "fmt"

const (
	// usersKey holds the master user table as a JSON array.
	usersKey = "sjsm:users"
	// activeUserKey holds the active-session user snapshot.
	activeUserKey = "sjsm:active_user"
	// ordersKeyPrefix is parameterized by user id; each value is that user's
	// order list, newest first.
	ordersKeyPrefix = "sjsm:orders:"
)

func ordersKey(userID string) string {
	return fmt.Sprintf("%s%s", ordersKeyPrefix, userID)
}
