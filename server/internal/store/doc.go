// Package store holds graded cuts in memory. It provides a thread-safe
// store keyed by cut ID with TTL eviction; IDs for new cuts are random
// UUIDs. Nothing is persisted across restarts.
package store
