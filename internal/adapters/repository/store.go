// Package repository defines the contact store interface and its
// gorm-backed implementation.
package repository

import (
	"context"

	"github.com/okian/rolodex/internal/domain/model"
)

// ReplaceStats reports the outcome of a partition replacement.
type ReplaceStats struct {
	Deleted  int64 `json:"deleted"`
	Inserted int64 `json:"inserted"`
}

// Store provides read/write access to the persisted contact directory.
type Store interface {
	// ReplacePartition atomically deletes every contact with the exact
	// (owner, source) pair and inserts the given records in their place.
	// Records with an empty full name are silently skipped. Concurrent
	// replacements of the same partition are serialized; readers never
	// observe a partially replaced partition.
	ReplacePartition(ctx context.Context, owner, source string, contacts []model.Contact) (ReplaceStats, error)

	// ListAll returns the full contact universe across all owners and
	// sources, in insertion (primary key) order. Matching always runs
	// against the whole directory; cross-owner matches are intentional.
	ListAll(ctx context.Context) ([]model.Contact, error)

	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int64, error)
}
