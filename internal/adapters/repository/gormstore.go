package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/okian/rolodex/internal/domain/model"
)

// partition identifies the unit of atomic replacement.
type partition struct {
	owner  string
	source string
}

// GormStore implements Store on top of a gorm handle. The handle is opened
// by the caller (process startup or a test) and passed in explicitly, so
// the store carries no ambient global state.
type GormStore struct {
	db *gorm.DB

	// mu guards locks; each partition gets its own mutex so writers to
	// different partitions do not serialize against each other.
	mu    sync.Mutex
	locks map[partition]*sync.Mutex
}

// NewGormStore wraps an opened gorm handle.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	return &GormStore{
		db:    db,
		locks: make(map[partition]*sync.Mutex),
	}, nil
}

// Migrate creates or updates the contacts table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.Contact{}); err != nil {
		return fmt.Errorf("migrate contacts table: %w", err)
	}
	return nil
}

// partitionLock returns the mutex for one (owner, source) pair, creating
// it on first use.
func (s *GormStore) partitionLock(p partition) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[p]
	if !ok {
		l = &sync.Mutex{}
		s.locks[p] = l
	}
	return l
}

// ReplacePartition deletes and reinserts one (owner, source) partition in
// a single transaction. The per-partition mutex serializes writers to the
// same partition; the transaction keeps concurrent readers from seeing a
// torn partition.
func (s *GormStore) ReplacePartition(ctx context.Context, owner, source string, contacts []model.Contact) (ReplaceStats, error) {
	l := s.partitionLock(partition{owner: owner, source: source})
	l.Lock()
	defer l.Unlock()

	var stats ReplaceStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("owner = ? AND source = ?", owner, source).Delete(&model.Contact{})
		if res.Error != nil {
			return fmt.Errorf("delete partition: %w", res.Error)
		}
		stats.Deleted = res.RowsAffected

		rows := make([]model.Contact, 0, len(contacts))
		for _, c := range contacts {
			if c.FullName == "" {
				continue
			}
			c.ID = 0
			c.Owner = owner
			c.Source = source
			rows = append(rows, c)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert partition: %w", err)
		}
		stats.Inserted = int64(len(rows))
		return nil
	})
	if err != nil {
		return ReplaceStats{}, err
	}
	return stats, nil
}

// ListAll returns every stored contact in primary key order.
func (s *GormStore) ListAll(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Count returns the number of stored contacts.
func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Contact{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
