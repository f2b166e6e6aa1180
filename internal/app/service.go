// Package app provides the core business service wiring the schema mapper,
// the contact store, and the matching engine behind one API used by both
// the HTTP handlers and the CLI.
package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/okian/rolodex/internal/adapters/repository"
	"github.com/okian/rolodex/internal/domain/matching"
	"github.com/okian/rolodex/internal/domain/model"
	"github.com/okian/rolodex/internal/domain/schema"
	"github.com/okian/rolodex/pkg/logger"
	"github.com/okian/rolodex/pkg/metrics"
)

// Defaults used when no option overrides them.
const (
	defaultThreshold = 85
	defaultSource    = "LinkedIn"
)

// Service implements contact ingestion and attendee matching.
type Service struct {
	store  repository.Store
	engine *matching.Engine

	threshold int
	source    string

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEngine replaces the default matching engine.
func WithEngine(e *matching.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithDefaultThreshold sets the threshold used when a request does not
// carry one. Out-of-range values are ignored.
func WithDefaultThreshold(t int) Option {
	return func(s *Service) {
		if t >= 0 && t <= 100 {
			s.threshold = t
		}
	}
}

// WithDefaultSource sets the source label used when an import does not
// carry one.
func WithDefaultSource(src string) Option {
	return func(s *Service) {
		if strings.TrimSpace(src) != "" {
			s.source = strings.TrimSpace(src)
		}
	}
}

// New constructs a Service over the given contact store.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		engine:    matching.New(),
		threshold: defaultThreshold,
		source:    defaultSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultThreshold returns the configured fallback threshold.
func (s *Service) DefaultThreshold() int { return s.threshold }

// DefaultSource returns the configured fallback source label.
func (s *Service) DefaultSource() string { return s.source }

// LoadContacts parses a contact CSV and replaces the (owner, source)
// partition with its rows. Parsing and schema resolution happen before any
// store mutation, so a bad upload leaves the previous partition intact.
// The attendee side never goes through here; attendees are not persisted.
func (s *Service) LoadContacts(ctx context.Context, r io.Reader, owner, source string) (repository.ReplaceStats, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		metrics.RecordIngestFailure()
		return repository.ReplaceStats{}, ErrMissingOwner
	}
	source = strings.TrimSpace(source)
	if source == "" {
		source = s.source
	}

	headers, rows, err := readTable(r)
	if err != nil {
		metrics.RecordIngestFailure()
		return repository.ReplaceStats{}, err
	}
	contacts, err := schema.MapContacts(headers, rows)
	if err != nil {
		metrics.RecordIngestFailure()
		return repository.ReplaceStats{}, err
	}

	stats, err := s.store.ReplacePartition(ctx, owner, source, contacts)
	if err != nil {
		metrics.RecordIngestFailure()
		return repository.ReplaceStats{}, err
	}

	if total, err := s.store.Count(ctx); err == nil {
		metrics.RecordReplace(stats.Deleted, stats.Inserted, total)
	}
	if s.log != nil {
		s.log.Info(ctx, "contacts partition replaced",
			logger.String("owner", owner),
			logger.String("source", source),
			logger.Int64("deleted", stats.Deleted),
			logger.Int64("inserted", stats.Inserted),
		)
	}
	return stats, nil
}

// MatchAttendees parses an attendee CSV and matches it against the full
// contact directory. Nothing about the attendees is stored; the result
// table is handed back and forgotten. A run with zero matches is a
// successful empty result, while an empty contact directory surfaces as
// matching.ErrEmptyStore.
func (s *Service) MatchAttendees(ctx context.Context, r io.Reader, threshold int) ([]model.Match, error) {
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
	}

	headers, rows, err := readTable(r)
	if err != nil {
		metrics.RecordMatchFailure()
		return nil, err
	}
	attendees, err := schema.MapAttendees(headers, rows)
	if err != nil {
		metrics.RecordMatchFailure()
		return nil, err
	}

	contacts, err := s.store.ListAll(ctx)
	if err != nil {
		metrics.RecordMatchFailure()
		return nil, err
	}

	start := time.Now()
	matches, err := s.engine.Match(ctx, attendees, contacts, threshold)
	if err != nil {
		metrics.RecordMatchFailure()
		return nil, err
	}
	metrics.RecordMatchRun(len(matches), time.Since(start).Seconds())
	for _, m := range matches {
		metrics.RecordMatchScore(m.Score)
	}

	if s.log != nil {
		s.log.Info(ctx, "match run complete",
			logger.Int("attendees", len(attendees)),
			logger.Int("contacts", len(contacts)),
			logger.Int("threshold", threshold),
			logger.Int("matches", len(matches)),
		)
	}
	return matches, nil
}

// readTable materializes a CSV stream into a header row and data rows.
// Rows may have ragged lengths; short rows read as empty cells downstream.
func readTable(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyCSV
	}
	return records[0], records[1:], nil
}
