// Package store maintains per-identity committed spans and the single
// pending entry slot, backed by durable storage. Writes are synchronous:
// an operation only reports success after the repository write committed.
package store

import (
	"context"
	"sync"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/repository/sqlite"
	"punchclock/internal/validation"
)

// SpanStore exposes the span and pending-entry operations, all scoped to one
// identity per call. Mutating operations on the same identity serialize;
// operations on distinct identities proceed independently.
type SpanStore interface {
	// BeginPending opens the pending entry slot. A second call while the
	// slot is occupied fails with PendingAlreadyExists and leaves state
	// untouched.
	BeginPending(ctx context.Context, identity domain.Identity, instant time.Time) error

	// CompletePending consumes the pending entry and commits the resulting
	// span. Fails with NoPendingEntry when the slot is empty and with
	// LeaveBeforeEnter when the instants violate the span invariant.
	CompletePending(ctx context.Context, identity domain.Identity, leave time.Time) (*domain.Span, error)

	// CommitSpan commits a complete span directly, bypassing the pending
	// mechanism.
	CommitSpan(ctx context.Context, identity domain.Identity, enter, leave time.Time) (*domain.Span, error)

	// ClearDay removes all spans on one date and returns how many were
	// removed. Zero is a valid, non-error result.
	ClearDay(ctx context.Context, identity domain.Identity, date domain.Date) (int, error)

	// ListMonth returns the committed spans of a month, sorted by date then
	// enter instant.
	ListMonth(ctx context.Context, identity domain.Identity, year int, month time.Month) ([]domain.Span, error)

	// GetPending returns the open pending entry, or nil when the slot is
	// empty.
	GetPending(ctx context.Context, identity domain.Identity) (*domain.PendingEntry, error)
}

// spanStoreImpl implements SpanStore on top of the sqlite repository.
type spanStoreImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.SpanValidator

	mu    sync.Mutex
	locks map[domain.Identity]*sync.Mutex
}

// New creates a SpanStore backed by the given repository.
func New(repo sqlite.Repository) SpanStore {
	return &spanStoreImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewSpanValidator(),
		locks:     make(map[domain.Identity]*sync.Mutex),
	}
}

// identityLock returns the mutex serializing mutations for one identity.
// Locks are created on first use and kept for the process lifetime; the set
// of identities a deployment sees is small and bounded.
func (s *spanStoreImpl) identityLock(identity domain.Identity) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[identity]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[identity] = lock
	}
	return lock
}

func (s *spanStoreImpl) BeginPending(ctx context.Context, identity domain.Identity, instant time.Time) error {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return err
	}

	lock := s.identityLock(identity)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.GetPendingEntry(ctx, string(identity))
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return err
	}
	if existing != nil {
		return errors.NewPendingAlreadyExistsError().
			WithContext("pending_since", existing.EnterTime)
	}

	dbEntry := s.mapper.PendingEntry.ToDatabase(domain.PendingEntry{Identity: identity, Enter: instant})
	return s.repo.InsertPendingEntry(ctx, &dbEntry)
}

func (s *spanStoreImpl) CompletePending(ctx context.Context, identity domain.Identity, leave time.Time) (*domain.Span, error) {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return nil, err
	}

	lock := s.identityLock(identity)
	lock.Lock()
	defer lock.Unlock()

	dbEntry, err := s.repo.GetPendingEntry(ctx, string(identity))
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewNoPendingEntryError()
		}
		return nil, err
	}
	pending := s.mapper.PendingEntry.FromDatabase(*dbEntry)

	// Validate before touching state so a rejected leave keeps the
	// pending entry intact.
	if err := s.validator.ValidateSpanForCommit(pending.Enter, leave); err != nil {
		return nil, err
	}

	span := domain.NewSpan(identity, pending.Enter, leave)
	dbSpan := s.mapper.Span.ToDatabase(span)
	if err := s.repo.CommitPendingSpan(ctx, &dbSpan); err != nil {
		return nil, err
	}

	span.ID = dbSpan.ID
	return &span, nil
}

func (s *spanStoreImpl) CommitSpan(ctx context.Context, identity domain.Identity, enter, leave time.Time) (*domain.Span, error) {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSpanForCommit(enter, leave); err != nil {
		return nil, err
	}

	lock := s.identityLock(identity)
	lock.Lock()
	defer lock.Unlock()

	span := domain.NewSpan(identity, enter, leave)
	dbSpan := s.mapper.Span.ToDatabase(span)
	if err := s.repo.InsertSpan(ctx, &dbSpan); err != nil {
		return nil, err
	}

	span.ID = dbSpan.ID
	return &span, nil
}

func (s *spanStoreImpl) ClearDay(ctx context.Context, identity domain.Identity, date domain.Date) (int, error) {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return 0, err
	}

	lock := s.identityLock(identity)
	lock.Lock()
	defer lock.Unlock()

	removed, err := s.repo.DeleteSpansByDate(ctx, string(identity),
		sqlite.FormatDateForDB(date.Year, date.Month, date.Day))
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}

func (s *spanStoreImpl) ListMonth(ctx context.Context, identity domain.Identity, year int, month time.Month) ([]domain.Span, error) {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return nil, err
	}

	dbSpans, err := s.repo.ListSpansByMonth(ctx, string(identity), year, month)
	if err != nil {
		return nil, err
	}
	return s.mapper.Span.FromDatabaseSlice(dbSpans), nil
}

func (s *spanStoreImpl) GetPending(ctx context.Context, identity domain.Identity) (*domain.PendingEntry, error) {
	if err := s.validator.ValidateIdentity(identity); err != nil {
		return nil, err
	}

	dbEntry, err := s.repo.GetPendingEntry(ctx, string(identity))
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	pending := s.mapper.PendingEntry.FromDatabase(*dbEntry)
	return &pending, nil
}
