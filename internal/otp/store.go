// Package otp keeps the short-lived email verification codes issued during
// registration. Codes never touch the database: a record lives in memory for
// ten minutes at most and is consumed on first successful verification.
package otp

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeMismatch = errors.New("verification code mismatch")
)

type record struct {
	code      string
	expiresAt time.Time
}

// Store maps an email address to its single outstanding verification code.
// Issuing a new code for the same email overwrites the old one, so at most
// one code per email is live at any time. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	records map[string]record
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]record),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put stores a code for the email, replacing any outstanding one.
func (s *Store) Put(email, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[email] = record{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Verify checks the submitted code and consumes the record on success.
// An expired record is purged on sight. A mismatch leaves the record in
// place so the caller can retry with the right code before expiry.
func (s *Store) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[email]
	if !ok {
		return ErrCodeNotFound
	}

	if s.now().After(rec.expiresAt) {
		delete(s.records, email)
		return ErrCodeExpired
	}

	if rec.code != code {
		return ErrCodeMismatch
	}

	delete(s.records, email)
	return nil
}

// Delete voids the outstanding code for the email, if any.
func (s *Store) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, email)
}

// Len reports the number of outstanding records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Sweep drops expired records. Expiry is already enforced lazily on Verify;
// sweeping only reclaims memory for codes that were issued and never checked.
func (s *Store) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for email, rec := range s.records {
		if now.After(rec.expiresAt) {
			delete(s.records, email)
		}
	}
}

// Run sweeps periodically until the context is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
