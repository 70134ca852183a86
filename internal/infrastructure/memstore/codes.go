// Package memstore holds the in-memory verification-code store. Nothing in
// it survives a restart; multi-instance deployments need a shared backend
// implementing the same interface.
package memstore

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/go-api-whatsapp/internal/domain"
)

// CodeStore maps phone numbers to pending verification codes with time-based
// expiry and single-use consumption. All operations take the store mutex, so
// lookup and mutation within Issue or Verify are atomic per store.
type CodeStore struct {
	mu      sync.Mutex
	entries map[string]domain.VerificationEntry
	ttl     time.Duration

	now  func() time.Time // overridable in tests
	done chan struct{}
	wg   sync.WaitGroup
}

// NewCodeStore creates a store whose codes live for ttl and starts a
// background sweeper that reclaims expired entries every sweepInterval.
// Call Stop on shutdown to terminate the sweeper.
func NewCodeStore(ttl, sweepInterval time.Duration) *CodeStore {
	s := &CodeStore{
		entries: make(map[string]domain.VerificationEntry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.sweepLoop(sweepInterval)
	return s
}

// Issue generates a uniformly random 6-digit code for phoneNumber, stores it
// with the configured TTL and returns it. Any prior entry for the same
// number is overwritten, which silently invalidates its code.
func (s *CodeStore) Issue(phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", fmt.Errorf("phone number required: %w", domain.ErrBadRequest)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	s.mu.Lock()
	s.entries[phoneNumber] = domain.VerificationEntry{
		PhoneNumber: phoneNumber,
		Code:        code,
		ExpiresAt:   s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return code, nil
}

// Verify checks the supplied code against the stored entry. A missing or
// expired entry fails with ErrCodeInvalidOrExpired. A wrong code fails with
// ErrCodeMismatch and leaves the entry in place so the caller may retry.
// On an exact match the entry is deleted, so a code verifies at most once.
// Correctness does not depend on the sweeper: expiry is checked here too.
func (s *CodeStore) Verify(phoneNumber, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phoneNumber]
	if !ok {
		return domain.ErrCodeInvalidOrExpired
	}
	if entry.Expired(s.now()) {
		delete(s.entries, phoneNumber)
		return domain.ErrCodeInvalidOrExpired
	}
	if entry.Code != code {
		return domain.ErrCodeMismatch
	}
	delete(s.entries, phoneNumber)
	return nil
}

// Stop terminates the background sweeper and waits for it to exit.
func (s *CodeStore) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *CodeStore) sweepLoop(interval time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				slog.Debug("swept expired verification codes", "removed", n)
			}
		case <-s.done:
			return
		}
	}
}

// sweep removes every expired entry and returns how many were removed.
// Purely a memory-reclamation measure.
func (s *CodeStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for number, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, number)
			removed++
		}
	}
	return removed
}
