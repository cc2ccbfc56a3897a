package otp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	s := NewStore(ttl)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestVerifyUnknownEmail(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	err := s.Verify("nobody@example.com", "123456")
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyConsumesCode(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "042137")

	require.NoError(t, s.Verify("a@example.com", "042137"))

	// single use: second attempt with the same code finds nothing
	err := s.Verify("a@example.com", "042137")
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyExpiredPurgesRecord(t *testing.T) {
	s, now := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "111111")
	*now = now.Add(10*time.Minute + time.Second)

	err := s.Verify("a@example.com", "111111")
	require.ErrorIs(t, err, ErrCodeExpired)

	err = s.Verify("a@example.com", "111111")
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyAtExactExpiryStillValid(t *testing.T) {
	s, now := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "111111")
	*now = now.Add(10 * time.Minute)

	require.NoError(t, s.Verify("a@example.com", "111111"))
}

func TestMismatchKeepsRecord(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "222222")

	err := s.Verify("a@example.com", "999999")
	require.ErrorIs(t, err, ErrCodeMismatch)

	// retry with the right code still works
	require.NoError(t, s.Verify("a@example.com", "222222"))
}

func TestReissueOverwrites(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "111111")
	s.Put("a@example.com", "222222")

	err := s.Verify("a@example.com", "111111")
	require.ErrorIs(t, err, ErrCodeMismatch)

	require.NoError(t, s.Verify("a@example.com", "222222"))
	require.Equal(t, 0, s.Len())
}

func TestDeleteVoidsCode(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	s.Put("a@example.com", "333333")
	s.Delete("a@example.com")

	err := s.Verify("a@example.com", "333333")
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestEmailsAreCaseSensitiveKeys(t *testing.T) {
	s, _ := newTestStore(10 * time.Minute)

	s.Put("A@example.com", "444444")

	err := s.Verify("a@example.com", "444444")
	require.ErrorIs(t, err, ErrCodeNotFound)
	require.NoError(t, s.Verify("A@example.com", "444444"))
}

func TestSweepDropsOnlyExpired(t *testing.T) {
	s, now := newTestStore(10 * time.Minute)

	s.Put("old@example.com", "111111")
	*now = now.Add(6 * time.Minute)
	s.Put("fresh@example.com", "222222")
	*now = now.Add(5 * time.Minute)

	s.Sweep()

	require.Equal(t, 1, s.Len())
	require.NoError(t, s.Verify("fresh@example.com", "222222"))
}

func TestConcurrentIssueAndVerify(t *testing.T) {
	s := NewStore(10 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		email := string(rune('a'+i%26)) + "@example.com"
		go func() {
			defer wg.Done()
			s.Put(email, "123456")
		}()
		go func() {
			defer wg.Done()
			_ = s.Verify(email, "123456")
		}()
	}
	wg.Wait()
}

func TestDoubleConsumptionRace(t *testing.T) {
	s := NewStore(10 * time.Minute)
	s.Put("race@example.com", "123456")

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Verify("race@example.com", "123456")
		}()
	}
	wg.Wait()
	close(results)

	// exactly one goroutine may consume the code
	var successes, notFound int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrCodeNotFound)
			notFound++
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, notFound)
}
