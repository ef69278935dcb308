package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPutGetConsume(t *testing.T) {
	s := NewStore()
	s.Put("ann@example.com", "ABC123", time.Minute)

	code, ok := s.Get("ann@example.com")
	require.True(t, ok)
	require.Equal(t, "ABC123", code)

	require.False(t, s.Consume("ann@example.com", "WRONG"))
	require.True(t, s.Consume("ann@example.com", "ABC123"))
	// one shot
	require.False(t, s.Consume("ann@example.com", "ABC123"))
	_, ok = s.Get("ann@example.com")
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	s := NewStore()
	s.Put("k", "X", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := s.Get("k")
	require.False(t, ok)
	require.False(t, s.Consume("k", "X"))
}

func TestOverwriteReplacesCode(t *testing.T) {
	s := NewStore()
	s.Put("k", "FIRST", time.Minute)
	s.Put("k", "SECOND", time.Minute)

	require.False(t, s.Consume("k", "FIRST"))
	require.True(t, s.Consume("k", "SECOND"))
}

func TestJanitorSweeps(t *testing.T) {
	s := NewStore()
	s.Put("stale", "X", 5*time.Millisecond)
	s.StartJanitor(10 * time.Millisecond)
	defer s.StopJanitor()

	time.Sleep(30 * time.Millisecond)

	s.mu.Lock()
	_, present := s.entries["stale"]
	s.mu.Unlock()
	require.False(t, present)
}
