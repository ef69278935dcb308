// Package otp is a small in-process store for one-time codes with per-entry
// expiry. It is injected where needed rather than living as a global.
package otp

import (
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	stop    chan struct{}
}

func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

func (s *Store) Put(key, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{code: code, expiresAt: time.Now().Add(ttl)}
}

// Get lazily expires on read, so the store is correct even without a janitor.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.code, true
}

// Consume checks the code and removes the entry on match. One shot.
func (s *Store) Consume(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return false
	}
	if e.code != code {
		return false
	}
	delete(s.entries, key)
	return true
}

// StartJanitor sweeps expired entries so abandoned codes don't pile up.
func (s *Store) StartJanitor(interval time.Duration) {
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				now := time.Now()
				s.mu.Lock()
				for k, e := range s.entries {
					if now.After(e.expiresAt) {
						delete(s.entries, k)
					}
				}
				s.mu.Unlock()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) StopJanitor() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
