package service

import (
	"sync"
	"time"
)

// Conversation steps. Only the withdrawal flow is multi-step today.
const StepWithdrawDetails = "withdraw_details"

// Session is the transient per-user conversation state: which step the user
// is on and, for withdrawals, the payout method they picked.
type Session struct {
	Step   string
	Method string
}

type sessionEntry struct {
	session   Session
	expiresAt time.Time
}

// SessionService keeps per-user conversation state in memory with TTL
// expiry, so abandoned flows do not accumulate forever. Entries for
// different users are independent; the map is guarded by a single mutex.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[int64]*sessionEntry
	ttl      time.Duration
}

// NewSessionService creates a session store. Entries older than ttl are
// treated as absent and swept by a background janitor.
func NewSessionService(ttl time.Duration) *SessionService {
	ss := &SessionService{
		sessions: make(map[int64]*sessionEntry),
		ttl:      ttl,
	}

	go ss.cleanup()

	return ss
}

// Get returns the user's session, if any and not expired.
func (ss *SessionService) Get(userID int64) (Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	entry, exists := ss.sessions[userID]
	if !exists {
		return Session{}, false
	}

	if time.Now().After(entry.expiresAt) {
		// Don't delete here, let the janitor handle it
		return Session{}, false
	}

	return entry.session, true
}

// Set stores the user's session, restarting its TTL.
func (ss *SessionService) Set(userID int64, s Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessions[userID] = &sessionEntry{
		session:   s,
		expiresAt: time.Now().Add(ss.ttl),
	}
}

// Clear drops the user's session.
func (ss *SessionService) Clear(userID int64) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	delete(ss.sessions, userID)
}

// cleanup removes expired entries periodically.
func (ss *SessionService) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ss.mu.Lock()
		now := time.Now()
		for userID, entry := range ss.sessions {
			if now.After(entry.expiresAt) {
				delete(ss.sessions, userID)
			}
		}
		ss.mu.Unlock()
	}
}
