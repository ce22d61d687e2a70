package lockout

import "time"

// State is the lockout portion of an identity: how many consecutive failed
// logins it has accumulated and, if set, until when new attempts are rejected.
type State struct {
	FailedLogins int
	LockUntil    *time.Time
}

// Policy decides lock transitions. It holds no mutable state and is safe to
// share across requests.
type Policy struct {
	MaxAttempts int
	LockWindow  time.Duration
}

func NewPolicy(maxAttempts int, lockWindow time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, LockWindow: lockWindow}
}

// Fail returns the state after one more failed attempt. Reaching MaxAttempts
// arms the lock and resets the counter, so the window restarts cleanly after
// the lock elapses.
func (p Policy) Fail(s State, now time.Time) State {
	s.FailedLogins++
	if s.FailedLogins >= p.MaxAttempts {
		until := now.Add(p.LockWindow)
		return State{FailedLogins: 0, LockUntil: &until}
	}
	return s
}

// Succeed returns the state after a successful login: counter cleared, lock
// disarmed.
func (p Policy) Succeed() State {
	return State{}
}

// IsLocked reports whether attempts must be rejected at the given instant,
// regardless of credential correctness.
func (p Policy) IsLocked(s State, now time.Time) bool {
	return s.LockUntil != nil && now.Before(*s.LockUntil)
}
