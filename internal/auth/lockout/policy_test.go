package lockout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Fail(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	policy := NewPolicy(5, 15*time.Minute)

	tests := []struct {
		name         string
		state        State
		wantFailed   int
		wantLocked   bool
		wantLockedAt time.Time
	}{
		{
			name:       "first failure increments",
			state:      State{},
			wantFailed: 1,
		},
		{
			name:       "fourth failure still below threshold",
			state:      State{FailedLogins: 3},
			wantFailed: 4,
		},
		{
			name:         "fifth failure arms lock and resets counter",
			state:        State{FailedLogins: 4},
			wantFailed:   0,
			wantLocked:   true,
			wantLockedAt: now.Add(15 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := policy.Fail(tt.state, now)

			assert.Equal(t, tt.wantFailed, next.FailedLogins)
			if tt.wantLocked {
				require.NotNil(t, next.LockUntil)
				assert.Equal(t, tt.wantLockedAt, *next.LockUntil)
			} else {
				assert.Nil(t, next.LockUntil)
			}
		})
	}
}

func TestPolicy_FailSequence(t *testing.T) {
	now := time.Now()
	policy := NewPolicy(5, 15*time.Minute)

	state := State{}
	for i := 0; i < 4; i++ {
		state = policy.Fail(state, now)
		assert.False(t, policy.IsLocked(state, now))
	}

	state = policy.Fail(state, now)
	assert.True(t, policy.IsLocked(state, now), "5th consecutive failure must lock")
	assert.Equal(t, 0, state.FailedLogins, "counter resets when the lock arms")
}

func TestPolicy_Succeed(t *testing.T) {
	policy := NewPolicy(5, 15*time.Minute)
	state := policy.Succeed()

	assert.Equal(t, 0, state.FailedLogins)
	assert.Nil(t, state.LockUntil)
}

func TestPolicy_IsLocked(t *testing.T) {
	now := time.Now()
	policy := NewPolicy(5, 15*time.Minute)

	future := now.Add(10 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{name: "no lock set", state: State{FailedLogins: 3}, want: false},
		{name: "lock in the future", state: State{LockUntil: &future}, want: true},
		{name: "lock elapsed", state: State{LockUntil: &past}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsLocked(tt.state, now))
		})
	}
}

func TestPolicy_LockExpiresThenUnlocked(t *testing.T) {
	now := time.Now()
	policy := NewPolicy(5, 15*time.Minute)

	state := State{FailedLogins: 4}
	state = policy.Fail(state, now)

	assert.True(t, policy.IsLocked(state, now))
	assert.True(t, policy.IsLocked(state, now.Add(14*time.Minute)))
	assert.False(t, policy.IsLocked(state, now.Add(15*time.Minute)))
}
