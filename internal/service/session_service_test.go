package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

func TestSessionService_SetGetClear(t *testing.T) {
	ss := NewSessionService(time.Minute)

	_, ok := ss.Get(1)
	assert.False(t, ok)

	ss.Set(1, Session{Step: StepWithdrawDetails, Method: models.MethodUPI})

	s, ok := ss.Get(1)
	require.True(t, ok)
	assert.Equal(t, StepWithdrawDetails, s.Step)
	assert.Equal(t, models.MethodUPI, s.Method)

	// Sessions are per-user.
	_, ok = ss.Get(2)
	assert.False(t, ok)

	ss.Clear(1)
	_, ok = ss.Get(1)
	assert.False(t, ok)
}

func TestSessionService_Expiry(t *testing.T) {
	ss := NewSessionService(20 * time.Millisecond)

	ss.Set(1, Session{Step: StepWithdrawDetails, Method: models.MethodBank})

	_, ok := ss.Get(1)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = ss.Get(1)
	assert.False(t, ok)
}

func TestSessionService_SetRestartsTTL(t *testing.T) {
	ss := NewSessionService(40 * time.Millisecond)

	ss.Set(1, Session{Step: StepWithdrawDetails, Method: models.MethodPaytm})
	time.Sleep(25 * time.Millisecond)
	ss.Set(1, Session{Step: StepWithdrawDetails, Method: models.MethodPaytm})
	time.Sleep(25 * time.Millisecond)

	_, ok := ss.Get(1)
	assert.True(t, ok)
}
