package offer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOffer(expiresIn time.Duration) *Offer {
	now := time.Now()
	return &Offer{
		Status:    StatusPending,
		OfferedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestAcceptWithinWindow(t *testing.T) {
	o := pendingOffer(time.Hour)

	require.NoError(t, o.Accept("I accept"))

	assert.Equal(t, StatusAccepted, o.Status)
	require.NotNil(t, o.ResponseMessage)
	assert.Equal(t, "I accept", *o.ResponseMessage)
	assert.NotNil(t, o.ResponseAt)
}

func TestRejectWithinWindow(t *testing.T) {
	o := pendingOffer(time.Hour)

	require.NoError(t, o.Reject(""))

	assert.Equal(t, StatusRejected, o.Status)
	assert.Nil(t, o.ResponseMessage)
}

func TestRespondAfterExpiryFails(t *testing.T) {
	o := pendingOffer(-time.Minute)

	assert.Error(t, o.Accept("too late"))
	assert.Error(t, o.Reject("too late"))
	assert.Equal(t, StatusPending, o.Status)
}

func TestRespondTwiceFails(t *testing.T) {
	o := pendingOffer(time.Hour)
	require.NoError(t, o.Accept("yes"))

	assert.Error(t, o.Reject("actually no"))
	assert.Equal(t, StatusAccepted, o.Status)
}

func TestIsExpiredAt(t *testing.T) {
	now := time.Now()

	fresh := pendingOffer(time.Hour)
	assert.False(t, fresh.IsExpiredAt(now))

	overdue := pendingOffer(-time.Minute)
	assert.True(t, overdue.IsExpiredAt(now))

	// Responded offers never count as expired
	responded := pendingOffer(-time.Minute)
	responded.Status = StatusAccepted
	assert.False(t, responded.IsExpiredAt(now))
}

func TestTimeRemaining(t *testing.T) {
	o := pendingOffer(time.Hour)
	now := time.Now()

	remaining := o.TimeRemaining(now)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)

	assert.Equal(t, time.Duration(0), pendingOffer(-time.Minute).TimeRemaining(now))

	accepted := pendingOffer(time.Hour)
	accepted.Status = StatusAccepted
	assert.Equal(t, time.Duration(0), accepted.TimeRemaining(now))
}

func TestMarkExpired(t *testing.T) {
	o := pendingOffer(-time.Minute)

	require.NoError(t, o.MarkExpired(time.Now()))
	assert.Equal(t, StatusExpired, o.Status)

	assert.Error(t, o.MarkExpired(time.Now()))
}
