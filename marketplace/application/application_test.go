package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptPendingApplication(t *testing.T) {
	a := &Application{Status: StatusPending}

	require.NoError(t, a.Accept("Start Monday"))

	assert.Equal(t, StatusAccepted, a.Status)
	require.NotNil(t, a.ResponseMessage)
	assert.Equal(t, "Start Monday", *a.ResponseMessage)
	assert.NotNil(t, a.ResponseAt)
}

func TestRejectPendingApplication(t *testing.T) {
	a := &Application{Status: StatusPending}

	require.NoError(t, a.Reject(""))

	assert.Equal(t, StatusRejected, a.Status)
	assert.Nil(t, a.ResponseMessage)
	assert.NotNil(t, a.ResponseAt)
}

func TestRespondingTwiceFails(t *testing.T) {
	a := &Application{Status: StatusPending}
	require.NoError(t, a.Accept("welcome"))

	assert.Error(t, a.Accept("again"))
	assert.Error(t, a.Reject("changed my mind"))
	assert.Equal(t, StatusAccepted, a.Status)
}

func TestIsPending(t *testing.T) {
	assert.True(t, (&Application{Status: StatusPending}).IsPending())
	assert.False(t, (&Application{Status: StatusAccepted}).IsPending())
	assert.False(t, (&Application{Status: StatusRejected}).IsPending())
}
