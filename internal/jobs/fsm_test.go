package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/common"
)

func TestLifecycleTransitions(t *testing.T) {
	tests := []struct {
		name  string
		state constants.JobStatus
		event Event
		want  constants.JobStatus
	}{
		{"claim queued", constants.JobStatusQueued, EventClaim, constants.JobStatusProcessing},
		{"succeed processing", constants.JobStatusProcessing, EventSucceed, constants.JobStatusCompleted},
		{"retry processing", constants.JobStatusProcessing, EventRetry, constants.JobStatusRetryScheduled},
		{"exhaust processing", constants.JobStatusProcessing, EventExhaust, constants.JobStatusFailed},
		{"requeue scheduled", constants.JobStatusRetryScheduled, EventRequeue, constants.JobStatusQueued},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.state, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalStatesRejectAllEvents(t *testing.T) {
	events := []Event{EventClaim, EventSucceed, EventRetry, EventExhaust, EventRequeue}
	for _, state := range []constants.JobStatus{constants.JobStatusCompleted, constants.JobStatusFailed} {
		for _, ev := range events {
			_, err := Next(state, ev)
			require.Error(t, err, "%s + %s", state, ev)
			assert.ErrorIs(t, err, common.ErrTerminalState)
			assert.False(t, CanApply(state, ev))
		}
	}
}

func TestIllegalNonTerminalTransitions(t *testing.T) {
	tests := []struct {
		state constants.JobStatus
		event Event
	}{
		{constants.JobStatusQueued, EventSucceed},
		{constants.JobStatusQueued, EventRetry},
		{constants.JobStatusQueued, EventRequeue},
		{constants.JobStatusProcessing, EventClaim},
		{constants.JobStatusProcessing, EventRequeue},
		{constants.JobStatusRetryScheduled, EventClaim},
		{constants.JobStatusRetryScheduled, EventSucceed},
	}
	for _, tt := range tests {
		_, err := Next(tt.state, tt.event)
		require.Error(t, err, "%s + %s", tt.state, tt.event)
		assert.NotErrorIs(t, err, common.ErrTerminalState)
	}
}
