package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from, to JobStatus
		allowed  bool
	}{
		{JobPending, JobRunning, true},
		{JobRunning, JobFinished, true},
		{JobRunning, JobFailed, true},
		{JobPending, JobFailed, true},
		{JobPending, JobFinished, false},
		{JobRunning, JobRunning, false},
		{JobFinished, JobRunning, false},
		{JobFinished, JobFailed, false},
		{JobFailed, JobPending, false},
		{JobFailed, JobFinished, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestJobStatus_Terminal(t *testing.T) {
	assert.False(t, JobPending.Terminal())
	assert.False(t, JobRunning.Terminal())
	assert.True(t, JobFinished.Terminal())
	assert.True(t, JobFailed.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("Active").Valid())
	assert.False(t, Status("").Valid())
}
