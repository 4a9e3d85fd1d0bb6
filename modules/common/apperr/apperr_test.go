package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndKindOf(t *testing.T) {
	err := New(KindMissingInput, "script missing for job %s", "job_1")
	assert.Equal(t, KindMissingInput, KindOf(err))
	assert.Contains(t, err.Error(), "script missing for job job_1")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindSynthesisFailed, cause, "tts call failed")

	assert.Equal(t, KindSynthesisFailed, KindOf(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "tts call failed")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindOfSurvivesFurtherWrapping(t *testing.T) {
	err := New(KindTimeout, "deadline exceeded")
	wrapped := fmt.Errorf("processing job: %w", err)

	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindTimeout))
	assert.False(t, IsKind(wrapped, KindRenderFailed))
}

func TestKindOfPlainError(t *testing.T) {
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
}
