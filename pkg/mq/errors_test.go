package mq

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporaryMarksErrorRetryable(t *testing.T) {
	cause := errors.New("db unavailable")
	err := Temporary(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.True(t, shouldRequeue(err))
}

func TestShouldRequeueWrappedTemporary(t *testing.T) {
	err := fmt.Errorf("handle message: %w", Temporary(errors.New("db unavailable")))

	assert.True(t, shouldRequeue(err))
}

func TestShouldRequeuePermanentError(t *testing.T) {
	assert.False(t, shouldRequeue(errors.New("malformed payload")))
}
