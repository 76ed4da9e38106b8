package log

import (
	"testing"

	"github.com/dosvm/i8086/assert"
)

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.Equal(t, DebugLevel, logger.level.Level())
}
