package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	memagent "github.com/memagent/memagent-go/pkg/core"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "ErrNotFound",
			err:      memagent.ErrNotFound,
			expected: "memory not found",
		},
		{
			name:     "ErrInvalidInput",
			err:      memagent.ErrInvalidInput,
			expected: "invalid input",
		},
		{
			name:     "ErrInvalidCategory",
			err:      memagent.ErrInvalidCategory,
			expected: "invalid category",
		},
		{
			name:     "ErrInvalidConfig",
			err:      memagent.ErrInvalidConfig,
			expected: "invalid configuration",
		},
		{
			name:     "ErrUnknownOperation",
			err:      memagent.ErrUnknownOperation,
			expected: "unknown operation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestMemoryError(t *testing.T) {
	originalErr := errors.New("original error")
	memErr := memagent.NewMemoryError("test_operation", originalErr)

	assert.Error(t, memErr)
	assert.Contains(t, memErr.Error(), "test_operation")
	assert.Contains(t, memErr.Error(), "original error")

	var target *memagent.MemoryError
	if errors.As(memErr, &target) {
		assert.Equal(t, "test_operation", target.Op)
		assert.Equal(t, originalErr, target.Err)
	}
}

func TestMemoryErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	memErr := memagent.NewMemoryError("test_operation", originalErr)

	unwrapped := errors.Unwrap(memErr)
	assert.Equal(t, originalErr, unwrapped)
}

func TestNewMemoryErrorNil(t *testing.T) {
	assert.Nil(t, memagent.NewMemoryError("noop", nil))
}
