package notification

import (
	"testing"

	"purity/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifySendError(t *testing.T) {
	t.Run("generic gateway failure stays transient", func(t *testing.T) {
		err := classifySendError(errors.New("deadline exceeded"))

		assert.False(t, service.IsDeadToken(err))
		assert.Contains(t, err.Error(), "deadline exceeded")
	})

	t.Run("lookalike error text is not a dead token", func(t *testing.T) {
		// messaging.IsUnregistered only matches the gateway's typed error,
		// so an arbitrary error never triggers token pruning.
		err := classifySendError(errors.New("registration-token-not-registered"))

		assert.False(t, service.IsDeadToken(err))
	})
}
