// Package service defines interfaces for external collaborators of the
// domain, such as the push messaging gateway.
package service

import (
	"context"
	"errors"
)

// ErrTokenNotRegistered is returned by a PushSender when the messaging
// gateway reports the device token as permanently unregistered. It is the
// only dispatch failure the engine reacts to structurally; everything else
// is carried as opaque detail into the audit log.
var ErrTokenNotRegistered = errors.New("device token is not registered")

// PushSender defines the interface for delivering a push notification to a
// single device token.
type PushSender interface {
	// Send delivers a notification to one device token. A dead token is
	// reported by wrapping ErrTokenNotRegistered; any other error is a
	// transient or unclassified gateway failure.
	Send(ctx context.Context, token, title, body string) error
}

// IsDeadToken reports whether a dispatch error means the token must be
// pruned from the customer record.
func IsDeadToken(err error) bool {
	return errors.Is(err, ErrTokenNotRegistered)
}
