// Package notification implements the push dispatch gateway on Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"purity/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a push sender backed by Firebase Cloud Messaging
func NewFCMSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{
		client: client,
	}, nil
}

// Send delivers a push notification to a single device token. A token the
// gateway reports as permanently unregistered is surfaced as
// service.ErrTokenNotRegistered; everything else passes through with its
// original detail for the audit log.
func (s *fcmSender) Send(ctx context.Context, token, title, body string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return classifySendError(err)
	}

	return nil
}

// classifySendError maps gateway failures onto the one distinction the
// engine acts on: dead token vs everything else.
func classifySendError(err error) error {
	if messaging.IsUnregistered(err) {
		return fmt.Errorf("%w: %v", service.ErrTokenNotRegistered, err)
	}

	return fmt.Errorf("failed to send notification: %w", err)
}
