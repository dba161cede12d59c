// Package delivery defines the contract implemented by every transport that
// exposes the application.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
