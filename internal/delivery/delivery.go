// Package delivery defines the contract every transport-facing server
// implements, so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
