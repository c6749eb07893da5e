// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport server, driven by the application
// lifecycle.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
