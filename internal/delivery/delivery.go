// Package delivery defines the contract shared by every serving surface.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP server, scheduler worker)
// started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
