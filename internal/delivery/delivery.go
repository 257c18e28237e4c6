// Package delivery defines the contract shared by every inbound adapter.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP API, worker, scheduler).
// Serve blocks until the adapter stops; shutdown is driven by fx OnStop hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
