// Package delivery holds the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound server started by main and stopped by its fx hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
