// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations block
// in Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
