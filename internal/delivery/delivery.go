// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a running transport (HTTP today) serving the application.
type Delivery interface {
	// Serve blocks serving requests until the context is cancelled or a
	// fatal error occurs.
	Serve(ctx context.Context) error
}
