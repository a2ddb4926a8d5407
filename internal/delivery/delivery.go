// Package delivery defines the entry points through which the application is served.
package delivery

import "context"

// Delivery is a serving surface of the application, started once from main.
type Delivery interface {
	Serve(ctx context.Context) error
}
