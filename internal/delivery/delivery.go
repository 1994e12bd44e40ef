package delivery

import "context"

// Delivery is a serving surface owned by the application root. Each
// implementation blocks in Serve until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
