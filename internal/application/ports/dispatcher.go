package ports

import (
	"github.com/google/uuid"
)

// Dispatcher is the volatile fanout layer over live connections.
// Delivery is best effort and never surfaces to publishers.
type Dispatcher interface {
	Publish(channel string, userID uuid.UUID, msg []byte)
}
