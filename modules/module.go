package modules

import (
	"context"

	"kursbot/commontypes"
)

// Module defines the interface every message-handling module implements.
// A module inspects an incoming message and returns zero or more replies;
// an empty slice means the module has nothing to say.
type Module interface {
	Name() string
	HandleMessage(ctx context.Context, msg commontypes.Message) ([]commontypes.Reply, error)
}
