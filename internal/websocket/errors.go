package websocket

import "errors"

var (
	// ErrMissingUser is returned when an upgrade request carries no user
	// identity.
	ErrMissingUser = errors.New("missing user identity")
)
