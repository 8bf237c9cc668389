package notify

import (
	"context"

	"insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// DispatchAlert fans one alert out to every configured sink. Delivery is
	// best effort: sink failures are logged and absorbed.
	DispatchAlert(ctx context.Context, alert model.Alert) error

	// DispatchBatch dispatches a batch of alerts in order.
	DispatchBatch(ctx context.Context, alerts []model.Alert) error
}

// UserStream pushes payloads to a user's live connections. Satisfied by the
// websocket hub.
type UserStream interface {
	SendToUser(userID string, message []byte)
}
