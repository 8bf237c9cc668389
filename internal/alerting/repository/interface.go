package repository

import (
	"context"
	"errors"
	"time"

	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

// ErrNotFound is returned when no alert matches the given id in scope.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Save(ctx context.Context, sc model.Scope, opts SaveOptions) error
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Alert, paginator.Paginator, error)
	MarkRead(ctx context.Context, sc model.Scope, opts MarkReadOptions) (model.Alert, error)
}

// SaveOptions contains options for storing a batch of new alerts.
type SaveOptions struct {
	Alerts []model.Alert
}

// GetOptions contains options for paginated alert listing, newest first.
type GetOptions struct {
	PaginateQuery paginator.PaginateQuery
}

// MarkReadOptions contains options for flagging one alert as read.
type MarkReadOptions struct {
	ID  string
	Now time.Time
}
