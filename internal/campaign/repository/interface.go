package repository

import (
	"context"
	"errors"

	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

// ErrNotFound is returned when no campaign matches the given id in scope.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Campaign, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Campaign, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Campaign, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope) ([]model.Campaign, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Campaign, error)
}

// CreateOptions contains options for creating a campaign.
type CreateOptions struct {
	Campaign model.Campaign
}

// UpdateOptions contains options for updating a campaign. The stored
// campaign is replaced wholesale; aggregation owns every derived field.
type UpdateOptions struct {
	Campaign model.Campaign
}

// GetOptions contains options for paginated campaign listing.
type GetOptions struct {
	PaginateQuery paginator.PaginateQuery
}
