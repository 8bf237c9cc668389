package campaign

import (
	"context"
	"time"

	"insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (CampaignOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (CampaignOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetCampaignOutput, error)

	// Match decides which of the given items count toward the campaign.
	// Pure with respect to the campaign: no mutation, no I/O.
	Match(ctx context.Context, c *model.Campaign, items []model.ContentItem) ([]model.ContentItem, error)

	// Aggregate folds a matched item set into the campaign's metrics block
	// and rederives its lifecycle status. Mutates the campaign in place.
	Aggregate(ctx context.Context, c *model.Campaign, matched []model.ContentItem, now time.Time) error

	// RefreshMetrics runs Match and Aggregate over every campaign in the
	// caller's scope for one content batch and persists the updated
	// campaigns.
	RefreshMetrics(ctx context.Context, sc model.Scope, ip RefreshMetricsInput) (RefreshMetricsOutput, error)
}
