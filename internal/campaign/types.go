package campaign

import (
	"time"

	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

type CreateInput struct {
	Name              string
	StartDate         *time.Time
	EndDate           *time.Time
	TrackedKeywords   []string
	TrackedHashtags   []string
	TrackedAccountIDs []string
}

type CampaignOutput struct {
	Campaign model.Campaign
}

type GetInput struct {
	PaginateQuery paginator.PaginateQuery
}

type GetCampaignOutput struct {
	Campaigns []model.Campaign
	Paginator paginator.Paginator
}

type RefreshMetricsInput struct {
	Items []model.ContentItem
	// Now anchors status derivation and date comparisons. Zero means
	// wall-clock now.
	Now time.Time
}

type RefreshMetricsOutput struct {
	Campaigns []model.Campaign
	// MatchedByID holds the matched items per campaign id, in batch order.
	MatchedByID map[string][]model.ContentItem
}
