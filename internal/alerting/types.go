package alerting

import (
	"time"

	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

// Default signal thresholds. Overridable through config per deployment.
const (
	DefaultTrendVolumeThreshold   = 100
	DefaultTrendVelocityThreshold = 50
	DefaultEngagementSpikePct     = 30.0
	DefaultEngagementDropPct      = -20.0
	DefaultNegativeRatio          = 0.6
	DefaultMinSentimentSample     = 10
)

// Thresholds tunes every alert signal.
type Thresholds struct {
	// TrendVolume is the minimum mention count before a trend is significant.
	TrendVolume int
	// TrendVelocity is the minimum mention increase for a growth alert.
	TrendVelocity int
	// EngagementSpikePct is the percentage change at or above which a
	// campaign's engagement counts as a spike.
	EngagementSpikePct float64
	// EngagementDropPct is the percentage change at or below which a
	// campaign's engagement counts as a drop. Always negative.
	EngagementDropPct float64
	// NegativeRatio is the fraction of negative posts that triggers a
	// sentiment surge alert.
	NegativeRatio float64
	// MinSentimentSample is the minimum number of posts before sentiment
	// for a campaign is judged at all.
	MinSentimentSample int
}

// DefaultThresholds returns the stock tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TrendVolume:        DefaultTrendVolumeThreshold,
		TrendVelocity:      DefaultTrendVelocityThreshold,
		EngagementSpikePct: DefaultEngagementSpikePct,
		EngagementDropPct:  DefaultEngagementDropPct,
		NegativeRatio:      DefaultNegativeRatio,
		MinSentimentSample: DefaultMinSentimentSample,
	}
}

// Adjust replaces unusable field values with the defaults.
func (t *Thresholds) Adjust() {
	if t.TrendVolume <= 0 {
		t.TrendVolume = DefaultTrendVolumeThreshold
	}
	if t.TrendVelocity <= 0 {
		t.TrendVelocity = DefaultTrendVelocityThreshold
	}
	if t.EngagementSpikePct <= 0 {
		t.EngagementSpikePct = DefaultEngagementSpikePct
	}
	if t.EngagementDropPct >= 0 {
		t.EngagementDropPct = DefaultEngagementDropPct
	}
	if t.NegativeRatio <= 0 || t.NegativeRatio > 1 {
		t.NegativeRatio = DefaultNegativeRatio
	}
	if t.MinSentimentSample <= 0 {
		t.MinSentimentSample = DefaultMinSentimentSample
	}
}

// TrendObservation is the last recorded sighting of one topic term.
type TrendObservation struct {
	LastVolume     int
	LastObservedAt time.Time
}

// CampaignObservation is the last recorded performance of one campaign.
type CampaignObservation struct {
	LastEngagementRate float64
	LastLikeTotal      int64
	LastObservedAt     time.Time
}

// CycleInput carries one evaluation batch through every signal.
type CycleInput struct {
	Campaigns   []model.Campaign
	TopicCounts []model.TopicCount
	// ItemsByCampaign maps campaign id to the items matched to it this
	// cycle, already carrying sentiment where analysis ran.
	ItemsByCampaign map[string][]model.ContentItem
	// Now anchors alert timestamps. Zero means wall clock.
	Now time.Time
}

// CycleOutput reports every alert one cycle produced, in emission order.
type CycleOutput struct {
	Alerts []model.Alert
}

// GetInput contains the input for listing alerts.
type GetInput struct {
	PaginateQuery paginator.PaginateQuery
}

// GetAlertOutput contains one page of alerts, newest first.
type GetAlertOutput struct {
	Alerts    []model.Alert
	Paginator paginator.Paginator
}
