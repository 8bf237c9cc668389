package alerting

import (
	"context"

	"insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// EvaluateTrends compares each topic count against the scope's last
	// observation and emits new-trend and velocity alerts. The baseline
	// always advances, so an unchanged count never re-alerts.
	EvaluateTrends(ctx context.Context, sc model.Scope, counts []model.TopicCount) ([]model.Alert, error)

	// EvaluatePerformance compares each active campaign's engagement rate
	// against the scope's last observation and emits spike and drop alerts.
	EvaluatePerformance(ctx context.Context, sc model.Scope, campaigns []model.Campaign) ([]model.Alert, error)

	// EvaluateSentiment inspects one campaign's matched items for a negative
	// surge. Stateless: sustained negativity re-alerts on every call.
	EvaluateSentiment(ctx context.Context, sc model.Scope, c *model.Campaign, items []model.ContentItem) ([]model.Alert, error)

	// RunCycle runs every signal over one evaluation batch, persists the
	// resulting alerts and hands them to the dispatcher. Alerts are ordered
	// trend first, then performance, then sentiment.
	RunCycle(ctx context.Context, sc model.Scope, ip CycleInput) (CycleOutput, error)

	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetAlertOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error)
}

// SentimentClassifier is the facet of the analysis service the sentiment
// signal needs. A nil classifier disables sentiment alerts for items that
// carry no pre-attached label.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (model.Sentiment, error)
}
