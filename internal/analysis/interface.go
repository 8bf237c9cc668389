package analysis

import (
	"context"

	"insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ClassifySentiment labels a single piece of text.
	ClassifySentiment(ctx context.Context, text string) (model.Sentiment, error)

	// ExtractTopics surfaces the topN most frequent topic terms across the
	// given texts, ranked by count with first-seen order breaking ties.
	ExtractTopics(ctx context.Context, texts []string, topN int) ([]model.TopicCount, error)

	// AnalyzeItems classifies every item and extracts topics over the whole
	// batch in one pass. Returned items are copies with sentiment attached;
	// the input batch is never mutated.
	AnalyzeItems(ctx context.Context, items []model.ContentItem, topN int) (AnalyzeOutput, error)
}
