package usecase

import (
	"context"

	"insights-srv/internal/analysis"
	"insights-srv/internal/model"
)

// AnalyzeItems classifies every item and extracts topics over the batch.
// Items without text get a neutral label so downstream tallies never count
// them as negative.
func (uc *usecase) AnalyzeItems(ctx context.Context, items []model.ContentItem, topN int) (analysis.AnalyzeOutput, error) {
	out := analysis.AnalyzeOutput{
		Items:  make([]model.ContentItem, 0, len(items)),
		Topics: []model.TopicCount{},
	}

	texts := make([]string, 0, len(items))
	for _, it := range items {
		labeled := it
		if it.HasText() {
			texts = append(texts, it.Text)
			sentiment, err := uc.ClassifySentiment(ctx, it.Text)
			if err != nil {
				uc.l.Errorf(ctx, "internal.analysis.usecase.AnalyzeItems: %v", err)
				return analysis.AnalyzeOutput{}, err
			}
			labeled.Sentiment = &sentiment
		} else {
			labeled.Sentiment = &model.Sentiment{Label: model.SentimentNeutral}
		}
		out.Items = append(out.Items, labeled)
	}

	if len(texts) > 0 {
		topics, err := uc.ExtractTopics(ctx, texts, topN)
		if err != nil {
			uc.l.Errorf(ctx, "internal.analysis.usecase.AnalyzeItems: %v", err)
			return analysis.AnalyzeOutput{}, err
		}
		out.Topics = topics
	}

	return out, nil
}
