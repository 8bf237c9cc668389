package usecase

import (
	"context"
	"strings"

	"insights-srv/internal/model"
)

const sentimentPunctuation = `.,!?;:"'()[]{}`

// ClassifySentiment labels text by counting lexicon hits. The score is the
// raw positive-minus-negative count, negative when the text leans negative.
// Empty text is neutral, never an error.
func (uc *usecase) ClassifySentiment(ctx context.Context, text string) (model.Sentiment, error) {
	if text == "" {
		return model.Sentiment{Label: model.SentimentNeutral}, nil
	}

	var positive, negative int
	for _, token := range strings.Fields(strings.ToLower(text)) {
		cleaned := strings.Trim(token, sentimentPunctuation)
		if _, ok := uc.positive[cleaned]; ok {
			positive++
		} else if _, ok := uc.negative[cleaned]; ok {
			negative++
		}
	}

	score := float64(positive - negative)
	switch {
	case positive > negative:
		return model.Sentiment{Label: model.SentimentPositive, Score: score}, nil
	case negative > positive:
		return model.Sentiment{Label: model.SentimentNegative, Score: score}, nil
	default:
		return model.Sentiment{Label: model.SentimentNeutral}, nil
	}
}
