package usecase

import (
	"context"
	"fmt"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/model"
)

func (uc *usecase) EvaluateSentiment(ctx context.Context, sc model.Scope, c *model.Campaign, items []model.ContentItem) ([]model.Alert, error) {
	if c == nil {
		return nil, alerting.ErrNilCampaign
	}

	a := uc.sentimentAlert(ctx, sc, c, items, time.Now().UTC())
	if a == nil {
		return nil, nil
	}
	return []model.Alert{*a}, nil
}

// sentimentAlert judges one campaign's matched items for a negative surge.
// Stateless across calls: sustained negativity re-alerts on every cycle.
// A sample below the minimum, or an unavailable classifier, yields nothing.
func (uc *usecase) sentimentAlert(ctx context.Context, sc model.Scope, c *model.Campaign, items []model.ContentItem, now time.Time) *model.Alert {
	if uc.classifier == nil {
		uc.l.Warnf(ctx, "internal.alerting.usecase.sentimentAlert: sentiment alerts skipped, classifier unavailable")
		return nil
	}
	if len(items) < uc.th.MinSentimentSample {
		return nil
	}

	negatives := 0
	for i := range items {
		if uc.itemIsNegative(ctx, &items[i]) {
			negatives++
		}
	}
	if negatives == 0 {
		return nil
	}

	fraction := float64(negatives) / float64(len(items))
	if fraction < uc.th.NegativeRatio {
		return nil
	}

	msg := fmt.Sprintf("🚨 High negative sentiment (%.1f%%) detected for campaign '%s' based on %d/%d recent posts.",
		fraction*100, c.Name, negatives, len(items))
	a := model.NewAlert(sc.UserID, msg,
		model.AlertKindNegativeSentimentRise, model.AlertSeverityCritical,
		c.ID, model.EntityTypeCampaign, now)
	return &a
}

// itemIsNegative resolves an item's sentiment label, preferring a label the
// analysis pass already attached. Items without text never count negative.
func (uc *usecase) itemIsNegative(ctx context.Context, item *model.ContentItem) bool {
	if item.Sentiment != nil {
		return item.Sentiment.Label == model.SentimentNegative
	}
	if !item.HasText() {
		return false
	}

	s, err := uc.classifier.ClassifySentiment(ctx, item.Text)
	if err != nil {
		uc.l.Warnf(ctx, "internal.alerting.usecase.itemIsNegative: %v", err)
		return false
	}
	return s.Label == model.SentimentNegative
}
