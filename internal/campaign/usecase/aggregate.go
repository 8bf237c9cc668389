package usecase

import (
	"context"
	"math"
	"time"

	"insights-srv/internal/campaign"
	"insights-srv/internal/model"
)

// Aggregate folds the matched items into the campaign's metrics block and
// rederives the lifecycle status against now. With no matched items every
// total resets to zero and the associated id cache is cleared; the status is
// still rederived. Absent engagement counts contribute zero, and reach is
// summed over items that carry it only.
//
// The engagement rate has two regimes: with reach present it is the
// percentage of reach engaged; without reach it falls back to a raw per-post
// engagement count. The fallback is not a percentage even though downstream
// thresholds treat it like one.
func (uc *usecase) Aggregate(ctx context.Context, c *model.Campaign, matched []model.ContentItem, now time.Time) error {
	if c == nil {
		return campaign.ErrNilCampaign
	}
	if now.IsZero() {
		now = time.Now()
	}

	if len(matched) == 0 {
		c.Metrics = model.CampaignMetrics{AssociatedItemIDs: []string{}}
		c.DeriveStatus(now)
		c.UpdatedAt = now.UTC()
		return nil
	}

	m := model.CampaignMetrics{
		TotalPosts:        int64(len(matched)),
		AssociatedItemIDs: make([]string, 0, len(matched)),
	}
	for _, item := range matched {
		m.TotalLikes += item.LikeCount
		m.TotalShares += item.ShareCount
		m.TotalComments += item.CommentCount
		if item.Reach.Valid {
			m.TotalReach += item.Reach.Int64
		}
		m.AssociatedItemIDs = append(m.AssociatedItemIDs, item.ID)
	}

	engagements := m.TotalLikes + m.TotalShares + m.TotalComments
	switch {
	case m.TotalReach > 0:
		m.AvgEngagementRate = round2(float64(engagements) / float64(m.TotalReach) * 100)
	case m.TotalPosts > 0:
		m.AvgEngagementRate = round2(float64(engagements) / float64(m.TotalPosts))
	}

	c.Metrics = m
	c.DeriveStatus(now)
	c.UpdatedAt = now.UTC()
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
