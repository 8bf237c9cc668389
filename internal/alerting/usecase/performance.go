package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/model"
)

func (uc *usecase) EvaluatePerformance(ctx context.Context, sc model.Scope, campaigns []model.Campaign) ([]model.Alert, error) {
	tr := uc.trackerFor(sc.UserID)
	tr.mu.Lock()
	defer tr.mu.Unlock()

	return uc.performanceAlerts(sc, tr, campaigns, time.Now().UTC()), nil
}

// performanceAlerts compares each active campaign's engagement rate against
// its last observation. The first sighting only records a baseline. The
// observation is updated unconditionally, alert or not. Caller holds the
// tracker lock.
func (uc *usecase) performanceAlerts(sc model.Scope, tr *tracker, campaigns []model.Campaign, now time.Time) []model.Alert {
	var alerts []model.Alert

	for i := range campaigns {
		c := &campaigns[i]
		if !c.IsActive() {
			continue
		}

		cur := c.Metrics.AvgEngagementRate

		if obs, seen := tr.campaigns[c.ID]; seen {
			var pct float64
			switch {
			case obs.LastEngagementRate != 0:
				pct = (cur - obs.LastEngagementRate) / math.Abs(obs.LastEngagementRate) * 100
			case cur > 0:
				// No meaningful ratio from a zero baseline. Anything
				// above zero counts as a spike.
				pct = uc.th.EngagementSpikePct + 1
			}

			switch {
			case pct >= uc.th.EngagementSpikePct:
				msg := fmt.Sprintf("🎉 Campaign '%s' engagement spiked by %.1f%%! Current rate: %.2f%%.", c.Name, pct, cur)
				alerts = append(alerts, model.NewAlert(sc.UserID, msg,
					model.AlertKindCampaignPerformance, model.AlertSeverityWarning,
					c.ID, model.EntityTypeCampaign, now))
			case pct <= uc.th.EngagementDropPct:
				msg := fmt.Sprintf("⚠️ Campaign '%s' engagement dropped by %.1f%%! Current rate: %.2f%%.", c.Name, math.Abs(pct), cur)
				alerts = append(alerts, model.NewAlert(sc.UserID, msg,
					model.AlertKindCampaignPerformance, model.AlertSeverityCritical,
					c.ID, model.EntityTypeCampaign, now))
			}
		}

		tr.campaigns[c.ID] = alerting.CampaignObservation{
			LastEngagementRate: cur,
			LastLikeTotal:      c.Metrics.TotalLikes,
			LastObservedAt:     now,
		}
	}

	return alerts
}
