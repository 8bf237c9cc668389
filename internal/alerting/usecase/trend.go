package usecase

import (
	"context"
	"fmt"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/model"
)

func (uc *usecase) EvaluateTrends(ctx context.Context, sc model.Scope, counts []model.TopicCount) ([]model.Alert, error) {
	tr := uc.trackerFor(sc.UserID)
	tr.mu.Lock()
	defer tr.mu.Unlock()

	return uc.trendAlerts(sc, tr, counts, time.Now().UTC()), nil
}

// trendAlerts compares every term against its last observation. The
// observation always advances to the latest count, alert or not, so an
// unchanged count can never re-alert. Caller holds the tracker lock.
func (uc *usecase) trendAlerts(sc model.Scope, tr *tracker, counts []model.TopicCount, now time.Time) []model.Alert {
	var alerts []model.Alert

	for _, tc := range counts {
		if tc.Term == "" {
			continue
		}

		obs, seen := tr.trends[tc.Term]
		if !seen {
			if tc.Count >= uc.th.TrendVolume {
				msg := fmt.Sprintf("🚀 New significant trend detected: '%s' with %d mentions.", tc.Term, tc.Count)
				alerts = append(alerts, model.NewAlert(sc.UserID, msg,
					model.AlertKindNewTrend, model.AlertSeverityInfo,
					tc.Term, model.EntityTypeTrend, now))
			}
		} else {
			delta := tc.Count - obs.LastVolume
			if delta >= uc.th.TrendVelocity && tc.Count >= uc.th.TrendVolume {
				msg := fmt.Sprintf("📈 Trend '%s' is growing rapidly! Now at %d mentions (up by %d).", tc.Term, tc.Count, delta)
				alerts = append(alerts, model.NewAlert(sc.UserID, msg,
					model.AlertKindTrendVelocitySpike, model.AlertSeverityWarning,
					tc.Term, model.EntityTypeTrend, now))
			}
		}

		tr.trends[tc.Term] = alerting.TrendObservation{
			LastVolume:     tc.Count,
			LastObservedAt: now,
		}
	}

	return alerts
}
