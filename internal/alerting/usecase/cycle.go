package usecase

import (
	"context"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/alerting/repository"
	"insights-srv/internal/model"
)

// RunCycle runs every signal over one evaluation batch: trends first, then
// campaign performance, then sentiment per active campaign, all under one
// tracker lock. The resulting alerts are persisted, dispatched and counted.
// No deduplication happens across cycles: a condition that persists alerts
// again on the next cycle, and callers wanting suppression must filter by
// related entity, kind and recency themselves.
func (uc *usecase) RunCycle(ctx context.Context, sc model.Scope, ip alerting.CycleInput) (alerting.CycleOutput, error) {
	now := ip.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	start := time.Now()

	tr := uc.trackerFor(sc.UserID)
	tr.mu.Lock()

	alerts := make([]model.Alert, 0)

	trendAlerts := uc.trendAlerts(sc, tr, ip.TopicCounts, now)
	alerts = append(alerts, trendAlerts...)

	perfAlerts := uc.performanceAlerts(sc, tr, ip.Campaigns, now)
	alerts = append(alerts, perfAlerts...)

	var sentimentAlerts []model.Alert
	for i := range ip.Campaigns {
		c := &ip.Campaigns[i]
		if !c.IsActive() {
			continue
		}
		items, ok := ip.ItemsByCampaign[c.ID]
		if !ok {
			continue
		}
		if a := uc.sentimentAlert(ctx, sc, c, items, now); a != nil {
			sentimentAlerts = append(sentimentAlerts, *a)
		}
	}
	alerts = append(alerts, sentimentAlerts...)

	tr.mu.Unlock()

	if n := len(trendAlerts); n > 0 {
		uc.l.Infof(ctx, "internal.alerting.usecase.RunCycle: generated %d trend alerts", n)
	}
	if n := len(perfAlerts); n > 0 {
		uc.l.Infof(ctx, "internal.alerting.usecase.RunCycle: generated %d campaign performance alerts", n)
	}
	if n := len(sentimentAlerts); n > 0 {
		uc.l.Infof(ctx, "internal.alerting.usecase.RunCycle: generated %d sentiment alerts", n)
	}

	if err := uc.repo.Save(ctx, sc, repository.SaveOptions{Alerts: alerts}); err != nil {
		uc.l.Errorf(ctx, "internal.alerting.usecase.RunCycle: %v", err)
		return alerting.CycleOutput{}, err
	}

	if uc.notifier != nil && len(alerts) > 0 {
		if err := uc.notifier.DispatchBatch(ctx, alerts); err != nil {
			uc.l.Warnf(ctx, "internal.alerting.usecase.RunCycle: dispatch: %v", err)
		}
	}

	for _, a := range alerts {
		uc.metrics.AlertGenerated(a.Kind.String(), a.Severity.String())
	}
	uc.metrics.ObserveEvaluationCycle(time.Since(start))

	uc.l.Infof(ctx, "internal.alerting.usecase.RunCycle: total new alerts generated: %d", len(alerts))
	return alerting.CycleOutput{Alerts: alerts}, nil
}
