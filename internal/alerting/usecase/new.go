package usecase

import (
	"sync"

	"insights-srv/internal/alerting"
	"insights-srv/internal/alerting/repository"
	"insights-srv/internal/notify"
	pkgLog "insights-srv/pkg/log"
	"insights-srv/pkg/monitoring"
)

// tracker holds one scope's signal baselines. Each tracker has its own
// mutex so evaluation cycles for different scopes never contend.
type tracker struct {
	mu        sync.Mutex
	trends    map[string]alerting.TrendObservation
	campaigns map[string]alerting.CampaignObservation
}

func newTracker() *tracker {
	return &tracker{
		trends:    make(map[string]alerting.TrendObservation),
		campaigns: make(map[string]alerting.CampaignObservation),
	}
}

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	classifier alerting.SentimentClassifier
	notifier   notify.UseCase
	metrics    *monitoring.MetricsCollector
	th         alerting.Thresholds

	mu       sync.Mutex
	trackers map[string]*tracker
}

// New builds the alerting service. classifier, notifier and metrics may be
// nil: a nil classifier disables sentiment alerts, a nil notifier skips
// dispatch, a nil metrics collector records nothing.
func New(l pkgLog.Logger, repo repository.Repository, classifier alerting.SentimentClassifier, notifier notify.UseCase, metrics *monitoring.MetricsCollector, th alerting.Thresholds) alerting.UseCase {
	th.Adjust()
	return &usecase{
		l:          l,
		repo:       repo,
		classifier: classifier,
		notifier:   notifier,
		metrics:    metrics,
		th:         th,
		trackers:   make(map[string]*tracker),
	}
}

// trackerFor returns the scope's tracker, creating it on first use.
func (uc *usecase) trackerFor(userID string) *tracker {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tr, ok := uc.trackers[userID]
	if !ok {
		tr = newTracker()
		uc.trackers[userID] = tr
	}
	return tr
}
