package collector

import (
	"context"

	"insights-srv/internal/model"
	pkgLog "insights-srv/pkg/log"
)

// Manager routes fetches across the registered platform collectors.
// Registration happens once at construction; the registry is read-only
// afterwards, so concurrent fetches need no locking here.
type Manager struct {
	l          pkgLog.Logger
	collectors map[string]Collector
	order      []string
}

// NewManager registers the given collectors keyed by platform. Nil entries
// are skipped, so callers can pass the result of a failed constructor
// straight through.
func NewManager(l pkgLog.Logger, collectors ...Collector) *Manager {
	m := &Manager{
		l:          l,
		collectors: make(map[string]Collector),
	}
	for _, c := range collectors {
		if c == nil {
			continue
		}
		key := c.Platform()
		if _, dup := m.collectors[key]; dup {
			continue
		}
		m.collectors[key] = c
		m.order = append(m.order, key)
	}
	if len(m.collectors) == 0 {
		l.Warnf(context.Background(), "internal.collector.NewManager: no active collectors registered")
	}
	return m
}

// Platforms lists the registered platform keys in registration order.
func (m *Manager) Platforms() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// FetchForCampaign pulls recent posts for every hashtag the campaign tracks,
// across every registered platform. A failing call is logged and skipped so
// one flaky platform never sinks the whole fetch.
func (m *Manager) FetchForCampaign(ctx context.Context, c *model.Campaign, perTopicLimit int) ([]model.ContentItem, error) {
	if c == nil {
		return nil, ErrNilCampaign
	}

	var items []model.ContentItem
	for _, platform := range m.order {
		col := m.collectors[platform]
		for _, tag := range c.TrackedHashtags {
			fetched, err := col.FetchByTopic(ctx, tag, perTopicLimit)
			if err != nil {
				m.l.Errorf(ctx, "internal.collector.Manager.FetchForCampaign: %s #%s: %v", platform, tag, err)
				continue
			}
			m.l.Infof(ctx, "internal.collector.Manager.FetchForCampaign: fetched %d posts for #%s from %s", len(fetched), tag, platform)
			items = append(items, fetched...)
		}
	}

	m.l.Infof(ctx, "internal.collector.Manager.FetchForCampaign: total posts fetched for campaign %s: %d", c.ID, len(items))
	return items, nil
}

// Profile fetches account data from one platform.
func (m *Manager) Profile(ctx context.Context, platform, handle string) (Profile, error) {
	col, ok := m.collectors[platform]
	if !ok {
		return Profile{}, ErrUnsupportedPlatform
	}

	p, err := col.FetchProfile(ctx, handle)
	if err != nil {
		m.l.Errorf(ctx, "internal.collector.Manager.Profile: %s @%s: %v", platform, handle, err)
		return Profile{}, err
	}
	return p, nil
}
