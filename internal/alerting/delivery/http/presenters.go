package http

import (
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

// evaluateReq carries one evaluation batch. Items decode through the model's
// tolerant timestamp handling, so a bad published_at never rejects the whole
// batch. With no items and configured collectors, content is fetched live.
type evaluateReq struct {
	Items       []model.ContentItem `json:"items"`
	TopicCounts []topicCountReq     `json:"topic_counts"`
	TopN        int                 `json:"top_n"`
	FetchLimit  int                 `json:"fetch_limit"`
}

type topicCountReq struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

func (r evaluateReq) topics() []model.TopicCount {
	out := make([]model.TopicCount, 0, len(r.TopicCounts))
	for _, tc := range r.TopicCounts {
		out = append(out, model.TopicCount{Term: tc.Term, Count: tc.Count})
	}
	return out
}

type listAlertReq struct {
	paginator.PaginateQuery
}

func (r listAlertReq) toInput() alerting.GetInput {
	return alerting.GetInput{
		PaginateQuery: r.PaginateQuery,
	}
}

type alertResp struct {
	ID                string     `json:"id"`
	Message           string     `json:"message"`
	Kind              string     `json:"kind"`
	Severity          string     `json:"severity"`
	RelatedEntityID   string     `json:"related_entity_id,omitempty"`
	RelatedEntityType string     `json:"related_entity_type,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	IsRead            bool       `json:"is_read"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:                a.ID,
		Message:           a.Message,
		Kind:              a.Kind.String(),
		Severity:          a.Severity.String(),
		RelatedEntityID:   a.RelatedEntityID,
		RelatedEntityType: a.RelatedEntityType,
		CreatedAt:         a.CreatedAt,
		IsRead:            a.IsRead,
		ReadAt:            a.ReadAt.Ptr(),
	}
}

func newAlertResps(alerts []model.Alert) []alertResp {
	out := make([]alertResp, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newAlertResp(a))
	}
	return out
}

type listAlertResp struct {
	Alerts    []alertResp                 `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListAlertResp(o alerting.GetAlertOutput) listAlertResp {
	return listAlertResp{
		Alerts:    newAlertResps(o.Alerts),
		Paginator: o.Paginator.ToResponse(),
	}
}

type campaignMetricsResp struct {
	TotalPosts        int64   `json:"total_posts"`
	TotalLikes        int64   `json:"total_likes"`
	TotalShares       int64   `json:"total_shares"`
	TotalComments     int64   `json:"total_comments"`
	TotalReach        int64   `json:"total_reach"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

type campaignSummaryResp struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Status       string              `json:"status"`
	MatchedItems int                 `json:"matched_items"`
	Metrics      campaignMetricsResp `json:"metrics"`
}

type topicCountResp struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type evaluateResp struct {
	ItemCount int                   `json:"item_count"`
	Campaigns []campaignSummaryResp `json:"campaigns"`
	Topics    []topicCountResp      `json:"topics"`
	Alerts    []alertResp           `json:"alerts"`
}

func newEvaluateResp(itemCount int, campaigns []model.Campaign, matched map[string][]model.ContentItem, topics []model.TopicCount, alerts []model.Alert) evaluateResp {
	resp := evaluateResp{
		ItemCount: itemCount,
		Campaigns: make([]campaignSummaryResp, 0, len(campaigns)),
		Topics:    make([]topicCountResp, 0, len(topics)),
		Alerts:    newAlertResps(alerts),
	}
	for _, c := range campaigns {
		resp.Campaigns = append(resp.Campaigns, campaignSummaryResp{
			ID:           c.ID,
			Name:         c.Name,
			Status:       c.Status.String(),
			MatchedItems: len(matched[c.ID]),
			Metrics: campaignMetricsResp{
				TotalPosts:        c.Metrics.TotalPosts,
				TotalLikes:        c.Metrics.TotalLikes,
				TotalShares:       c.Metrics.TotalShares,
				TotalComments:     c.Metrics.TotalComments,
				TotalReach:        c.Metrics.TotalReach,
				AvgEngagementRate: c.Metrics.AvgEngagementRate,
			},
		})
	}
	for _, tc := range topics {
		resp.Topics = append(resp.Topics, topicCountResp{Term: tc.Term, Count: tc.Count})
	}
	return resp
}
