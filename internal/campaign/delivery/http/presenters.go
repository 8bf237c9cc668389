package http

import (
	"strings"
	"time"

	"insights-srv/internal/campaign"
	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

type createCampaignReq struct {
	Name              string          `json:"name"`
	StartDate         *model.FlexTime `json:"start_date"`
	EndDate           *model.FlexTime `json:"end_date"`
	TrackedKeywords   []string        `json:"tracked_keywords"`
	TrackedHashtags   []string        `json:"tracked_hashtags"`
	TrackedAccountIDs []string        `json:"tracked_account_ids"`
}

func (r createCampaignReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return campaign.ErrNameRequired
	}
	if r.StartDate != nil {
		if _, ok := r.StartDate.Normalize(); !ok {
			return errInvalidStartDate
		}
	}
	if r.EndDate != nil {
		if _, ok := r.EndDate.Normalize(); !ok {
			return errInvalidEndDate
		}
	}
	return nil
}

func (r createCampaignReq) toInput() campaign.CreateInput {
	return campaign.CreateInput{
		Name:              strings.TrimSpace(r.Name),
		StartDate:         normalizedTime(r.StartDate),
		EndDate:           normalizedTime(r.EndDate),
		TrackedKeywords:   r.TrackedKeywords,
		TrackedHashtags:   r.TrackedHashtags,
		TrackedAccountIDs: r.TrackedAccountIDs,
	}
}

func normalizedTime(ft *model.FlexTime) *time.Time {
	if ft == nil {
		return nil
	}
	t, ok := ft.Normalize()
	if !ok {
		return nil
	}
	return &t
}

type listCampaignReq struct {
	paginator.PaginateQuery
}

func (r listCampaignReq) toInput() campaign.GetInput {
	return campaign.GetInput{
		PaginateQuery: r.PaginateQuery,
	}
}

type campaignMetricsResp struct {
	TotalPosts        int64    `json:"total_posts"`
	TotalLikes        int64    `json:"total_likes"`
	TotalShares       int64    `json:"total_shares"`
	TotalComments     int64    `json:"total_comments"`
	TotalReach        int64    `json:"total_reach"`
	AvgEngagementRate float64  `json:"avg_engagement_rate"`
	AssociatedItemIDs []string `json:"associated_item_ids"`
}

type campaignResp struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Status            string              `json:"status"`
	StartDate         *time.Time          `json:"start_date,omitempty"`
	EndDate           *time.Time          `json:"end_date,omitempty"`
	TrackedKeywords   []string            `json:"tracked_keywords"`
	TrackedHashtags   []string            `json:"tracked_hashtags"`
	TrackedAccountIDs []string            `json:"tracked_account_ids"`
	Metrics           campaignMetricsResp `json:"metrics"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func newCampaignResp(c model.Campaign) campaignResp {
	return campaignResp{
		ID:                c.ID,
		Name:              c.Name,
		Status:            c.Status.String(),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		TrackedKeywords:   c.TrackedKeywords,
		TrackedHashtags:   c.TrackedHashtags,
		TrackedAccountIDs: c.TrackedAccountIDs,
		Metrics: campaignMetricsResp{
			TotalPosts:        c.Metrics.TotalPosts,
			TotalLikes:        c.Metrics.TotalLikes,
			TotalShares:       c.Metrics.TotalShares,
			TotalComments:     c.Metrics.TotalComments,
			TotalReach:        c.Metrics.TotalReach,
			AvgEngagementRate: c.Metrics.AvgEngagementRate,
			AssociatedItemIDs: c.Metrics.AssociatedItemIDs,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type listCampaignResp struct {
	Campaigns []campaignResp              `json:"campaigns"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListCampaignResp(o campaign.GetCampaignOutput) listCampaignResp {
	resp := listCampaignResp{
		Campaigns: make([]campaignResp, 0, len(o.Campaigns)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, c := range o.Campaigns {
		resp.Campaigns = append(resp.Campaigns, newCampaignResp(c))
	}
	return resp
}
