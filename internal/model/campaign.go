package model

import (
	"time"
)

// CampaignStatus represents the lifecycle status of a campaign.
type CampaignStatus string

const (
	CampaignStatusPlanning CampaignStatus = "planning"
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
)

// IsValid checks if the campaign status is valid.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusPlanning,
		CampaignStatusActive,
		CampaignStatusFinished:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s CampaignStatus) String() string {
	return string(s)
}

// CampaignMetrics is the metrics block computed from matched content.
// AvgEngagementRate carries two regimes: when TotalReach > 0 it is a
// percentage of reach engaged; when reach is absent it falls back to a raw
// per-post engagement count, which is not a percentage. Downstream threshold
// comparisons do not distinguish the two.
type CampaignMetrics struct {
	TotalPosts        int64    `json:"total_posts"`
	TotalLikes        int64    `json:"total_likes"`
	TotalShares       int64    `json:"total_shares"`
	TotalComments     int64    `json:"total_comments"`
	TotalReach        int64    `json:"total_reach"`
	AvgEngagementRate float64  `json:"avg_engagement_rate"`
	AssociatedItemIDs []string `json:"associated_item_ids"`
}

// Campaign is a tracked marketing effort with a date window and
// content-matching criteria. The metrics block and status are derived state,
// recomputed in place on every aggregation pass.
type Campaign struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Name              string          `json:"name"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	EndDate           *time.Time      `json:"end_date,omitempty"` // nil means open-ended
	TrackedKeywords   []string        `json:"tracked_keywords"`
	TrackedHashtags   []string        `json:"tracked_hashtags"`
	TrackedAccountIDs []string        `json:"tracked_account_ids"`
	Status            CampaignStatus  `json:"status"`
	Metrics           CampaignMetrics `json:"metrics"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewCampaign creates a campaign in Planning status with zero metrics.
// Status is never set directly after this point; aggregation derives it from
// the date window.
func NewCampaign(id, userID, name string, start, end *time.Time, keywords, hashtags, accountIDs []string, now time.Time) *Campaign {
	return &Campaign{
		ID:                id,
		UserID:            userID,
		Name:              name,
		StartDate:         start,
		EndDate:           end,
		TrackedKeywords:   keywords,
		TrackedHashtags:   hashtags,
		TrackedAccountIDs: accountIDs,
		Status:            CampaignStatusPlanning,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// HasCriteria reports whether the campaign tracks anything at all. A campaign
// with no keywords, hashtags and accounts matches no content: tracking
// nothing must not silently match everything.
func (c *Campaign) HasCriteria() bool {
	return len(c.TrackedKeywords) > 0 || len(c.TrackedHashtags) > 0 || len(c.TrackedAccountIDs) > 0
}

// IsActive reports whether the campaign is currently in its active window.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// DeriveStatus recomputes the lifecycle status from the date window against
// now. Both campaign dates and now are treated as offset-free UTC wall-clock
// instants. With no usable date the status is left unchanged, so a freshly
// created campaign stays in Planning. The derivation is not monotonic: a
// campaign evaluated against an earlier now can legitimately move backwards.
func (c *Campaign) DeriveStatus(now time.Time) {
	now = now.UTC()
	switch {
	case c.EndDate != nil && c.EndDate.UTC().Before(now):
		c.Status = CampaignStatusFinished
	case c.StartDate != nil && !c.StartDate.UTC().After(now):
		c.Status = CampaignStatusActive
	case c.StartDate != nil:
		c.Status = CampaignStatusPlanning
	}
}
