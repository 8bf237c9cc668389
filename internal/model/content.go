package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ContentItem is one piece of social content fetched from a platform.
// Items are immutable once built; analysis output is attached to copies, not
// to the original batch.
type ContentItem struct {
	ID              string     `json:"id"`
	SourceAccountID string     `json:"source_account_id"` // "<platform>:<handle>"
	Platform        string     `json:"platform"`
	Text            string     `json:"text"`
	PublishedAt     FlexTime   `json:"published_at"`
	LikeCount       int64      `json:"like_count"`
	ShareCount      int64      `json:"share_count"`
	CommentCount    int64      `json:"comment_count"`
	Reach           null.Int64 `json:"reach"`
	MediaURLs       []string   `json:"media_urls,omitempty"`
	Sentiment       *Sentiment `json:"sentiment,omitempty"`
	Raw             null.JSON  `json:"raw,omitempty"`
	FetchedAt       time.Time  `json:"fetched_at"`
}

// HasText reports whether the item carries any text to match or classify.
func (c ContentItem) HasText() bool {
	return c.Text != ""
}
