package collector

import "time"

// Platform keys used for collector registration and item namespacing.
const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
)

const (
	// DefaultFetchLimit applies when a caller passes limit <= 0.
	DefaultFetchLimit = 20

	// DefaultHTTPTimeout bounds every platform API call.
	DefaultHTTPTimeout = 15 * time.Second

	// MaxRateLimitWait caps how long a collector sleeps on a 429 before
	// its single retry, whatever Retry-After asks for.
	MaxRateLimitWait = 60 * time.Second

	userAgent = "insights-srv/1.0"
)

// Profile is public account data fetched from a platform.
type Profile struct {
	AccountID      string    `json:"account_id"` // "<platform>:<handle>"
	Handle         string    `json:"handle"`
	DisplayName    string    `json:"display_name"`
	Description    string    `json:"description,omitempty"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	Platform       string    `json:"platform"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// TwitterConfig carries credentials for the Twitter collector. App-only
// bearer auth is the only supported mode.
type TwitterConfig struct {
	BearerToken string
	// BaseURL overrides the public API endpoint, mainly for tests.
	BaseURL string
}

// InstagramConfig carries credentials for the Instagram Graph API collector.
// Hashtag search and business discovery both require a business account id.
type InstagramConfig struct {
	AccessToken       string
	BusinessAccountID string
	// BaseURL overrides the public Graph API endpoint, mainly for tests.
	BaseURL string
}
