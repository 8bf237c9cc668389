package collector

import (
	"context"

	"insights-srv/internal/model"
)

// Collector is the capability one platform integration provides. The
// matching and alerting core never consumes this interface, only the
// normalized item sequences it yields.
//
//go:generate mockery --name Collector
type Collector interface {
	// Platform returns the platform key, e.g. "twitter".
	Platform() string

	// Authenticate proves the configured credentials work.
	Authenticate(ctx context.Context) error

	// FetchByTopic fetches recent posts for one topic or hashtag. The
	// leading "#" is optional.
	FetchByTopic(ctx context.Context, topic string, limit int) ([]model.ContentItem, error)

	// FetchByAccount fetches recent posts authored by one account handle.
	FetchByAccount(ctx context.Context, handle string, limit int) ([]model.ContentItem, error)

	// FetchProfile fetches public profile data for one account handle.
	FetchProfile(ctx context.Context, handle string) (Profile, error)
}
