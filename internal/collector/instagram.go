package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"

	"insights-srv/internal/model"
	pkgLog "insights-srv/pkg/log"
)

const instagramBaseURL = "https://graph.facebook.com/v21.0"

// Hashtag recent_media caps page size at 50.
const instagramMaxResults = 50

type instagramCollector struct {
	l      pkgLog.Logger
	cfg    InstagramConfig
	client *http.Client
}

// NewInstagram builds an Instagram Graph API collector. The API is
// restrictive: hashtag search and arbitrary-account reads both go through
// the configured business account.
func NewInstagram(l pkgLog.Logger, cfg InstagramConfig) (Collector, error) {
	if cfg.AccessToken == "" || cfg.BusinessAccountID == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = instagramBaseURL
	}
	return &instagramCollector{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(DefaultHTTPTimeout),
	}, nil
}

func (c *instagramCollector) Platform() string {
	return PlatformInstagram
}

func (c *instagramCollector) Authenticate(ctx context.Context) error {
	q := url.Values{}
	q.Set("fields", "id")
	if _, err := c.get(ctx, "/"+url.PathEscape(c.cfg.BusinessAccountID), q); err != nil {
		return errors.Wrap(err, "instagram: authenticate")
	}
	return nil
}

// FetchByTopic resolves the hashtag id first, then reads its recent media.
// An unknown hashtag yields an empty batch, not an error.
func (c *instagramCollector) FetchByTopic(ctx context.Context, topic string, limit int) ([]model.ContentItem, error) {
	tag := strings.TrimPrefix(topic, "#")

	q := url.Values{}
	q.Set("user_id", c.cfg.BusinessAccountID)
	q.Set("q", tag)

	body, err := c.get(ctx, "/ig_hashtag_search", q)
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: hashtag search #%s", tag)
	}

	var search instagramHashtagSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, errors.Wrap(err, "instagram: decode hashtag search response")
	}
	if len(search.Data) == 0 {
		return nil, nil
	}

	q = url.Values{}
	q.Set("user_id", c.cfg.BusinessAccountID)
	q.Set("fields", "id,caption,like_count,comments_count,timestamp,media_url,permalink,username")
	q.Set("limit", strconv.Itoa(clampLimit(limit, 1, instagramMaxResults)))

	body, err = c.get(ctx, "/"+url.PathEscape(search.Data[0].ID)+"/recent_media", q)
	if err != nil {
		return nil, errors.Wrapf(err, "instagram: recent media #%s", tag)
	}

	var media instagramMediaResponse
	if err := json.Unmarshal(body, &media); err != nil {
		return nil, errors.Wrap(err, "instagram: decode media response")
	}

	now := time.Now().UTC()
	items := make([]model.ContentItem, 0, len(media.Data))
	for _, m := range media.Data {
		items = append(items, instagramItem(m, m.Username, now))
	}
	return items, nil
}

// FetchByAccount reads another account's media through business discovery,
// the only way the Graph API exposes accounts you do not own.
func (c *instagramCollector) FetchByAccount(ctx context.Context, handle string, limit int) ([]model.ContentItem, error) {
	handle = strings.TrimPrefix(handle, "@")

	disc, err := c.discover(ctx, handle, clampLimit(limit, 1, instagramMaxResults))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]model.ContentItem, 0, len(disc.Media.Data))
	for _, m := range disc.Media.Data {
		account := m.Username
		if account == "" {
			account = disc.Username
		}
		items = append(items, instagramItem(m, account, now))
	}
	return items, nil
}

func (c *instagramCollector) FetchProfile(ctx context.Context, handle string) (Profile, error) {
	handle = strings.TrimPrefix(handle, "@")

	disc, err := c.discover(ctx, handle, 0)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		AccountID:      PlatformInstagram + ":" + disc.Username,
		Handle:         disc.Username,
		DisplayName:    disc.Name,
		Description:    disc.Biography,
		FollowerCount:  disc.FollowersCount,
		FollowingCount: disc.FollowsCount,
		Platform:       PlatformInstagram,
		FetchedAt:      time.Now().UTC(),
	}, nil
}

func (c *instagramCollector) discover(ctx context.Context, handle string, mediaLimit int) (instagramDiscovery, error) {
	fields := fmt.Sprintf("business_discovery.username(%s){username,name,biography,followers_count,follows_count", handle)
	if mediaLimit > 0 {
		fields += fmt.Sprintf(",media.limit(%d){id,caption,like_count,comments_count,timestamp,media_url,permalink,username}", mediaLimit)
	}
	fields += "}"

	q := url.Values{}
	q.Set("fields", fields)

	body, err := c.get(ctx, "/"+url.PathEscape(c.cfg.BusinessAccountID), q)
	if err != nil {
		return instagramDiscovery{}, errors.Wrapf(err, "instagram: discover @%s", handle)
	}

	var res instagramDiscoveryResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return instagramDiscovery{}, errors.Wrap(err, "instagram: decode discovery response")
	}
	if res.BusinessDiscovery.Username == "" {
		return instagramDiscovery{}, errors.Errorf("instagram: account %q not found", handle)
	}
	return res.BusinessDiscovery, nil
}

func (c *instagramCollector) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	return fetchWithRateLimit(ctx, c.l, PlatformInstagram, c.client, func() (*http.Request, error) {
		q.Set("access_token", c.cfg.AccessToken)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	})
}

// instagramItem normalizes one media entry. Instagram exposes no share
// count, and reach is unavailable for content you do not own, so both stay
// absent rather than fabricated.
func instagramItem(m instagramMedia, account string, now time.Time) model.ContentItem {
	item := model.ContentItem{
		ID:              PlatformInstagram + ":" + m.ID,
		SourceAccountID: PlatformInstagram + ":" + account,
		Platform:        PlatformInstagram,
		Text:            m.Caption,
		PublishedAt:     m.Timestamp,
		LikeCount:       m.LikeCount,
		CommentCount:    m.CommentsCount,
		FetchedAt:       now,
	}
	if m.MediaURL != "" {
		item.MediaURLs = []string{m.MediaURL}
	}
	if raw, err := json.Marshal(m); err == nil {
		item.Raw = null.JSONFrom(raw)
	}
	return item
}

type instagramMedia struct {
	ID            string         `json:"id"`
	Caption       string         `json:"caption"`
	LikeCount     int64          `json:"like_count"`
	CommentsCount int64          `json:"comments_count"`
	Timestamp     model.FlexTime `json:"timestamp"`
	MediaURL      string         `json:"media_url"`
	Permalink     string         `json:"permalink"`
	Username      string         `json:"username"`
}

type instagramHashtagSearchResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type instagramMediaResponse struct {
	Data []instagramMedia `json:"data"`
}

type instagramDiscovery struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	Biography      string `json:"biography"`
	FollowersCount int64  `json:"followers_count"`
	FollowsCount   int64  `json:"follows_count"`
	Media          struct {
		Data []instagramMedia `json:"data"`
	} `json:"media"`
}

type instagramDiscoveryResponse struct {
	BusinessDiscovery instagramDiscovery `json:"business_discovery"`
}
