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

const twitterBaseURL = "https://api.twitter.com/2"

// Recent search accepts max_results between 10 and 100.
const (
	twitterMinResults = 10
	twitterMaxResults = 100
)

type twitterCollector struct {
	l      pkgLog.Logger
	cfg    TwitterConfig
	client *http.Client
}

// NewTwitter builds a Twitter collector using app-only bearer auth.
func NewTwitter(l pkgLog.Logger, cfg TwitterConfig) (Collector, error) {
	if cfg.BearerToken == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = twitterBaseURL
	}
	return &twitterCollector{
		l:      l,
		cfg:    cfg,
		client: newHTTPClient(DefaultHTTPTimeout),
	}, nil
}

func (c *twitterCollector) Platform() string {
	return PlatformTwitter
}

// Authenticate proves the bearer token works. App-only tokens have no
// introspection endpoint, so a minimal recent search stands in.
func (c *twitterCollector) Authenticate(ctx context.Context) error {
	q := url.Values{}
	q.Set("query", "hello")
	q.Set("max_results", strconv.Itoa(twitterMinResults))
	if _, err := c.get(ctx, "/tweets/search/recent", q); err != nil {
		return errors.Wrap(err, "twitter: authenticate")
	}
	return nil
}

func (c *twitterCollector) FetchByTopic(ctx context.Context, topic string, limit int) ([]model.ContentItem, error) {
	tag := strings.TrimPrefix(topic, "#")

	q := url.Values{}
	q.Set("query", fmt.Sprintf("#%s -is:retweet", tag))
	q.Set("max_results", strconv.Itoa(clampLimit(limit, twitterMinResults, twitterMaxResults)))
	q.Set("tweet.fields", "created_at,public_metrics,author_id,attachments")
	q.Set("expansions", "author_id,attachments.media_keys")
	q.Set("user.fields", "username")
	q.Set("media.fields", "url")

	body, err := c.get(ctx, "/tweets/search/recent", q)
	if err != nil {
		return nil, errors.Wrapf(err, "twitter: search #%s", tag)
	}

	var res twitterSearchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "twitter: decode search response")
	}

	handles := make(map[string]string, len(res.Includes.Users))
	for _, u := range res.Includes.Users {
		handles[u.ID] = u.Username
	}
	media := make(map[string]string, len(res.Includes.Media))
	for _, m := range res.Includes.Media {
		media[m.MediaKey] = m.URL
	}

	now := time.Now().UTC()
	items := make([]model.ContentItem, 0, len(res.Data))
	for _, t := range res.Data {
		account := t.AuthorID
		if h, ok := handles[t.AuthorID]; ok {
			account = h
		}
		items = append(items, twitterItem(t, account, media, now))
	}
	return items, nil
}

func (c *twitterCollector) FetchByAccount(ctx context.Context, handle string, limit int) ([]model.ContentItem, error) {
	handle = strings.TrimPrefix(handle, "@")

	user, err := c.lookupUser(ctx, handle)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("max_results", strconv.Itoa(clampLimit(limit, 5, twitterMaxResults)))
	q.Set("tweet.fields", "created_at,public_metrics,attachments")
	q.Set("exclude", "retweets")

	body, err := c.get(ctx, "/users/"+url.PathEscape(user.ID)+"/tweets", q)
	if err != nil {
		return nil, errors.Wrapf(err, "twitter: timeline @%s", handle)
	}

	var res twitterTimelineResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, errors.Wrap(err, "twitter: decode timeline response")
	}

	now := time.Now().UTC()
	items := make([]model.ContentItem, 0, len(res.Data))
	for _, t := range res.Data {
		items = append(items, twitterItem(t, user.Username, nil, now))
	}
	return items, nil
}

func (c *twitterCollector) FetchProfile(ctx context.Context, handle string) (Profile, error) {
	handle = strings.TrimPrefix(handle, "@")

	u, err := c.lookupUser(ctx, handle)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		AccountID:      PlatformTwitter + ":" + u.Username,
		Handle:         u.Username,
		DisplayName:    u.Name,
		Description:    u.Description,
		FollowerCount:  u.PublicMetrics.FollowersCount,
		FollowingCount: u.PublicMetrics.FollowingCount,
		Platform:       PlatformTwitter,
		FetchedAt:      time.Now().UTC(),
	}, nil
}

func (c *twitterCollector) lookupUser(ctx context.Context, handle string) (twitterUser, error) {
	q := url.Values{}
	q.Set("user.fields", "public_metrics,description")

	body, err := c.get(ctx, "/users/by/username/"+url.PathEscape(handle), q)
	if err != nil {
		return twitterUser{}, errors.Wrapf(err, "twitter: lookup @%s", handle)
	}

	var res twitterUserResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return twitterUser{}, errors.Wrap(err, "twitter: decode user response")
	}
	if res.Data.ID == "" {
		return twitterUser{}, errors.Errorf("twitter: user %q not found", handle)
	}
	return res.Data, nil
}

func (c *twitterCollector) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	return fetchWithRateLimit(ctx, c.l, PlatformTwitter, c.client, func() (*http.Request, error) {
		u := c.cfg.BaseURL + path
		if len(q) > 0 {
			u += "?" + q.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	})
}

// twitterItem normalizes one tweet. A tweet without created_at keeps an
// invalid timestamp and is skipped downstream by the matcher.
func twitterItem(t twitterTweet, account string, media map[string]string, now time.Time) model.ContentItem {
	item := model.ContentItem{
		ID:              PlatformTwitter + ":" + t.ID,
		SourceAccountID: PlatformTwitter + ":" + account,
		Platform:        PlatformTwitter,
		Text:            t.Text,
		LikeCount:       t.PublicMetrics.LikeCount,
		ShareCount:      t.PublicMetrics.RetweetCount,
		CommentCount:    t.PublicMetrics.ReplyCount,
		FetchedAt:       now,
	}
	if !t.CreatedAt.IsZero() {
		item.PublishedAt = model.FlexTimeFrom(t.CreatedAt)
	}
	if t.PublicMetrics.ImpressionCount != nil {
		item.Reach = null.Int64From(*t.PublicMetrics.ImpressionCount)
	}
	for _, key := range t.Attachments.MediaKeys {
		if u, ok := media[key]; ok && u != "" {
			item.MediaURLs = append(item.MediaURLs, u)
		}
	}
	if raw, err := json.Marshal(t); err == nil {
		item.Raw = null.JSONFrom(raw)
	}
	return item
}

type twitterTweet struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	AuthorID      string    `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	PublicMetrics struct {
		RetweetCount    int64  `json:"retweet_count"`
		ReplyCount      int64  `json:"reply_count"`
		LikeCount       int64  `json:"like_count"`
		ImpressionCount *int64 `json:"impression_count"`
	} `json:"public_metrics"`
	Attachments struct {
		MediaKeys []string `json:"media_keys"`
	} `json:"attachments"`
}

type twitterUser struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Description   string `json:"description"`
	PublicMetrics struct {
		FollowersCount int64 `json:"followers_count"`
		FollowingCount int64 `json:"following_count"`
	} `json:"public_metrics"`
}

type twitterSearchResponse struct {
	Data     []twitterTweet `json:"data"`
	Includes struct {
		Users []twitterUser `json:"users"`
		Media []struct {
			MediaKey string `json:"media_key"`
			URL      string `json:"url"`
		} `json:"media"`
	} `json:"includes"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
}

type twitterUserResponse struct {
	Data twitterUser `json:"data"`
}

type twitterTimelineResponse struct {
	Data []twitterTweet `json:"data"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}
