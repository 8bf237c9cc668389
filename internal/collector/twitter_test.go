package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const twitterSearchFixture = `{
  "data": [
    {
      "id": "1001",
      "text": "Loving the #GoConf talks!",
      "author_id": "42",
      "created_at": "2024-05-01T10:00:00.000Z",
      "public_metrics": {"retweet_count": 3, "reply_count": 2, "like_count": 10, "impression_count": 500},
      "attachments": {"media_keys": ["3_1"]}
    },
    {
      "id": "1002",
      "text": "Day two of #GoConf",
      "author_id": "43",
      "created_at": "2024-05-01T11:00:00.000Z",
      "public_metrics": {"retweet_count": 0, "reply_count": 0, "like_count": 1}
    }
  ],
  "includes": {
    "users": [{"id": "42", "username": "gopherfan", "name": "Gopher Fan"}],
    "media": [{"media_key": "3_1", "url": "https://pbs.example/img.jpg"}]
  },
  "meta": {"result_count": 2}
}`

func TestTwitterFetchByTopic(t *testing.T) {
	var gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tweets/search/recent" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(twitterSearchFixture))
	}))
	defer srv.Close()

	c, err := NewTwitter(&testLogger{}, TwitterConfig{BearerToken: "test-token", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewTwitter() error = %v", err)
	}

	items, err := c.FetchByTopic(context.Background(), "#GoConf", 10)
	if err != nil {
		t.Fatalf("FetchByTopic() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("FetchByTopic() = %d items, want 2", len(items))
	}
	if gotQuery != "#GoConf -is:retweet" {
		t.Errorf("query = %q, want %q", gotQuery, "#GoConf -is:retweet")
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth header = %q", gotAuth)
	}

	first := items[0]
	if first.ID != "twitter:1001" || first.Platform != PlatformTwitter {
		t.Errorf("item = %s/%s, want twitter:1001/twitter", first.ID, first.Platform)
	}
	if first.SourceAccountID != "twitter:gopherfan" {
		t.Errorf("account = %s, want twitter:gopherfan (resolved from includes)", first.SourceAccountID)
	}
	if first.LikeCount != 10 || first.ShareCount != 3 || first.CommentCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 10/3/2", first.LikeCount, first.ShareCount, first.CommentCount)
	}
	if !first.Reach.Valid || first.Reach.Int64 != 500 {
		t.Errorf("reach = %+v, want 500", first.Reach)
	}
	if len(first.MediaURLs) != 1 || first.MediaURLs[0] != "https://pbs.example/img.jpg" {
		t.Errorf("media = %v", first.MediaURLs)
	}
	ts, ok := first.PublishedAt.Normalize()
	if !ok || !ts.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("published = %v/%v", ts, ok)
	}

	second := items[1]
	if second.SourceAccountID != "twitter:43" {
		t.Errorf("account without include = %s, want raw author id", second.SourceAccountID)
	}
	if second.Reach.Valid {
		t.Errorf("reach should stay absent when impressions are missing")
	}
}

func TestTwitterRateLimitRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data": [], "meta": {"result_count": 0}}`))
	}))
	defer srv.Close()

	c, err := NewTwitter(&testLogger{}, TwitterConfig{BearerToken: "t", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewTwitter() error = %v", err)
	}

	items, err := c.FetchByTopic(context.Background(), "quiet", 10)
	if err != nil {
		t.Fatalf("FetchByTopic() after rate limit error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
	if calls != 2 {
		t.Errorf("calls = %d, want exactly one retry", calls)
	}
}

func TestTwitterRateLimitGivesUpAfterOneRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewTwitter(&testLogger{}, TwitterConfig{BearerToken: "t", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewTwitter() error = %v", err)
	}

	if _, err := c.FetchByTopic(context.Background(), "busy", 10); err == nil {
		t.Fatal("FetchByTopic() = nil error, want rate limit failure")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestTwitterFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/by/username/gopherfan" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"data": {"id": "42", "name": "Gopher Fan", "username": "gopherfan", "description": "go things", "public_metrics": {"followers_count": 1200, "following_count": 300}}}`))
	}))
	defer srv.Close()

	c, err := NewTwitter(&testLogger{}, TwitterConfig{BearerToken: "t", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewTwitter() error = %v", err)
	}

	p, err := c.FetchProfile(context.Background(), "@gopherfan")
	if err != nil {
		t.Fatalf("FetchProfile() error = %v", err)
	}
	if p.AccountID != "twitter:gopherfan" || p.DisplayName != "Gopher Fan" {
		t.Errorf("profile = %+v", p)
	}
	if p.FollowerCount != 1200 || p.FollowingCount != 300 {
		t.Errorf("follower counts = %d/%d, want 1200/300", p.FollowerCount, p.FollowingCount)
	}
}

func TestNewTwitterRequiresToken(t *testing.T) {
	if _, err := NewTwitter(&testLogger{}, TwitterConfig{}); err != ErrMissingCredentials {
		t.Errorf("NewTwitter() error = %v, want ErrMissingCredentials", err)
	}
}
