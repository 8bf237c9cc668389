package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"

	"insights-srv/internal/campaign"
	"insights-srv/internal/campaign/repository/memory"
	"insights-srv/internal/model"
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

func newTestUsecase() campaign.UseCase {
	l := &testLogger{}
	return New(l, memory.New(l))
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testCampaign() *model.Campaign {
	return model.NewCampaign(
		"camp-1", "user-1", "Summer Promo",
		datePtr(2024, 1, 1), datePtr(2024, 1, 31),
		[]string{"summer sale"},
		[]string{"promo"},
		[]string{"twitter:brandhq"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)
}

func item(id, account, text string, ts model.FlexTime) model.ContentItem {
	return model.ContentItem{
		ID:              id,
		SourceAccountID: account,
		Platform:        "twitter",
		Text:            text,
		PublishedAt:     ts,
	}
}

func TestMatchCriteria(t *testing.T) {
	uc := newTestUsecase()
	inWindow := model.FlexTimeFrom(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		item      model.ContentItem
		wantMatch bool
	}{
		{
			name:      "hashtag match",
			item:      item("p1", "twitter:someone", "Big discounts this week #promo", inWindow),
			wantMatch: true,
		},
		{
			name:      "hashtag match case insensitive",
			item:      item("p2", "twitter:someone", "don't miss #PROMO!", inWindow),
			wantMatch: true,
		},
		{
			name:      "keyword match",
			item:      item("p3", "twitter:someone", "our SUMMER SALE is on", inWindow),
			wantMatch: true,
		},
		{
			name:      "tracked account match",
			item:      item("p4", "twitter:brandhq", "completely unrelated text", inWindow),
			wantMatch: true,
		},
		{
			name:      "account is exact not substring",
			item:      item("p5", "twitter:brandhq2", "unrelated", inWindow),
			wantMatch: false,
		},
		{
			name:      "unrelated content",
			item:      item("p6", "twitter:someone", "cat pictures", inWindow),
			wantMatch: false,
		},
		{
			name:      "empty text matches only by account",
			item:      item("p7", "twitter:someone", "", inWindow),
			wantMatch: false,
		},
		{
			name:      "empty text with tracked account",
			item:      item("p8", "twitter:brandhq", "", inWindow),
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Match(context.Background(), testCampaign(), []model.ContentItem{tt.item})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if (len(got) == 1) != tt.wantMatch {
				t.Errorf("Match() matched = %v, want %v", len(got) == 1, tt.wantMatch)
			}
		})
	}
}

func TestMatchDateWindow(t *testing.T) {
	uc := newTestUsecase()

	tests := []struct {
		name      string
		ts        model.FlexTime
		wantMatch bool
	}{
		{"before window", model.FlexTimeFromString("2023-12-15T10:00:00Z"), false},
		{"on start boundary", model.FlexTimeFromString("2024-01-01T00:00:00Z"), true},
		{"inside window", model.FlexTimeFromString("2024-01-20T10:00:00Z"), true},
		{"on end boundary", model.FlexTimeFromString("2024-01-31T00:00:00Z"), true},
		{"after window", model.FlexTimeFromString("2024-02-01T00:00:00Z"), false},
		{"unparseable is skipped", model.FlexTimeFromString("whenever"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := item("p1", "twitter:someone", "#promo content", tt.ts)
			got, err := uc.Match(context.Background(), testCampaign(), []model.ContentItem{it})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if (len(got) == 1) != tt.wantMatch {
				t.Errorf("Match() matched = %v, want %v", len(got) == 1, tt.wantMatch)
			}
		})
	}
}

func TestMatchOpenEndedWindow(t *testing.T) {
	uc := newTestUsecase()
	c := testCampaign()
	c.EndDate = nil

	it := item("p1", "twitter:someone", "#promo forever", model.FlexTimeFrom(time.Date(2031, 7, 1, 0, 0, 0, 0, time.UTC)))
	got, err := uc.Match(context.Background(), c, []model.ContentItem{it})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Match() = %d items, want 1 with open-ended window", len(got))
	}
}

func TestMatchNoCriteriaMatchesNothing(t *testing.T) {
	uc := newTestUsecase()
	c := testCampaign()
	c.TrackedKeywords = nil
	c.TrackedHashtags = nil
	c.TrackedAccountIDs = nil

	items := []model.ContentItem{
		item("p1", "twitter:anyone", "#promo summer sale everything", model.FlexTimeFrom(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))),
		item("p2", "twitter:brandhq", "more content", model.FlexTimeFrom(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))),
	}

	got, err := uc.Match(context.Background(), c, items)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Match() = %d items, want 0 when campaign tracks nothing", len(got))
	}
}

func TestMatchRepresentationIndependence(t *testing.T) {
	uc := newTestUsecase()

	// The same instant in the three accepted representations.
	instant := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	representations := []struct {
		name string
		ts   model.FlexTime
	}{
		{"native", model.FlexTimeFrom(instant)},
		{"epoch", model.FlexTimeFromUnix(float64(instant.Unix()))},
		{"iso text", model.FlexTimeFromString("2024-01-10T10:00:00Z")},
	}

	for _, rep := range representations {
		t.Run(rep.name, func(t *testing.T) {
			it := item("p1", "twitter:someone", "#promo deal", rep.ts)
			got, err := uc.Match(context.Background(), testCampaign(), []model.ContentItem{it})
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if len(got) != 1 {
				t.Errorf("Match() = %d items, want 1 for %s representation", len(got), rep.name)
			}
		})
	}
}

func TestMatchNilCampaign(t *testing.T) {
	uc := newTestUsecase()
	if _, err := uc.Match(context.Background(), nil, nil); err != campaign.ErrNilCampaign {
		t.Errorf("Match(nil) error = %v, want %v", err, campaign.ErrNilCampaign)
	}
}

func reachItem(id, text string, ts model.FlexTime, likes, shares, comments int64, reach null.Int64) model.ContentItem {
	it := item(id, "twitter:someone", text, ts)
	it.LikeCount = likes
	it.ShareCount = shares
	it.CommentCount = comments
	it.Reach = reach
	return it
}
