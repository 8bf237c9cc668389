package collector

import (
	"context"
	stderrors "errors"
	"reflect"
	"testing"

	"insights-srv/internal/model"
)

type fakeCollector struct {
	platform string
	failTags map[string]bool
	calls    []string
}

func (f *fakeCollector) Platform() string { return f.platform }

func (f *fakeCollector) Authenticate(ctx context.Context) error { return nil }

func (f *fakeCollector) FetchByTopic(ctx context.Context, topic string, limit int) ([]model.ContentItem, error) {
	f.calls = append(f.calls, topic)
	if f.failTags[topic] {
		return nil, stderrors.New("boom")
	}
	return []model.ContentItem{{ID: f.platform + ":" + topic, Platform: f.platform}}, nil
}

func (f *fakeCollector) FetchByAccount(ctx context.Context, handle string, limit int) ([]model.ContentItem, error) {
	return nil, nil
}

func (f *fakeCollector) FetchProfile(ctx context.Context, handle string) (Profile, error) {
	return Profile{AccountID: f.platform + ":" + handle, Handle: handle, Platform: f.platform}, nil
}

func TestManagerFetchForCampaign(t *testing.T) {
	tw := &fakeCollector{platform: "twitter", failTags: map[string]bool{"#gophercon": true}}
	ig := &fakeCollector{platform: "instagram"}
	m := NewManager(&testLogger{}, tw, ig)

	c := &model.Campaign{
		ID:              "camp_1",
		Name:            "Launch",
		TrackedHashtags: []string{"#golang", "#gophercon"},
	}

	items, err := m.FetchForCampaign(context.Background(), c, 10)
	if err != nil {
		t.Fatalf("FetchForCampaign() error = %v", err)
	}

	// The failing twitter fetch is logged and skipped, never fatal.
	wantIDs := []string{"twitter:#golang", "instagram:#golang", "instagram:#gophercon"}
	gotIDs := make([]string, 0, len(items))
	for _, it := range items {
		gotIDs = append(gotIDs, it.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("items = %v, want %v", gotIDs, wantIDs)
	}

	wantCalls := []string{"#golang", "#gophercon"}
	if !reflect.DeepEqual(tw.calls, wantCalls) || !reflect.DeepEqual(ig.calls, wantCalls) {
		t.Errorf("calls = %v / %v, want every hashtag on every platform", tw.calls, ig.calls)
	}
}

func TestManagerFetchForCampaignNilCampaign(t *testing.T) {
	m := NewManager(&testLogger{}, &fakeCollector{platform: "twitter"})

	if _, err := m.FetchForCampaign(context.Background(), nil, 10); err != ErrNilCampaign {
		t.Errorf("FetchForCampaign(nil) error = %v, want ErrNilCampaign", err)
	}
}

func TestManagerProfile(t *testing.T) {
	m := NewManager(&testLogger{}, &fakeCollector{platform: "twitter"})

	p, err := m.Profile(context.Background(), "twitter", "gopherfan")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if p.AccountID != "twitter:gopherfan" {
		t.Errorf("profile = %+v", p)
	}

	if _, err := m.Profile(context.Background(), "tiktok", "x"); err != ErrUnsupportedPlatform {
		t.Errorf("Profile(tiktok) error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestNewManagerSkipsNilAndDuplicates(t *testing.T) {
	tw := &fakeCollector{platform: "twitter"}
	dup := &fakeCollector{platform: "twitter"}
	m := NewManager(&testLogger{}, nil, tw, dup)

	if got := m.Platforms(); !reflect.DeepEqual(got, []string{"twitter"}) {
		t.Errorf("Platforms() = %v, want [twitter]", got)
	}
}
