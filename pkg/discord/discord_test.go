package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

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

func newTestClient(t *testing.T, handler http.HandlerFunc) *webhookClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{RetryDelay: time.Millisecond}
	cfg.applyDefaults()

	return &webhookClient{
		l:      &testLogger{},
		url:    srv.URL,
		cfg:    cfg,
		client: srv.Client(),
	}
}

func TestSendEmbedPostsPayload(t *testing.T) {
	var got WebhookPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.SendEmbed(context.Background(), MessageOptions{
		Type:        MessageTypeWarning,
		Title:       "Trend Growing Rapidly",
		Description: "ai mentions tripled within one cycle",
		Fields:      []EmbedField{{Name: "Severity", Value: "warning", Inline: true}},
		Timestamp:   time.Now(),
	})
	if err != nil {
		t.Fatalf("SendEmbed: %v", err)
	}

	if len(got.Embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(got.Embeds))
	}
	embed := got.Embeds[0]
	if embed.Title != "Trend Growing Rapidly" || embed.Color != ColorWarning {
		t.Errorf("embed = %+v", embed)
	}
	if got.Username == "" {
		t.Error("expected the default username on the payload")
	}
}

func TestSendEmbedRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "try again later", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.SendEmbed(context.Background(), MessageOptions{
		Type:  MessageTypeInfo,
		Title: "probe",
	})
	if err != nil {
		t.Fatalf("SendEmbed after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestReportBugWrapsInCodeFence(t *testing.T) {
	var got WebhookPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.ReportBug(context.Background(), "stack line one\nstack line two"); err != nil {
		t.Fatalf("ReportBug: %v", err)
	}

	if len(got.Embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(got.Embeds))
	}
	embed := got.Embeds[0]
	if embed.Title != reportBugTitle || embed.Color != ColorError {
		t.Errorf("embed = %+v", embed)
	}
	if !strings.HasPrefix(embed.Description, "```") || !strings.HasSuffix(embed.Description, "```") {
		t.Errorf("description not fenced: %q", embed.Description)
	}
}

func TestNewRequiresWebhookParts(t *testing.T) {
	if _, err := New(&testLogger{}, "", "token"); err == nil {
		t.Fatal("expected error for missing webhook id")
	}
	if _, err := New(&testLogger{}, "123", ""); err == nil {
		t.Fatal("expected error for missing webhook token")
	}
}
