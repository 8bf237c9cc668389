package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"insights-srv/internal/model"
	"insights-srv/pkg/discord"
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

type fakeDiscord struct {
	embeds []discord.MessageOptions
	err    error
}

func (f *fakeDiscord) SendEmbed(ctx context.Context, options discord.MessageOptions) error {
	f.embeds = append(f.embeds, options)
	return f.err
}

func (f *fakeDiscord) ReportBug(ctx context.Context, message string) error { return nil }
func (f *fakeDiscord) Close() error                                        { return nil }

type fakeRedis struct {
	channels []string
	payloads [][]byte
	err      error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, payload any) error {
	f.channels = append(f.channels, channel)
	if raw, ok := payload.([]byte); ok {
		f.payloads = append(f.payloads, raw)
	}
	return f.err
}

func (f *fakeRedis) Ping(ctx context.Context) error { return nil }
func (f *fakeRedis) Close() error                   { return nil }

type fakeStream struct {
	users    []string
	messages [][]byte
}

func (f *fakeStream) SendToUser(userID string, message []byte) {
	f.users = append(f.users, userID)
	f.messages = append(f.messages, message)
}

func sampleAlert(id, userID string, kind model.AlertKind) model.Alert {
	return model.Alert{
		ID:        id,
		UserID:    userID,
		Message:   "mentions of ai crossed the volume threshold",
		Kind:      kind,
		Severity:  model.AlertSeverityInfo,
		CreatedAt: time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC),
	}
}

func TestDispatchAlertFansOut(t *testing.T) {
	dc := &fakeDiscord{}
	rd := &fakeRedis{}
	st := &fakeStream{}
	uc := New(&testLogger{}, dc, rd, st)

	alert := sampleAlert("a1", "u1", model.AlertKindNewTrend)
	if err := uc.DispatchAlert(context.Background(), alert); err != nil {
		t.Fatalf("DispatchAlert: %v", err)
	}

	if len(dc.embeds) != 1 {
		t.Fatalf("discord embeds = %d, want 1", len(dc.embeds))
	}
	embed := dc.embeds[0]
	if embed.Title != "New Trend Detected" || embed.Type != discord.MessageTypeInfo {
		t.Errorf("embed = %+v", embed)
	}

	if len(rd.channels) != 1 || rd.channels[0] != "alert:new_trend:user:u1" {
		t.Errorf("redis channels = %v", rd.channels)
	}

	if len(st.users) != 1 || st.users[0] != "u1" {
		t.Fatalf("stream users = %v", st.users)
	}
	var decoded model.Alert
	if err := json.Unmarshal(st.messages[0], &decoded); err != nil {
		t.Fatalf("decode stream payload: %v", err)
	}
	if decoded.ID != "a1" || decoded.Kind != model.AlertKindNewTrend {
		t.Errorf("stream payload = %+v", decoded)
	}
}

func TestDispatchAlertSkipsNilSinks(t *testing.T) {
	uc := New(&testLogger{}, nil, nil, nil)

	if err := uc.DispatchAlert(context.Background(), sampleAlert("a1", "u1", model.AlertKindGeneral)); err != nil {
		t.Fatalf("DispatchAlert with no sinks: %v", err)
	}
}

func TestDispatchAlertAbsorbsSinkFailures(t *testing.T) {
	dc := &fakeDiscord{err: errors.New("webhook down")}
	rd := &fakeRedis{err: errors.New("connection refused")}
	st := &fakeStream{}
	uc := New(&testLogger{}, dc, rd, st)

	if err := uc.DispatchAlert(context.Background(), sampleAlert("a1", "u1", model.AlertKindNewTrend)); err != nil {
		t.Fatalf("DispatchAlert: %v", err)
	}

	// Failing sinks must not stop delivery to the remaining ones.
	if len(st.users) != 1 {
		t.Errorf("stream users = %v, want [u1]", st.users)
	}
}

func TestDispatchBatchKeepsOrder(t *testing.T) {
	st := &fakeStream{}
	uc := New(&testLogger{}, nil, nil, st)

	alerts := []model.Alert{
		sampleAlert("a1", "u1", model.AlertKindNewTrend),
		sampleAlert("a2", "u1", model.AlertKindTrendVelocitySpike),
	}
	if err := uc.DispatchBatch(context.Background(), alerts); err != nil {
		t.Fatalf("DispatchBatch: %v", err)
	}

	if len(st.messages) != 2 {
		t.Fatalf("stream messages = %d, want 2", len(st.messages))
	}
	var first, second model.Alert
	if err := json.Unmarshal(st.messages[0], &first); err != nil {
		t.Fatalf("decode first payload: %v", err)
	}
	if err := json.Unmarshal(st.messages[1], &second); err != nil {
		t.Fatalf("decode second payload: %v", err)
	}
	if first.ID != "a1" || second.ID != "a2" {
		t.Errorf("order = [%s %s], want [a1 a2]", first.ID, second.ID)
	}
}

func TestMapSeverityToMessageType(t *testing.T) {
	tests := []struct {
		severity model.AlertSeverity
		want     discord.MessageType
	}{
		{model.AlertSeverityCritical, discord.MessageTypeError},
		{model.AlertSeverityWarning, discord.MessageTypeWarning},
		{model.AlertSeverityInfo, discord.MessageTypeInfo},
		{model.AlertSeverity("unknown"), discord.MessageTypeInfo},
	}

	for _, tt := range tests {
		if got := mapSeverityToMessageType(tt.severity); got != tt.want {
			t.Errorf("mapSeverityToMessageType(%s) = %s, want %s", tt.severity, got, tt.want)
		}
	}
}

func TestBuildFieldTruncatesLongValues(t *testing.T) {
	long := make([]byte, discord.MaxFieldValueLen+50)
	for i := range long {
		long[i] = 'x'
	}

	field := buildField("Details", string(long), false)
	if len(field.Value) > discord.MaxFieldValueLen {
		t.Errorf("value length = %d, want <= %d", len(field.Value), discord.MaxFieldValueLen)
	}

	if empty := buildField("Details", "", false); empty.Value != "N/A" {
		t.Errorf("empty value = %q, want N/A", empty.Value)
	}
}
