package model

import (
	"encoding/hex"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// AlertSeverity represents how urgent an alert is.
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// IsValid checks if the alert severity is valid.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s AlertSeverity) String() string {
	return string(s)
}

// AlertKind identifies which signal produced an alert.
type AlertKind string

const (
	AlertKindGeneral               AlertKind = "general"
	AlertKindNewTrend              AlertKind = "new_trend"
	AlertKindTrendVelocitySpike    AlertKind = "trend_velocity_spike"
	AlertKindCampaignPerformance   AlertKind = "campaign_performance_change"
	AlertKindNegativeSentimentRise AlertKind = "negative_sentiment_surge"
)

// IsValid checks if the alert kind is valid.
func (k AlertKind) IsValid() bool {
	switch k {
	case AlertKindGeneral,
		AlertKindNewTrend,
		AlertKindTrendVelocitySpike,
		AlertKindCampaignPerformance,
		AlertKindNegativeSentimentRise:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k AlertKind) String() string {
	return string(k)
}

// Related entity types for the loose back-reference on an alert.
const (
	EntityTypeCampaign = "campaign"
	EntityTypeTrend    = "trend"
)

// Alert is a single detected condition. Immutable once constructed except
// for the read flag.
type Alert struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	Message           string        `json:"message"`
	Kind              AlertKind     `json:"kind"`
	Severity          AlertSeverity `json:"severity"`
	RelatedEntityID   string        `json:"related_entity_id,omitempty"`
	RelatedEntityType string        `json:"related_entity_type,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	IsRead            bool          `json:"is_read"`
	ReadAt            null.Time     `json:"read_at"`
}

// NewAlertID generates a short alert identifier.
func NewAlertID() string {
	u := uuid.New()
	return "alert_" + hex.EncodeToString(u[:])[:10]
}

// NewAlert constructs an unread alert with a generated id.
func NewAlert(userID, message string, kind AlertKind, severity AlertSeverity, relatedID, relatedType string, now time.Time) Alert {
	return Alert{
		ID:                NewAlertID(),
		UserID:            userID,
		Message:           message,
		Kind:              kind,
		Severity:          severity,
		RelatedEntityID:   relatedID,
		RelatedEntityType: relatedType,
		CreatedAt:         now,
	}
}

// MarkRead flags the alert as read. Idempotent: the first read timestamp is
// kept on repeated calls.
func (a *Alert) MarkRead(now time.Time) {
	if a.IsRead {
		return
	}
	a.IsRead = true
	a.ReadAt = null.TimeFrom(now)
}
