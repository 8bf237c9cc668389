package usecase

import (
	"insights-srv/internal/model"
	"insights-srv/pkg/discord"
)

// mapSeverityToMessageType maps alert severity to a Discord embed style.
func mapSeverityToMessageType(severity model.AlertSeverity) discord.MessageType {
	switch severity {
	case model.AlertSeverityCritical:
		return discord.MessageTypeError
	case model.AlertSeverityWarning:
		return discord.MessageTypeWarning
	case model.AlertSeverityInfo:
		return discord.MessageTypeInfo
	default:
		return discord.MessageTypeInfo
	}
}

func alertTitle(kind model.AlertKind) string {
	switch kind {
	case model.AlertKindNewTrend:
		return "New Trend Detected"
	case model.AlertKindTrendVelocitySpike:
		return "Trend Growing Rapidly"
	case model.AlertKindCampaignPerformance:
		return "Campaign Performance Change"
	case model.AlertKindNegativeSentimentRise:
		return "Negative Sentiment Surge"
	default:
		return "Campaign Insights Alert"
	}
}

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	if len(value) > discord.MaxFieldValueLen {
		value = truncateText(value, discord.MaxFieldValueLen)
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
