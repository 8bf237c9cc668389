package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"insights-srv/internal/model"
	"insights-srv/pkg/discord"
)

func (uc *implUseCase) DispatchAlert(ctx context.Context, alert model.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		uc.logger.Errorf(ctx, "internal.notify.usecase.DispatchAlert: %v", err)
		return err
	}

	if uc.discord != nil {
		if err := uc.discord.SendEmbed(ctx, buildAlertEmbed(alert)); err != nil {
			uc.logger.Warnf(ctx, "internal.notify.usecase.DispatchAlert: discord: %v", err)
		}
	}

	if uc.redis != nil {
		channel := fmt.Sprintf("alert:%s:user:%s", alert.Kind, alert.UserID)
		if err := uc.redis.Publish(ctx, channel, payload); err != nil {
			uc.logger.Warnf(ctx, "internal.notify.usecase.DispatchAlert: redis: %v", err)
		}
	}

	if uc.stream != nil {
		uc.stream.SendToUser(alert.UserID, payload)
	}

	return nil
}

func (uc *implUseCase) DispatchBatch(ctx context.Context, alerts []model.Alert) error {
	for _, a := range alerts {
		if err := uc.DispatchAlert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func buildAlertEmbed(alert model.Alert) discord.MessageOptions {
	fields := []discord.EmbedField{
		buildField("Severity", alert.Severity.String(), true),
		buildField("Kind", alert.Kind.String(), true),
		buildField("User", alert.UserID, true),
	}
	if alert.RelatedEntityID != "" {
		fields = append(fields, buildField("Related", fmt.Sprintf("%s: %s", alert.RelatedEntityType, alert.RelatedEntityID), false))
	}

	return discord.MessageOptions{
		Type:        mapSeverityToMessageType(alert.Severity),
		Title:       alertTitle(alert.Kind),
		Description: alert.Message,
		Fields:      fields,
		Timestamp:   alert.CreatedAt,
		Footer: &discord.EmbedFooter{
			Text: "Insights Service • Alert Monitor",
		},
	}
}
