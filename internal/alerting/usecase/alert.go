package usecase

import (
	"context"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/alerting/repository"
	"insights-srv/internal/model"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip alerting.GetInput) (alerting.GetAlertOutput, error) {
	alerts, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alerting.usecase.Get: %v", err)
		return alerting.GetAlertOutput{}, err
	}

	return alerting.GetAlertOutput{Alerts: alerts, Paginator: pag}, nil
}

func (uc *usecase) MarkRead(ctx context.Context, sc model.Scope, alertID string) (model.Alert, error) {
	a, err := uc.repo.MarkRead(ctx, sc, repository.MarkReadOptions{ID: alertID, Now: time.Now().UTC()})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alerting.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.alerting.usecase.MarkRead: %v", err)
		return model.Alert{}, err
	}

	return a, nil
}
