package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"insights-srv/internal/campaign"
	"insights-srv/internal/campaign/repository"
	"insights-srv/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip campaign.CreateInput) (campaign.CampaignOutput, error) {
	if ip.Name == "" {
		return campaign.CampaignOutput{}, campaign.ErrNameRequired
	}
	if ip.StartDate != nil && ip.EndDate != nil && ip.EndDate.Before(*ip.StartDate) {
		return campaign.CampaignOutput{}, campaign.ErrInvalidWindow
	}

	now := time.Now()
	c := model.NewCampaign(
		uuid.NewString(),
		sc.UserID,
		ip.Name,
		ip.StartDate,
		ip.EndDate,
		ip.TrackedKeywords,
		ip.TrackedHashtags,
		ip.TrackedAccountIDs,
		now,
	)

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Campaign: *c})
	if err != nil {
		uc.l.Errorf(ctx, "internal.campaign.usecase.Create: %v", err)
		return campaign.CampaignOutput{}, err
	}

	return campaign.CampaignOutput{Campaign: created}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (campaign.CampaignOutput, error) {
	c, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return campaign.CampaignOutput{}, campaign.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.campaign.usecase.Detail: %v", err)
		return campaign.CampaignOutput{}, err
	}

	return campaign.CampaignOutput{Campaign: c}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip campaign.GetInput) (campaign.GetCampaignOutput, error) {
	campaigns, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.campaign.usecase.Get: %v", err)
		return campaign.GetCampaignOutput{}, err
	}

	return campaign.GetCampaignOutput{Campaigns: campaigns, Paginator: pag}, nil
}

// RefreshMetrics runs one matching and aggregation pass over every campaign
// in scope. Campaigns that disappear mid-pass are skipped; a bad item inside
// the batch never aborts the pass.
func (uc *usecase) RefreshMetrics(ctx context.Context, sc model.Scope, ip campaign.RefreshMetricsInput) (campaign.RefreshMetricsOutput, error) {
	now := ip.Now
	if now.IsZero() {
		now = time.Now()
	}

	campaigns, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.campaign.usecase.RefreshMetrics: %v", err)
		return campaign.RefreshMetricsOutput{}, err
	}

	out := campaign.RefreshMetricsOutput{
		Campaigns:   make([]model.Campaign, 0, len(campaigns)),
		MatchedByID: make(map[string][]model.ContentItem, len(campaigns)),
	}

	for i := range campaigns {
		c := campaigns[i]

		matched, err := uc.Match(ctx, &c, ip.Items)
		if err != nil {
			uc.l.Errorf(ctx, "internal.campaign.usecase.RefreshMetrics: match %s: %v", c.ID, err)
			return campaign.RefreshMetricsOutput{}, err
		}
		if err := uc.Aggregate(ctx, &c, matched, now); err != nil {
			uc.l.Errorf(ctx, "internal.campaign.usecase.RefreshMetrics: aggregate %s: %v", c.ID, err)
			return campaign.RefreshMetricsOutput{}, err
		}

		if _, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Campaign: c}); err != nil {
			if err == repository.ErrNotFound {
				uc.l.Warnf(ctx, "internal.campaign.usecase.RefreshMetrics: campaign %s vanished mid-pass", c.ID)
				continue
			}
			uc.l.Errorf(ctx, "internal.campaign.usecase.RefreshMetrics: update %s: %v", c.ID, err)
			return campaign.RefreshMetricsOutput{}, err
		}

		out.Campaigns = append(out.Campaigns, c)
		out.MatchedByID[c.ID] = matched
	}

	return out, nil
}
