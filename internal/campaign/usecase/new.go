package usecase

import (
	"insights-srv/internal/campaign"
	"insights-srv/internal/campaign/repository"
	pkgLog "insights-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) campaign.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
