package http

import (
	"insights-srv/internal/campaign"
	"insights-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc campaign.UseCase
}

func New(l log.Logger, uc campaign.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
