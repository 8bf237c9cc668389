package http

import (
	"insights-srv/internal/alerting"
	"insights-srv/internal/analysis"
	"insights-srv/internal/campaign"
	"insights-srv/internal/collector"
	"insights-srv/pkg/log"
)

// Handler serves the alert routes and the evaluation pipeline, which walks
// campaign matching, text analysis and signal evaluation in one request.
type Handler struct {
	l          log.Logger
	uc         alerting.UseCase
	campaignUC campaign.UseCase
	analysisUC analysis.UseCase

	// collectors is optional. When present, an evaluation request without
	// items pulls live content for the caller's campaigns.
	collectors *collector.Manager
}

func New(l log.Logger, uc alerting.UseCase, campaignUC campaign.UseCase, analysisUC analysis.UseCase, collectors *collector.Manager) *Handler {
	return &Handler{
		l:          l,
		uc:         uc,
		campaignUC: campaignUC,
		analysisUC: analysisUC,
		collectors: collectors,
	}
}
