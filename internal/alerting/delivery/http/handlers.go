package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"insights-srv/internal/alerting"
	"insights-srv/internal/campaign"
	"insights-srv/internal/middleware"
	"insights-srv/internal/model"
	pkgErrors "insights-srv/pkg/errors"
	"insights-srv/pkg/paginator"
	"insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Evaluate runs one evaluation cycle over a content batch: match items to the
// caller's campaigns, refresh campaign metrics, analyze sentiment and topics,
// then run every alert signal and dispatch what fires.
// @Summary Run evaluation cycle
// @Description Evaluate a content batch against the caller's campaigns and emit alerts. With no items in the body, content is fetched live from the configured platforms.
// @Tags Alert
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param body body evaluateReq false "Evaluation batch"
// @Success 200 {object} evaluateResp
// @Failure 400 {object} response.Resp "Invalid payload"
// @Router /api/v1/evaluate [post]
func (h *Handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req evaluateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "internal.alerting.delivery.http.Evaluate.ShouldBindJSON: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	items := req.Items
	if len(items) == 0 && h.collectors != nil {
		items = h.fetchScopeItems(ctx, sc, req.FetchLimit)
	}

	topics := req.topics()
	if len(topics) == 0 && len(items) > 0 {
		ao, err := h.analysisUC.AnalyzeItems(ctx, items, req.TopN)
		if err != nil {
			h.l.Warnf(ctx, "internal.alerting.delivery.http.Evaluate.AnalyzeItems: %v", err)
		} else {
			items = ao.Items
			topics = ao.Topics
		}
	}

	ro, err := h.campaignUC.RefreshMetrics(ctx, sc, campaign.RefreshMetricsInput{Items: items})
	if err != nil {
		h.l.Errorf(ctx, "internal.alerting.delivery.http.Evaluate.RefreshMetrics: %v", err)
		response.Error(c, err, nil)
		return
	}

	co, err := h.uc.RunCycle(ctx, sc, alerting.CycleInput{
		Campaigns:       ro.Campaigns,
		TopicCounts:     topics,
		ItemsByCampaign: ro.MatchedByID,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.alerting.delivery.http.Evaluate.RunCycle: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newEvaluateResp(len(items), ro.Campaigns, ro.MatchedByID, topics, co.Alerts))
}

// fetchScopeItems pulls live content for every campaign in the scope. Fetch
// failures degrade to an empty batch rather than failing the cycle.
func (h *Handler) fetchScopeItems(ctx context.Context, sc model.Scope, limit int) []model.ContentItem {
	o, err := h.campaignUC.Get(ctx, sc, campaign.GetInput{
		PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: paginator.MaxLimit},
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.alerting.delivery.http.fetchScopeItems: %v", err)
		return nil
	}

	var items []model.ContentItem
	for i := range o.Campaigns {
		fetched, err := h.collectors.FetchForCampaign(ctx, &o.Campaigns[i], limit)
		if err != nil {
			h.l.Errorf(ctx, "internal.alerting.delivery.http.fetchScopeItems: campaign %s: %v", o.Campaigns[i].ID, err)
			continue
		}
		items = append(items, fetched...)
	}
	return items
}

// List lists the caller's alerts, newest first.
// @Summary List alerts
// @Description List the caller's alerts with pagination
// @Tags Alert
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listAlertResp
// @Router /api/v1/alerts [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listAlertReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alerting.delivery.http.List.ShouldBindQuery: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.alerting.delivery.http.List: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newListAlertResp(o))
}

// MarkRead marks one alert as read. Idempotent.
// @Summary Mark alert read
// @Description Mark one alert as read. Repeated calls keep the first read timestamp.
// @Tags Alert
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Alert not found"
// @Router /api/v1/alerts/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	alert, err := h.uc.MarkRead(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.alerting.delivery.http.MarkRead: %v", err)
		response.ErrorWithMap(c, err, markReadErrMap)
		return
	}

	response.OK(c, newAlertResp(alert))
}
