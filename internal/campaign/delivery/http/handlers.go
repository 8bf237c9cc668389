package http

import (
	"net/http"

	"insights-srv/internal/middleware"
	pkgErrors "insights-srv/pkg/errors"
	"insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create creates a campaign in the caller's scope.
// @Summary Create campaign
// @Description Create a tracked campaign with a date window and content-matching criteria
// @Tags Campaign
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param body body createCampaignReq true "Campaign"
// @Success 200 {object} campaignResp
// @Failure 400 {object} response.Resp "Invalid payload"
// @Failure 422 {object} response.Resp "End date precedes start date"
// @Router /api/v1/campaigns [post]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.campaign.delivery.http.Create.ShouldBindJSON: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, createErrMap)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.campaign.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, createErrMap)
		return
	}

	response.OK(c, newCampaignResp(o.Campaign))
}

// List lists the caller's campaigns, newest first.
// @Summary List campaigns
// @Description List the caller's campaigns with pagination
// @Tags Campaign
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listCampaignResp
// @Router /api/v1/campaigns [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listCampaignReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.campaign.delivery.http.List.ShouldBindQuery: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.campaign.delivery.http.List: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newListCampaignResp(o))
}

// Detail returns one campaign by id.
// @Summary Campaign detail
// @Description Fetch one campaign with its current metrics and status
// @Tags Campaign
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Campaign ID"
// @Success 200 {object} campaignResp
// @Failure 404 {object} response.Resp "Campaign not found"
// @Router /api/v1/campaigns/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	o, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.campaign.delivery.http.Detail: %v", err)
		response.ErrorWithMap(c, err, detailErrMap)
		return
	}

	response.OK(c, newCampaignResp(o.Campaign))
}
