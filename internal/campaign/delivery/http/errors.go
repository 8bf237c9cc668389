package http

import (
	"errors"
	"net/http"

	"insights-srv/internal/campaign"
	pkgErrors "insights-srv/pkg/errors"
	"insights-srv/pkg/response"
)

var (
	errInvalidStartDate = errors.New("start date is not a recognized timestamp")
	errInvalidEndDate   = errors.New("end date is not a recognized timestamp")
)

var createErrMap = response.ErrorMapping{
	campaign.ErrNameRequired:  pkgErrors.NewHTTPError(http.StatusBadRequest, "Campaign name is required"),
	campaign.ErrInvalidWindow: pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Campaign end date precedes start date"),
	errInvalidStartDate:       pkgErrors.NewHTTPError(http.StatusBadRequest, "Start date is not a recognized timestamp"),
	errInvalidEndDate:         pkgErrors.NewHTTPError(http.StatusBadRequest, "End date is not a recognized timestamp"),
}

var detailErrMap = response.ErrorMapping{
	campaign.ErrNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Campaign not found"),
}
