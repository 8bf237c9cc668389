package http

import (
	"net/http"

	"insights-srv/internal/alerting"
	pkgErrors "insights-srv/pkg/errors"
	"insights-srv/pkg/response"
)

var markReadErrMap = response.ErrorMapping{
	alerting.ErrNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Alert not found"),
}
