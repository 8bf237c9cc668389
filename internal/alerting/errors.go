package alerting

import "errors"

var (
	ErrNotFound    = errors.New("alert not found")
	ErrNilCampaign = errors.New("campaign is required")
)
