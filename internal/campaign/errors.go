package campaign

import "errors"

var (
	ErrNotFound      = errors.New("campaign not found")
	ErrNilCampaign   = errors.New("campaign is required")
	ErrNameRequired  = errors.New("campaign name is required")
	ErrInvalidWindow = errors.New("campaign end date precedes start date")
)
