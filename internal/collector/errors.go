package collector

import "errors"

var (
	ErrMissingCredentials  = errors.New("missing platform credentials")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNilCampaign         = errors.New("campaign is required")
)
