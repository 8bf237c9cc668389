package discord

import "time"

// Embed accent colors by message type.
const (
	ColorInfo    = 3447003
	ColorSuccess = 3066993
	ColorWarning = 16776960
	ColorError   = 15158332
)

// Character limits Discord applies to webhook embeds.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	MaxEmbedLen       = 6000
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = time.Second

	defaultUsername = "Insights Bot"
	userAgent       = "insights-srv/1.0"
	reportBugTitle  = "Insights Service Error Report"
)
