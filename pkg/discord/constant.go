package discord

import "time"

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultUsername   = "tweet-insights-srv"

	// Discord rejects embed descriptions above this length.
	maxDescriptionLength = 4096

	colorInfo    = 0x3498DB
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)
