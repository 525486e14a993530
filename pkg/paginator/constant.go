package paginator

const (
	DefaultPage = 1
	// DefaultLimit fits a week of daily ingestion runs plus retries on one page.
	DefaultLimit = 20
	MaxLimit     = 100
)
