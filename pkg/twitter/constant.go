package twitter

const (
	// BaseURL is the X API v2 root.
	BaseURL = "https://api.x.com/2"

	recentSearchPath = "/tweets/search/recent"
	tweetFields      = "id,text,created_at,author_id,conversation_id,lang,public_metrics"
	userFields       = "username"
	expansions       = "author_id"

	// MaxPageSize is the largest max_results accepted by recent search.
	MaxPageSize = 100
	// MinPageSize is the smallest max_results accepted by recent search.
	MinPageSize = 10

	// StatusURLFormat builds the public link of a tweet from its ID.
	StatusURLFormat = "https://twitter.com/i/web/status/%s"
)
