package twitter

import (
	"context"
	"fmt"
	"time"

	pkghttp "tweet-insights-srv/pkg/http"
)

// ITwitter reads tweets from the X API v2.
type ITwitter interface {
	// SearchRecent pages through recent search until MaxTweets is reached or results run out.
	SearchRecent(ctx context.Context, in SearchRecentInput) ([]Tweet, error)
}

// New creates an X API client.
func New(cfg Config) (ITwitter, error) {
	if cfg.BearerToken == "" {
		return nil, fmt.Errorf("twitter: bearer token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &twitterImpl{
		bearerToken: cfg.BearerToken,
		baseURL:     cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   2,
			RetryWait: 2 * time.Second,
		}),
	}, nil
}

// StatusURL returns the public link of a tweet.
func StatusURL(id string) string {
	return fmt.Sprintf(StatusURLFormat, id)
}
