package usecase

import (
	"time"

	"tweet-insights-srv/internal/ingestion"
	"tweet-insights-srv/internal/ingestion/repository"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/minio"
	"tweet-insights-srv/pkg/twitter"
)

// Config - ingestion job settings
type Config struct {
	Query     string // Recent-search query
	MaxTweets int    // Cap across result pages
	TopN      int    // Tweets kept after ranking
	Bucket    string // Object store bucket for chunk batches
}

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	twitter  twitter.ITwitter
	storage  minio.FileUploader
	producer ingestion.Producer
	chunker  *Chunker
	cfg      Config
	now      func() time.Time
}

// New - Factory function
func New(
	l log.Logger,
	repo repository.Repository,
	twitterClient twitter.ITwitter,
	storage minio.FileUploader,
	producer ingestion.Producer,
	chunker *Chunker,
	cfg Config,
) ingestion.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		twitter:  twitterClient,
		storage:  storage,
		producer: producer,
		chunker:  chunker,
		cfg:      cfg,
		now:      time.Now,
	}
}
