package usecase

import (
	"context"
	"fmt"

	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
	pkgQdrant "tweet-insights-srv/pkg/qdrant"
)

// collectionIndexes lists the payload indexes each collection needs for filtering and faceting.
var collectionIndexes = map[string][]pkgQdrant.FieldIndex{
	point.CollectionTweets: {
		{Field: "created_ts", Type: pkgQdrant.FieldTypeInteger},
		{Field: "created_day", Type: pkgQdrant.FieldTypeKeyword},
		{Field: "sentiment", Type: pkgQdrant.FieldTypeKeyword},
		{Field: "language", Type: pkgQdrant.FieldTypeKeyword},
		{Field: "linked_entities", Type: pkgQdrant.FieldTypeKeyword},
		{Field: "text", Type: pkgQdrant.FieldTypeText},
	},
	point.CollectionTweetChunks: {
		{Field: "language", Type: pkgQdrant.FieldTypeKeyword},
		{Field: "tweet_id", Type: pkgQdrant.FieldTypeKeyword},
	},
}

func (uc *implUseCase) EnsureCollections(ctx context.Context) error {
	for _, name := range []string{point.CollectionTweets, point.CollectionTweetChunks} {
		if err := uc.repo.EnsureCollection(ctx, repository.EnsureCollectionOptions{
			Collection: name,
			VectorSize: uc.vectorSize,
			Indexes:    collectionIndexes[name],
		}); err != nil {
			uc.l.Errorf(ctx, "point.usecase.EnsureCollections: %s: %v", name, err)
			return fmt.Errorf("ensure collection %s: %w", name, err)
		}
	}
	return nil
}

func validCollection(name string) bool {
	_, ok := collectionIndexes[name]
	return ok
}
