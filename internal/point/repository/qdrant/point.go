package qdrant

import (
	"context"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
	pkgQdrant "tweet-insights-srv/pkg/qdrant"

	"github.com/qdrant/go-client/qdrant"
)

func (r *implRepository) EnsureCollection(ctx context.Context, opt repository.EnsureCollectionOptions) error {
	if err := r.client.EnsureCollection(ctx, opt.Collection, opt.VectorSize, qdrant.Distance_Cosine, opt.Indexes); err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.EnsureCollection: Failed to ensure collection %s: %v", opt.Collection, err)
		return err
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]point.SearchOutput, error) {
	pkgResults, err := r.client.SearchWithFilter(ctx, opt.Collection, opt.Vector, opt.Limit, opt.Filter)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Search: Failed to search points in %s: %v", opt.Collection, err)
		return nil, err
	}

	results := make([]point.SearchOutput, 0, len(pkgResults))
	for _, pr := range pkgResults {
		if opt.ScoreThreshold > 0 && pr.Score < opt.ScoreThreshold {
			continue
		}
		results = append(results, point.SearchOutput{
			ID:      pr.ID,
			Score:   pr.Score,
			Payload: pr.Payload,
		})
	}
	return results, nil
}

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) error {
	pkgPoints := make([]pkgQdrant.Point, len(opt.Points))
	for i, p := range opt.Points {
		pkgPoints[i] = pkgQdrant.Point{
			ID:      p.ID,
			Vector:  p.Vector,
			Payload: p.Payload,
		}
	}
	if err := r.client.UpsertPoints(ctx, opt.Collection, pkgPoints); err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Upsert: Failed to upsert %d points into %s: %v", len(pkgPoints), opt.Collection, err)
		return err
	}
	return nil
}

func (r *implRepository) Scroll(ctx context.Context, opt repository.ScrollOptions) ([]model.Point, error) {
	res, err := r.client.Scroll(ctx, opt.Collection, opt.Filter, opt.Limit, "")
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Scroll: Failed to scroll %s: %v", opt.Collection, err)
		return nil, err
	}

	points := make([]model.Point, len(res.Points))
	for i, p := range res.Points {
		points[i] = model.Point{
			ID:      p.ID,
			Vector:  p.Vector,
			Payload: p.Payload,
		}
	}
	return points, nil
}
