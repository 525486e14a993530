package qdrant

import (
	"context"
	"fmt"
	"strconv"

	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/internal/point/repository"
)

func (r *implRepository) Facet(ctx context.Context, opt repository.FacetOptions) ([]point.FacetOutput, error) {
	pkgResults, err := r.client.Facet(ctx, opt.Collection, opt.Key, opt.Limit, opt.Filter)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Facet: Failed to facet %s on %s: %v", opt.Collection, opt.Key, err)
		return nil, err
	}

	results := make([]point.FacetOutput, len(pkgResults))
	for i, pr := range pkgResults {
		results[i] = point.FacetOutput{
			Value: facetValueString(pr.Value),
			Count: pr.Count,
		}
	}

	return results, nil
}

func facetValueString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
