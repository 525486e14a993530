package qdrant

import (
	"context"

	pb "github.com/qdrant/go-client/qdrant"
)

// Facet counts the distinct values of a payload key over the points matching filter.
// Counts are exact; the key must carry a keyword or integer index.
func (c *qdrantImpl) Facet(ctx context.Context, collectionName string, key string, limit uint64, filter *pb.Filter) ([]FacetResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if key == "" {
		return nil, ErrEmptyFacetKey
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	exact := true
	resp, err := c.pointsClient.Facet(ctx, &pb.FacetCounts{
		CollectionName: collectionName,
		Key:            key,
		Filter:         filter,
		Limit:          &limit,
		Exact:          &exact,
	})
	if err != nil {
		return nil, WrapError(err, "failed to get facets")
	}

	results := make([]FacetResult, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		var val interface{}
		switch v := hit.GetValue().GetVariant().(type) {
		case *pb.FacetValue_StringValue:
			val = v.StringValue
		case *pb.FacetValue_IntegerValue:
			val = v.IntegerValue
		case *pb.FacetValue_BoolValue:
			val = v.BoolValue
		}
		results = append(results, FacetResult{Value: val, Count: hit.Count})
	}

	return results, nil
}
