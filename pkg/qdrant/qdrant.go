package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Close closes the Qdrant connection.
func (c *qdrantImpl) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks if Qdrant is reachable.
func (c *qdrantImpl) Ping(ctx context.Context) error {
	_, err := c.collectionsClient.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// withTimeout applies the client default timeout when ctx has no deadline of its own.
func (c *qdrantImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.defaultTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.defaultTimeout)
}

// CreateCollection creates a new collection in Qdrant.
func (c *qdrantImpl) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	if name == "" {
		return ErrEmptyCollection
	}
	if vectorSize == 0 {
		return ErrInvalidVectorSize
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Create(ctx, &pb.CreateCollection{
		CollectionName: name,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: distance,
				},
			},
		},
	})
	if err != nil {
		return WrapError(err, "failed to create collection")
	}
	return nil
}

// CollectionExists checks if a collection exists.
func (c *qdrantImpl) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.CollectionExists(ctx, &pb.CollectionExistsRequest{CollectionName: name})
	if err != nil {
		return false, WrapError(err, "failed to check collection")
	}
	return resp.GetResult().GetExists(), nil
}

// GetCollectionInfo retrieves information about a collection.
func (c *qdrantImpl) GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	if name == "" {
		return nil, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: name})
	if err != nil {
		return nil, WrapError(err, "failed to get collection info")
	}
	if resp.Result == nil {
		return nil, ErrCollectionNotFound
	}
	info := &CollectionInfo{
		Name:        name,
		Status:      resp.Result.Status.String(),
		PointsCount: resp.Result.GetPointsCount(),
	}
	if resp.Result.Config != nil && resp.Result.Config.Params != nil {
		if vectorConfig := resp.Result.Config.Params.VectorsConfig; vectorConfig != nil {
			if params := vectorConfig.GetParams(); params != nil {
				info.VectorSize = params.Size
				info.Distance = params.Distance.String()
			}
		}
	}
	return info, nil
}

// CreateFieldIndex creates a payload index on a collection field.
func (c *qdrantImpl) CreateFieldIndex(ctx context.Context, name string, index FieldIndex) error {
	if name == "" {
		return ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	ft := fieldType(index.Type)
	wait := true
	_, err := c.pointsClient.CreateFieldIndex(ctx, &pb.CreateFieldIndexCollection{
		CollectionName: name,
		FieldName:      index.Field,
		FieldType:      &ft,
		Wait:           &wait,
	})
	if err != nil {
		return WrapError(err, fmt.Sprintf("failed to create index on %s", index.Field))
	}
	return nil
}

// EnsureCollection creates the collection and its indexes if missing. Existing collections are left untouched.
func (c *qdrantImpl) EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance, indexes []FieldIndex) error {
	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := c.CreateCollection(ctx, name, vectorSize, distance); err != nil {
		return err
	}
	for _, idx := range indexes {
		if err := c.CreateFieldIndex(ctx, name, idx); err != nil {
			return err
		}
	}
	return nil
}

// UpsertPoints inserts or updates multiple points in a collection.
func (c *qdrantImpl) UpsertPoints(ctx context.Context, collectionName string, points []Point) error {
	if collectionName == "" {
		return ErrEmptyCollection
	}
	if len(points) == 0 {
		return nil
	}
	qdrantPoints := make([]*pb.PointStruct, 0, len(points))
	for _, point := range points {
		if point.ID == "" {
			return ErrInvalidPointID
		}
		if len(point.Vector) == 0 {
			return ErrInvalidVector
		}
		payloadMap, err := pb.TryValueMap(point.Payload)
		if err != nil {
			return WrapError(err, "failed to convert payload")
		}
		qdrantPoints = append(qdrantPoints, &pb.PointStruct{
			Id:      uuidPointID(point.ID),
			Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: point.Vector}}},
			Payload: payloadMap,
		})
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	wait := true
	_, err := c.pointsClient.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: collectionName,
		Wait:           &wait,
		Points:         qdrantPoints,
	})
	if err != nil {
		return WrapError(err, "failed to upsert points")
	}
	return nil
}

// CountPoints returns the exact number of points matching filter. A nil filter counts the collection.
func (c *qdrantImpl) CountPoints(ctx context.Context, collectionName string, filter *pb.Filter) (uint64, error) {
	if collectionName == "" {
		return 0, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	exact := true
	resp, err := c.pointsClient.Count(ctx, &pb.CountPoints{
		CollectionName: collectionName,
		Filter:         filter,
		Exact:          &exact,
	})
	if err != nil {
		return 0, WrapError(err, "failed to count points")
	}
	if resp.Result == nil {
		return 0, nil
	}
	return resp.Result.Count, nil
}

// Scroll pages through points matching filter without a query vector.
func (c *qdrantImpl) Scroll(ctx context.Context, collectionName string, filter *pb.Filter, limit uint32, offset string) (ScrollResult, error) {
	if collectionName == "" {
		return ScrollResult{}, ErrEmptyCollection
	}
	if limit == 0 {
		limit = DefaultScrollLimit
	}
	req := &pb.ScrollPoints{
		CollectionName: collectionName,
		Filter:         filter,
		Limit:          &limit,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	}
	if offset != "" {
		req.Offset = uuidPointID(offset)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Scroll(ctx, req)
	if err != nil {
		return ScrollResult{}, WrapError(err, "failed to scroll points")
	}

	out := ScrollResult{Points: make([]Point, 0, len(resp.Result))}
	for _, p := range resp.Result {
		out.Points = append(out.Points, Point{ID: pointIDString(p.Id), Payload: payloadToMap(p.Payload)})
	}
	if resp.NextPageOffset != nil {
		out.NextOffset = pointIDString(resp.NextPageOffset)
	}
	return out, nil
}

// SearchWithFilter performs a vector similarity search with payload filter.
func (c *qdrantImpl) SearchWithFilter(ctx context.Context, collectionName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if len(vector) == 0 {
		return nil, ErrInvalidVector
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Search(ctx, &pb.SearchPoints{
		CollectionName: collectionName,
		Vector:         vector,
		Limit:          limit,
		Filter:         filter,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, WrapError(err, "failed to search with filter")
	}

	results := make([]SearchResult, 0, len(resp.Result))
	for _, hit := range resp.Result {
		results = append(results, SearchResult{ID: pointIDString(hit.Id), Score: hit.Score, Payload: payloadToMap(hit.Payload)})
	}
	return results, nil
}
