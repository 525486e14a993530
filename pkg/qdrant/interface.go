package qdrant

import (
	"context"
	"crypto/tls"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// IQdrant aggregates all Qdrant vector DB operations.
type IQdrant interface {
	CollectionsOps
	PointsOps
	SearchOps
	Close() error
	Ping(ctx context.Context) error
}

// CollectionsOps defines interface for collection-related operations.
type CollectionsOps interface {
	CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error
	CollectionExists(ctx context.Context, name string) (bool, error)
	GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error)
	CreateFieldIndex(ctx context.Context, name string, index FieldIndex) error
	// EnsureCollection creates the collection and its payload indexes when it does not exist yet.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance, indexes []FieldIndex) error
}

// PointsOps defines interface for point-related operations.
type PointsOps interface {
	UpsertPoints(ctx context.Context, colName string, points []Point) error
	CountPoints(ctx context.Context, colName string, filter *pb.Filter) (uint64, error)
	Scroll(ctx context.Context, colName string, filter *pb.Filter, limit uint32, offset string) (ScrollResult, error)
}

// SearchOps defines interface for search operations.
type SearchOps interface {
	SearchWithFilter(ctx context.Context, colName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error)
	Facet(ctx context.Context, colName string, key string, limit uint64, filter *pb.Filter) ([]FacetResult, error)
}

// NewQdrant creates a new Qdrant client. Returns an implementation of IQdrant.
func NewQdrant(cfg QdrantConfig) (IQdrant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if cfg.UseTLS {
		opts[0] = grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}))
	}
	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	client := &qdrantImpl{
		conn:              conn,
		pointsClient:      pb.NewPointsClient(conn),
		collectionsClient: pb.NewCollectionsClient(conn),
		defaultTimeout:    cfg.Timeout,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping Qdrant: %w", err)
	}

	return client, nil
}

func apiKeyInterceptor(key string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, apiKeyHeader, key)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
