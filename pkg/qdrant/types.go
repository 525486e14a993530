package qdrant

import (
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// QdrantConfig holds Qdrant configuration
type QdrantConfig struct {
	Host    string
	Port    int
	UseTLS  bool
	APIKey  string
	Timeout time.Duration
}

type qdrantImpl struct {
	conn              *grpc.ClientConn
	pointsClient      pb.PointsClient
	collectionsClient pb.CollectionsClient
	defaultTimeout    time.Duration
}

// Point represents a vector point in Qdrant
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}

// SearchResult represents a search result from Qdrant
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

// ScrollResult is one page of a Scroll call. NextOffset is empty on the last page.
type ScrollResult struct {
	Points     []Point
	NextOffset string
}

// FacetResult is one value of a payload facet and the number of points carrying it.
type FacetResult struct {
	Value interface{}
	Count uint64
}

// FieldIndex describes a payload index created by EnsureCollection.
type FieldIndex struct {
	Field string
	Type  FieldType
}

// CollectionInfo represents collection metadata
type CollectionInfo struct {
	Name        string
	VectorSize  uint64
	Distance    string
	PointsCount uint64
	Status      string
}
