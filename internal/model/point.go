package model

// Point is a vector point stored in a Qdrant collection.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}
