package qdrant

import (
	"testing"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
)

func TestValueToInterface(t *testing.T) {
	payload, err := pb.TryValueMap(map[string]interface{}{
		"text":            "CDC guidance",
		"created_ts":      int64(1700000000),
		"popularity":      1.5,
		"linked_entities": []interface{}{"CDC", "WHO"},
	})
	assert.NoError(t, err)

	got := payloadToMap(payload)
	assert.Equal(t, "CDC guidance", got["text"])
	assert.Equal(t, int64(1700000000), got["created_ts"])
	assert.Equal(t, 1.5, got["popularity"])
	assert.Equal(t, []interface{}{"CDC", "WHO"}, got["linked_entities"])
	assert.Nil(t, valueToInterface(nil))
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, QdrantConfig{}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, QdrantConfig{Host: "h", Port: 70000}.Validate(), ErrInvalidConfig)
	assert.NoError(t, QdrantConfig{Host: "h", Port: 6334}.Validate())
}

func TestPointIDString(t *testing.T) {
	assert.Equal(t, "abc", pointIDString(uuidPointID("abc")))
	assert.Equal(t, "7", pointIDString(&pb.PointId{PointIdOptions: &pb.PointId_Num{Num: 7}}))
	assert.Equal(t, "", pointIDString(nil))
}
