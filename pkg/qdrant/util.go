package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Validate validates the Qdrant configuration
func (cfg QdrantConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// GetDistanceMetric returns the appropriate distance metric
func GetDistanceMetric(metric string) pb.Distance {
	switch metric {
	case DistanceCosine:
		return pb.Distance_Cosine
	case DistanceEuclidean:
		return pb.Distance_Euclid
	case DistanceDot:
		return pb.Distance_Dot
	case DistanceManhattan:
		return pb.Distance_Manhattan
	default:
		return pb.Distance_Cosine
	}
}

func fieldType(t FieldType) pb.FieldType {
	switch t {
	case FieldTypeInteger:
		return pb.FieldType_FieldTypeInteger
	case FieldTypeFloat:
		return pb.FieldType_FieldTypeFloat
	case FieldTypeText:
		return pb.FieldType_FieldTypeText
	default:
		return pb.FieldType_FieldTypeKeyword
	}
}

func uuidPointID(id string) *pb.PointId {
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}
}

func pointIDString(id *pb.PointId) string {
	if id == nil {
		return ""
	}
	if u := id.GetUuid(); u != "" {
		return u
	}
	return fmt.Sprintf("%d", id.GetNum())
}

func payloadToMap(payload map[string]*pb.Value) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		out[key] = valueToInterface(value)
	}
	return out
}

// valueToInterface converts a protobuf payload value into plain Go values:
// string, int64, float64, bool, nil, []interface{} or map[string]interface{}.
func valueToInterface(v *pb.Value) interface{} {
	if v == nil {
		return nil
	}
	switch k := v.GetKind().(type) {
	case *pb.Value_StringValue:
		return k.StringValue
	case *pb.Value_IntegerValue:
		return k.IntegerValue
	case *pb.Value_DoubleValue:
		return k.DoubleValue
	case *pb.Value_BoolValue:
		return k.BoolValue
	case *pb.Value_ListValue:
		items := k.ListValue.GetValues()
		list := make([]interface{}, 0, len(items))
		for _, item := range items {
			list = append(list, valueToInterface(item))
		}
		return list
	case *pb.Value_StructValue:
		return payloadToMap(k.StructValue.GetFields())
	default:
		return nil
	}
}
