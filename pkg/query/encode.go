package query

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// EncodeProperties converts an open property record into the typed wire
// form. Keys are processed in sorted order so encoding is deterministic.
func EncodeProperties(props types.Properties) (*proto.ObjectProperties, error) {
	if len(props) == 0 {
		return &proto.ObjectProperties{}, nil
	}
	out := &proto.ObjectProperties{}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		if err := encodeProperty(out, name, props[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeProperty(out *proto.ObjectProperties, name string, value any) error {
	switch v := value.(type) {
	case nil:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, NullValue: true})
	case string:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, TextValue: &v})
	case bool:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, BooleanValue: &v})
	case int:
		i := int64(v)
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, IntValue: &i})
	case int32:
		i := int64(v)
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, IntValue: &i})
	case int64:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, IntValue: &v})
	case float32:
		n := float64(v)
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, NumberValue: &n})
	case float64:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, NumberValue: &v})
	case time.Time:
		d := v.Format(time.RFC3339Nano)
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, DateValue: &d})
	case uuid.UUID:
		u := v.String()
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, UuidValue: &u})
	case []byte:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, BlobValue: v})
	case types.GeoCoordinate:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, GeoValue: &proto.GeoCoordinate{
			Latitude: v.Latitude, Longitude: v.Longitude,
		}})
	case *types.GeoCoordinate:
		return encodeProperty(out, name, *v)
	case types.PhoneNumber:
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, PhoneValue: &proto.PhoneNumber{
			Input: v.Input, DefaultCountry: v.DefaultCountry,
		}})
	case *types.PhoneNumber:
		return encodeProperty(out, name, *v)
	case types.Properties:
		nested, err := EncodeProperties(v)
		if err != nil {
			return err
		}
		out.Scalars = append(out.Scalars, &proto.ScalarProperty{PropName: name, NestedValue: nested})
	case map[string]any:
		return encodeProperty(out, name, types.Properties(v))
	case []string:
		out.TextArrays = append(out.TextArrays, &proto.TextArrayProperty{PropName: name, Values: v})
	case []bool:
		out.BooleanArrays = append(out.BooleanArrays, &proto.BooleanArrayProperty{PropName: name, Values: v})
	case []int:
		vals := make([]int64, len(v))
		for i, n := range v {
			vals[i] = int64(n)
		}
		out.IntArrays = append(out.IntArrays, &proto.IntArrayProperty{PropName: name, Values: vals})
	case []int64:
		out.IntArrays = append(out.IntArrays, &proto.IntArrayProperty{PropName: name, Values: v})
	case []float64:
		out.NumberArrays = append(out.NumberArrays, &proto.NumberArrayProperty{PropName: name, Values: v})
	case []time.Time:
		// Date arrays travel as text arrays on the wire.
		vals := make([]string, len(v))
		for i, t := range v {
			vals[i] = t.Format(time.RFC3339Nano)
		}
		out.TextArrays = append(out.TextArrays, &proto.TextArrayProperty{PropName: name, Values: vals})
	case []uuid.UUID:
		vals := make([]string, len(v))
		for i, id := range v {
			vals[i] = id.String()
		}
		out.TextArrays = append(out.TextArrays, &proto.TextArrayProperty{PropName: name, Values: vals})
	case []types.Properties:
		objs := make([]*proto.ObjectProperties, len(v))
		for i, nested := range v {
			enc, err := EncodeProperties(nested)
			if err != nil {
				return err
			}
			objs[i] = enc
		}
		out.ObjectArrays = append(out.ObjectArrays, &proto.ObjectArrayProperty{PropName: name, Values: objs})
	default:
		return errors.NewInvalidInput("property %q has unsupported type %T", name, value)
	}
	return nil
}
