package filters

import (
	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
)

var grpcOperators = map[Operator]proto.Filters_Operator{
	OperatorEqual:          proto.Filters_OPERATOR_EQUAL,
	OperatorNotEqual:       proto.Filters_OPERATOR_NOT_EQUAL,
	OperatorGreaterThan:    proto.Filters_OPERATOR_GREATER_THAN,
	OperatorGreaterOrEqual: proto.Filters_OPERATOR_GREATER_THAN_EQUAL,
	OperatorLessThan:       proto.Filters_OPERATOR_LESS_THAN,
	OperatorLessOrEqual:    proto.Filters_OPERATOR_LESS_THAN_EQUAL,
	OperatorAnd:            proto.Filters_OPERATOR_AND,
	OperatorOr:             proto.Filters_OPERATOR_OR,
	OperatorWithinGeoRange: proto.Filters_OPERATOR_WITHIN_GEO_RANGE,
	OperatorLike:           proto.Filters_OPERATOR_LIKE,
	OperatorIsNull:         proto.Filters_OPERATOR_IS_NULL,
	OperatorContainsAny:    proto.Filters_OPERATOR_CONTAINS_ANY,
	OperatorContainsAll:    proto.Filters_OPERATOR_CONTAINS_ALL,
}

// ToGRPC encodes the filter tree as a weaviate.v1 Filters message.
func ToGRPC(f *Filter) (*proto.Filters, error) {
	if f == nil {
		return nil, nil
	}
	op, ok := grpcOperators[f.operator]
	if !ok {
		return nil, errors.NewInvalidInput("filter has no operator")
	}
	out := &proto.Filters{Operator: op}

	if f.operator == OperatorAnd || f.operator == OperatorOr {
		if len(f.operands) == 0 {
			return nil, errors.NewInvalidInput("combination filter needs at least one operand")
		}
		for _, nested := range f.operands {
			enc, err := ToGRPC(nested)
			if err != nil {
				return nil, err
			}
			out.Filters = append(out.Filters, enc)
		}
		return out, nil
	}

	out.Target = grpcTarget(f.target)
	if err := setGRPCValue(out, normalizeValue(f.value)); err != nil {
		return nil, err
	}
	return out, nil
}

func grpcTarget(t *target) *proto.FilterTarget {
	if t == nil {
		return nil
	}
	if t.refOn != "" {
		if t.refCollection != "" {
			return &proto.FilterTarget{MultiTarget: &proto.FilterReferenceMultiTarget{
				On:               t.refOn,
				TargetCollection: t.refCollection,
				Target:           grpcTarget(t.next),
			}}
		}
		return &proto.FilterTarget{SingleTarget: &proto.FilterReferenceSingleTarget{
			On:     t.refOn,
			Target: grpcTarget(t.next),
		}}
	}
	prop := t.property
	return &proto.FilterTarget{Property: &prop}
}

func setGRPCValue(out *proto.Filters, v any) error {
	switch val := v.(type) {
	case string:
		out.ValueText = &val
	case bool:
		out.ValueBoolean = &val
	case int:
		i := int64(val)
		out.ValueInt = &i
	case int32:
		i := int64(val)
		out.ValueInt = &i
	case int64:
		out.ValueInt = &val
	case float32:
		n := float64(val)
		out.ValueNumber = &n
	case float64:
		out.ValueNumber = &val
	case []string:
		out.ValueTextArray = &proto.TextArray{Values: val}
	case []bool:
		out.ValueBooleanArray = &proto.BooleanArray{Values: val}
	case []int:
		vals := make([]int64, len(val))
		for i, n := range val {
			vals[i] = int64(n)
		}
		out.ValueIntArray = &proto.IntArray{Values: vals}
	case []int64:
		out.ValueIntArray = &proto.IntArray{Values: val}
	case []float64:
		out.ValueNumberArray = &proto.NumberArray{Values: val}
	case GeoRange:
		out.ValueGeo = &proto.GeoCoordinatesFilter{
			Latitude:  val.Latitude,
			Longitude: val.Longitude,
			Distance:  val.Distance,
		}
	case nil:
		return errors.NewInvalidInput("filter on %v has no operand", out.Operator)
	default:
		return errors.NewInvalidInput("unsupported filter operand type %T", v)
	}
	return nil
}
