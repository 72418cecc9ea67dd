package filters

import (
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
)

var restOperators = map[Operator]string{
	OperatorEqual:          "Equal",
	OperatorNotEqual:       "NotEqual",
	OperatorGreaterThan:    "GreaterThan",
	OperatorGreaterOrEqual: "GreaterThanEqual",
	OperatorLessThan:       "LessThan",
	OperatorLessOrEqual:    "LessThanEqual",
	OperatorAnd:            "And",
	OperatorOr:             "Or",
	OperatorWithinGeoRange: "WithinGeoRange",
	OperatorLike:           "Like",
	OperatorIsNull:         "IsNull",
	OperatorContainsAny:    "ContainsAny",
	OperatorContainsAll:    "ContainsAll",
}

// ToREST encodes the filter tree as the where-clause map used by the
// GraphQL and REST endpoints. supportsRefFilters reflects the connected
// server (1.23+); older servers cannot parse reference traversals in
// where clauses and such filters are rejected here.
func ToREST(f *Filter, supportsRefFilters bool) (map[string]any, error) {
	if f == nil {
		return nil, nil
	}
	op, ok := restOperators[f.operator]
	if !ok {
		return nil, errors.NewInvalidInput("filter has no operator")
	}

	if f.operator == OperatorAnd || f.operator == OperatorOr {
		if len(f.operands) == 0 {
			return nil, errors.NewInvalidInput("combination filter needs at least one operand")
		}
		operands := make([]map[string]any, 0, len(f.operands))
		for _, nested := range f.operands {
			enc, err := ToREST(nested, supportsRefFilters)
			if err != nil {
				return nil, err
			}
			operands = append(operands, enc)
		}
		return map[string]any{"operator": op, "operands": operands}, nil
	}

	path, traversesRef := restPath(f.target)
	if traversesRef && !supportsRefFilters {
		return nil, errors.NewInvalidInput(
			"reference filters over REST require Weaviate 1.23 or newer")
	}
	out := map[string]any{"operator": op, "path": path}
	if err := setRESTValue(out, f.value); err != nil {
		return nil, err
	}
	return out, nil
}

func restPath(t *target) (path []string, traversesRef bool) {
	for hop := t; hop != nil; hop = hop.next {
		if hop.refOn != "" {
			traversesRef = true
			path = append(path, hop.refOn)
			if hop.refCollection != "" {
				path = append(path, hop.refCollection)
			}
			continue
		}
		path = append(path, hop.property)
	}
	return path, traversesRef
}

func setRESTValue(out map[string]any, v any) error {
	switch val := v.(type) {
	case string:
		out["valueText"] = val
	case []string:
		out["valueText"] = val
	case bool:
		out["valueBoolean"] = val
	case []bool:
		out["valueBoolean"] = val
	case int, int32, int64:
		out["valueInt"] = val
	case []int, []int64:
		out["valueInt"] = val
	case float32, float64:
		out["valueNumber"] = val
	case []float64:
		out["valueNumber"] = val
	case time.Time:
		out["valueDate"] = val.Format(time.RFC3339Nano)
	case []time.Time:
		dates := make([]string, len(val))
		for i, t := range val {
			dates[i] = t.Format(time.RFC3339Nano)
		}
		out["valueDate"] = dates
	case uuid.UUID:
		out["valueText"] = val.String()
	case []uuid.UUID:
		ids := make([]string, len(val))
		for i, id := range val {
			ids[i] = id.String()
		}
		out["valueText"] = ids
	case GeoRange:
		out["valueGeoRange"] = map[string]any{
			"geoCoordinates": map[string]any{
				"latitude":  val.Latitude,
				"longitude": val.Longitude,
			},
			"distance": map[string]any{"max": val.Distance},
		}
	case nil:
		return errors.NewInvalidInput("filter has no operand")
	default:
		return errors.NewInvalidInput("unsupported filter operand type %T", v)
	}
	return nil
}
