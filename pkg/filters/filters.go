package filters

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a filter comparison or combination operator.
type Operator int

const (
	OperatorUnspecified Operator = iota
	OperatorEqual
	OperatorNotEqual
	OperatorGreaterThan
	OperatorGreaterOrEqual
	OperatorLessThan
	OperatorLessOrEqual
	OperatorAnd
	OperatorOr
	OperatorWithinGeoRange
	OperatorLike
	OperatorIsNull
	OperatorContainsAny
	OperatorContainsAll
)

// Internal property names usable as filter targets.
const (
	idProperty           = "_id"
	creationTimeProperty = "_creationTimeUnix"
	updateTimeProperty   = "_lastUpdateTimeUnix"
)

// GeoRange is the operand of WithinGeoRange: a circle around a point,
// distance in meters.
type GeoRange struct {
	Latitude  float32
	Longitude float32
	Distance  float32
}

// Filter is one node of a where-filter tree. Build leaves through
// ByProperty, ByID or ByRef, and combine them with And / Or.
type Filter struct {
	operator Operator
	target   *target
	operands []*Filter
	value    any
}

// target is a traversal chain ending at a property. refOn is set on
// traversal hops, property on the final hop.
type target struct {
	property      string
	refOn         string
	refCollection string
	next          *target
}

// And combines filters so that all must match.
func And(operands ...*Filter) *Filter {
	return &Filter{operator: OperatorAnd, operands: operands}
}

// Or combines filters so that at least one must match.
func Or(operands ...*Filter) *Filter {
	return &Filter{operator: OperatorOr, operands: operands}
}

// PropertyFilter is a partially built leaf waiting for its operator and
// operand.
type PropertyFilter struct {
	target *target
}

// ByProperty starts a filter on a data property of the collection.
func ByProperty(name string) PropertyFilter {
	return PropertyFilter{target: &target{property: name}}
}

// ByID starts a filter on the object UUID.
func ByID() PropertyFilter {
	return ByProperty(idProperty)
}

// ByCreationTime starts a filter on the object creation timestamp.
func ByCreationTime() PropertyFilter {
	return ByProperty(creationTimeProperty)
}

// ByUpdateTime starts a filter on the object last-update timestamp.
func ByUpdateTime() PropertyFilter {
	return ByProperty(updateTimeProperty)
}

// RefFilter is a traversal through a reference property. Chain further
// ByRef hops or finish with ByProperty / ByID.
type RefFilter struct {
	head *target
	tail *target
}

// ByRef starts a traversal through a single-target reference property.
func ByRef(linkOn string) RefFilter {
	hop := &target{refOn: linkOn}
	return RefFilter{head: hop, tail: hop}
}

// ByRefMultiTarget starts a traversal through a multi-target reference
// property into one named target collection.
func ByRefMultiTarget(linkOn, targetCollection string) RefFilter {
	hop := &target{refOn: linkOn, refCollection: targetCollection}
	return RefFilter{head: hop, tail: hop}
}

// ByRef appends another single-target hop to the traversal.
func (r RefFilter) ByRef(linkOn string) RefFilter {
	hop := &target{refOn: linkOn}
	r.tail.next = hop
	return RefFilter{head: r.head, tail: hop}
}

// ByRefMultiTarget appends a multi-target hop to the traversal.
func (r RefFilter) ByRefMultiTarget(linkOn, targetCollection string) RefFilter {
	hop := &target{refOn: linkOn, refCollection: targetCollection}
	r.tail.next = hop
	return RefFilter{head: r.head, tail: hop}
}

// ByProperty ends the traversal at a property of the referenced
// collection.
func (r RefFilter) ByProperty(name string) PropertyFilter {
	r.tail.next = &target{property: name}
	return PropertyFilter{target: r.head}
}

// ByID ends the traversal at the referenced object's UUID.
func (r RefFilter) ByID() PropertyFilter {
	return r.ByProperty(idProperty)
}

// ByCount ends the traversal at the number of referenced objects.
func (r RefFilter) ByCount() PropertyFilter {
	// Count filters address the reference property itself.
	r.tail.property = r.tail.refOn
	r.tail.refOn = ""
	return PropertyFilter{target: r.head}
}

func (p PropertyFilter) leaf(op Operator, value any) *Filter {
	return &Filter{operator: op, target: p.target, value: value}
}

// Equal matches values equal to value. Accepts strings, numbers, bools,
// time.Time, uuid.UUID and slices thereof.
func (p PropertyFilter) Equal(value any) *Filter { return p.leaf(OperatorEqual, value) }

// NotEqual matches values different from value.
func (p PropertyFilter) NotEqual(value any) *Filter { return p.leaf(OperatorNotEqual, value) }

// GreaterThan matches values strictly above value.
func (p PropertyFilter) GreaterThan(value any) *Filter { return p.leaf(OperatorGreaterThan, value) }

// GreaterOrEqual matches values at or above value.
func (p PropertyFilter) GreaterOrEqual(value any) *Filter {
	return p.leaf(OperatorGreaterOrEqual, value)
}

// LessThan matches values strictly below value.
func (p PropertyFilter) LessThan(value any) *Filter { return p.leaf(OperatorLessThan, value) }

// LessOrEqual matches values at or below value.
func (p PropertyFilter) LessOrEqual(value any) *Filter { return p.leaf(OperatorLessOrEqual, value) }

// Like matches text against a wildcard pattern (?, *).
func (p PropertyFilter) Like(pattern string) *Filter { return p.leaf(OperatorLike, pattern) }

// IsNull matches objects where the property is (or is not) unset.
func (p PropertyFilter) IsNull(isNull bool) *Filter { return p.leaf(OperatorIsNull, isNull) }

// ContainsAny matches when the property holds any of the given values.
func (p PropertyFilter) ContainsAny(values any) *Filter { return p.leaf(OperatorContainsAny, values) }

// ContainsAll matches when the property holds all of the given values.
func (p PropertyFilter) ContainsAll(values any) *Filter { return p.leaf(OperatorContainsAll, values) }

// WithinGeoRange matches geo coordinates inside the given circle.
func (p PropertyFilter) WithinGeoRange(r GeoRange) *Filter {
	return p.leaf(OperatorWithinGeoRange, r)
}

// normalizeValue converts date and UUID operands to their canonical
// string encodings shared by both transports.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case []time.Time:
		out := make([]string, len(val))
		for i, t := range val {
			out[i] = t.Format(time.RFC3339Nano)
		}
		return out
	case uuid.UUID:
		return val.String()
	case []uuid.UUID:
		out := make([]string, len(val))
		for i, id := range val {
			out[i] = id.String()
		}
		return out
	default:
		return v
	}
}
