package proto

import "fmt"

// Filters_Operator enumerates the comparison operators of the filter tree.
type Filters_Operator int32

const (
	Filters_OPERATOR_UNSPECIFIED        Filters_Operator = 0
	Filters_OPERATOR_EQUAL              Filters_Operator = 1
	Filters_OPERATOR_NOT_EQUAL          Filters_Operator = 2
	Filters_OPERATOR_GREATER_THAN       Filters_Operator = 3
	Filters_OPERATOR_GREATER_THAN_EQUAL Filters_Operator = 4
	Filters_OPERATOR_LESS_THAN          Filters_Operator = 5
	Filters_OPERATOR_LESS_THAN_EQUAL    Filters_Operator = 6
	Filters_OPERATOR_AND                Filters_Operator = 7
	Filters_OPERATOR_OR                 Filters_Operator = 8
	Filters_OPERATOR_WITHIN_GEO_RANGE   Filters_Operator = 9
	Filters_OPERATOR_LIKE               Filters_Operator = 10
	Filters_OPERATOR_IS_NULL            Filters_Operator = 11
	Filters_OPERATOR_CONTAINS_ANY       Filters_Operator = 12
	Filters_OPERATOR_CONTAINS_ALL       Filters_Operator = 13
)

// GeoCoordinatesFilter is the operand of WITHIN_GEO_RANGE.
type GeoCoordinatesFilter struct {
	Latitude  float32 `protobuf:"fixed32,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude float32 `protobuf:"fixed32,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Distance  float32 `protobuf:"fixed32,3,opt,name=distance,proto3" json:"distance,omitempty"`
}

func (m *GeoCoordinatesFilter) Reset()         { *m = GeoCoordinatesFilter{} }
func (m *GeoCoordinatesFilter) String() string { return fmt.Sprintf("%+v", *m) }
func (*GeoCoordinatesFilter) ProtoMessage()    {}

// FilterReferenceSingleTarget traverses a single-target reference property.
type FilterReferenceSingleTarget struct {
	On     string        `protobuf:"bytes,1,opt,name=on,proto3" json:"on,omitempty"`
	Target *FilterTarget `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
}

func (m *FilterReferenceSingleTarget) Reset()         { *m = FilterReferenceSingleTarget{} }
func (m *FilterReferenceSingleTarget) String() string { return fmt.Sprintf("%+v", *m) }
func (*FilterReferenceSingleTarget) ProtoMessage()    {}

// FilterReferenceMultiTarget traverses a multi-target reference property
// into a named target collection.
type FilterReferenceMultiTarget struct {
	On               string        `protobuf:"bytes,1,opt,name=on,proto3" json:"on,omitempty"`
	Target           *FilterTarget `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	TargetCollection string        `protobuf:"bytes,3,opt,name=target_collection,json=targetCollection,proto3" json:"target_collection,omitempty"`
}

func (m *FilterReferenceMultiTarget) Reset()         { *m = FilterReferenceMultiTarget{} }
func (m *FilterReferenceMultiTarget) String() string { return fmt.Sprintf("%+v", *m) }
func (*FilterReferenceMultiTarget) ProtoMessage()    {}

// FilterTarget addresses either a property or a reference traversal.
// Exactly one field is set.
type FilterTarget struct {
	Property     *string                      `protobuf:"bytes,1,opt,name=property,proto3,oneof" json:"property,omitempty"`
	SingleTarget *FilterReferenceSingleTarget `protobuf:"bytes,2,opt,name=single_target,json=singleTarget,proto3" json:"single_target,omitempty"`
	MultiTarget  *FilterReferenceMultiTarget  `protobuf:"bytes,3,opt,name=multi_target,json=multiTarget,proto3" json:"multi_target,omitempty"`
}

func (m *FilterTarget) Reset()         { *m = FilterTarget{} }
func (m *FilterTarget) String() string { return fmt.Sprintf("%+v", *m) }
func (*FilterTarget) ProtoMessage()    {}

// Filters is the recursive filter tree. AND/OR nodes carry nested Filters;
// leaf nodes carry a target and exactly one value field matching the
// operand's runtime type. Dates and UUIDs travel as canonical strings in the
// text fields.
type Filters struct {
	Operator          Filters_Operator      `protobuf:"varint,1,opt,name=operator,proto3" json:"operator,omitempty"`
	Target            *FilterTarget         `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	Filters           []*Filters            `protobuf:"bytes,3,rep,name=filters,proto3" json:"filters,omitempty"`
	ValueText         *string               `protobuf:"bytes,4,opt,name=value_text,json=valueText,proto3,oneof" json:"value_text,omitempty"`
	ValueInt          *int64                `protobuf:"varint,5,opt,name=value_int,json=valueInt,proto3,oneof" json:"value_int,omitempty"`
	ValueNumber       *float64              `protobuf:"fixed64,6,opt,name=value_number,json=valueNumber,proto3,oneof" json:"value_number,omitempty"`
	ValueBoolean      *bool                 `protobuf:"varint,7,opt,name=value_boolean,json=valueBoolean,proto3,oneof" json:"value_boolean,omitempty"`
	ValueTextArray    *TextArray            `protobuf:"bytes,8,opt,name=value_text_array,json=valueTextArray,proto3" json:"value_text_array,omitempty"`
	ValueIntArray     *IntArray             `protobuf:"bytes,9,opt,name=value_int_array,json=valueIntArray,proto3" json:"value_int_array,omitempty"`
	ValueNumberArray  *NumberArray          `protobuf:"bytes,10,opt,name=value_number_array,json=valueNumberArray,proto3" json:"value_number_array,omitempty"`
	ValueBooleanArray *BooleanArray         `protobuf:"bytes,11,opt,name=value_boolean_array,json=valueBooleanArray,proto3" json:"value_boolean_array,omitempty"`
	ValueGeo          *GeoCoordinatesFilter `protobuf:"bytes,12,opt,name=value_geo,json=valueGeo,proto3" json:"value_geo,omitempty"`
}

func (m *Filters) Reset()         { *m = Filters{} }
func (m *Filters) String() string { return fmt.Sprintf("%+v", *m) }
func (*Filters) ProtoMessage()    {}
