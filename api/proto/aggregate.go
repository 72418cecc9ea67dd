package proto

import "fmt"

// Aggregation requests the aggregations to compute over one property.
type Aggregation struct {
	Property string `protobuf:"bytes,1,opt,name=property,proto3" json:"property,omitempty"`
	Count    bool   `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Mean     bool   `protobuf:"varint,3,opt,name=mean,proto3" json:"mean,omitempty"`
	Min      bool   `protobuf:"varint,4,opt,name=min,proto3" json:"min,omitempty"`
	Max      bool   `protobuf:"varint,5,opt,name=max,proto3" json:"max,omitempty"`
	Sum      bool   `protobuf:"varint,6,opt,name=sum,proto3" json:"sum,omitempty"`
}

func (m *Aggregation) Reset()         { *m = Aggregation{} }
func (m *Aggregation) String() string { return fmt.Sprintf("%+v", *m) }
func (*Aggregation) ProtoMessage()    {}

// AggregateRequest is the Aggregate service request (servers 1.29+).
type AggregateRequest struct {
	Collection   string         `protobuf:"bytes,1,opt,name=collection,proto3" json:"collection,omitempty"`
	Tenant       string         `protobuf:"bytes,2,opt,name=tenant,proto3" json:"tenant,omitempty"`
	ObjectsCount bool           `protobuf:"varint,3,opt,name=objects_count,json=objectsCount,proto3" json:"objects_count,omitempty"`
	ObjectLimit  *uint32        `protobuf:"varint,4,opt,name=object_limit,json=objectLimit,proto3,oneof" json:"object_limit,omitempty"`
	Filters      *Filters       `protobuf:"bytes,5,opt,name=filters,proto3" json:"filters,omitempty"`
	Aggregations []*Aggregation `protobuf:"bytes,6,rep,name=aggregations,proto3" json:"aggregations,omitempty"`
}

func (m *AggregateRequest) Reset()         { *m = AggregateRequest{} }
func (m *AggregateRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AggregateRequest) ProtoMessage()    {}

// AggregatedProperty is the computed aggregations of one property.
type AggregatedProperty struct {
	Property string   `protobuf:"bytes,1,opt,name=property,proto3" json:"property,omitempty"`
	Count    *int64   `protobuf:"varint,2,opt,name=count,proto3,oneof" json:"count,omitempty"`
	Mean     *float64 `protobuf:"fixed64,3,opt,name=mean,proto3,oneof" json:"mean,omitempty"`
	Min      *float64 `protobuf:"fixed64,4,opt,name=min,proto3,oneof" json:"min,omitempty"`
	Max      *float64 `protobuf:"fixed64,5,opt,name=max,proto3,oneof" json:"max,omitempty"`
	Sum      *float64 `protobuf:"fixed64,6,opt,name=sum,proto3,oneof" json:"sum,omitempty"`
}

func (m *AggregatedProperty) Reset()         { *m = AggregatedProperty{} }
func (m *AggregatedProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*AggregatedProperty) ProtoMessage()    {}

// AggregateGroup is one (possibly the only) group of an aggregate response.
type AggregateGroup struct {
	ObjectsCount *int64                `protobuf:"varint,1,opt,name=objects_count,json=objectsCount,proto3,oneof" json:"objects_count,omitempty"`
	Properties   []*AggregatedProperty `protobuf:"bytes,2,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *AggregateGroup) Reset()         { *m = AggregateGroup{} }
func (m *AggregateGroup) String() string { return fmt.Sprintf("%+v", *m) }
func (*AggregateGroup) ProtoMessage()    {}

// AggregateReply is the Aggregate service response.
type AggregateReply struct {
	Took         float32         `protobuf:"fixed32,1,opt,name=took,proto3" json:"took,omitempty"`
	SingleResult *AggregateGroup `protobuf:"bytes,2,opt,name=single_result,json=singleResult,proto3" json:"single_result,omitempty"`
}

func (m *AggregateReply) Reset()         { *m = AggregateReply{} }
func (m *AggregateReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*AggregateReply) ProtoMessage()    {}
