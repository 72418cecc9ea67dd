package proto

import "fmt"

// BatchObject is one object of a bulk ingestion request.
type BatchObject struct {
	Uuid         string            `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Collection   string            `protobuf:"bytes,2,opt,name=collection,proto3" json:"collection,omitempty"`
	Tenant       string            `protobuf:"bytes,3,opt,name=tenant,proto3" json:"tenant,omitempty"`
	Vector       []float32         `protobuf:"fixed32,4,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	NamedVectors []*NamedVector    `protobuf:"bytes,5,rep,name=named_vectors,json=namedVectors,proto3" json:"named_vectors,omitempty"`
	Properties   *ObjectProperties `protobuf:"bytes,6,opt,name=properties,proto3" json:"properties,omitempty"`
}

func (m *BatchObject) Reset()         { *m = BatchObject{} }
func (m *BatchObject) String() string { return fmt.Sprintf("%+v", *m) }
func (*BatchObject) ProtoMessage()    {}

// BatchObjectsRequest ingests many objects in one call.
type BatchObjectsRequest struct {
	Objects          []*BatchObject   `protobuf:"bytes,1,rep,name=objects,proto3" json:"objects,omitempty"`
	ConsistencyLevel ConsistencyLevel `protobuf:"varint,2,opt,name=consistency_level,json=consistencyLevel,proto3" json:"consistency_level,omitempty"`
}

func (m *BatchObjectsRequest) Reset()         { *m = BatchObjectsRequest{} }
func (m *BatchObjectsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*BatchObjectsRequest) ProtoMessage()    {}

// BatchObjectsReply_Error attributes one failure to its request index.
type BatchObjectsReply_Error struct {
	Index int32  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Error string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *BatchObjectsReply_Error) Reset()         { *m = BatchObjectsReply_Error{} }
func (m *BatchObjectsReply_Error) String() string { return fmt.Sprintf("%+v", *m) }
func (*BatchObjectsReply_Error) ProtoMessage()    {}

// BatchObjectsReply lists only the failed indices; absent indices succeeded.
type BatchObjectsReply struct {
	Took   float32                    `protobuf:"fixed32,1,opt,name=took,proto3" json:"took,omitempty"`
	Errors []*BatchObjectsReply_Error `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
}

func (m *BatchObjectsReply) Reset()         { *m = BatchObjectsReply{} }
func (m *BatchObjectsReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*BatchObjectsReply) ProtoMessage()    {}

// TenantActivityStatus mirrors the server-side tenant states.
type TenantActivityStatus int32

const (
	TenantActivityStatus_UNSPECIFIED TenantActivityStatus = 0
	TenantActivityStatus_ACTIVE      TenantActivityStatus = 1
	TenantActivityStatus_INACTIVE    TenantActivityStatus = 2
	TenantActivityStatus_OFFLOADED   TenantActivityStatus = 3
	TenantActivityStatus_OFFLOADING  TenantActivityStatus = 4
	TenantActivityStatus_ONLOADING   TenantActivityStatus = 5
)

// TenantsGetRequest lists tenants, optionally filtered by name.
type TenantsGetRequest struct {
	Collection string   `protobuf:"bytes,1,opt,name=collection,proto3" json:"collection,omitempty"`
	Names      []string `protobuf:"bytes,2,rep,name=names,proto3" json:"names,omitempty"`
}

func (m *TenantsGetRequest) Reset()         { *m = TenantsGetRequest{} }
func (m *TenantsGetRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TenantsGetRequest) ProtoMessage()    {}

// Tenant is one tenant entry of a TenantsGetReply.
type Tenant struct {
	Name           string               `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ActivityStatus TenantActivityStatus `protobuf:"varint,2,opt,name=activity_status,json=activityStatus,proto3" json:"activity_status,omitempty"`
}

func (m *Tenant) Reset()         { *m = Tenant{} }
func (m *Tenant) String() string { return fmt.Sprintf("%+v", *m) }
func (*Tenant) ProtoMessage()    {}

// TenantsGetReply is the TenantsGet service response.
type TenantsGetReply struct {
	Took    float32   `protobuf:"fixed32,1,opt,name=took,proto3" json:"took,omitempty"`
	Tenants []*Tenant `protobuf:"bytes,2,rep,name=tenants,proto3" json:"tenants,omitempty"`
}

func (m *TenantsGetReply) Reset()         { *m = TenantsGetReply{} }
func (m *TenantsGetReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*TenantsGetReply) ProtoMessage()    {}
