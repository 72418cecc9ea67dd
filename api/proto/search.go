package proto

import "fmt"

// Hybrid_FusionType selects how BM25 and vector scores are blended.
type Hybrid_FusionType int32

const (
	Hybrid_FUSION_TYPE_UNSPECIFIED    Hybrid_FusionType = 0
	Hybrid_FUSION_TYPE_RANKED         Hybrid_FusionType = 1
	Hybrid_FUSION_TYPE_RELATIVE_SCORE Hybrid_FusionType = 2
)

// CombinationMethod joins scores of a multi-target vector search.
type CombinationMethod int32

const (
	CombinationMethod_UNSPECIFIED    CombinationMethod = 0
	CombinationMethod_SUM            CombinationMethod = 1
	CombinationMethod_MIN            CombinationMethod = 2
	CombinationMethod_AVERAGE        CombinationMethod = 3
	CombinationMethod_RELATIVE_SCORE CombinationMethod = 4
	CombinationMethod_MANUAL         CombinationMethod = 5
)

// NearMediaType enumerates the media probes.
type NearMediaType int32

const (
	NearMediaType_UNSPECIFIED NearMediaType = 0
	NearMediaType_IMAGE       NearMediaType = 1
	NearMediaType_AUDIO       NearMediaType = 2
	NearMediaType_VIDEO       NearMediaType = 3
	NearMediaType_THUMBNAIL   NearMediaType = 4
	NearMediaType_IMU         NearMediaType = 5
	NearMediaType_DEPTH       NearMediaType = 6
)

// Targets names the vector spaces a probe runs against and how their scores
// combine.
type Targets struct {
	TargetVectors []string          `protobuf:"bytes,1,rep,name=target_vectors,json=targetVectors,proto3" json:"target_vectors,omitempty"`
	Combination   CombinationMethod `protobuf:"varint,2,opt,name=combination,proto3" json:"combination,omitempty"`
	Weights       []float32         `protobuf:"fixed32,3,rep,packed,name=weights,proto3" json:"weights,omitempty"`
}

func (m *Targets) Reset()         { *m = Targets{} }
func (m *Targets) String() string { return fmt.Sprintf("%+v", *m) }
func (*Targets) ProtoMessage()    {}

// NearVector probes by raw vector, flat or per named target.
type NearVector struct {
	Vector          []float32      `protobuf:"fixed32,1,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	Certainty       *float64       `protobuf:"fixed64,2,opt,name=certainty,proto3,oneof" json:"certainty,omitempty"`
	Distance        *float64       `protobuf:"fixed64,3,opt,name=distance,proto3,oneof" json:"distance,omitempty"`
	Targets         *Targets       `protobuf:"bytes,4,opt,name=targets,proto3" json:"targets,omitempty"`
	VectorPerTarget []*NamedVector `protobuf:"bytes,5,rep,name=vector_per_target,json=vectorPerTarget,proto3" json:"vector_per_target,omitempty"`
}

func (m *NearVector) Reset()         { *m = NearVector{} }
func (m *NearVector) String() string { return fmt.Sprintf("%+v", *m) }
func (*NearVector) ProtoMessage()    {}

// NearObject probes by similarity to an existing object.
type NearObject struct {
	Id        string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Certainty *float64 `protobuf:"fixed64,2,opt,name=certainty,proto3,oneof" json:"certainty,omitempty"`
	Distance  *float64 `protobuf:"fixed64,3,opt,name=distance,proto3,oneof" json:"distance,omitempty"`
	Targets   *Targets `protobuf:"bytes,4,opt,name=targets,proto3" json:"targets,omitempty"`
}

func (m *NearObject) Reset()         { *m = NearObject{} }
func (m *NearObject) String() string { return fmt.Sprintf("%+v", *m) }
func (*NearObject) ProtoMessage()    {}

// NearTextMove biases a near-text probe toward or away from concepts or
// objects.
type NearTextMove struct {
	Force    float32  `protobuf:"fixed32,1,opt,name=force,proto3" json:"force,omitempty"`
	Concepts []string `protobuf:"bytes,2,rep,name=concepts,proto3" json:"concepts,omitempty"`
	Uuids    []string `protobuf:"bytes,3,rep,name=uuids,proto3" json:"uuids,omitempty"`
}

func (m *NearTextMove) Reset()         { *m = NearTextMove{} }
func (m *NearTextMove) String() string { return fmt.Sprintf("%+v", *m) }
func (*NearTextMove) ProtoMessage()    {}

// NearTextSearch probes by vectorized query text.
type NearTextSearch struct {
	Query     []string      `protobuf:"bytes,1,rep,name=query,proto3" json:"query,omitempty"`
	Certainty *float64      `protobuf:"fixed64,2,opt,name=certainty,proto3,oneof" json:"certainty,omitempty"`
	Distance  *float64      `protobuf:"fixed64,3,opt,name=distance,proto3,oneof" json:"distance,omitempty"`
	MoveTo    *NearTextMove `protobuf:"bytes,4,opt,name=move_to,json=moveTo,proto3" json:"move_to,omitempty"`
	MoveAway  *NearTextMove `protobuf:"bytes,5,opt,name=move_away,json=moveAway,proto3" json:"move_away,omitempty"`
	Targets   *Targets      `protobuf:"bytes,6,opt,name=targets,proto3" json:"targets,omitempty"`
}

func (m *NearTextSearch) Reset()         { *m = NearTextSearch{} }
func (m *NearTextSearch) String() string { return fmt.Sprintf("%+v", *m) }
func (*NearTextSearch) ProtoMessage()    {}

// NearMediaSearch probes by a base64-encoded media blob.
type NearMediaSearch struct {
	Media     string        `protobuf:"bytes,1,opt,name=media,proto3" json:"media,omitempty"`
	MediaType NearMediaType `protobuf:"varint,2,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
	Certainty *float64      `protobuf:"fixed64,3,opt,name=certainty,proto3,oneof" json:"certainty,omitempty"`
	Distance  *float64      `protobuf:"fixed64,4,opt,name=distance,proto3,oneof" json:"distance,omitempty"`
	Targets   *Targets      `protobuf:"bytes,5,opt,name=targets,proto3" json:"targets,omitempty"`
}

func (m *NearMediaSearch) Reset()         { *m = NearMediaSearch{} }
func (m *NearMediaSearch) String() string { return fmt.Sprintf("%+v", *m) }
func (*NearMediaSearch) ProtoMessage()    {}

// Hybrid blends keyword and vector retrieval.
type Hybrid struct {
	Query      string            `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Properties []string          `protobuf:"bytes,2,rep,name=properties,proto3" json:"properties,omitempty"`
	Alpha      float32           `protobuf:"fixed32,3,opt,name=alpha,proto3" json:"alpha,omitempty"`
	Vector     []float32         `protobuf:"fixed32,4,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	FusionType Hybrid_FusionType `protobuf:"varint,5,opt,name=fusion_type,json=fusionType,proto3" json:"fusion_type,omitempty"`
	NearText   *NearTextSearch   `protobuf:"bytes,6,opt,name=near_text,json=nearText,proto3" json:"near_text,omitempty"`
	NearVector *NearVector       `protobuf:"bytes,7,opt,name=near_vector,json=nearVector,proto3" json:"near_vector,omitempty"`
	Targets    *Targets          `protobuf:"bytes,8,opt,name=targets,proto3" json:"targets,omitempty"`
}

func (m *Hybrid) Reset()         { *m = Hybrid{} }
func (m *Hybrid) String() string { return fmt.Sprintf("%+v", *m) }
func (*Hybrid) ProtoMessage()    {}

// BM25 is the pure keyword probe.
type BM25 struct {
	Query      string   `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Properties []string `protobuf:"bytes,2,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *BM25) Reset()         { *m = BM25{} }
func (m *BM25) String() string { return fmt.Sprintf("%+v", *m) }
func (*BM25) ProtoMessage()    {}

// SortBy orders results by a property path.
type SortBy struct {
	Ascending bool     `protobuf:"varint,1,opt,name=ascending,proto3" json:"ascending,omitempty"`
	Path      []string `protobuf:"bytes,2,rep,name=path,proto3" json:"path,omitempty"`
}

func (m *SortBy) Reset()         { *m = SortBy{} }
func (m *SortBy) String() string { return fmt.Sprintf("%+v", *m) }
func (*SortBy) ProtoMessage()    {}

// GroupBy buckets results by a property value.
type GroupBy struct {
	Path            []string `protobuf:"bytes,1,rep,name=path,proto3" json:"path,omitempty"`
	NumberOfGroups  int32    `protobuf:"varint,2,opt,name=number_of_groups,json=numberOfGroups,proto3" json:"number_of_groups,omitempty"`
	ObjectsPerGroup int32    `protobuf:"varint,3,opt,name=objects_per_group,json=objectsPerGroup,proto3" json:"objects_per_group,omitempty"`
}

func (m *GroupBy) Reset()         { *m = GroupBy{} }
func (m *GroupBy) String() string { return fmt.Sprintf("%+v", *m) }
func (*GroupBy) ProtoMessage()    {}

// GenerativeSearch asks for LLM augmentation of the result set.
type GenerativeSearch struct {
	SinglePrompt      string   `protobuf:"bytes,1,opt,name=single_prompt,json=singlePrompt,proto3" json:"single_prompt,omitempty"`
	GroupedTask       string   `protobuf:"bytes,2,opt,name=grouped_task,json=groupedTask,proto3" json:"grouped_task,omitempty"`
	GroupedProperties []string `protobuf:"bytes,3,rep,name=grouped_properties,json=groupedProperties,proto3" json:"grouped_properties,omitempty"`
}

func (m *GenerativeSearch) Reset()         { *m = GenerativeSearch{} }
func (m *GenerativeSearch) String() string { return fmt.Sprintf("%+v", *m) }
func (*GenerativeSearch) ProtoMessage()    {}

// MetadataRequest selects the metadata fields to return.
type MetadataRequest struct {
	Uuid               bool `protobuf:"varint,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Vector             bool `protobuf:"varint,2,opt,name=vector,proto3" json:"vector,omitempty"`
	CreationTimeUnix   bool `protobuf:"varint,3,opt,name=creation_time_unix,json=creationTimeUnix,proto3" json:"creation_time_unix,omitempty"`
	LastUpdateTimeUnix bool `protobuf:"varint,4,opt,name=last_update_time_unix,json=lastUpdateTimeUnix,proto3" json:"last_update_time_unix,omitempty"`
	Distance           bool `protobuf:"varint,5,opt,name=distance,proto3" json:"distance,omitempty"`
	Certainty          bool `protobuf:"varint,6,opt,name=certainty,proto3" json:"certainty,omitempty"`
	Score              bool `protobuf:"varint,7,opt,name=score,proto3" json:"score,omitempty"`
	ExplainScore       bool `protobuf:"varint,8,opt,name=explain_score,json=explainScore,proto3" json:"explain_score,omitempty"`
	IsConsistent       bool `protobuf:"varint,9,opt,name=is_consistent,json=isConsistent,proto3" json:"is_consistent,omitempty"`
	Vectors            []string `protobuf:"bytes,10,rep,name=vectors,proto3" json:"vectors,omitempty"`
}

func (m *MetadataRequest) Reset()         { *m = MetadataRequest{} }
func (m *MetadataRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*MetadataRequest) ProtoMessage()    {}

// RefPropertiesRequest asks for one reference traversal with its own nested
// properties and metadata.
type RefPropertiesRequest struct {
	ReferenceProperty string             `protobuf:"bytes,1,opt,name=reference_property,json=referenceProperty,proto3" json:"reference_property,omitempty"`
	TargetCollection  string             `protobuf:"bytes,2,opt,name=target_collection,json=targetCollection,proto3" json:"target_collection,omitempty"`
	Properties        *PropertiesRequest `protobuf:"bytes,3,opt,name=properties,proto3" json:"properties,omitempty"`
	Metadata          *MetadataRequest   `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *RefPropertiesRequest) Reset()         { *m = RefPropertiesRequest{} }
func (m *RefPropertiesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RefPropertiesRequest) ProtoMessage()    {}

// PropertiesRequest selects the properties to return.
type PropertiesRequest struct {
	NonRefProperties          []string                `protobuf:"bytes,1,rep,name=non_ref_properties,json=nonRefProperties,proto3" json:"non_ref_properties,omitempty"`
	RefProperties             []*RefPropertiesRequest `protobuf:"bytes,2,rep,name=ref_properties,json=refProperties,proto3" json:"ref_properties,omitempty"`
	ReturnAllNonrefProperties bool                    `protobuf:"varint,3,opt,name=return_all_nonref_properties,json=returnAllNonrefProperties,proto3" json:"return_all_nonref_properties,omitempty"`
}

func (m *PropertiesRequest) Reset()         { *m = PropertiesRequest{} }
func (m *PropertiesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PropertiesRequest) ProtoMessage()    {}

// SearchRequest is the single request shape of the Search service. At most
// one probe field (hybrid, bm25, near_*) is set.
type SearchRequest struct {
	Collection       string             `protobuf:"bytes,1,opt,name=collection,proto3" json:"collection,omitempty"`
	Tenant           string             `protobuf:"bytes,2,opt,name=tenant,proto3" json:"tenant,omitempty"`
	ConsistencyLevel ConsistencyLevel   `protobuf:"varint,3,opt,name=consistency_level,json=consistencyLevel,proto3" json:"consistency_level,omitempty"`
	Properties       *PropertiesRequest `protobuf:"bytes,4,opt,name=properties,proto3" json:"properties,omitempty"`
	Metadata         *MetadataRequest   `protobuf:"bytes,5,opt,name=metadata,proto3" json:"metadata,omitempty"`
	GroupBy          *GroupBy           `protobuf:"bytes,6,opt,name=group_by,json=groupBy,proto3" json:"group_by,omitempty"`
	Limit            uint32             `protobuf:"varint,7,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset           uint32             `protobuf:"varint,8,opt,name=offset,proto3" json:"offset,omitempty"`
	Autocut          uint32             `protobuf:"varint,9,opt,name=autocut,proto3" json:"autocut,omitempty"`
	After            string             `protobuf:"bytes,10,opt,name=after,proto3" json:"after,omitempty"`
	SortBy           []*SortBy          `protobuf:"bytes,11,rep,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"`
	Filters          *Filters           `protobuf:"bytes,12,opt,name=filters,proto3" json:"filters,omitempty"`
	HybridSearch     *Hybrid            `protobuf:"bytes,13,opt,name=hybrid_search,json=hybridSearch,proto3" json:"hybrid_search,omitempty"`
	Bm25Search       *BM25              `protobuf:"bytes,14,opt,name=bm25_search,json=bm25Search,proto3" json:"bm25_search,omitempty"`
	NearVector       *NearVector        `protobuf:"bytes,15,opt,name=near_vector,json=nearVector,proto3" json:"near_vector,omitempty"`
	NearObject       *NearObject        `protobuf:"bytes,16,opt,name=near_object,json=nearObject,proto3" json:"near_object,omitempty"`
	NearText         *NearTextSearch    `protobuf:"bytes,17,opt,name=near_text,json=nearText,proto3" json:"near_text,omitempty"`
	NearMedia        *NearMediaSearch   `protobuf:"bytes,18,opt,name=near_media,json=nearMedia,proto3" json:"near_media,omitempty"`
	Generative       *GenerativeSearch  `protobuf:"bytes,19,opt,name=generative,proto3" json:"generative,omitempty"`
}

func (m *SearchRequest) Reset()         { *m = SearchRequest{} }
func (m *SearchRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SearchRequest) ProtoMessage()    {}

// MetadataResult carries metadata with explicit presence sentinels; a field
// is meaningful only when its *_present flag is set.
type MetadataResult struct {
	Id                        string    `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IdPresent                 bool      `protobuf:"varint,2,opt,name=id_present,json=idPresent,proto3" json:"id_present,omitempty"`
	Vector                    []float32 `protobuf:"fixed32,3,rep,packed,name=vector,proto3" json:"vector,omitempty"`
	VectorPresent             bool      `protobuf:"varint,4,opt,name=vector_present,json=vectorPresent,proto3" json:"vector_present,omitempty"`
	Vectors                   []*NamedVector `protobuf:"bytes,5,rep,name=vectors,proto3" json:"vectors,omitempty"`
	CreationTimeUnix          int64     `protobuf:"varint,6,opt,name=creation_time_unix,json=creationTimeUnix,proto3" json:"creation_time_unix,omitempty"`
	CreationTimeUnixPresent   bool      `protobuf:"varint,7,opt,name=creation_time_unix_present,json=creationTimeUnixPresent,proto3" json:"creation_time_unix_present,omitempty"`
	LastUpdateTimeUnix        int64     `protobuf:"varint,8,opt,name=last_update_time_unix,json=lastUpdateTimeUnix,proto3" json:"last_update_time_unix,omitempty"`
	LastUpdateTimeUnixPresent bool      `protobuf:"varint,9,opt,name=last_update_time_unix_present,json=lastUpdateTimeUnixPresent,proto3" json:"last_update_time_unix_present,omitempty"`
	Distance                  float32   `protobuf:"fixed32,10,opt,name=distance,proto3" json:"distance,omitempty"`
	DistancePresent           bool      `protobuf:"varint,11,opt,name=distance_present,json=distancePresent,proto3" json:"distance_present,omitempty"`
	Certainty                 float32   `protobuf:"fixed32,12,opt,name=certainty,proto3" json:"certainty,omitempty"`
	CertaintyPresent          bool      `protobuf:"varint,13,opt,name=certainty_present,json=certaintyPresent,proto3" json:"certainty_present,omitempty"`
	Score                     float32   `protobuf:"fixed32,14,opt,name=score,proto3" json:"score,omitempty"`
	ScorePresent              bool      `protobuf:"varint,15,opt,name=score_present,json=scorePresent,proto3" json:"score_present,omitempty"`
	ExplainScore              string    `protobuf:"bytes,16,opt,name=explain_score,json=explainScore,proto3" json:"explain_score,omitempty"`
	ExplainScorePresent       bool      `protobuf:"varint,17,opt,name=explain_score_present,json=explainScorePresent,proto3" json:"explain_score_present,omitempty"`
	IsConsistent              bool      `protobuf:"varint,18,opt,name=is_consistent,json=isConsistent,proto3" json:"is_consistent,omitempty"`
	IsConsistentPresent       bool      `protobuf:"varint,19,opt,name=is_consistent_present,json=isConsistentPresent,proto3" json:"is_consistent_present,omitempty"`
}

func (m *MetadataResult) Reset()         { *m = MetadataResult{} }
func (m *MetadataResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*MetadataResult) ProtoMessage()    {}

// RefPropertiesResult is one decoded reference traversal.
type RefPropertiesResult struct {
	PropName   string              `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Properties []*PropertiesResult `protobuf:"bytes,2,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *RefPropertiesResult) Reset()         { *m = RefPropertiesResult{} }
func (m *RefPropertiesResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*RefPropertiesResult) ProtoMessage()    {}

// PropertiesResult is one object's decoded property record; referenced
// objects carry their own metadata and may nest further references.
type PropertiesResult struct {
	NonRefProps      *ObjectProperties      `protobuf:"bytes,1,opt,name=non_ref_props,json=nonRefProps,proto3" json:"non_ref_props,omitempty"`
	RefProps         []*RefPropertiesResult `protobuf:"bytes,2,rep,name=ref_props,json=refProps,proto3" json:"ref_props,omitempty"`
	TargetCollection string                 `protobuf:"bytes,3,opt,name=target_collection,json=targetCollection,proto3" json:"target_collection,omitempty"`
	Metadata         *MetadataResult        `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *PropertiesResult) Reset()         { *m = PropertiesResult{} }
func (m *PropertiesResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*PropertiesResult) ProtoMessage()    {}

// GenerativeReply is the per-object generative augmentation.
type GenerativeReply struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *GenerativeReply) Reset()         { *m = GenerativeReply{} }
func (m *GenerativeReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*GenerativeReply) ProtoMessage()    {}

// SearchResult is one hit.
type SearchResult struct {
	Properties *PropertiesResult `protobuf:"bytes,1,opt,name=properties,proto3" json:"properties,omitempty"`
	Metadata   *MetadataResult   `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Generative *GenerativeReply  `protobuf:"bytes,3,opt,name=generative,proto3" json:"generative,omitempty"`
}

func (m *SearchResult) Reset()         { *m = SearchResult{} }
func (m *SearchResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*SearchResult) ProtoMessage()    {}

// GroupByResult is one group of a grouped search.
type GroupByResult struct {
	Name            string          `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	MinDistance     float32         `protobuf:"fixed32,2,opt,name=min_distance,json=minDistance,proto3" json:"min_distance,omitempty"`
	MaxDistance     float32         `protobuf:"fixed32,3,opt,name=max_distance,json=maxDistance,proto3" json:"max_distance,omitempty"`
	NumberOfObjects int64           `protobuf:"varint,4,opt,name=number_of_objects,json=numberOfObjects,proto3" json:"number_of_objects,omitempty"`
	Objects         []*SearchResult `protobuf:"bytes,5,rep,name=objects,proto3" json:"objects,omitempty"`
}

func (m *GroupByResult) Reset()         { *m = GroupByResult{} }
func (m *GroupByResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*GroupByResult) ProtoMessage()    {}

// SearchReply is the Search service response.
type SearchReply struct {
	Took                    float32          `protobuf:"fixed32,1,opt,name=took,proto3" json:"took,omitempty"`
	Results                 []*SearchResult  `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	GenerativeGroupedResult *string          `protobuf:"bytes,3,opt,name=generative_grouped_result,json=generativeGroupedResult,proto3,oneof" json:"generative_grouped_result,omitempty"`
	GroupByResults          []*GroupByResult `protobuf:"bytes,4,rep,name=group_by_results,json=groupByResults,proto3" json:"group_by_results,omitempty"`
}

func (m *SearchReply) Reset()         { *m = SearchReply{} }
func (m *SearchReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*SearchReply) ProtoMessage()    {}
