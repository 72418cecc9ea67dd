package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Properties is an open record of heterogeneous property values. Scalar
// values are text (string), int (int64), number (float64), boolean (bool),
// date (time.Time), uuid (uuid.UUID), blob ([]byte), geo (*GeoCoordinate),
// phone (*PhoneNumber); arrays are slices of those; nested objects are
// Properties again.
type Properties map[string]any

// Object is a single data object in a collection.
type Object struct {
	UUID       uuid.UUID
	Properties Properties
	// Vector is the default (unnamed) vector.
	Vector []float32
	// Vectors holds named vectors, keyed by vector name.
	Vectors    map[string][]float32
	References map[string]Reference
	Metadata   *MetadataReturn
	Collection string
	Tenant     string
}

// Reference points at one or more objects, either in the implicit single
// target collection of the property or in an explicit target collection.
// During ingestion it holds pending UUIDs; after a search that requested the
// traversal it holds realized Objects.
type Reference struct {
	UUIDs            []uuid.UUID
	TargetCollection string
	Objects          []*Object
}

// ReferenceToUUIDs builds a single-target reference.
func ReferenceToUUIDs(ids ...uuid.UUID) Reference {
	return Reference{UUIDs: ids}
}

// ReferenceToMultiTarget builds a reference into an explicit target
// collection, for multi-target reference properties.
func ReferenceToMultiTarget(targetCollection string, ids ...uuid.UUID) Reference {
	return Reference{UUIDs: ids, TargetCollection: targetCollection}
}

// Beacons renders the reference in the server's beacon URI form. Multi-target
// references carry the collection; single-target references use the short
// back-compatible form.
func (r Reference) Beacons() []string {
	beacons := make([]string, 0, len(r.UUIDs))
	for _, id := range r.UUIDs {
		beacons = append(beacons, Beacon(r.TargetCollection, id))
	}
	return beacons
}

// Beacon renders a single beacon URI. An empty collection yields the
// implicit single-target form.
func Beacon(collection string, id uuid.UUID) string {
	if collection == "" {
		return fmt.Sprintf("weaviate://localhost/%s", id)
	}
	return fmt.Sprintf("weaviate://localhost/%s/%s", CollectionName(collection), id)
}

// CollectionName normalizes a collection name: the first letter is always
// capitalized.
func CollectionName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// MetadataReturn carries the per-object metadata returned by the server.
// Every field is independently optional; nil means the server did not return
// the field or it was not requested.
type MetadataReturn struct {
	UUID               *uuid.UUID
	Vector             []float32
	Vectors            map[string][]float32
	CreationTimeUnix   *int64
	LastUpdateTimeUnix *int64
	Distance           *float32
	Certainty          *float32
	Score              *float32
	ExplainScore       *string
	IsConsistent       *bool
	Generative         *string
}

// MetadataQuery selects which metadata fields a search should return.
type MetadataQuery struct {
	Vector             bool
	CreationTimeUnix   bool
	LastUpdateTimeUnix bool
	Distance           bool
	Certainty          bool
	Score              bool
	ExplainScore       bool
	IsConsistent       bool
}

// ConsistencyLevel controls how many replicas must acknowledge an operation.
type ConsistencyLevel string

const (
	ConsistencyLevelOne    ConsistencyLevel = "ONE"
	ConsistencyLevelQuorum ConsistencyLevel = "QUORUM"
	ConsistencyLevelAll    ConsistencyLevel = "ALL"
)

// GeoCoordinate is a latitude/longitude pair.
type GeoCoordinate struct {
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
}

// PhoneNumber is a phone property value. Input is the raw user input plus an
// optional default country; the remaining fields are server-computed.
type PhoneNumber struct {
	Input                 string `json:"input"`
	DefaultCountry        string `json:"defaultCountry,omitempty"`
	InternationalFormatted string `json:"internationalFormatted,omitempty"`
	CountryCode           uint64 `json:"countryCode,omitempty"`
	National              uint64 `json:"national,omitempty"`
	NationalFormatted     string `json:"nationalFormatted,omitempty"`
	Valid                 bool   `json:"valid,omitempty"`
}
