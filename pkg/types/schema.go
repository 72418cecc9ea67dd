package types

import (
	"github.com/cuemby/weaviate-client-go/pkg/errors"
)

// DataType is the wire name of a property data type.
type DataType string

const (
	DataTypeText    DataType = "text"
	DataTypeInt     DataType = "int"
	DataTypeNumber  DataType = "number"
	DataTypeBoolean DataType = "boolean"
	DataTypeDate    DataType = "date"
	DataTypeUUID    DataType = "uuid"
	DataTypeBlob    DataType = "blob"
	DataTypeGeo     DataType = "geoCoordinates"
	DataTypePhone   DataType = "phoneNumber"
	DataTypeObject  DataType = "object"

	DataTypeTextArray    DataType = "text[]"
	DataTypeIntArray     DataType = "int[]"
	DataTypeNumberArray  DataType = "number[]"
	DataTypeBooleanArray DataType = "boolean[]"
	DataTypeDateArray    DataType = "date[]"
	DataTypeUUIDArray    DataType = "uuid[]"
	DataTypeObjectArray  DataType = "object[]"
)

// IsArray reports whether the data type is an array variant.
func (d DataType) IsArray() bool {
	n := len(d)
	return n > 2 && d[n-2:] == "[]"
}

// Elem returns the element type of an array variant, or the type itself.
func (d DataType) Elem() DataType {
	if d.IsArray() {
		return d[:len(d)-2]
	}
	return d
}

// Tokenization controls how a text property is split for the inverted index.
type Tokenization string

const (
	TokenizationWord       Tokenization = "word"
	TokenizationWhitespace Tokenization = "whitespace"
	TokenizationLowercase  Tokenization = "lowercase"
	TokenizationField      Tokenization = "field"
)

// Property describes one non-reference property of a collection.
type Property struct {
	Name            string       `json:"name"`
	DataType        DataType     `json:"-"`
	Description     string       `json:"description,omitempty"`
	IndexFilterable *bool        `json:"indexFilterable,omitempty"`
	IndexSearchable *bool        `json:"indexSearchable,omitempty"`
	Tokenization    Tokenization `json:"tokenization,omitempty"`
	// NestedProperties describes object/object[] members.
	NestedProperties []Property `json:"nestedProperties,omitempty"`
	// VectorizePropertyName and other vectorizer behavior for this property.
	VectorizerConfig map[string]any `json:"moduleConfig,omitempty"`
}

// ReferenceProperty describes a cross-reference property. One target
// collection is a single-target reference; several make it multi-target.
type ReferenceProperty struct {
	Name              string   `json:"name"`
	TargetCollections []string `json:"dataType"`
	Description       string   `json:"description,omitempty"`
}

// Vectorizer identifies the module that vectorizes objects of a collection.
type Vectorizer string

const (
	VectorizerNone            Vectorizer = "none"
	VectorizerText2VecOpenAI  Vectorizer = "text2vec-openai"
	VectorizerText2VecCohere  Vectorizer = "text2vec-cohere"
	VectorizerText2VecHugging Vectorizer = "text2vec-huggingface"
	VectorizerText2VecOllama  Vectorizer = "text2vec-ollama"
	VectorizerMulti2VecClip   Vectorizer = "multi2vec-clip"
)

// VectorizerAuto would select a vectorizer from the server's enabled modules.
// The factory is declared but not implemented.
func VectorizerAuto() (Vectorizer, error) {
	return "", errors.ErrNotImplemented
}

// VectorConfig describes one (possibly named) vector space.
type VectorConfig struct {
	Vectorizer        Vectorizer     `json:"-"`
	SourceProperties  []string       `json:"-"`
	VectorIndexType   string         `json:"vectorIndexType,omitempty"`
	VectorIndexConfig map[string]any `json:"vectorIndexConfig,omitempty"`
}

// MultiTenancyConfig enables tenant partitioning for a collection.
type MultiTenancyConfig struct {
	Enabled              bool `json:"enabled"`
	AutoTenantCreation   bool `json:"autoTenantCreation,omitempty"`
	AutoTenantActivation bool `json:"autoTenantActivation,omitempty"`
}

// ReplicationConfig controls replica counts and async repair.
type ReplicationConfig struct {
	Factor       int  `json:"factor,omitempty"`
	AsyncEnabled bool `json:"asyncEnabled,omitempty"`
}

// InvertedIndexConfig carries inverted-index tuning.
type InvertedIndexConfig struct {
	BM25B               float64 `json:"b,omitempty"`
	BM25K1              float64 `json:"k1,omitempty"`
	IndexTimestamps     bool    `json:"indexTimestamps,omitempty"`
	IndexNullState      bool    `json:"indexNullState,omitempty"`
	IndexPropertyLength bool    `json:"indexPropertyLength,omitempty"`
}

// CollectionConfig is the client-side snapshot of a collection's schema. It
// is never mutated locally; updates round-trip through the server.
type CollectionConfig struct {
	Name              string
	Description       string
	Properties        []Property
	References        []ReferenceProperty
	Vectorizer        Vectorizer
	VectorConfig      map[string]VectorConfig
	MultiTenancy      *MultiTenancyConfig
	Replication       *ReplicationConfig
	InvertedIndex     *InvertedIndexConfig
	GenerativeModule  string
	GenerativeConfig  map[string]any
}

// Shard is the status of one shard of a collection.
type Shard struct {
	Name           string `json:"name"`
	Status         string `json:"status"`
	VectorQueueLen int64  `json:"vectorQueueSize,omitempty"`
}
