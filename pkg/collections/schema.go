package collections

import (
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// SchemaClass is the /v1/schema wire shape of one collection. The client
// package reuses it for create and list.
type SchemaClass struct {
	Class               string                    `json:"class"`
	Description         string                    `json:"description,omitempty"`
	Properties          []schemaProperty          `json:"properties,omitempty"`
	Vectorizer          string                    `json:"vectorizer,omitempty"`
	ModuleConfig        map[string]any            `json:"moduleConfig,omitempty"`
	VectorConfig        map[string]schemaVector   `json:"vectorConfig,omitempty"`
	MultiTenancyConfig  *types.MultiTenancyConfig `json:"multiTenancyConfig,omitempty"`
	ReplicationConfig   *types.ReplicationConfig  `json:"replicationConfig,omitempty"`
	InvertedIndexConfig *schemaInvertedIndex      `json:"invertedIndexConfig,omitempty"`
}

type schemaProperty struct {
	Name             string           `json:"name"`
	DataType         []string         `json:"dataType"`
	Description      string           `json:"description,omitempty"`
	IndexFilterable  *bool            `json:"indexFilterable,omitempty"`
	IndexSearchable  *bool            `json:"indexSearchable,omitempty"`
	Tokenization     string           `json:"tokenization,omitempty"`
	NestedProperties []schemaProperty `json:"nestedProperties,omitempty"`
	ModuleConfig     map[string]any   `json:"moduleConfig,omitempty"`
}

type schemaVector struct {
	Vectorizer        map[string]any `json:"vectorizer,omitempty"`
	VectorIndexType   string         `json:"vectorIndexType,omitempty"`
	VectorIndexConfig map[string]any `json:"vectorIndexConfig,omitempty"`
}

type schemaInvertedIndex struct {
	BM25                *schemaBM25 `json:"bm25,omitempty"`
	IndexTimestamps     bool        `json:"indexTimestamps,omitempty"`
	IndexNullState      bool        `json:"indexNullState,omitempty"`
	IndexPropertyLength bool        `json:"indexPropertyLength,omitempty"`
}

type schemaBM25 struct {
	B  float64 `json:"b,omitempty"`
	K1 float64 `json:"k1,omitempty"`
}

// primitiveDataTypes recognizes non-reference dataType entries; anything
// else in the first slot marks a reference property.
var primitiveDataTypes = map[string]bool{
	string(types.DataTypeText):    true,
	string(types.DataTypeInt):     true,
	string(types.DataTypeNumber):  true,
	string(types.DataTypeBoolean): true,
	string(types.DataTypeDate):    true,
	string(types.DataTypeUUID):    true,
	string(types.DataTypeBlob):    true,
	string(types.DataTypeGeo):     true,
	string(types.DataTypePhone):   true,
	string(types.DataTypeObject):  true,

	string(types.DataTypeTextArray):    true,
	string(types.DataTypeIntArray):     true,
	string(types.DataTypeNumberArray):  true,
	string(types.DataTypeBooleanArray): true,
	string(types.DataTypeDateArray):    true,
	string(types.DataTypeUUIDArray):    true,
	string(types.DataTypeObjectArray):  true,

	// Legacy alias still emitted by old schemas.
	"string": true,
}

func marshalProperty(p types.Property) schemaProperty {
	out := schemaProperty{
		Name:            p.Name,
		DataType:        []string{string(p.DataType)},
		Description:     p.Description,
		IndexFilterable: p.IndexFilterable,
		IndexSearchable: p.IndexSearchable,
		Tokenization:    string(p.Tokenization),
		ModuleConfig:    p.VectorizerConfig,
	}
	for _, nested := range p.NestedProperties {
		out.NestedProperties = append(out.NestedProperties, marshalProperty(nested))
	}
	return out
}

func unmarshalProperty(w schemaProperty) types.Property {
	p := types.Property{
		Name:            w.Name,
		Description:     w.Description,
		IndexFilterable: w.IndexFilterable,
		IndexSearchable: w.IndexSearchable,
		Tokenization:    types.Tokenization(w.Tokenization),
		VectorizerConfig: w.ModuleConfig,
	}
	if len(w.DataType) > 0 {
		p.DataType = types.DataType(w.DataType[0])
	}
	for _, nested := range w.NestedProperties {
		p.NestedProperties = append(p.NestedProperties, unmarshalProperty(nested))
	}
	return p
}

// MarshalSchema renders a collection config in its wire form.
func MarshalSchema(cfg *types.CollectionConfig) *SchemaClass {
	w := &SchemaClass{
		Class:              types.CollectionName(cfg.Name),
		Description:        cfg.Description,
		Vectorizer:         string(cfg.Vectorizer),
		MultiTenancyConfig: cfg.MultiTenancy,
		ReplicationConfig:  cfg.Replication,
	}
	if w.Vectorizer == "" && len(cfg.VectorConfig) == 0 {
		w.Vectorizer = string(types.VectorizerNone)
	}
	for _, p := range cfg.Properties {
		w.Properties = append(w.Properties, marshalProperty(p))
	}
	for _, r := range cfg.References {
		w.Properties = append(w.Properties, schemaProperty{
			Name:        r.Name,
			DataType:    normalizeTargets(r.TargetCollections),
			Description: r.Description,
		})
	}
	if len(cfg.VectorConfig) > 0 {
		w.VectorConfig = make(map[string]schemaVector, len(cfg.VectorConfig))
		for name, vc := range cfg.VectorConfig {
			entry := schemaVector{
				VectorIndexType:   vc.VectorIndexType,
				VectorIndexConfig: vc.VectorIndexConfig,
			}
			module := map[string]any{}
			if len(vc.SourceProperties) > 0 {
				module["properties"] = vc.SourceProperties
			}
			entry.Vectorizer = map[string]any{string(vc.Vectorizer): module}
			w.VectorConfig[name] = entry
		}
	}
	if cfg.GenerativeModule != "" {
		w.ModuleConfig = map[string]any{cfg.GenerativeModule: cfg.GenerativeConfig}
		if cfg.GenerativeConfig == nil {
			w.ModuleConfig[cfg.GenerativeModule] = map[string]any{}
		}
	}
	if cfg.InvertedIndex != nil {
		w.InvertedIndexConfig = &schemaInvertedIndex{
			IndexTimestamps:     cfg.InvertedIndex.IndexTimestamps,
			IndexNullState:      cfg.InvertedIndex.IndexNullState,
			IndexPropertyLength: cfg.InvertedIndex.IndexPropertyLength,
		}
		if cfg.InvertedIndex.BM25B != 0 || cfg.InvertedIndex.BM25K1 != 0 {
			w.InvertedIndexConfig.BM25 = &schemaBM25{
				B:  cfg.InvertedIndex.BM25B,
				K1: cfg.InvertedIndex.BM25K1,
			}
		}
	}
	return w
}

// UnmarshalSchema parses the wire form back into a collection config,
// splitting properties from reference properties.
func UnmarshalSchema(w *SchemaClass) *types.CollectionConfig {
	cfg := &types.CollectionConfig{
		Name:         w.Class,
		Description:  w.Description,
		Vectorizer:   types.Vectorizer(w.Vectorizer),
		MultiTenancy: w.MultiTenancyConfig,
		Replication:  w.ReplicationConfig,
	}
	for _, p := range w.Properties {
		if len(p.DataType) > 0 && !primitiveDataTypes[p.DataType[0]] {
			cfg.References = append(cfg.References, types.ReferenceProperty{
				Name:              p.Name,
				TargetCollections: p.DataType,
				Description:       p.Description,
			})
			continue
		}
		cfg.Properties = append(cfg.Properties, unmarshalProperty(p))
	}
	if len(w.VectorConfig) > 0 {
		cfg.VectorConfig = make(map[string]types.VectorConfig, len(w.VectorConfig))
		for name, entry := range w.VectorConfig {
			vc := types.VectorConfig{
				VectorIndexType:   entry.VectorIndexType,
				VectorIndexConfig: entry.VectorIndexConfig,
			}
			for module, raw := range entry.Vectorizer {
				vc.Vectorizer = types.Vectorizer(module)
				if m, ok := raw.(map[string]any); ok {
					if props, ok := m["properties"].([]any); ok {
						for _, p := range props {
							if s, ok := p.(string); ok {
								vc.SourceProperties = append(vc.SourceProperties, s)
							}
						}
					}
				}
			}
			cfg.VectorConfig[name] = vc
		}
	}
	for module, raw := range w.ModuleConfig {
		cfg.GenerativeModule = module
		if m, ok := raw.(map[string]any); ok {
			cfg.GenerativeConfig = m
		}
	}
	if w.InvertedIndexConfig != nil {
		cfg.InvertedIndex = &types.InvertedIndexConfig{
			IndexTimestamps:     w.InvertedIndexConfig.IndexTimestamps,
			IndexNullState:      w.InvertedIndexConfig.IndexNullState,
			IndexPropertyLength: w.InvertedIndexConfig.IndexPropertyLength,
		}
		if w.InvertedIndexConfig.BM25 != nil {
			cfg.InvertedIndex.BM25B = w.InvertedIndexConfig.BM25.B
			cfg.InvertedIndex.BM25K1 = w.InvertedIndexConfig.BM25.K1
		}
	}
	return cfg
}

// normalizeTargets capitalizes reference target collection names.
func normalizeTargets(targets []string) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = types.CollectionName(t)
	}
	return out
}
