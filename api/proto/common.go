package proto

import "fmt"

// ConsistencyLevel mirrors the server's replica acknowledgment levels.
type ConsistencyLevel int32

const (
	ConsistencyLevel_UNSPECIFIED ConsistencyLevel = 0
	ConsistencyLevel_ONE         ConsistencyLevel = 1
	ConsistencyLevel_QUORUM      ConsistencyLevel = 2
	ConsistencyLevel_ALL         ConsistencyLevel = 3
)

// TextArray is a repeated-string operand wrapper.
type TextArray struct {
	Values []string `protobuf:"bytes,1,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *TextArray) Reset()         { *m = TextArray{} }
func (m *TextArray) String() string { return fmt.Sprintf("%+v", *m) }
func (*TextArray) ProtoMessage()    {}

// IntArray is a repeated-int64 operand wrapper.
type IntArray struct {
	Values []int64 `protobuf:"varint,1,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *IntArray) Reset()         { *m = IntArray{} }
func (m *IntArray) String() string { return fmt.Sprintf("%+v", *m) }
func (*IntArray) ProtoMessage()    {}

// NumberArray is a repeated-double operand wrapper.
type NumberArray struct {
	Values []float64 `protobuf:"fixed64,1,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *NumberArray) Reset()         { *m = NumberArray{} }
func (m *NumberArray) String() string { return fmt.Sprintf("%+v", *m) }
func (*NumberArray) ProtoMessage()    {}

// BooleanArray is a repeated-bool operand wrapper.
type BooleanArray struct {
	Values []bool `protobuf:"varint,1,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *BooleanArray) Reset()         { *m = BooleanArray{} }
func (m *BooleanArray) String() string { return fmt.Sprintf("%+v", *m) }
func (*BooleanArray) ProtoMessage()    {}

// GeoCoordinate is a latitude/longitude property value.
type GeoCoordinate struct {
	Latitude  float32 `protobuf:"fixed32,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude float32 `protobuf:"fixed32,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
}

func (m *GeoCoordinate) Reset()         { *m = GeoCoordinate{} }
func (m *GeoCoordinate) String() string { return fmt.Sprintf("%+v", *m) }
func (*GeoCoordinate) ProtoMessage()    {}

// PhoneNumber is a phone property value.
type PhoneNumber struct {
	Input                  string `protobuf:"bytes,1,opt,name=input,proto3" json:"input,omitempty"`
	DefaultCountry         string `protobuf:"bytes,2,opt,name=default_country,json=defaultCountry,proto3" json:"default_country,omitempty"`
	InternationalFormatted string `protobuf:"bytes,3,opt,name=international_formatted,json=internationalFormatted,proto3" json:"international_formatted,omitempty"`
	CountryCode            uint64 `protobuf:"varint,4,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	National               uint64 `protobuf:"varint,5,opt,name=national,proto3" json:"national,omitempty"`
	NationalFormatted      string `protobuf:"bytes,6,opt,name=national_formatted,json=nationalFormatted,proto3" json:"national_formatted,omitempty"`
	Valid                  bool   `protobuf:"varint,7,opt,name=valid,proto3" json:"valid,omitempty"`
}

func (m *PhoneNumber) Reset()         { *m = PhoneNumber{} }
func (m *PhoneNumber) String() string { return fmt.Sprintf("%+v", *m) }
func (*PhoneNumber) ProtoMessage()    {}

// NamedVector is one labeled vector space's vector.
type NamedVector struct {
	Name   string    `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Vector []float32 `protobuf:"fixed32,2,rep,packed,name=vector,proto3" json:"vector,omitempty"`
}

func (m *NamedVector) Reset()         { *m = NamedVector{} }
func (m *NamedVector) String() string { return fmt.Sprintf("%+v", *m) }
func (*NamedVector) ProtoMessage()    {}

// ScalarProperty carries one scalar property value keyed by name. Exactly
// one value field is set.
type ScalarProperty struct {
	PropName     string           `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	TextValue    *string          `protobuf:"bytes,2,opt,name=text_value,json=textValue,proto3,oneof" json:"text_value,omitempty"`
	IntValue     *int64           `protobuf:"varint,3,opt,name=int_value,json=intValue,proto3,oneof" json:"int_value,omitempty"`
	NumberValue  *float64         `protobuf:"fixed64,4,opt,name=number_value,json=numberValue,proto3,oneof" json:"number_value,omitempty"`
	BooleanValue *bool            `protobuf:"varint,5,opt,name=boolean_value,json=booleanValue,proto3,oneof" json:"boolean_value,omitempty"`
	DateValue    *string          `protobuf:"bytes,6,opt,name=date_value,json=dateValue,proto3,oneof" json:"date_value,omitempty"`
	UuidValue    *string          `protobuf:"bytes,7,opt,name=uuid_value,json=uuidValue,proto3,oneof" json:"uuid_value,omitempty"`
	BlobValue    []byte           `protobuf:"bytes,8,opt,name=blob_value,json=blobValue,proto3" json:"blob_value,omitempty"`
	GeoValue     *GeoCoordinate   `protobuf:"bytes,9,opt,name=geo_value,json=geoValue,proto3" json:"geo_value,omitempty"`
	PhoneValue   *PhoneNumber     `protobuf:"bytes,10,opt,name=phone_value,json=phoneValue,proto3" json:"phone_value,omitempty"`
	NestedValue  *ObjectProperties `protobuf:"bytes,11,opt,name=nested_value,json=nestedValue,proto3" json:"nested_value,omitempty"`
	NullValue    bool             `protobuf:"varint,12,opt,name=null_value,json=nullValue,proto3" json:"null_value,omitempty"`
}

func (m *ScalarProperty) Reset()         { *m = ScalarProperty{} }
func (m *ScalarProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*ScalarProperty) ProtoMessage()    {}

// TextArrayProperty is a text[] property keyed by name.
type TextArrayProperty struct {
	PropName string   `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Values   []string `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *TextArrayProperty) Reset()         { *m = TextArrayProperty{} }
func (m *TextArrayProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*TextArrayProperty) ProtoMessage()    {}

// IntArrayProperty is an int[] property keyed by name.
type IntArrayProperty struct {
	PropName string  `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Values   []int64 `protobuf:"varint,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *IntArrayProperty) Reset()         { *m = IntArrayProperty{} }
func (m *IntArrayProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*IntArrayProperty) ProtoMessage()    {}

// NumberArrayProperty is a number[] property keyed by name.
type NumberArrayProperty struct {
	PropName string    `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Values   []float64 `protobuf:"fixed64,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *NumberArrayProperty) Reset()         { *m = NumberArrayProperty{} }
func (m *NumberArrayProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*NumberArrayProperty) ProtoMessage()    {}

// BooleanArrayProperty is a boolean[] property keyed by name.
type BooleanArrayProperty struct {
	PropName string `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Values   []bool `protobuf:"varint,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *BooleanArrayProperty) Reset()         { *m = BooleanArrayProperty{} }
func (m *BooleanArrayProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*BooleanArrayProperty) ProtoMessage()    {}

// ObjectArrayProperty is an object[] property keyed by name.
type ObjectArrayProperty struct {
	PropName string              `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Values   []*ObjectProperties `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *ObjectArrayProperty) Reset()         { *m = ObjectArrayProperty{} }
func (m *ObjectArrayProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*ObjectArrayProperty) ProtoMessage()    {}

// RefProperty carries the beacons of one reference property on ingest.
type RefProperty struct {
	PropName string   `protobuf:"bytes,1,opt,name=prop_name,json=propName,proto3" json:"prop_name,omitempty"`
	Beacons  []string `protobuf:"bytes,2,rep,name=beacons,proto3" json:"beacons,omitempty"`
}

func (m *RefProperty) Reset()         { *m = RefProperty{} }
func (m *RefProperty) String() string { return fmt.Sprintf("%+v", *m) }
func (*RefProperty) ProtoMessage()    {}

// ObjectProperties is the full typed property record of one object.
type ObjectProperties struct {
	Scalars       []*ScalarProperty       `protobuf:"bytes,1,rep,name=scalars,proto3" json:"scalars,omitempty"`
	TextArrays    []*TextArrayProperty    `protobuf:"bytes,2,rep,name=text_arrays,json=textArrays,proto3" json:"text_arrays,omitempty"`
	IntArrays     []*IntArrayProperty     `protobuf:"bytes,3,rep,name=int_arrays,json=intArrays,proto3" json:"int_arrays,omitempty"`
	NumberArrays  []*NumberArrayProperty  `protobuf:"bytes,4,rep,name=number_arrays,json=numberArrays,proto3" json:"number_arrays,omitempty"`
	BooleanArrays []*BooleanArrayProperty `protobuf:"bytes,5,rep,name=boolean_arrays,json=booleanArrays,proto3" json:"boolean_arrays,omitempty"`
	ObjectArrays  []*ObjectArrayProperty  `protobuf:"bytes,6,rep,name=object_arrays,json=objectArrays,proto3" json:"object_arrays,omitempty"`
	Refs          []*RefProperty          `protobuf:"bytes,7,rep,name=refs,proto3" json:"refs,omitempty"`
}

func (m *ObjectProperties) Reset()         { *m = ObjectProperties{} }
func (m *ObjectProperties) String() string { return fmt.Sprintf("%+v", *m) }
func (*ObjectProperties) ProtoMessage()    {}
