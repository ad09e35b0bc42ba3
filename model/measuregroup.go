package model

import "time"

// MeasureGroup is a group of measures sharing a fact source and granularity.
type MeasureGroup struct {
	Header
	LastProcessed             *time.Time
	Translations              []Translation
	Type                      *string
	State                     *string
	Measures                  []Measure
	DataAggregation           *string
	Source                    Binding
	StorageMode               *StorageMode
	StorageLocation           *string
	IgnoreUnrelatedDimensions *bool
	ProactiveCaching          *ProactiveCaching
	EstimatedRows             *int64
	ErrorConfiguration        *ErrorConfiguration
	EstimatedSize             *int64
	ProcessingMode            *ProcessingMode
	Dimensions                []MeasureGroupDimension
	Partitions                []Partition
	AggregationPrefix         *string
	ProcessingPriority        *int32
	AggregationDesigns        []AggregationDesign
	ProcessingState           *string
}

// Measure is an aggregated fact column of a measure group.
type Measure struct {
	Name              *string
	ID                *string
	Description       *string
	AggregateFunction *string
	DataType          *string
	Source            *DataItem
	Visible           *bool
	MeasureExpression *string
	DisplayFolder     *string
	FormatString      *string
	BackColor         *string
	ForeColor         *string
	FontName          *string
	FontSize          *string
	FontFlags         *string
	Translations      []Translation
	Annotations       []Annotation
}

// MeasureGroupDimension relates a measure group to a cube dimension.
// A nil MeasureGroupDimension means the variant was not recognized.
type MeasureGroupDimension interface {
	MeasureGroupDimensionKind() string
	isMeasureGroupDimension()
}

// MeasureGroupDimension variant names, in dispatch order.
const (
	KindRegularMeasureGroupDimension    = "RegularMeasureGroupDimension"
	KindReferenceMeasureGroupDimension  = "ReferenceMeasureGroupDimension"
	KindManyToManyMeasureGroupDimension = "ManyToManyMeasureGroupDimension"
	KindDataMiningMeasureGroupDimension = "DataMiningMeasureGroupDimension"
	KindDegenerateMeasureGroupDimension = "DegenerateMeasureGroupDimension"
)

// MeasureGroupDimensionKinds lists every MeasureGroupDimension variant name.
var MeasureGroupDimensionKinds = []string{
	KindRegularMeasureGroupDimension,
	KindReferenceMeasureGroupDimension,
	KindManyToManyMeasureGroupDimension,
	KindDataMiningMeasureGroupDimension,
	KindDegenerateMeasureGroupDimension,
}

// MeasureGroupDimensionHeader holds the fields every measure group dimension shares.
type MeasureGroupDimensionHeader struct {
	CubeDimensionID *string
	Annotations     []Annotation
	Source          Binding
}

// RegularMeasureGroupDimension joins the fact table directly to the dimension.
type RegularMeasureGroupDimension struct {
	MeasureGroupDimensionHeader
	Cardinality *string
	Attributes  []MeasureGroupAttribute
}

// ReferenceMeasureGroupDimension joins through an intermediate dimension.
type ReferenceMeasureGroupDimension struct {
	MeasureGroupDimensionHeader
	IntermediateCubeDimensionID        *string
	IntermediateGranularityAttributeID *string
	Materialization                    *string
	ProcessingState                    *string
	Attributes                         []MeasureGroupAttribute
}

// ManyToManyMeasureGroupDimension joins through an intermediate measure group.
type ManyToManyMeasureGroupDimension struct {
	MeasureGroupDimensionHeader
	MeasureGroupID *string
	DirectSlice    *string
}

// DataMiningMeasureGroupDimension joins through a data mining dimension.
type DataMiningMeasureGroupDimension struct {
	MeasureGroupDimensionHeader
	CaseCubeDimensionID *string
}

// DegenerateMeasureGroupDimension is built from the fact table itself.
type DegenerateMeasureGroupDimension struct {
	MeasureGroupDimensionHeader
	ShareDimensionStorage *string
	Attributes            []MeasureGroupAttribute
}

// MeasureGroupAttribute maps a dimension attribute to fact table columns.
type MeasureGroupAttribute struct {
	AttributeID *string
	KeyColumns  []DataItem
	Type        *string
	Annotations []Annotation
}

func (RegularMeasureGroupDimension) MeasureGroupDimensionKind() string {
	return KindRegularMeasureGroupDimension
}

func (ReferenceMeasureGroupDimension) MeasureGroupDimensionKind() string {
	return KindReferenceMeasureGroupDimension
}

func (ManyToManyMeasureGroupDimension) MeasureGroupDimensionKind() string {
	return KindManyToManyMeasureGroupDimension
}

func (DataMiningMeasureGroupDimension) MeasureGroupDimensionKind() string {
	return KindDataMiningMeasureGroupDimension
}

func (DegenerateMeasureGroupDimension) MeasureGroupDimensionKind() string {
	return KindDegenerateMeasureGroupDimension
}

func (RegularMeasureGroupDimension) isMeasureGroupDimension()    {}
func (ReferenceMeasureGroupDimension) isMeasureGroupDimension()  {}
func (ManyToManyMeasureGroupDimension) isMeasureGroupDimension() {}
func (DataMiningMeasureGroupDimension) isMeasureGroupDimension() {}
func (DegenerateMeasureGroupDimension) isMeasureGroupDimension() {}

// Partition is a storage unit of a measure group.
type Partition struct {
	Header
	LastProcessed        *time.Time
	State                *string
	Source               TabularBinding
	ProcessingPriority   *int32
	AggregationPrefix    *string
	StorageMode          *StorageMode
	ProcessingMode       *ProcessingMode
	ErrorConfiguration   *ErrorConfiguration
	StorageLocation      *string
	RemoteDataSourceID   *string
	Slice                *string
	ProactiveCaching     *ProactiveCaching
	Type                 *string
	EstimatedSize        *int64
	EstimatedRows        *int64
	CurrentStorageMode   *StorageMode
	AggregationDesignID  *string
	AggregationInstances []AggregationInstance
	DirectQueryUsage     *string
}

// AggregationInstance is a user defined aggregation stored with a partition.
type AggregationInstance struct {
	ID              *string
	Name            *string
	AggregationType *string
	Source          TabularBinding
	Dimensions      []AggregationInstanceDimension
	Measures        []AggregationInstanceMeasure
	Description     *string
	Annotations     []Annotation
}

// AggregationInstanceDimension lists the attributes of one dimension in an aggregation instance.
type AggregationInstanceDimension struct {
	CubeDimensionID *string
	Attributes      []AggregationInstanceAttribute
}

// AggregationInstanceAttribute maps an attribute to source key columns.
type AggregationInstanceAttribute struct {
	AttributeID *string
	KeyColumns  []DataItem
}

// AggregationInstanceMeasure maps a measure to its source column.
type AggregationInstanceMeasure struct {
	MeasureID *string
	Source    Binding
}

// AggregationDesign is a set of aggregations shared by partitions.
type AggregationDesign struct {
	Header
	EstimatedRows            *int64
	Dimensions               []AggregationDesignDimension
	Aggregations             []Aggregation
	EstimatedPerformanceGain *int32
}

// AggregationDesignDimension carries per-dimension statistics of an aggregation design.
type AggregationDesignDimension struct {
	CubeDimensionID *string
	Attributes      []AggregationDesignAttribute
	Annotations     []Annotation
}

// AggregationDesignAttribute carries the member count estimate of an attribute.
type AggregationDesignAttribute struct {
	AttributeID    *string
	EstimatedCount *int64
}

// Aggregation is one precomputed summary of a measure group.
type Aggregation struct {
	ID          *string
	Name        *string
	Dimensions  []AggregationDimension
	Annotations []Annotation
	Description *string
}

// AggregationDimension names the attributes of one dimension in an aggregation.
type AggregationDimension struct {
	CubeDimensionID *string
	Attributes      []AggregationAttribute
	Annotations     []Annotation
}

// AggregationAttribute is one attribute an aggregation is grouped by.
type AggregationAttribute struct {
	AttributeID *string
	Annotations []Annotation
}
