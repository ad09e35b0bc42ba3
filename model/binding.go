package model

import (
	"time"
)

// Binding describes where a schema object's data originates.
// A nil Binding means no source was given or its type was not recognized.
type Binding interface {
	BindingKind() string
	isBinding()
}

// Binding variant names, in dispatch order.
const (
	KindColumnBinding                = "ColumnBinding"
	KindRowBinding                   = "RowBinding"
	KindDataSourceViewBinding        = "DataSourceViewBinding"
	KindAttributeBinding             = "AttributeBinding"
	KindUserDefinedGroupBinding      = "UserDefinedGroupBinding"
	KindMeasureBinding               = "MeasureBinding"
	KindTimeBinding                  = "TimeBinding"
	KindTimeAttributeBinding         = "TimeAttributeBinding"
	KindInheritedBinding             = "InheritedBinding"
	KindCubeAttributeBinding         = "CubeAttributeBinding"
	KindDimensionBinding             = "DimensionBinding"
	KindCubeDimensionBinding         = "CubeDimensionBinding"
	KindMeasureGroupBinding          = "MeasureGroupBinding"
	KindMeasureGroupDimensionBinding = "MeasureGroupDimensionBinding"
	KindExpressionBinding            = "ExpressionBinding"
	KindCalculatedMeasureBinding     = "CalculatedMeasureBinding"
)

// BindingKinds lists every Binding variant name.
var BindingKinds = []string{
	KindColumnBinding,
	KindRowBinding,
	KindDataSourceViewBinding,
	KindAttributeBinding,
	KindUserDefinedGroupBinding,
	KindMeasureBinding,
	KindTimeBinding,
	KindTimeAttributeBinding,
	KindInheritedBinding,
	KindCubeAttributeBinding,
	KindDimensionBinding,
	KindCubeDimensionBinding,
	KindMeasureGroupBinding,
	KindMeasureGroupDimensionBinding,
	KindExpressionBinding,
	KindCalculatedMeasureBinding,
}

// ColumnBinding reads a column of a data source view table.
type ColumnBinding struct {
	TableID  *string
	ColumnID *string
}

// RowBinding binds a whole data source view table.
type RowBinding struct {
	TableID *string
}

// DataSourceViewBinding binds an object to a data source view.
type DataSourceViewBinding struct {
	DataSourceViewID *string
}

// AttributeBinding binds to a dimension attribute's key, name, or value.
type AttributeBinding struct {
	AttributeID *string
	Type        *string
	Ordinal     *int32
}

// Group is a named set of members in a user defined grouping.
type Group struct {
	Name    *string
	Members []string
}

// UserDefinedGroupBinding groups attribute members explicitly.
type UserDefinedGroupBinding struct {
	AttributeID *string
	Groups      []Group
}

// MeasureBinding binds to a measure.
type MeasureBinding struct {
	MeasureID *string
}

// TimeBinding generates a server time dimension.
type TimeBinding struct {
	CalendarStartDate *time.Time
	CalendarEndDate   *time.Time
	FirstDayOfWeek    *int32
	CalendarLanguage  *int32
	TimeGranularity   *string
}

// TimeAttributeBinding binds an attribute of a generated time dimension.
type TimeAttributeBinding struct{}

// InheritedBinding takes the binding from the containing object.
type InheritedBinding struct{}

// CubeAttributeBinding binds to an attribute of a cube dimension.
type CubeAttributeBinding struct {
	CubeID          *string
	CubeDimensionID *string
	AttributeID     *string
	Type            *string
	Ordinal         []int32
}

// DimensionBinding links a dimension from another database or server.
type DimensionBinding struct {
	DataSourceID    *string
	DimensionID     *string
	Persistence     *Persistence
	RefreshPolicy   *RefreshPolicy
	RefreshInterval *time.Duration
}

// CubeDimensionBinding binds to a dimension of another cube.
type CubeDimensionBinding struct {
	DataSourceID    *string
	CubeID          *string
	CubeDimensionID *string
	Filter          *string
}

// MeasureGroupBinding links a measure group from another cube.
type MeasureGroupBinding struct {
	DataSourceID    *string
	CubeID          *string
	MeasureGroupID  *string
	Persistence     *Persistence
	RefreshPolicy   *RefreshPolicy
	RefreshInterval *time.Duration
	Filter          *string
}

// MeasureGroupDimensionBinding binds a measure group dimension to a cube dimension.
type MeasureGroupDimensionBinding struct {
	CubeDimensionID *string
}

// ExpressionBinding computes the value from an MDX expression.
type ExpressionBinding struct {
	Expression *string
}

// CalculatedMeasureBinding binds to a calculated measure by name.
type CalculatedMeasureBinding struct {
	MeasureName *string
}

func (ColumnBinding) BindingKind() string                { return KindColumnBinding }
func (RowBinding) BindingKind() string                   { return KindRowBinding }
func (DataSourceViewBinding) BindingKind() string        { return KindDataSourceViewBinding }
func (AttributeBinding) BindingKind() string             { return KindAttributeBinding }
func (UserDefinedGroupBinding) BindingKind() string      { return KindUserDefinedGroupBinding }
func (MeasureBinding) BindingKind() string               { return KindMeasureBinding }
func (TimeBinding) BindingKind() string                  { return KindTimeBinding }
func (TimeAttributeBinding) BindingKind() string         { return KindTimeAttributeBinding }
func (InheritedBinding) BindingKind() string             { return KindInheritedBinding }
func (CubeAttributeBinding) BindingKind() string         { return KindCubeAttributeBinding }
func (DimensionBinding) BindingKind() string             { return KindDimensionBinding }
func (CubeDimensionBinding) BindingKind() string         { return KindCubeDimensionBinding }
func (MeasureGroupBinding) BindingKind() string          { return KindMeasureGroupBinding }
func (MeasureGroupDimensionBinding) BindingKind() string { return KindMeasureGroupDimensionBinding }
func (ExpressionBinding) BindingKind() string            { return KindExpressionBinding }
func (CalculatedMeasureBinding) BindingKind() string     { return KindCalculatedMeasureBinding }

func (ColumnBinding) isBinding()                {}
func (RowBinding) isBinding()                   {}
func (DataSourceViewBinding) isBinding()        {}
func (AttributeBinding) isBinding()             {}
func (UserDefinedGroupBinding) isBinding()      {}
func (MeasureBinding) isBinding()               {}
func (TimeBinding) isBinding()                  {}
func (TimeAttributeBinding) isBinding()         {}
func (InheritedBinding) isBinding()             {}
func (CubeAttributeBinding) isBinding()         {}
func (DimensionBinding) isBinding()             {}
func (CubeDimensionBinding) isBinding()         {}
func (MeasureGroupBinding) isBinding()          {}
func (MeasureGroupDimensionBinding) isBinding() {}
func (ExpressionBinding) isBinding()            {}
func (CalculatedMeasureBinding) isBinding()     {}

// TabularBinding describes the relational source of a partition or aggregation.
type TabularBinding interface {
	TabularBindingKind() string
	isTabularBinding()
}

// TabularBinding variant names, in dispatch order.
const (
	KindTableBinding    = "TableBinding"
	KindQueryBinding    = "QueryBinding"
	KindDSVTableBinding = "DSVTableBinding"
)

// TabularBindingKinds lists every TabularBinding variant name.
var TabularBindingKinds = []string{KindTableBinding, KindQueryBinding, KindDSVTableBinding}

// TableBinding reads a relational table directly.
type TableBinding struct {
	DataSourceID *string
	DbTableName  *string
	DbSchemaName *string
}

// QueryBinding reads the result of a source query.
type QueryBinding struct {
	DataSourceID    *string
	QueryDefinition *string
}

// DSVTableBinding reads a table of a data source view.
type DSVTableBinding struct {
	DataSourceViewID   *string
	TableID            *string
	DataEmbeddingStyle *string
}

func (TableBinding) TabularBindingKind() string    { return KindTableBinding }
func (QueryBinding) TabularBindingKind() string    { return KindQueryBinding }
func (DSVTableBinding) TabularBindingKind() string { return KindDSVTableBinding }

func (TableBinding) isTabularBinding()    {}
func (QueryBinding) isTabularBinding()    {}
func (DSVTableBinding) isTabularBinding() {}

// ProactiveCachingBinding describes how source changes are detected.
type ProactiveCachingBinding interface {
	ProactiveCachingBindingKind() string
	isProactiveCachingBinding()
}

// ProactiveCachingBinding variant names, in dispatch order.
const (
	KindProactiveCachingInheritedBinding             = "ProactiveCachingInheritedBinding"
	KindProactiveCachingQueryBinding                 = "ProactiveCachingQueryBinding"
	KindProactiveCachingTableBinding                 = "ProactiveCachingTableBinding"
	KindProactiveCachingIncrementalProcessingBinding = "ProactiveCachingIncrementalProcessingBinding"
)

// ProactiveCachingBindingKinds lists every ProactiveCachingBinding variant name.
var ProactiveCachingBindingKinds = []string{
	KindProactiveCachingInheritedBinding,
	KindProactiveCachingQueryBinding,
	KindProactiveCachingTableBinding,
	KindProactiveCachingIncrementalProcessingBinding,
}

// ProactiveCachingInheritedBinding uses the notification technique of the parent.
type ProactiveCachingInheritedBinding struct {
	NotificationTechnique *string
}

// QueryNotification is a query polled for changes.
type QueryNotification struct {
	Query *string
}

// ProactiveCachingQueryBinding polls queries for changes.
type ProactiveCachingQueryBinding struct {
	RefreshInterval    *time.Duration
	QueryNotifications []QueryNotification
}

// TableNotification names a relational table watched for changes.
type TableNotification struct {
	DbTableName  *string
	DbSchemaName *string
}

// ProactiveCachingTableBinding watches tables for changes.
type ProactiveCachingTableBinding struct {
	RefreshInterval    *time.Duration
	TableNotifications []TableNotification
}

// IncrementalProcessingNotification pairs a watched table with its processing query.
type IncrementalProcessingNotification struct {
	TableID         *string
	ProcessingQuery *string
}

// ProactiveCachingIncrementalProcessingBinding processes incrementally on change.
type ProactiveCachingIncrementalProcessingBinding struct {
	RefreshInterval                    *time.Duration
	IncrementalProcessingNotifications []IncrementalProcessingNotification
}

func (ProactiveCachingInheritedBinding) ProactiveCachingBindingKind() string {
	return KindProactiveCachingInheritedBinding
}

func (ProactiveCachingQueryBinding) ProactiveCachingBindingKind() string {
	return KindProactiveCachingQueryBinding
}

func (ProactiveCachingTableBinding) ProactiveCachingBindingKind() string {
	return KindProactiveCachingTableBinding
}

func (ProactiveCachingIncrementalProcessingBinding) ProactiveCachingBindingKind() string {
	return KindProactiveCachingIncrementalProcessingBinding
}

func (ProactiveCachingInheritedBinding) isProactiveCachingBinding()             {}
func (ProactiveCachingQueryBinding) isProactiveCachingBinding()                 {}
func (ProactiveCachingTableBinding) isProactiveCachingBinding()                 {}
func (ProactiveCachingIncrementalProcessingBinding) isProactiveCachingBinding() {}
