package model

import "time"

// Cube is a multidimensional cube of a database.
type Cube struct {
	Header
	Language                  *int32
	Collation                 *string
	Translations              []Translation
	Dimensions                []CubeDimension
	CubePermissions           []CubePermission
	MdxScripts                []MdxScript
	Perspectives              []Perspective
	State                     *string
	DefaultMeasure            *string
	Visible                   *bool
	MeasureGroups             []MeasureGroup
	Source                    Binding
	AggregationPrefix         *string
	ProcessingPriority        *int32
	StorageMode               *StorageMode
	ProcessingMode            *ProcessingMode
	ScriptCacheProcessingMode *string
	ScriptErrorHandlingMode   *string
	DaxOptimizationMode       *string
	ProactiveCaching          *ProactiveCaching
	Kpis                      []Kpi
	ErrorConfiguration        *ErrorConfiguration
	Actions                   []Action
	StorageLocation           *string
	EstimatedRows             *int64
	LastProcessed             *time.Time
}

// CubeDimension is a database dimension as it is used by one cube.
type CubeDimension struct {
	ID                        *string
	Name                      *string
	Description               *string
	Translations              []Translation
	DimensionID               *string
	Visible                   *bool
	AllMemberAggregationUsage *string
	HierarchyUniqueNameStyle  *string
	MemberUniqueNameStyle     *string
	Attributes                []CubeAttribute
	Hierarchies               []CubeHierarchy
	Annotations               []Annotation
}

// CubeAttribute overrides attribute settings for one cube dimension.
type CubeAttribute struct {
	AttributeID                      *string
	AggregationUsage                 *string
	AttributeHierarchyOptimizedState *string
	AttributeHierarchyEnabled        *bool
	AttributeHierarchyVisible        *bool
	Annotations                      []Annotation
}

// CubeHierarchy overrides hierarchy settings for one cube dimension.
type CubeHierarchy struct {
	HierarchyID    *string
	OptimizedState *string
	Visible        *bool
	Enabled        *bool
	Annotations    []Annotation
}

// MdxScript is the calculation script of a cube.
type MdxScript struct {
	Header
	Commands              []Command
	DefaultScript         *bool
	CalculationProperties []CalculationProperty
}

// CalculationProperty carries display settings for a calculated member or set.
type CalculationProperty struct {
	CalculationReference     *string
	CalculationType          *string
	Translations             []Translation
	Description              *string
	Visible                  *bool
	SolveOrder               *int32
	FormatString             *string
	ForeColor                *string
	BackColor                *string
	FontName                 *string
	FontSize                 *string
	FontFlags                *string
	NonEmptyBehavior         *string
	AssociatedMeasureGroupID *string
	DisplayFolder            *string
	Language                 *int32
	Annotations              []Annotation
}

// Kpi is a key performance indicator defined on a cube.
type Kpi struct {
	Name                     *string
	ID                       *string
	Description              *string
	Translations             []Translation
	DisplayFolder            *string
	AssociatedMeasureGroupID *string
	Value                    *string
	Goal                     *string
	Status                   *string
	Trend                    *string
	Weight                   *string
	TrendGraphic             *string
	StatusGraphic            *string
	CurrentTimeMember        *string
	ParentKpiID              *string
	Annotations              []Annotation
}

// Perspective is a named subset of a cube.
type Perspective struct {
	Header
	Translations   []Translation
	DefaultMeasure *string
	Dimensions     []PerspectiveDimension
	MeasureGroups  []PerspectiveMeasureGroup
	Calculations   []PerspectiveCalculation
	Kpis           []PerspectiveKpi
	Actions        []PerspectiveAction
}

// PerspectiveDimension exposes a cube dimension in a perspective.
type PerspectiveDimension struct {
	CubeDimensionID *string
	Attributes      []PerspectiveAttribute
	Hierarchies     []PerspectiveHierarchy
	Annotations     []Annotation
}

// PerspectiveAttribute exposes a cube attribute in a perspective.
type PerspectiveAttribute struct {
	AttributeID               *string
	AttributeHierarchyVisible *bool
	DefaultMember             *string
	Annotations               []Annotation
}

// PerspectiveHierarchy exposes a cube hierarchy in a perspective.
type PerspectiveHierarchy struct {
	HierarchyID *string
	Annotations []Annotation
}

// PerspectiveMeasureGroup exposes a measure group in a perspective.
type PerspectiveMeasureGroup struct {
	MeasureGroupID *string
	Measures       []PerspectiveMeasure
	Annotations    []Annotation
}

// PerspectiveMeasure exposes a measure in a perspective.
type PerspectiveMeasure struct {
	MeasureID   *string
	Annotations []Annotation
}

// PerspectiveCalculation exposes a calculated member or set in a perspective.
type PerspectiveCalculation struct {
	Name        *string
	Type        *string
	Annotations []Annotation
}

// PerspectiveKpi exposes a KPI in a perspective.
type PerspectiveKpi struct {
	KpiID       *string
	Annotations []Annotation
}

// PerspectiveAction exposes an action in a perspective.
type PerspectiveAction struct {
	ActionID    *string
	Annotations []Annotation
}
