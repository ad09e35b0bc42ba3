package model

import "time"

// MiningStructure defines the case data that mining models train on.
type MiningStructure struct {
	Header
	LastProcessed              *time.Time
	Source                     Binding
	Columns                    []MiningStructureColumn
	HoldoutMaxPercent          *int32
	HoldoutMaxCases            *int64
	HoldoutSeed                *int64
	HoldoutActualSize          *int64
	State                      *string
	ErrorConfiguration         *ErrorConfiguration
	MiningStructurePermissions []MiningStructurePermission
	Language                   *int32
	Collation                  *string
	CacheMode                  *string
	MiningModels               []MiningModel
	Translations               []Translation
}

// MiningStructureColumn is a column of a mining structure.
// A nil MiningStructureColumn means the variant was not recognized.
type MiningStructureColumn interface {
	MiningStructureColumnKind() string
	isMiningStructureColumn()
}

// MiningStructureColumn variant names, in dispatch order.
const (
	KindScalarMiningStructureColumn = "ScalarMiningStructureColumn"
	KindTableMiningStructureColumn  = "TableMiningStructureColumn"
)

// MiningStructureColumnKinds lists every MiningStructureColumn variant name.
var MiningStructureColumnKinds = []string{KindScalarMiningStructureColumn, KindTableMiningStructureColumn}

// ScalarMiningStructureColumn holds a single value per case.
type ScalarMiningStructureColumn struct {
	Name                      *string
	ID                        *string
	Description               *string
	Type                      *string
	Size                      *int32
	Distribution              *string
	ModelingFlags             []string
	Content                   *string
	IsKey                     *bool
	ClassifiedColumns         []string
	DiscretizationMethod      *string
	DiscretizationBucketCount *int32
	KeyColumns                []DataItem
	NameColumn                *DataItem
	Translations              []Translation
	Annotations               []Annotation
}

// TableMiningStructureColumn is a nested table of each case.
type TableMiningStructureColumn struct {
	Name               *string
	ID                 *string
	Description        *string
	ForeignKeyColumns  []DataItem
	SourceMeasureGroup Binding
	Columns            []ScalarMiningStructureColumn
	Translations       []Translation
	Annotations        []Annotation
}

func (ScalarMiningStructureColumn) MiningStructureColumnKind() string {
	return KindScalarMiningStructureColumn
}

func (TableMiningStructureColumn) MiningStructureColumnKind() string {
	return KindTableMiningStructureColumn
}

func (ScalarMiningStructureColumn) isMiningStructureColumn() {}
func (TableMiningStructureColumn) isMiningStructureColumn()  {}

// MiningModel applies an algorithm to the data of a mining structure.
type MiningModel struct {
	Header
	Algorithm              *string
	LastProcessed          *time.Time
	AlgorithmParameters    []AlgorithmParameter
	AllowDrillThrough      *bool
	Translations           []Translation
	Columns                []MiningModelColumn
	State                  *string
	FoldingParameters      *FoldingParameters
	Filter                 *string
	MiningModelPermissions []MiningModelPermission
	Language               *int32
	Collation              *string
}

// AlgorithmParameter is one named setting of a mining algorithm.
type AlgorithmParameter struct {
	Name  *string
	Value *string
}

// MiningModelColumn maps a structure column into a model.
type MiningModelColumn struct {
	Name           *string
	ID             *string
	Description    *string
	SourceColumnID *string
	Usage          *string
	Filter         *string
	Translations   []Translation
	Columns        []MiningModelColumn
	ModelingFlags  []string
	Annotations    []Annotation
}

// FoldingParameters configures cross validation folds.
type FoldingParameters struct {
	FoldIndex           *int32
	FoldCount           *int32
	FoldMaxCases        *int64
	FoldTargetAttribute *string
}
