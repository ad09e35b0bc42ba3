package model

import "time"

// Dimension is a database dimension.
type Dimension struct {
	Header
	LastProcessed                  *time.Time
	Source                         Binding
	MiningModelID                  *string
	Type                           *string
	UnknownMember                  *string
	MdxMissingMemberMode           *string
	ErrorConfiguration             *ErrorConfiguration
	StorageMode                    *StorageMode
	WriteEnabled                   *bool
	ProcessingPriority             *int32
	DimensionPermissions           []DimensionPermission
	DependsOnDimensionID           *string
	Language                       *int32
	Collation                      *string
	UnknownMemberName              *string
	UnknownMemberTranslations      []Translation
	State                          *string
	ProactiveCaching               *ProactiveCaching
	ProcessingMode                 *ProcessingMode
	ProcessingGroup                *string
	CurrentStorageMode             *StorageMode
	Translations                   []Translation
	Attributes                     []DimensionAttribute
	AttributeAllMemberName         *string
	AttributeAllMemberTranslations []Translation
	Hierarchies                    []Hierarchy
	ProcessingRecommendation       *string
	StringStoresCompatibilityLevel *int32
}

// DimensionAttribute is an attribute of a database dimension.
type DimensionAttribute struct {
	Name                              *string
	ID                                *string
	Description                       *string
	Type                              *string
	Usage                             *string
	Source                            Binding
	EstimatedCount                    *int64
	KeyColumns                        []DataItem
	NameColumn                        *DataItem
	ValueColumn                       *DataItem
	Translations                      []AttributeTranslation
	AttributeRelationships            []AttributeRelationship
	DiscretizationMethod              *string
	DiscretizationBucketCount         *int32
	RootMemberIf                      *string
	OrderBy                           *string
	DefaultMember                     *string
	OrderByAttributeID                *string
	SkippedLevelsColumn               *DataItem
	NamingTemplate                    *string
	MembersWithData                   *string
	MembersWithDataCaption            *string
	NamingTemplateTranslations        []Translation
	CustomRollupColumn                *DataItem
	CustomRollupPropertiesColumn      *DataItem
	UnaryOperatorColumn               *DataItem
	AttributeHierarchyOrdered         *bool
	MemberNamesUnique                 *bool
	IsAggregatable                    *bool
	AttributeHierarchyEnabled         *bool
	AttributeHierarchyOptimizedState  *string
	AttributeHierarchyVisible         *bool
	AttributeHierarchyDisplayFolder   *string
	KeyUniquenessGuarantee            *bool
	GroupingBehavior                  *string
	InstanceSelection                 *string
	Annotations                       []Annotation
	ProcessingState                   *string
	AttributeHierarchyProcessingState *string
	VisualizationProperties           *AttributeVisualizationProperties
	ExtendedType                      *string
}

// AttributeVisualizationProperties hints how client tools display an attribute.
type AttributeVisualizationProperties struct {
	FolderPosition           *int32
	ContextualNameRule       *string
	Alignment                *string
	IsFolderDefault          *bool
	IsRightToLeft            *bool
	SortDirection            *string
	Units                    *string
	Width                    *int32
	DefaultDetailsPosition   *int32
	CommonIdentifierPosition *int32
	SortPropertiesPosition   *int32
	DisplayKeyPosition       *int32
	IsDefaultImage           *bool
}

// AttributeRelationship links an attribute to a related attribute.
type AttributeRelationship struct {
	AttributeID      *string
	RelationshipType *string
	Cardinality      *string
	Optionality      *string
	OverrideBehavior *string
	Description      *string
	Name             *string
	Visible          *bool
	Translations     []Translation
	Annotations      []Annotation
}

// Hierarchy is a user defined hierarchy of a dimension.
type Hierarchy struct {
	Name                  *string
	ID                    *string
	Description           *string
	ProcessingState       *string
	StructureType         *string
	DisplayFolder         *string
	Translations          []Translation
	AllMemberName         *string
	AllMemberTranslations []Translation
	MemberNamesUnique     *bool
	MemberKeysUnique      *string
	AllowDuplicateNames   *bool
	Levels                []Level
	Annotations           []Annotation
}

// Level is one level of a hierarchy.
type Level struct {
	Name              *string
	ID                *string
	Description       *string
	SourceAttributeID *string
	HideMemberIf      *string
	Translations      []Translation
	Annotations       []Annotation
}
