package model

import "math/big"

// Execute is a decoded XMLA Execute request.
type Execute struct {
	Command    Command
	Properties []Property
}

// Property is one entry of an Execute PropertyList.
type Property struct {
	Name  string
	Value string
}

// Command is the body of an Execute request. Exactly one variant is set.
type Command interface {
	CommandKind() string
	isCommand()
}

// Command variant names, in dispatch order.
const (
	KindStatement  = "Statement"
	KindAlter      = "Alter"
	KindCancel     = "Cancel"
	KindClearCache = "ClearCache"
)

// CommandKinds lists every Command variant name.
var CommandKinds = []string{KindStatement, KindAlter, KindCancel, KindClearCache}

// Statement carries an MDX, DMX, or SQL statement.
type Statement struct {
	Text string
}

// Alter replaces the definition of an existing major object.
type Alter struct {
	Object           *ObjectReference
	ObjectDefinition MajorObject
	Scope            *Scope
	AllowCreate      *bool
	ObjectExpansion  *ObjectExpansion
}

// Cancel stops a running command, session, or connection.
type Cancel struct {
	ConnectionID     *big.Int
	SessionID        *string
	SPID             *big.Int
	CancelAssociated *bool
}

// ClearCache drops the cached data of an object.
type ClearCache struct {
	Object *ObjectReference
}

func (Statement) CommandKind() string  { return KindStatement }
func (Alter) CommandKind() string      { return KindAlter }
func (Cancel) CommandKind() string     { return KindCancel }
func (ClearCache) CommandKind() string { return KindClearCache }

func (Statement) isCommand()  {}
func (Alter) isCommand()      {}
func (Cancel) isCommand()     {}
func (ClearCache) isCommand() {}

// Scope enumerates the lifetime of an altered object.
type Scope string

// Scopes.
const (
	ScopeSession Scope = "Session"
)

// ScopeValues lists the known scopes.
var ScopeValues = []Scope{ScopeSession}

// ObjectExpansion enumerates how much of an object an Alter replaces.
type ObjectExpansion string

// Object expansions.
const (
	ExpansionReferenceOnly    ObjectExpansion = "ReferenceOnly"
	ExpansionObjectProperties ObjectExpansion = "ObjectProperties"
	ExpansionExpandObject     ObjectExpansion = "ExpandObject"
	ExpansionExpandFull       ObjectExpansion = "ExpandFull"
)

// ObjectExpansionValues lists the known object expansions.
var ObjectExpansionValues = []ObjectExpansion{
	ExpansionReferenceOnly,
	ExpansionObjectProperties,
	ExpansionExpandObject,
	ExpansionExpandFull,
}

// ObjectReference addresses an object by the identifiers of its ancestors.
type ObjectReference struct {
	ServerID                    *string
	DatabaseID                  *string
	RoleID                      *string
	TraceID                     *string
	AssemblyID                  *string
	DimensionID                 *string
	DimensionPermissionID       *string
	CubeID                      *string
	CubePermissionID            *string
	MdxScriptID                 *string
	PerspectiveID               *string
	MeasureGroupID              *string
	PartitionID                 *string
	AggregationDesignID         *string
	DataSourceID                *string
	DataSourcePermissionID      *string
	DataSourceViewID            *string
	DatabasePermissionID        *string
	MiningStructureID           *string
	MiningStructurePermissionID *string
	MiningModelID               *string
	MiningModelPermissionID     *string
}

// MajorObject is a schema object an Alter command can define.
type MajorObject interface {
	MajorObjectKind() string
	isMajorObject()
}

// MajorObject kind names, matching their element names.
const (
	KindAggregationDesign = "AggregationDesign"
	KindAssembly          = "Assembly"
	KindCube              = "Cube"
	KindDatabase          = "Database"
	KindDataSource        = "DataSource"
	KindDataSourceView    = "DataSourceView"
	KindDimension         = "Dimension"
	KindMdxScript         = "MdxScript"
	KindMeasureGroup      = "MeasureGroup"
	KindMiningModel       = "MiningModel"
	KindMiningStructure   = "MiningStructure"
	KindPartition         = "Partition"
	KindPerspective       = "Perspective"
	KindRole              = "Role"
	KindServer            = "Server"
	KindTrace             = "Trace"
)

// MajorObjectKinds lists every MajorObject kind.
var MajorObjectKinds = []string{
	KindAggregationDesign,
	KindAssembly,
	KindCube,
	KindDatabase,
	KindDataSource,
	KindDataSourceView,
	KindDimension,
	KindMdxScript,
	KindMeasureGroup,
	KindMiningModel,
	KindMiningStructure,
	KindPartition,
	KindPerspective,
	KindRole,
	KindServer,
	KindTrace,
}

func (AggregationDesign) MajorObjectKind() string { return KindAggregationDesign }
func (Assembly) MajorObjectKind() string          { return KindAssembly }
func (Cube) MajorObjectKind() string              { return KindCube }
func (Database) MajorObjectKind() string          { return KindDatabase }
func (DataSource) MajorObjectKind() string        { return KindDataSource }
func (DataSourceView) MajorObjectKind() string    { return KindDataSourceView }
func (Dimension) MajorObjectKind() string         { return KindDimension }
func (MdxScript) MajorObjectKind() string         { return KindMdxScript }
func (MeasureGroup) MajorObjectKind() string      { return KindMeasureGroup }
func (MiningModel) MajorObjectKind() string       { return KindMiningModel }
func (MiningStructure) MajorObjectKind() string   { return KindMiningStructure }
func (Partition) MajorObjectKind() string         { return KindPartition }
func (Perspective) MajorObjectKind() string       { return KindPerspective }
func (Role) MajorObjectKind() string              { return KindRole }
func (Server) MajorObjectKind() string            { return KindServer }
func (Trace) MajorObjectKind() string             { return KindTrace }

func (AggregationDesign) isMajorObject() {}
func (Assembly) isMajorObject()          {}
func (Cube) isMajorObject()              {}
func (Database) isMajorObject()          {}
func (DataSource) isMajorObject()        {}
func (DataSourceView) isMajorObject()    {}
func (Dimension) isMajorObject()         {}
func (MdxScript) isMajorObject()         {}
func (MeasureGroup) isMajorObject()      {}
func (MiningModel) isMajorObject()       {}
func (MiningStructure) isMajorObject()   {}
func (Partition) isMajorObject()         {}
func (Perspective) isMajorObject()       {}
func (Role) isMajorObject()              {}
func (Server) isMajorObject()            {}
func (Trace) isMajorObject()             {}
