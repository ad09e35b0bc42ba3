package model

import "time"

// Server is an analysis server instance.
type Server struct {
	Header
	ProductName      *string
	Edition          *string
	EditionID        *int64
	Version          *string
	Databases        []Database
	Assemblies       []Assembly
	Traces           []Trace
	Roles            []Role
	ServerProperties []ServerProperty
}

// ServerProperty is one configuration property of a server.
type ServerProperty struct {
	Name            *string
	Value           *string
	RequiresRestart *bool
	PendingValue    *string
	DefaultValue    *string
	DisplayFlag     *bool
	Units           *string
}

// Database is a container of dimensions, cubes, and mining structures.
type Database struct {
	Header
	LastUpdate                  *time.Time
	State                       *string
	ReadWriteMode               *string
	DbStorageLocation           *string
	AggregationPrefix           *string
	ProcessingPriority          *int32
	EstimatedSize               *int64
	LastProcessed               *time.Time
	Language                    *int32
	Collation                   *string
	Visible                     *bool
	MasterDataSourceID          *string
	DataSourceImpersonationInfo *ImpersonationInfo
	Accounts                    []Account
	DataSources                 []DataSource
	DataSourceViews             []DataSourceView
	Dimensions                  []Dimension
	Cubes                       []Cube
	MiningStructures            []MiningStructure
	Roles                       []Role
	Assemblies                  []Assembly
	DatabasePermissions         []DatabasePermission
	Translations                []Translation
	StorageEngineUsed           *string
	CompatibilityLevel          *int32
	DirectQueryMode             *string
}

// Account maps an account type to its aggregation behaviour.
type Account struct {
	AccountType         *string
	AggregationFunction *string
	Aliases             []string
	Annotations         []Annotation
}

// DataSource is a connection to an external data provider.
type DataSource struct {
	Header
	ManagedProvider          *string
	ConnectionString         *string
	ConnectionStringSecurity *string
	ImpersonationInfo        *ImpersonationInfo
	Isolation                *string
	MaxActiveConnections     *int32
	Timeout                  *time.Duration
	DataSourcePermissions    []DataSourcePermission
	QueryImpersonationInfo   *ImpersonationInfo
	QueryHints               *string
}

// DataSourceView is a logical relational view over a data source.
type DataSourceView struct {
	Header
	DataSourceID *string
}

// Assembly is a server or database extension library.
type Assembly struct {
	Header
	ImpersonationInfo *ImpersonationInfo
	PermissionSet     *string
	Source            *string
	Files             []AssemblyFile
}

// AssemblyFile is one file of an assembly with its encoded content blocks.
type AssemblyFile struct {
	Name *string
	Type *string
	Data []string
}

// Trace is a server trace definition.
type Trace struct {
	Header
	LogFileName     *string
	LogFileAppend   *bool
	LogFileSize     *int64
	LogFileRollover *bool
	AutoRestart     *bool
	StopTime        *time.Time
	Filter          *TraceFilter
	Events          []TraceEvent
}

// TraceEvent selects an event class and the columns recorded for it.
type TraceEvent struct {
	EventID *string
	Columns []string
}

// TraceFilterOp enumerates the nodes of a trace filter expression.
type TraceFilterOp string

// Trace filter operators.
const (
	TraceFilterNot            TraceFilterOp = "Not"
	TraceFilterOr             TraceFilterOp = "Or"
	TraceFilterAnd            TraceFilterOp = "And"
	TraceFilterEqual          TraceFilterOp = "Equal"
	TraceFilterNotEqual       TraceFilterOp = "NotEqual"
	TraceFilterLess           TraceFilterOp = "Less"
	TraceFilterLessOrEqual    TraceFilterOp = "LessOrEqual"
	TraceFilterGreater        TraceFilterOp = "Greater"
	TraceFilterGreaterOrEqual TraceFilterOp = "GreaterOrEqual"
	TraceFilterLike           TraceFilterOp = "Like"
	TraceFilterNotLike        TraceFilterOp = "NotLike"
)

// TraceFilterOps lists the known filter operators.
var TraceFilterOps = []TraceFilterOp{
	TraceFilterNot,
	TraceFilterOr,
	TraceFilterAnd,
	TraceFilterEqual,
	TraceFilterNotEqual,
	TraceFilterLess,
	TraceFilterLessOrEqual,
	TraceFilterGreater,
	TraceFilterGreaterOrEqual,
	TraceFilterLike,
	TraceFilterNotLike,
}

// TraceFilter is one node of a trace filter expression. Logical operators
// carry Operands; comparisons carry ColumnID and Value.
type TraceFilter struct {
	Op       TraceFilterOp
	Operands []TraceFilter
	ColumnID *string
	Value    *string
}

// IsLogical reports whether the node combines other filters.
func (f TraceFilter) IsLogical() bool {
	switch f.Op {
	case TraceFilterNot, TraceFilterOr, TraceFilterAnd:
		return true
	default:
		return false
	}
}
