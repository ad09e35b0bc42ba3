// Package model holds the immutable records an XMLA metadata document decodes
// into.
//
// Optional scalars are pointers: nil means the element was absent. List
// fields are nil when their element was absent and non-nil (possibly empty)
// when it was present. Cross references between objects are identifier
// strings and are never resolved here.
package model

import "time"

// Header carries the fields every named schema object shares.
type Header struct {
	Name             *string
	ID               *string
	CreatedTimestamp *time.Time
	LastSchemaUpdate *time.Time
	Description      *string
	Annotations      []Annotation
}

// Annotation is a free-form name/value pair attached to a schema object.
type Annotation struct {
	Name       *string
	Visibility *string
	// Value is the direct character data of the Value element. Element
	// content nested inside Value is not kept; install a custom annotations
	// decoder to read structured values.
	Value *string
}

// Translation is a localized caption for a schema object.
type Translation struct {
	Language      *int32
	Caption       *string
	Description   *string
	DisplayFolder *string
	Annotations   []Annotation
}

// AttributeTranslation is a Translation that can also bind captions to a column.
type AttributeTranslation struct {
	Translation
	CaptionColumn          *DataItem
	MembersWithDataCaption *string
}

// DataItem describes a column that feeds a schema object, with its formatting.
type DataItem struct {
	DataType             *string
	DataSize             *int32
	MimeType             *string
	NullProcessing       *string
	Trimming             *string
	InvalidXmlCharacters *string
	Collation            *string
	Format               *string
	Source               Binding
	Annotations          []Annotation
}

// ErrorConfiguration controls how processing reacts to key and null errors.
type ErrorConfiguration struct {
	KeyErrorLimit             *int64
	KeyErrorLogFile           *string
	KeyErrorAction            *string
	KeyErrorLimitAction       *string
	KeyNotFound               *string
	KeyDuplicate              *string
	NullKeyConvertedToUnknown *string
	NullKeyNotAllowed         *string
	CalculationError          *string
}

// ImpersonationInfo is the identity used to reach an external source.
type ImpersonationInfo struct {
	ImpersonationMode         *ImpersonationMode
	Account                   *string
	Password                  *string
	ImpersonationInfoSecurity *string
}

// ProactiveCaching configures automatic reprocessing on source changes.
type ProactiveCaching struct {
	OnlineMode              *string
	AggregationStorage      *string
	Source                  ProactiveCachingBinding
	SilenceInterval         *time.Duration
	Latency                 *time.Duration
	SilenceOverrideInterval *time.Duration
	ForceRebuildInterval    *time.Duration
	Enabled                 *bool
}

// StorageMode is an enumerated storage mode together with the raw valuens
// extension attribute some servers emit next to it.
type StorageMode struct {
	Value   StorageModeValue
	ValueNS *string
}

// StorageModeValue enumerates where object data is kept.
type StorageModeValue string

// Storage modes.
const (
	StorageModeMOLAP     StorageModeValue = "MOLAP"
	StorageModeROLAP     StorageModeValue = "ROLAP"
	StorageModeHOLAP     StorageModeValue = "HOLAP"
	StorageModeInMemory  StorageModeValue = "InMemory"
	StorageModeInherited StorageModeValue = "Inherited"
)

// StorageModeValues lists the known storage modes.
var StorageModeValues = []StorageModeValue{
	StorageModeMOLAP, StorageModeROLAP, StorageModeHOLAP, StorageModeInMemory, StorageModeInherited,
}

// ProcessingMode enumerates when aggregations are built.
type ProcessingMode string

// Processing modes.
const (
	ProcessingModeRegular          ProcessingMode = "Regular"
	ProcessingModeLazyAggregations ProcessingMode = "LazyAggregations"
)

// ProcessingModeValues lists the known processing modes.
var ProcessingModeValues = []ProcessingMode{ProcessingModeRegular, ProcessingModeLazyAggregations}

// ImpersonationMode enumerates identities used to access sources.
type ImpersonationMode string

// Impersonation modes.
const (
	ImpersonationDefault                      ImpersonationMode = "Default"
	ImpersonationImpersonateAccount           ImpersonationMode = "ImpersonateAccount"
	ImpersonationImpersonateCurrentUser       ImpersonationMode = "ImpersonateCurrentUser"
	ImpersonationImpersonateServiceAccount    ImpersonationMode = "ImpersonateServiceAccount"
	ImpersonationImpersonateUnattendedAccount ImpersonationMode = "ImpersonateUnattendedAccount"
)

// ImpersonationModeValues lists the known impersonation modes.
var ImpersonationModeValues = []ImpersonationMode{
	ImpersonationDefault,
	ImpersonationImpersonateAccount,
	ImpersonationImpersonateCurrentUser,
	ImpersonationImpersonateServiceAccount,
	ImpersonationImpersonateUnattendedAccount,
}

// RefreshPolicy enumerates how a remote binding is refreshed.
type RefreshPolicy string

// Refresh policies.
const (
	RefreshPolicyByQuery    RefreshPolicy = "ByQuery"
	RefreshPolicyByInterval RefreshPolicy = "ByInterval"
)

// RefreshPolicyValues lists the known refresh policies.
var RefreshPolicyValues = []RefreshPolicy{RefreshPolicyByQuery, RefreshPolicyByInterval}

// Persistence enumerates what a linked object persists locally.
type Persistence string

// Persistence values.
const (
	PersistenceNotPersisted Persistence = "NotPersisted"
	PersistenceMetadata     Persistence = "Metadata"
	PersistenceAll          Persistence = "All"
)

// PersistenceValues lists the known persistence values.
var PersistenceValues = []Persistence{PersistenceNotPersisted, PersistenceMetadata, PersistenceAll}
