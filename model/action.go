package model

// Action is an operation a client can invoke on a cube object.
// A nil Action means the variant was not recognized.
type Action interface {
	ActionKind() string
	isAction()
}

// Action variant names, in dispatch order.
const (
	KindStandardAction     = "StandardAction"
	KindReportAction       = "ReportAction"
	KindDrillThroughAction = "DrillThroughAction"
)

// ActionKinds lists every Action variant name.
var ActionKinds = []string{KindStandardAction, KindReportAction, KindDrillThroughAction}

// ActionType enumerates how a client treats the result of an action.
type ActionType string

// Action types.
const (
	ActionTypeURL          ActionType = "Url"
	ActionTypeHTML         ActionType = "Html"
	ActionTypeStatement    ActionType = "Statement"
	ActionTypeDataSet      ActionType = "DataSet"
	ActionTypeRowset       ActionType = "Rowset"
	ActionTypeCommandline  ActionType = "Commandline"
	ActionTypeProprietary  ActionType = "Proprietary"
	ActionTypeReport       ActionType = "Report"
	ActionTypeDrillThrough ActionType = "DrillThrough"
)

// ActionTypeValues lists the known action types.
var ActionTypeValues = []ActionType{
	ActionTypeURL,
	ActionTypeHTML,
	ActionTypeStatement,
	ActionTypeDataSet,
	ActionTypeRowset,
	ActionTypeCommandline,
	ActionTypeProprietary,
	ActionTypeReport,
	ActionTypeDrillThrough,
}

// ActionHeader holds the fields every action variant shares.
type ActionHeader struct {
	Name         *string
	ID           *string
	Caption      *string
	CaptionIsMdx *bool
	Translations []Translation
	TargetType   *string
	Target       *string
	Condition    *string
	Type         *ActionType
	Invocation   *string
	Application  *string
	Description  *string
	Annotations  []Annotation
}

// StandardAction evaluates an MDX expression to produce its result.
type StandardAction struct {
	ActionHeader
	Expression *string
}

// ReportAction opens a report on a report server.
type ReportAction struct {
	ActionHeader
	ReportServer           *string
	Path                   *string
	ReportParameters       []ReportParameter
	ReportFormatParameters []ReportFormatParameter
}

// ReportParameter is a named report argument computed by an expression.
type ReportParameter struct {
	Name  *string
	Value *string
}

// ReportFormatParameter is a named report rendering argument.
type ReportFormatParameter struct {
	Name  *string
	Value *string
}

// DrillThroughAction returns the detail rows behind a cell.
type DrillThroughAction struct {
	ActionHeader
	Default     *bool
	Columns     []Binding
	MaximumRows *int32
}

func (StandardAction) ActionKind() string     { return KindStandardAction }
func (ReportAction) ActionKind() string       { return KindReportAction }
func (DrillThroughAction) ActionKind() string { return KindDrillThroughAction }

func (StandardAction) isAction()     {}
func (ReportAction) isAction()       {}
func (DrillThroughAction) isAction() {}
