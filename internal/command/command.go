// Package command decodes XMLA Execute requests and their commands.
//
// Alter commands carry a major object definition, and MDX scripts inside a
// cube carry further commands. The Decoder hands its own Command method to
// the schema converters, so the recursion is resolved at run time.
package command

import (
	"slices"

	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/ddl"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/lexical"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Config holds the optional collaborators of a Decoder.
type Config struct {
	Annotations ddl.AnnotationsFunc
	OnUnknown   ddl.UnknownFunc
}

// Decoder decodes commands and major objects. It is safe for concurrent use.
type Decoder struct {
	schema    *ddl.Decoder
	onUnknown ddl.UnknownFunc
}

// New builds a Decoder whose schema converters decode MDX script commands
// through the returned Decoder.
func New(cfg Config) *Decoder {
	d := &Decoder{onUnknown: cfg.OnUnknown}
	d.schema = ddl.New(ddl.Config{
		Annotations: cfg.Annotations,
		Command:     d.Command,
		OnUnknown:   cfg.OnUnknown,
	})
	return d
}

// Schema returns the schema converter bound to this Decoder.
func (d *Decoder) Schema() *ddl.Decoder {
	return d.schema
}

// Execute decodes an Execute element.
func (d *Decoder) Execute(n xmlnode.Node) (model.Execute, error) {
	s := fieldset.New(n)
	cmdNode := s.Last("Command")
	if cmdNode == nil {
		return model.Execute{}, xmlaerrors.NewDecode(xmlaerrors.ErrMissingCommand,
			"execute request has no Command element", "")
	}
	cmd, err := d.Command(cmdNode)
	if err != nil {
		return model.Execute{}, xmlaerrors.WithPath("Command", err)
	}
	return model.Execute{
		Command:    cmd,
		Properties: properties(s.Last("Properties")),
	}, nil
}

func properties(n xmlnode.Node) []model.Property {
	if n == nil {
		return nil
	}
	out := []model.Property{}
	list := fieldset.New(n).Last("PropertyList")
	if list == nil {
		return out
	}
	for _, child := range list.Children() {
		out = append(out, model.Property{Name: child.LocalName(), Value: child.Text()})
	}
	return out
}

// Command decodes a Command element holding exactly one of Statement, Alter,
// Cancel, or ClearCache. Anything else fails with ErrIllegalCommand.
func (d *Decoder) Command(n xmlnode.Node) (model.Command, error) {
	var body xmlnode.Node
	for _, child := range n.Children() {
		if isCommandKind(child.LocalName()) {
			body = child
		}
	}
	if body == nil {
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrIllegalCommand, firstChildName(n),
			"command must be one of %v", model.CommandKinds)
	}
	return d.CommandAs(body, body.LocalName())
}

// CommandAs decodes n as the command named kind.
func (d *Decoder) CommandAs(n xmlnode.Node, kind string) (model.Command, error) {
	var (
		cmd model.Command
		err error
	)
	switch kind {
	case model.KindStatement:
		cmd = model.Statement{Text: n.Text()}
	case model.KindAlter:
		cmd, err = d.alter(n)
	case model.KindCancel:
		cmd, err = cancel(n)
	case model.KindClearCache:
		cmd, err = clearCache(n)
	default:
		return nil, xmlaerrors.NewDecodef(xmlaerrors.ErrIllegalCommand, kind,
			"command must be one of %v", model.CommandKinds)
	}
	if err != nil {
		return nil, xmlaerrors.WithPath(kind, err)
	}
	return cmd, nil
}

func isCommandKind(name string) bool {
	return slices.Contains(model.CommandKinds, name)
}

func firstChildName(n xmlnode.Node) string {
	children := n.Children()
	if len(children) == 0 {
		return ""
	}
	return children[0].LocalName()
}

func (d *Decoder) alter(n xmlnode.Node) (model.Alter, error) {
	s := fieldset.New(n)
	alter := model.Alter{
		Object:           fieldset.One(s, "Object", objectReference),
		ObjectDefinition: fieldset.One(s, "ObjectDefinition", d.objectDefinition),
		Scope:            fieldset.Enum(s, "Scope", model.ScopeValues...),
	}
	alter.AllowCreate = flag(s, "AllowCreate")
	alter.ObjectExpansion = expansion(s)
	if err := s.Err(); err != nil {
		return model.Alter{}, err
	}
	return alter, nil
}

func cancel(n xmlnode.Node) (model.Cancel, error) {
	s := fieldset.New(n)
	c := model.Cancel{
		ConnectionID:     s.BigInt("ConnectionID"),
		SessionID:        s.String("SessionID"),
		SPID:             s.BigInt("SPID"),
		CancelAssociated: s.Bool("CancelAssociated"),
	}
	if err := s.Err(); err != nil {
		return model.Cancel{}, err
	}
	return c, nil
}

func clearCache(n xmlnode.Node) (model.ClearCache, error) {
	s := fieldset.New(n)
	c := model.ClearCache{Object: fieldset.One(s, "Object", objectReference)}
	if err := s.Err(); err != nil {
		return model.ClearCache{}, err
	}
	return c, nil
}

// flag reads a boolean from a child element, falling back to an attribute of
// the same name on the command element.
func flag(s *fieldset.Set, name string) *bool {
	if s.Failed() {
		return nil
	}
	v, err := lexical.Boolean(childOrAttr(s, name))
	if err != nil {
		s.Fail(name, err)
		return nil
	}
	return v
}

func expansion(s *fieldset.Set) *model.ObjectExpansion {
	if s.Failed() {
		return nil
	}
	v, err := lexical.Enum(childOrAttr(s, "ObjectExpansion"), model.ObjectExpansionValues...)
	if err != nil {
		s.Fail("ObjectExpansion", err)
		return nil
	}
	return v
}

func childOrAttr(s *fieldset.Set, name string) *string {
	if v := s.String(name); v != nil {
		return v
	}
	if n := s.Node(); n != nil {
		if v, ok := n.Attr(name); ok {
			return &v
		}
	}
	return nil
}

func objectReference(n xmlnode.Node) (*model.ObjectReference, error) {
	s := fieldset.New(n)
	ref := &model.ObjectReference{
		ServerID:                    s.String("ServerID"),
		DatabaseID:                  s.String("DatabaseID"),
		RoleID:                      s.String("RoleID"),
		TraceID:                     s.String("TraceID"),
		AssemblyID:                  s.String("AssemblyID"),
		DimensionID:                 s.String("DimensionID"),
		DimensionPermissionID:       s.String("DimensionPermissionID"),
		CubeID:                      s.String("CubeID"),
		CubePermissionID:            s.String("CubePermissionID"),
		MdxScriptID:                 s.String("MdxScriptID"),
		PerspectiveID:               s.String("PerspectiveID"),
		MeasureGroupID:              s.String("MeasureGroupID"),
		PartitionID:                 s.String("PartitionID"),
		AggregationDesignID:         s.String("AggregationDesignID"),
		DataSourceID:                s.String("DataSourceID"),
		DataSourcePermissionID:      s.String("DataSourcePermissionID"),
		DataSourceViewID:            s.String("DataSourceViewID"),
		DatabasePermissionID:        s.String("DatabasePermissionID"),
		MiningStructureID:           s.String("MiningStructureID"),
		MiningStructurePermissionID: s.String("MiningStructurePermissionID"),
		MiningModelID:               s.String("MiningModelID"),
		MiningModelPermissionID:     s.String("MiningModelPermissionID"),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ref, nil
}
