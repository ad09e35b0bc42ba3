package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Family names reported to UnknownFunc.
const (
	FamilyBinding                 = "Binding"
	FamilyTabularBinding          = "TabularBinding"
	FamilyProactiveCachingBinding = "ProactiveCachingBinding"
	FamilyMeasureGroupDimension   = "MeasureGroupDimension"
	FamilyMiningStructureColumn   = "MiningStructureColumn"
	FamilyAction                  = "Action"
	FamilyMajorObject             = "MajorObject"
)

// Binding decodes a Binding element using its own discriminator.
func (d *Decoder) Binding(n xmlnode.Node) (model.Binding, bool, error) {
	return d.BindingAs(n, xmlnode.Discriminator(n))
}

// BindingAs decodes n as the Binding variant named kind. An unknown kind
// yields nil and false without error.
func (d *Decoder) BindingAs(n xmlnode.Node, kind string) (model.Binding, bool, error) {
	s := fieldset.New(n)
	var b model.Binding
	switch kind {
	case model.KindColumnBinding:
		b = model.ColumnBinding{
			TableID:  s.String("TableID"),
			ColumnID: s.String("ColumnID"),
		}
	case model.KindRowBinding:
		b = model.RowBinding{TableID: s.String("TableID")}
	case model.KindDataSourceViewBinding:
		b = model.DataSourceViewBinding{DataSourceViewID: s.String("DataSourceViewID")}
	case model.KindAttributeBinding:
		b = model.AttributeBinding{
			AttributeID: s.String("AttributeID"),
			Type:        s.String("Type"),
			Ordinal:     s.Int("Ordinal"),
		}
	case model.KindUserDefinedGroupBinding:
		b = model.UserDefinedGroupBinding{
			AttributeID: s.String("AttributeID"),
			Groups:      fieldset.List(s, "Groups", "Group", group),
		}
	case model.KindMeasureBinding:
		b = model.MeasureBinding{MeasureID: s.String("MeasureID")}
	case model.KindTimeBinding:
		b = model.TimeBinding{
			CalendarStartDate: s.Instant("CalendarStartDate"),
			CalendarEndDate:   s.Instant("CalendarEndDate"),
			FirstDayOfWeek:    s.Int("FirstDayOfWeek"),
			CalendarLanguage:  s.Int("CalendarLanguage"),
			TimeGranularity:   s.String("TimeGranularity"),
		}
	case model.KindTimeAttributeBinding:
		b = model.TimeAttributeBinding{}
	case model.KindInheritedBinding:
		b = model.InheritedBinding{}
	case model.KindCubeAttributeBinding:
		b = model.CubeAttributeBinding{
			CubeID:          s.String("CubeID"),
			CubeDimensionID: s.String("CubeDimensionID"),
			AttributeID:     s.String("AttributeID"),
			Type:            s.String("Type"),
			Ordinal:         fieldset.Each(s, "Ordinal", int32Text),
		}
	case model.KindDimensionBinding:
		b = model.DimensionBinding{
			DataSourceID:    s.String("DataSourceID"),
			DimensionID:     s.String("DimensionID"),
			Persistence:     fieldset.Enum(s, "Persistence", model.PersistenceValues...),
			RefreshPolicy:   fieldset.Enum(s, "RefreshPolicy", model.RefreshPolicyValues...),
			RefreshInterval: s.Duration("RefreshInterval"),
		}
	case model.KindCubeDimensionBinding:
		b = model.CubeDimensionBinding{
			DataSourceID:    s.String("DataSourceID"),
			CubeID:          s.String("CubeID"),
			CubeDimensionID: s.String("CubeDimensionID"),
			Filter:          s.String("Filter"),
		}
	case model.KindMeasureGroupBinding:
		b = model.MeasureGroupBinding{
			DataSourceID:    s.String("DataSourceID"),
			CubeID:          s.String("CubeID"),
			MeasureGroupID:  s.String("MeasureGroupID"),
			Persistence:     fieldset.Enum(s, "Persistence", model.PersistenceValues...),
			RefreshPolicy:   fieldset.Enum(s, "RefreshPolicy", model.RefreshPolicyValues...),
			RefreshInterval: s.Duration("RefreshInterval"),
			Filter:          s.String("Filter"),
		}
	case model.KindMeasureGroupDimensionBinding:
		b = model.MeasureGroupDimensionBinding{CubeDimensionID: s.String("CubeDimensionID")}
	case model.KindExpressionBinding:
		b = model.ExpressionBinding{Expression: s.String("Expression")}
	case model.KindCalculatedMeasureBinding:
		b = model.CalculatedMeasureBinding{MeasureName: s.String("MeasureName")}
	default:
		d.unknown(FamilyBinding, kind)
		return nil, false, nil
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (d *Decoder) binding(n xmlnode.Node) (model.Binding, error) {
	b, _, err := d.Binding(n)
	return b, err
}

func group(n xmlnode.Node) (model.Group, error) {
	s := fieldset.New(n)
	return finish(s, model.Group{
		Name:    s.String("Name"),
		Members: s.StringList("Members", "Member"),
	})
}

// TabularBinding decodes a TabularBinding element using its own discriminator.
func (d *Decoder) TabularBinding(n xmlnode.Node) (model.TabularBinding, bool, error) {
	return d.TabularBindingAs(n, xmlnode.Discriminator(n))
}

// TabularBindingAs decodes n as the TabularBinding variant named kind.
func (d *Decoder) TabularBindingAs(n xmlnode.Node, kind string) (model.TabularBinding, bool, error) {
	s := fieldset.New(n)
	var b model.TabularBinding
	switch kind {
	case model.KindTableBinding:
		b = model.TableBinding{
			DataSourceID: s.String("DataSourceID"),
			DbTableName:  s.String("DbTableName"),
			DbSchemaName: s.String("DbSchemaName"),
		}
	case model.KindQueryBinding:
		b = model.QueryBinding{
			DataSourceID:    s.String("DataSourceID"),
			QueryDefinition: s.String("QueryDefinition"),
		}
	case model.KindDSVTableBinding:
		b = model.DSVTableBinding{
			DataSourceViewID:   s.String("DataSourceViewID"),
			TableID:            s.String("TableID"),
			DataEmbeddingStyle: s.String("DataEmbeddingStyle"),
		}
	default:
		d.unknown(FamilyTabularBinding, kind)
		return nil, false, nil
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (d *Decoder) tabularBinding(n xmlnode.Node) (model.TabularBinding, error) {
	b, _, err := d.TabularBinding(n)
	return b, err
}

// ProactiveCachingBinding decodes a ProactiveCachingBinding element using its
// own discriminator.
func (d *Decoder) ProactiveCachingBinding(n xmlnode.Node) (model.ProactiveCachingBinding, bool, error) {
	return d.ProactiveCachingBindingAs(n, xmlnode.Discriminator(n))
}

// ProactiveCachingBindingAs decodes n as the ProactiveCachingBinding variant named kind.
func (d *Decoder) ProactiveCachingBindingAs(n xmlnode.Node, kind string) (model.ProactiveCachingBinding, bool, error) {
	s := fieldset.New(n)
	var b model.ProactiveCachingBinding
	switch kind {
	case model.KindProactiveCachingInheritedBinding:
		b = model.ProactiveCachingInheritedBinding{
			NotificationTechnique: s.String("NotificationTechnique"),
		}
	case model.KindProactiveCachingQueryBinding:
		b = model.ProactiveCachingQueryBinding{
			RefreshInterval:    s.Duration("RefreshInterval"),
			QueryNotifications: fieldset.List(s, "QueryNotifications", "QueryNotification", queryNotification),
		}
	case model.KindProactiveCachingTableBinding:
		b = model.ProactiveCachingTableBinding{
			RefreshInterval:    s.Duration("RefreshInterval"),
			TableNotifications: fieldset.List(s, "TableNotifications", "TableNotification", tableNotification),
		}
	case model.KindProactiveCachingIncrementalProcessingBinding:
		notifications := fieldset.List(s, "IncrementalProcessingNotifications",
			"IncrementalProcessingNotification", incrementalProcessingNotification)
		b = model.ProactiveCachingIncrementalProcessingBinding{
			RefreshInterval:                    s.Duration("RefreshInterval"),
			IncrementalProcessingNotifications: notifications,
		}
	default:
		d.unknown(FamilyProactiveCachingBinding, kind)
		return nil, false, nil
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (d *Decoder) proactiveCachingBinding(n xmlnode.Node) (model.ProactiveCachingBinding, error) {
	b, _, err := d.ProactiveCachingBinding(n)
	return b, err
}

func queryNotification(n xmlnode.Node) (model.QueryNotification, error) {
	s := fieldset.New(n)
	return finish(s, model.QueryNotification{Query: s.String("Query")})
}

func tableNotification(n xmlnode.Node) (model.TableNotification, error) {
	s := fieldset.New(n)
	return finish(s, model.TableNotification{
		DbTableName:  s.String("DbTableName"),
		DbSchemaName: s.String("DbSchemaName"),
	})
}

func incrementalProcessingNotification(n xmlnode.Node) (model.IncrementalProcessingNotification, error) {
	s := fieldset.New(n)
	return finish(s, model.IncrementalProcessingNotification{
		TableID:         s.String("TableID"),
		ProcessingQuery: s.String("ProcessingQuery"),
	})
}
