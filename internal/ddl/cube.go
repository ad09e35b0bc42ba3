package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Cube decodes a Cube element.
func (d *Decoder) Cube(n xmlnode.Node) (model.Cube, error) {
	s := fieldset.New(n)
	return finish(s, model.Cube{
		Header:                    d.header(s),
		Language:                  s.Int("Language"),
		Collation:                 s.String("Collation"),
		Translations:              d.translations(s),
		Dimensions:                fieldset.List(s, "Dimensions", "Dimension", d.cubeDimension),
		CubePermissions:           fieldset.List(s, "CubePermissions", "CubePermission", d.cubePermission),
		MdxScripts:                fieldset.List(s, "MdxScripts", "MdxScript", d.MdxScript),
		Perspectives:              fieldset.List(s, "Perspectives", "Perspective", d.Perspective),
		State:                     s.String("State"),
		DefaultMeasure:            s.String("DefaultMeasure"),
		Visible:                   s.Bool("Visible"),
		MeasureGroups:             fieldset.List(s, "MeasureGroups", "MeasureGroup", d.MeasureGroup),
		Source:                    fieldset.One(s, "Source", d.binding),
		AggregationPrefix:         s.String("AggregationPrefix"),
		ProcessingPriority:        s.Int("ProcessingPriority"),
		StorageMode:               fieldset.One(s, "StorageMode", StorageMode),
		ProcessingMode:            fieldset.Enum(s, "ProcessingMode", model.ProcessingModeValues...),
		ScriptCacheProcessingMode: s.String("ScriptCacheProcessingMode"),
		ScriptErrorHandlingMode:   s.String("ScriptErrorHandlingMode"),
		DaxOptimizationMode:       s.String("DaxOptimizationMode"),
		ProactiveCaching:          fieldset.One(s, "ProactiveCaching", d.ProactiveCaching),
		Kpis:                      fieldset.List(s, "Kpis", "Kpi", d.kpi),
		ErrorConfiguration:        fieldset.One(s, "ErrorConfiguration", ErrorConfiguration),
		Actions:                   fieldset.List(s, "Actions", "Action", d.action),
		StorageLocation:           s.String("StorageLocation"),
		EstimatedRows:             s.Long("EstimatedRows"),
		LastProcessed:             s.Instant("LastProcessed"),
	})
}

func (d *Decoder) cubeDimension(n xmlnode.Node) (model.CubeDimension, error) {
	s := fieldset.New(n)
	return finish(s, model.CubeDimension{
		ID:                        s.String("ID"),
		Name:                      s.String("Name"),
		Description:               s.String("Description"),
		Translations:              d.translations(s),
		DimensionID:               s.String("DimensionID"),
		Visible:                   s.Bool("Visible"),
		AllMemberAggregationUsage: s.String("AllMemberAggregationUsage"),
		HierarchyUniqueNameStyle:  s.String("HierarchyUniqueNameStyle"),
		MemberUniqueNameStyle:     s.String("MemberUniqueNameStyle"),
		Attributes:                fieldset.List(s, "Attributes", "Attribute", d.cubeAttribute),
		Hierarchies:               fieldset.List(s, "Hierarchies", "Hierarchy", d.cubeHierarchy),
		Annotations:               d.annotationsOf(s),
	})
}

func (d *Decoder) cubeAttribute(n xmlnode.Node) (model.CubeAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.CubeAttribute{
		AttributeID:                      s.String("AttributeID"),
		AggregationUsage:                 s.String("AggregationUsage"),
		AttributeHierarchyOptimizedState: s.String("AttributeHierarchyOptimizedState"),
		AttributeHierarchyEnabled:        s.Bool("AttributeHierarchyEnabled"),
		AttributeHierarchyVisible:        s.Bool("AttributeHierarchyVisible"),
		Annotations:                      d.annotationsOf(s),
	})
}

func (d *Decoder) cubeHierarchy(n xmlnode.Node) (model.CubeHierarchy, error) {
	s := fieldset.New(n)
	return finish(s, model.CubeHierarchy{
		HierarchyID:    s.String("HierarchyID"),
		OptimizedState: s.String("OptimizedState"),
		Visible:        s.Bool("Visible"),
		Enabled:        s.Bool("Enabled"),
		Annotations:    d.annotationsOf(s),
	})
}

// MdxScript decodes an MdxScript element. Its commands are decoded by the
// CommandFunc the Decoder was built with.
func (d *Decoder) MdxScript(n xmlnode.Node) (model.MdxScript, error) {
	s := fieldset.New(n)
	return finish(s, model.MdxScript{
		Header:                d.header(s),
		Commands:              fieldset.List(s, "Commands", "Command", d.command),
		DefaultScript:         s.Bool("DefaultScript"),
		CalculationProperties: fieldset.List(s, "CalculationProperties", "CalculationProperty", d.calculationProperty),
	})
}

func (d *Decoder) calculationProperty(n xmlnode.Node) (model.CalculationProperty, error) {
	s := fieldset.New(n)
	return finish(s, model.CalculationProperty{
		CalculationReference:     s.String("CalculationReference"),
		CalculationType:          s.String("CalculationType"),
		Translations:             d.translations(s),
		Description:              s.String("Description"),
		Visible:                  s.Bool("Visible"),
		SolveOrder:               s.Int("SolveOrder"),
		FormatString:             s.String("FormatString"),
		ForeColor:                s.String("ForeColor"),
		BackColor:                s.String("BackColor"),
		FontName:                 s.String("FontName"),
		FontSize:                 s.String("FontSize"),
		FontFlags:                s.String("FontFlags"),
		NonEmptyBehavior:         s.String("NonEmptyBehavior"),
		AssociatedMeasureGroupID: s.String("AssociatedMeasureGroupID"),
		DisplayFolder:            s.String("DisplayFolder"),
		Language:                 s.Int("Language"),
		Annotations:              d.annotationsOf(s),
	})
}

func (d *Decoder) kpi(n xmlnode.Node) (model.Kpi, error) {
	s := fieldset.New(n)
	return finish(s, model.Kpi{
		Name:                     s.String("Name"),
		ID:                       s.String("ID"),
		Description:              s.String("Description"),
		Translations:             d.translations(s),
		DisplayFolder:            s.String("DisplayFolder"),
		AssociatedMeasureGroupID: s.String("AssociatedMeasureGroupID"),
		Value:                    s.String("Value"),
		Goal:                     s.String("Goal"),
		Status:                   s.String("Status"),
		Trend:                    s.String("Trend"),
		Weight:                   s.String("Weight"),
		TrendGraphic:             s.String("TrendGraphic"),
		StatusGraphic:            s.String("StatusGraphic"),
		CurrentTimeMember:        s.String("CurrentTimeMember"),
		ParentKpiID:              s.String("ParentKpiID"),
		Annotations:              d.annotationsOf(s),
	})
}

// Perspective decodes a Perspective element.
func (d *Decoder) Perspective(n xmlnode.Node) (model.Perspective, error) {
	s := fieldset.New(n)
	return finish(s, model.Perspective{
		Header:         d.header(s),
		Translations:   d.translations(s),
		DefaultMeasure: s.String("DefaultMeasure"),
		Dimensions:     fieldset.List(s, "Dimensions", "Dimension", d.perspectiveDimension),
		MeasureGroups:  fieldset.List(s, "MeasureGroups", "MeasureGroup", d.perspectiveMeasureGroup),
		Calculations:   fieldset.List(s, "Calculations", "Calculation", d.perspectiveCalculation),
		Kpis:           fieldset.List(s, "Kpis", "Kpi", d.perspectiveKpi),
		Actions:        fieldset.List(s, "Actions", "Action", d.perspectiveAction),
	})
}

func (d *Decoder) perspectiveDimension(n xmlnode.Node) (model.PerspectiveDimension, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveDimension{
		CubeDimensionID: s.String("CubeDimensionID"),
		Attributes:      fieldset.List(s, "Attributes", "Attribute", d.perspectiveAttribute),
		Hierarchies:     fieldset.List(s, "Hierarchies", "Hierarchy", d.perspectiveHierarchy),
		Annotations:     d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveAttribute(n xmlnode.Node) (model.PerspectiveAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveAttribute{
		AttributeID:               s.String("AttributeID"),
		AttributeHierarchyVisible: s.Bool("AttributeHierarchyVisible"),
		DefaultMember:             s.String("DefaultMember"),
		Annotations:               d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveHierarchy(n xmlnode.Node) (model.PerspectiveHierarchy, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveHierarchy{
		HierarchyID: s.String("HierarchyID"),
		Annotations: d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveMeasureGroup(n xmlnode.Node) (model.PerspectiveMeasureGroup, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveMeasureGroup{
		MeasureGroupID: s.String("MeasureGroupID"),
		Measures:       fieldset.List(s, "Measures", "Measure", d.perspectiveMeasure),
		Annotations:    d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveMeasure(n xmlnode.Node) (model.PerspectiveMeasure, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveMeasure{
		MeasureID:   s.String("MeasureID"),
		Annotations: d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveCalculation(n xmlnode.Node) (model.PerspectiveCalculation, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveCalculation{
		Name:        s.String("Name"),
		Type:        s.String("Type"),
		Annotations: d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveKpi(n xmlnode.Node) (model.PerspectiveKpi, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveKpi{
		KpiID:       s.String("KpiID"),
		Annotations: d.annotationsOf(s),
	})
}

func (d *Decoder) perspectiveAction(n xmlnode.Node) (model.PerspectiveAction, error) {
	s := fieldset.New(n)
	return finish(s, model.PerspectiveAction{
		ActionID:    s.String("ActionID"),
		Annotations: d.annotationsOf(s),
	})
}
