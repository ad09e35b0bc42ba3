package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// MeasureGroup decodes a MeasureGroup element.
func (d *Decoder) MeasureGroup(n xmlnode.Node) (model.MeasureGroup, error) {
	s := fieldset.New(n)
	return finish(s, model.MeasureGroup{
		Header:                    d.header(s),
		LastProcessed:             s.Instant("LastProcessed"),
		Translations:              d.translations(s),
		Type:                      s.String("Type"),
		State:                     s.String("State"),
		Measures:                  fieldset.List(s, "Measures", "Measure", d.measure),
		DataAggregation:           s.String("DataAggregation"),
		Source:                    fieldset.One(s, "Source", d.binding),
		StorageMode:               fieldset.One(s, "StorageMode", StorageMode),
		StorageLocation:           s.String("StorageLocation"),
		IgnoreUnrelatedDimensions: s.Bool("IgnoreUnrelatedDimensions"),
		ProactiveCaching:          fieldset.One(s, "ProactiveCaching", d.ProactiveCaching),
		EstimatedRows:             s.Long("EstimatedRows"),
		ErrorConfiguration:        fieldset.One(s, "ErrorConfiguration", ErrorConfiguration),
		EstimatedSize:             s.Long("EstimatedSize"),
		ProcessingMode:            fieldset.Enum(s, "ProcessingMode", model.ProcessingModeValues...),
		Dimensions:                fieldset.List(s, "Dimensions", "Dimension", d.measureGroupDimension),
		Partitions:                fieldset.List(s, "Partitions", "Partition", d.Partition),
		AggregationPrefix:         s.String("AggregationPrefix"),
		ProcessingPriority:        s.Int("ProcessingPriority"),
		AggregationDesigns:        fieldset.List(s, "AggregationDesigns", "AggregationDesign", d.AggregationDesign),
		ProcessingState:           s.String("ProcessingState"),
	})
}

func (d *Decoder) measure(n xmlnode.Node) (model.Measure, error) {
	s := fieldset.New(n)
	return finish(s, model.Measure{
		Name:              s.String("Name"),
		ID:                s.String("ID"),
		Description:       s.String("Description"),
		AggregateFunction: s.String("AggregateFunction"),
		DataType:          s.String("DataType"),
		Source:            fieldset.One(s, "Source", ptr(d.DataItem)),
		Visible:           s.Bool("Visible"),
		MeasureExpression: s.String("MeasureExpression"),
		DisplayFolder:     s.String("DisplayFolder"),
		FormatString:      s.String("FormatString"),
		BackColor:         s.String("BackColor"),
		ForeColor:         s.String("ForeColor"),
		FontName:          s.String("FontName"),
		FontSize:          s.String("FontSize"),
		FontFlags:         s.String("FontFlags"),
		Translations:      d.translations(s),
		Annotations:       d.annotationsOf(s),
	})
}

// MeasureGroupDimension decodes a measure group Dimension element using its
// own discriminator.
func (d *Decoder) MeasureGroupDimension(n xmlnode.Node) (model.MeasureGroupDimension, bool, error) {
	return d.MeasureGroupDimensionAs(n, xmlnode.Discriminator(n))
}

// MeasureGroupDimensionAs decodes n as the MeasureGroupDimension variant named
// kind. An unknown kind yields nil and false without error.
func (d *Decoder) MeasureGroupDimensionAs(n xmlnode.Node, kind string) (model.MeasureGroupDimension, bool, error) {
	s := fieldset.New(n)
	var v model.MeasureGroupDimension
	switch kind {
	case model.KindRegularMeasureGroupDimension:
		v = model.RegularMeasureGroupDimension{
			MeasureGroupDimensionHeader: d.measureGroupDimensionHeader(s),
			Cardinality:                 s.String("Cardinality"),
			Attributes:                  d.measureGroupAttributes(s),
		}
	case model.KindReferenceMeasureGroupDimension:
		v = model.ReferenceMeasureGroupDimension{
			MeasureGroupDimensionHeader:        d.measureGroupDimensionHeader(s),
			IntermediateCubeDimensionID:        s.String("IntermediateCubeDimensionID"),
			IntermediateGranularityAttributeID: s.String("IntermediateGranularityAttributeID"),
			Materialization:                    s.String("Materialization"),
			ProcessingState:                    s.String("ProcessingState"),
			Attributes:                         d.measureGroupAttributes(s),
		}
	case model.KindManyToManyMeasureGroupDimension:
		v = model.ManyToManyMeasureGroupDimension{
			MeasureGroupDimensionHeader: d.measureGroupDimensionHeader(s),
			MeasureGroupID:              s.String("MeasureGroupID"),
			DirectSlice:                 s.String("DirectSlice"),
		}
	case model.KindDataMiningMeasureGroupDimension:
		v = model.DataMiningMeasureGroupDimension{
			MeasureGroupDimensionHeader: d.measureGroupDimensionHeader(s),
			CaseCubeDimensionID:         s.String("CaseCubeDimensionID"),
		}
	case model.KindDegenerateMeasureGroupDimension:
		v = model.DegenerateMeasureGroupDimension{
			MeasureGroupDimensionHeader: d.measureGroupDimensionHeader(s),
			ShareDimensionStorage:       s.String("ShareDimensionStorage"),
			Attributes:                  d.measureGroupAttributes(s),
		}
	default:
		d.unknown(FamilyMeasureGroupDimension, kind)
		return nil, false, nil
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (d *Decoder) measureGroupDimension(n xmlnode.Node) (model.MeasureGroupDimension, error) {
	v, _, err := d.MeasureGroupDimension(n)
	return v, err
}

func (d *Decoder) measureGroupDimensionHeader(s *fieldset.Set) model.MeasureGroupDimensionHeader {
	return model.MeasureGroupDimensionHeader{
		CubeDimensionID: s.String("CubeDimensionID"),
		Annotations:     d.annotationsOf(s),
		Source:          fieldset.One(s, "Source", d.binding),
	}
}

func (d *Decoder) measureGroupAttributes(s *fieldset.Set) []model.MeasureGroupAttribute {
	return fieldset.List(s, "Attributes", "Attribute", d.measureGroupAttribute)
}

func (d *Decoder) measureGroupAttribute(n xmlnode.Node) (model.MeasureGroupAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.MeasureGroupAttribute{
		AttributeID: s.String("AttributeID"),
		KeyColumns:  d.dataItems(s, "KeyColumns", "KeyColumn"),
		Type:        s.String("Type"),
		Annotations: d.annotationsOf(s),
	})
}

// Partition decodes a Partition element.
func (d *Decoder) Partition(n xmlnode.Node) (model.Partition, error) {
	s := fieldset.New(n)
	return finish(s, model.Partition{
		Header:               d.header(s),
		LastProcessed:        s.Instant("LastProcessed"),
		State:                s.String("State"),
		Source:               fieldset.One(s, "Source", d.tabularBinding),
		ProcessingPriority:   s.Int("ProcessingPriority"),
		AggregationPrefix:    s.String("AggregationPrefix"),
		StorageMode:          fieldset.One(s, "StorageMode", StorageMode),
		ProcessingMode:       fieldset.Enum(s, "ProcessingMode", model.ProcessingModeValues...),
		ErrorConfiguration:   fieldset.One(s, "ErrorConfiguration", ErrorConfiguration),
		StorageLocation:      s.String("StorageLocation"),
		RemoteDataSourceID:   s.String("RemoteDataSourceID"),
		Slice:                s.String("Slice"),
		ProactiveCaching:     fieldset.One(s, "ProactiveCaching", d.ProactiveCaching),
		Type:                 s.String("Type"),
		EstimatedSize:        s.Long("EstimatedSize"),
		EstimatedRows:        s.Long("EstimatedRows"),
		CurrentStorageMode:   fieldset.One(s, "CurrentStorageMode", StorageMode),
		AggregationDesignID:  s.String("AggregationDesignID"),
		AggregationInstances: fieldset.List(s, "AggregationInstances", "AggregationInstance", d.aggregationInstance),
		DirectQueryUsage:     s.String("DirectQueryUsage"),
	})
}

func (d *Decoder) aggregationInstance(n xmlnode.Node) (model.AggregationInstance, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationInstance{
		ID:              s.String("ID"),
		Name:            s.String("Name"),
		AggregationType: s.String("AggregationType"),
		Source:          fieldset.One(s, "Source", d.tabularBinding),
		Dimensions:      fieldset.List(s, "Dimensions", "Dimension", d.aggregationInstanceDimension),
		Measures:        fieldset.List(s, "Measures", "Measure", d.aggregationInstanceMeasure),
		Description:     s.String("Description"),
		Annotations:     d.annotationsOf(s),
	})
}

func (d *Decoder) aggregationInstanceDimension(n xmlnode.Node) (model.AggregationInstanceDimension, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationInstanceDimension{
		CubeDimensionID: s.String("CubeDimensionID"),
		Attributes:      fieldset.List(s, "Attributes", "Attribute", d.aggregationInstanceAttribute),
	})
}

func (d *Decoder) aggregationInstanceAttribute(n xmlnode.Node) (model.AggregationInstanceAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationInstanceAttribute{
		AttributeID: s.String("AttributeID"),
		KeyColumns:  d.dataItems(s, "KeyColumns", "KeyColumn"),
	})
}

func (d *Decoder) aggregationInstanceMeasure(n xmlnode.Node) (model.AggregationInstanceMeasure, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationInstanceMeasure{
		MeasureID: s.String("MeasureID"),
		Source:    fieldset.One(s, "Source", d.binding),
	})
}

// AggregationDesign decodes an AggregationDesign element.
func (d *Decoder) AggregationDesign(n xmlnode.Node) (model.AggregationDesign, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationDesign{
		Header:                   d.header(s),
		EstimatedRows:            s.Long("EstimatedRows"),
		Dimensions:               fieldset.List(s, "Dimensions", "Dimension", d.aggregationDesignDimension),
		Aggregations:             fieldset.List(s, "Aggregations", "Aggregation", d.aggregation),
		EstimatedPerformanceGain: s.Int("EstimatedPerformanceGain"),
	})
}

func (d *Decoder) aggregationDesignDimension(n xmlnode.Node) (model.AggregationDesignDimension, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationDesignDimension{
		CubeDimensionID: s.String("CubeDimensionID"),
		Attributes:      fieldset.List(s, "Attributes", "Attribute", aggregationDesignAttribute),
		Annotations:     d.annotationsOf(s),
	})
}

func aggregationDesignAttribute(n xmlnode.Node) (model.AggregationDesignAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationDesignAttribute{
		AttributeID:    s.String("AttributeID"),
		EstimatedCount: s.Long("EstimatedCount"),
	})
}

func (d *Decoder) aggregation(n xmlnode.Node) (model.Aggregation, error) {
	s := fieldset.New(n)
	return finish(s, model.Aggregation{
		ID:          s.String("ID"),
		Name:        s.String("Name"),
		Dimensions:  fieldset.List(s, "Dimensions", "Dimension", d.aggregationDimension),
		Annotations: d.annotationsOf(s),
		Description: s.String("Description"),
	})
}

func (d *Decoder) aggregationDimension(n xmlnode.Node) (model.AggregationDimension, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationDimension{
		CubeDimensionID: s.String("CubeDimensionID"),
		Attributes:      fieldset.List(s, "Attributes", "Attribute", d.aggregationAttribute),
		Annotations:     d.annotationsOf(s),
	})
}

func (d *Decoder) aggregationAttribute(n xmlnode.Node) (model.AggregationAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.AggregationAttribute{
		AttributeID: s.String("AttributeID"),
		Annotations: d.annotationsOf(s),
	})
}
