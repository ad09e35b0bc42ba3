package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Dimension decodes a database Dimension element.
func (d *Decoder) Dimension(n xmlnode.Node) (model.Dimension, error) {
	s := fieldset.New(n)
	return finish(s, model.Dimension{
		Header:                         d.header(s),
		LastProcessed:                  s.Instant("LastProcessed"),
		Source:                         fieldset.One(s, "Source", d.binding),
		MiningModelID:                  s.String("MiningModelID"),
		Type:                           s.String("Type"),
		UnknownMember:                  s.String("UnknownMember"),
		MdxMissingMemberMode:           s.String("MdxMissingMemberMode"),
		ErrorConfiguration:             fieldset.One(s, "ErrorConfiguration", ErrorConfiguration),
		StorageMode:                    fieldset.One(s, "StorageMode", StorageMode),
		WriteEnabled:                   s.Bool("WriteEnabled"),
		ProcessingPriority:             s.Int("ProcessingPriority"),
		DimensionPermissions:           fieldset.List(s, "DimensionPermissions", "DimensionPermission", d.dimensionPermission),
		DependsOnDimensionID:           s.String("DependsOnDimensionID"),
		Language:                       s.Int("Language"),
		Collation:                      s.String("Collation"),
		UnknownMemberName:              s.String("UnknownMemberName"),
		UnknownMemberTranslations:      fieldset.List(s, "UnknownMemberTranslations", "UnknownMemberTranslation", d.Translation),
		State:                          s.String("State"),
		ProactiveCaching:               fieldset.One(s, "ProactiveCaching", d.ProactiveCaching),
		ProcessingMode:                 fieldset.Enum(s, "ProcessingMode", model.ProcessingModeValues...),
		ProcessingGroup:                s.String("ProcessingGroup"),
		CurrentStorageMode:             fieldset.One(s, "CurrentStorageMode", StorageMode),
		Translations:                   d.translations(s),
		Attributes:                     fieldset.List(s, "Attributes", "Attribute", d.dimensionAttribute),
		AttributeAllMemberName:         s.String("AttributeAllMemberName"),
		AttributeAllMemberTranslations: fieldset.List(s, "AttributeAllMemberTranslations", "MemberAllTranslation", d.Translation),
		Hierarchies:                    fieldset.List(s, "Hierarchies", "Hierarchy", d.hierarchy),
		ProcessingRecommendation:       s.String("ProcessingRecommendation"),
		StringStoresCompatibilityLevel: s.Int("StringStoresCompatibilityLevel"),
	})
}

func (d *Decoder) dimensionAttribute(n xmlnode.Node) (model.DimensionAttribute, error) {
	s := fieldset.New(n)
	return finish(s, model.DimensionAttribute{
		Name:                              s.String("Name"),
		ID:                                s.String("ID"),
		Description:                       s.String("Description"),
		Type:                              s.String("Type"),
		Usage:                             s.String("Usage"),
		Source:                            fieldset.One(s, "Source", d.binding),
		EstimatedCount:                    s.Long("EstimatedCount"),
		KeyColumns:                        d.dataItems(s, "KeyColumns", "KeyColumn"),
		NameColumn:                        fieldset.One(s, "NameColumn", ptr(d.DataItem)),
		ValueColumn:                       fieldset.One(s, "ValueColumn", ptr(d.DataItem)),
		Translations:                      fieldset.List(s, "Translations", "Translation", d.AttributeTranslation),
		AttributeRelationships:            fieldset.List(s, "AttributeRelationships", "AttributeRelationship", d.attributeRelationship),
		DiscretizationMethod:              s.String("DiscretizationMethod"),
		DiscretizationBucketCount:         s.Int("DiscretizationBucketCount"),
		RootMemberIf:                      s.String("RootMemberIf"),
		OrderBy:                           s.String("OrderBy"),
		DefaultMember:                     s.String("DefaultMember"),
		OrderByAttributeID:                s.String("OrderByAttributeID"),
		SkippedLevelsColumn:               fieldset.One(s, "SkippedLevelsColumn", ptr(d.DataItem)),
		NamingTemplate:                    s.String("NamingTemplate"),
		MembersWithData:                   s.String("MembersWithData"),
		MembersWithDataCaption:            s.String("MembersWithDataCaption"),
		NamingTemplateTranslations:        fieldset.List(s, "NamingTemplateTranslations", "NamingTemplateTranslation", d.Translation),
		CustomRollupColumn:                fieldset.One(s, "CustomRollupColumn", ptr(d.DataItem)),
		CustomRollupPropertiesColumn:      fieldset.One(s, "CustomRollupPropertiesColumn", ptr(d.DataItem)),
		UnaryOperatorColumn:               fieldset.One(s, "UnaryOperatorColumn", ptr(d.DataItem)),
		AttributeHierarchyOrdered:         s.Bool("AttributeHierarchyOrdered"),
		MemberNamesUnique:                 s.Bool("MemberNamesUnique"),
		IsAggregatable:                    s.Bool("IsAggregatable"),
		AttributeHierarchyEnabled:         s.Bool("AttributeHierarchyEnabled"),
		AttributeHierarchyOptimizedState:  s.String("AttributeHierarchyOptimizedState"),
		AttributeHierarchyVisible:         s.Bool("AttributeHierarchyVisible"),
		AttributeHierarchyDisplayFolder:   s.String("AttributeHierarchyDisplayFolder"),
		KeyUniquenessGuarantee:            s.Bool("KeyUniquenessGuarantee"),
		GroupingBehavior:                  s.String("GroupingBehavior"),
		InstanceSelection:                 s.String("InstanceSelection"),
		Annotations:                       d.annotationsOf(s),
		ProcessingState:                   s.String("ProcessingState"),
		AttributeHierarchyProcessingState: s.String("AttributeHierarchyProcessingState"),
		VisualizationProperties:           fieldset.One(s, "VisualizationProperties", visualizationProperties),
		ExtendedType:                      s.String("ExtendedType"),
	})
}

func visualizationProperties(n xmlnode.Node) (*model.AttributeVisualizationProperties, error) {
	s := fieldset.New(n)
	return finish(s, &model.AttributeVisualizationProperties{
		FolderPosition:           s.Int("FolderPosition"),
		ContextualNameRule:       s.String("ContextualNameRule"),
		Alignment:                s.String("Alignment"),
		IsFolderDefault:          s.Bool("IsFolderDefault"),
		IsRightToLeft:            s.Bool("IsRightToLeft"),
		SortDirection:            s.String("SortDirection"),
		Units:                    s.String("Units"),
		Width:                    s.Int("Width"),
		DefaultDetailsPosition:   s.Int("DefaultDetailsPosition"),
		CommonIdentifierPosition: s.Int("CommonIdentifierPosition"),
		SortPropertiesPosition:   s.Int("SortPropertiesPosition"),
		DisplayKeyPosition:       s.Int("DisplayKeyPosition"),
		IsDefaultImage:           s.Bool("IsDefaultImage"),
	})
}

func (d *Decoder) attributeRelationship(n xmlnode.Node) (model.AttributeRelationship, error) {
	s := fieldset.New(n)
	return finish(s, model.AttributeRelationship{
		AttributeID:      s.String("AttributeID"),
		RelationshipType: s.String("RelationshipType"),
		Cardinality:      s.String("Cardinality"),
		Optionality:      s.String("Optionality"),
		OverrideBehavior: s.String("OverrideBehavior"),
		Description:      s.String("Description"),
		Name:             s.String("Name"),
		Visible:          s.Bool("Visible"),
		Translations:     d.translations(s),
		Annotations:      d.annotationsOf(s),
	})
}

func (d *Decoder) hierarchy(n xmlnode.Node) (model.Hierarchy, error) {
	s := fieldset.New(n)
	return finish(s, model.Hierarchy{
		Name:                  s.String("Name"),
		ID:                    s.String("ID"),
		Description:           s.String("Description"),
		ProcessingState:       s.String("ProcessingState"),
		StructureType:         s.String("StructureType"),
		DisplayFolder:         s.String("DisplayFolder"),
		Translations:          d.translations(s),
		AllMemberName:         s.String("AllMemberName"),
		AllMemberTranslations: fieldset.List(s, "AllMemberTranslations", "AllMemberTranslation", d.Translation),
		MemberNamesUnique:     s.Bool("MemberNamesUnique"),
		MemberKeysUnique:      s.String("MemberKeysUnique"),
		AllowDuplicateNames:   s.Bool("AllowDuplicateNames"),
		Levels:                fieldset.List(s, "Levels", "Level", d.level),
		Annotations:           d.annotationsOf(s),
	})
}

func (d *Decoder) level(n xmlnode.Node) (model.Level, error) {
	s := fieldset.New(n)
	return finish(s, model.Level{
		Name:              s.String("Name"),
		ID:                s.String("ID"),
		Description:       s.String("Description"),
		SourceAttributeID: s.String("SourceAttributeID"),
		HideMemberIf:      s.String("HideMemberIf"),
		Translations:      d.translations(s),
		Annotations:       d.annotationsOf(s),
	})
}
