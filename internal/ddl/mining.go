package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// MiningStructure decodes a MiningStructure element.
func (d *Decoder) MiningStructure(n xmlnode.Node) (model.MiningStructure, error) {
	s := fieldset.New(n)
	return finish(s, model.MiningStructure{
		Header:                     d.header(s),
		LastProcessed:              s.Instant("LastProcessed"),
		Source:                     fieldset.One(s, "Source", d.binding),
		Columns:                    fieldset.List(s, "Columns", "Column", d.miningStructureColumn),
		HoldoutMaxPercent:          s.Int("HoldoutMaxPercent"),
		HoldoutMaxCases:            s.Long("HoldoutMaxCases"),
		HoldoutSeed:                s.Long("HoldoutSeed"),
		HoldoutActualSize:          s.Long("HoldoutActualSize"),
		State:                      s.String("State"),
		ErrorConfiguration:         fieldset.One(s, "ErrorConfiguration", ErrorConfiguration),
		MiningStructurePermissions: d.miningStructurePermissions(s),
		Language:                   s.Int("Language"),
		Collation:                  s.String("Collation"),
		CacheMode:                  s.String("CacheMode"),
		MiningModels:               fieldset.List(s, "MiningModels", "MiningModel", d.MiningModel),
		Translations:               d.translations(s),
	})
}

// MiningStructureColumn decodes a mining structure Column element using its
// own discriminator.
func (d *Decoder) MiningStructureColumn(n xmlnode.Node) (model.MiningStructureColumn, bool, error) {
	return d.MiningStructureColumnAs(n, xmlnode.Discriminator(n))
}

// MiningStructureColumnAs decodes n as the MiningStructureColumn variant named
// kind. Nested columns of a table column are always scalar and are decoded
// without dispatch.
func (d *Decoder) MiningStructureColumnAs(n xmlnode.Node, kind string) (model.MiningStructureColumn, bool, error) {
	switch kind {
	case model.KindScalarMiningStructureColumn:
		c, err := d.scalarMiningStructureColumn(n)
		if err != nil {
			return nil, false, err
		}
		return c, true, nil
	case model.KindTableMiningStructureColumn:
		c, err := d.tableMiningStructureColumn(n)
		if err != nil {
			return nil, false, err
		}
		return c, true, nil
	default:
		d.unknown(FamilyMiningStructureColumn, kind)
		return nil, false, nil
	}
}

func (d *Decoder) miningStructureColumn(n xmlnode.Node) (model.MiningStructureColumn, error) {
	c, _, err := d.MiningStructureColumn(n)
	return c, err
}

func (d *Decoder) scalarMiningStructureColumn(n xmlnode.Node) (model.ScalarMiningStructureColumn, error) {
	s := fieldset.New(n)
	return finish(s, model.ScalarMiningStructureColumn{
		Name:                      s.String("Name"),
		ID:                        s.String("ID"),
		Description:               s.String("Description"),
		Type:                      s.String("Type"),
		Size:                      s.Int("Size"),
		Distribution:              s.String("Distribution"),
		ModelingFlags:             s.StringList("ModelingFlags", "ModelingFlag"),
		Content:                   s.String("Content"),
		IsKey:                     s.Bool("IsKey"),
		ClassifiedColumns:         s.StringList("ClassifiedColumns", "ClassifiedColumnID"),
		DiscretizationMethod:      s.String("DiscretizationMethod"),
		DiscretizationBucketCount: s.Int("DiscretizationBucketCount"),
		KeyColumns:                d.dataItems(s, "KeyColumns", "KeyColumn"),
		NameColumn:                fieldset.One(s, "NameColumn", ptr(d.DataItem)),
		Translations:              d.translations(s),
		Annotations:               d.annotationsOf(s),
	})
}

func (d *Decoder) tableMiningStructureColumn(n xmlnode.Node) (model.TableMiningStructureColumn, error) {
	s := fieldset.New(n)
	return finish(s, model.TableMiningStructureColumn{
		Name:               s.String("Name"),
		ID:                 s.String("ID"),
		Description:        s.String("Description"),
		ForeignKeyColumns:  d.dataItems(s, "ForeignKeyColumns", "ForeignKeyColumn"),
		SourceMeasureGroup: fieldset.One(s, "SourceMeasureGroup", d.binding),
		Columns:            fieldset.List(s, "Columns", "Column", d.scalarMiningStructureColumn),
		Translations:       d.translations(s),
		Annotations:        d.annotationsOf(s),
	})
}

// MiningModel decodes a MiningModel element.
func (d *Decoder) MiningModel(n xmlnode.Node) (model.MiningModel, error) {
	s := fieldset.New(n)
	return finish(s, model.MiningModel{
		Header:                 d.header(s),
		Algorithm:              s.String("Algorithm"),
		LastProcessed:          s.Instant("LastProcessed"),
		AlgorithmParameters:    fieldset.List(s, "AlgorithmParameters", "AlgorithmParameter", algorithmParameter),
		AllowDrillThrough:      s.Bool("AllowDrillThrough"),
		Translations:           d.translations(s),
		Columns:                fieldset.List(s, "Columns", "Column", d.miningModelColumn),
		State:                  s.String("State"),
		FoldingParameters:      fieldset.One(s, "FoldingParameters", foldingParameters),
		Filter:                 s.String("Filter"),
		MiningModelPermissions: fieldset.List(s, "MiningModelPermissions", "MiningModelPermission", d.miningModelPermission),
		Language:               s.Int("Language"),
		Collation:              s.String("Collation"),
	})
}

func algorithmParameter(n xmlnode.Node) (model.AlgorithmParameter, error) {
	s := fieldset.New(n)
	return finish(s, model.AlgorithmParameter{
		Name:  s.String("Name"),
		Value: s.String("Value"),
	})
}

func (d *Decoder) miningModelColumn(n xmlnode.Node) (model.MiningModelColumn, error) {
	s := fieldset.New(n)
	return finish(s, model.MiningModelColumn{
		Name:           s.String("Name"),
		ID:             s.String("ID"),
		Description:    s.String("Description"),
		SourceColumnID: s.String("SourceColumnID"),
		Usage:          s.String("Usage"),
		Filter:         s.String("Filter"),
		Translations:   d.translations(s),
		Columns:        fieldset.List(s, "Columns", "Column", d.miningModelColumn),
		ModelingFlags:  s.StringList("ModelingFlags", "ModelingFlag"),
		Annotations:    d.annotationsOf(s),
	})
}

func foldingParameters(n xmlnode.Node) (*model.FoldingParameters, error) {
	s := fieldset.New(n)
	return finish(s, &model.FoldingParameters{
		FoldIndex:           s.Int("FoldIndex"),
		FoldCount:           s.Int("FoldCount"),
		FoldMaxCases:        s.Long("FoldMaxCases"),
		FoldTargetAttribute: s.String("FoldTargetAttribute"),
	})
}
