package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Role decodes a Role element.
func (d *Decoder) Role(n xmlnode.Node) (model.Role, error) {
	s := fieldset.New(n)
	return finish(s, model.Role{
		Header:  d.header(s),
		Members: fieldset.List(s, "Members", "Member", roleMember),
	})
}

func roleMember(n xmlnode.Node) (model.RoleMember, error) {
	s := fieldset.New(n)
	return finish(s, model.RoleMember{
		Name: s.String("Name"),
		Sid:  s.String("Sid"),
	})
}

func (d *Decoder) permission(s *fieldset.Set) model.Permission {
	return model.Permission{
		Header:         d.header(s),
		RoleID:         s.String("RoleID"),
		Process:        s.Bool("Process"),
		ReadDefinition: s.String("ReadDefinition"),
		Read:           s.String("Read"),
		Write:          s.String("Write"),
	}
}

func (d *Decoder) databasePermission(n xmlnode.Node) (model.DatabasePermission, error) {
	s := fieldset.New(n)
	return finish(s, model.DatabasePermission{
		Permission: d.permission(s),
		Administer: s.Bool("Administer"),
	})
}

func (d *Decoder) cubePermission(n xmlnode.Node) (model.CubePermission, error) {
	s := fieldset.New(n)
	return finish(s, model.CubePermission{
		Permission:           d.permission(s),
		ReadSourceData:       s.String("ReadSourceData"),
		DimensionPermissions: fieldset.List(s, "DimensionPermissions", "DimensionPermission", d.cubeDimensionPermission),
		CellPermissions:      fieldset.List(s, "CellPermissions", "CellPermission", d.cellPermission),
	})
}

func (d *Decoder) cubeDimensionPermission(n xmlnode.Node) (model.CubeDimensionPermission, error) {
	s := fieldset.New(n)
	return finish(s, model.CubeDimensionPermission{
		CubeDimensionID:      s.String("CubeDimensionID"),
		Description:          s.String("Description"),
		Read:                 s.String("Read"),
		Write:                s.String("Write"),
		AttributePermissions: d.attributePermissions(s),
		Annotations:          d.annotationsOf(s),
	})
}

func (d *Decoder) attributePermissions(s *fieldset.Set) []model.AttributePermission {
	return fieldset.List(s, "AttributePermissions", "AttributePermission", d.attributePermission)
}

func (d *Decoder) attributePermission(n xmlnode.Node) (model.AttributePermission, error) {
	s := fieldset.New(n)
	return finish(s, model.AttributePermission{
		AttributeID:   s.String("AttributeID"),
		Description:   s.String("Description"),
		DefaultMember: s.String("DefaultMember"),
		VisualTotals:  s.String("VisualTotals"),
		AllowedSet:    s.String("AllowedSet"),
		DeniedSet:     s.String("DeniedSet"),
		Annotations:   d.annotationsOf(s),
	})
}

func (d *Decoder) cellPermission(n xmlnode.Node) (model.CellPermission, error) {
	s := fieldset.New(n)
	return finish(s, model.CellPermission{
		Access:      s.String("Access"),
		Description: s.String("Description"),
		Expression:  s.String("Expression"),
		Annotations: d.annotationsOf(s),
	})
}

func (d *Decoder) dimensionPermission(n xmlnode.Node) (model.DimensionPermission, error) {
	s := fieldset.New(n)
	return finish(s, model.DimensionPermission{
		Permission:            d.permission(s),
		AttributePermissions:  d.attributePermissions(s),
		AllowedRowsExpression: s.String("AllowedRowsExpression"),
	})
}

func (d *Decoder) miningStructurePermissions(s *fieldset.Set) []model.MiningStructurePermission {
	return fieldset.List(s, "MiningStructurePermissions", "MiningStructurePermission", d.miningStructurePermission)
}

func (d *Decoder) miningStructurePermission(n xmlnode.Node) (model.MiningStructurePermission, error) {
	s := fieldset.New(n)
	return finish(s, model.MiningStructurePermission{
		Permission:        d.permission(s),
		AllowDrillThrough: s.Bool("AllowDrillThrough"),
	})
}

func (d *Decoder) miningModelPermission(n xmlnode.Node) (model.MiningModelPermission, error) {
	s := fieldset.New(n)
	return finish(s, model.MiningModelPermission{
		Permission:        d.permission(s),
		AllowDrillThrough: s.Bool("AllowDrillThrough"),
		AllowBrowsing:     s.Bool("AllowBrowsing"),
	})
}

func (d *Decoder) dataSourcePermission(n xmlnode.Node) (model.DataSourcePermission, error) {
	s := fieldset.New(n)
	return finish(s, model.DataSourcePermission{Permission: d.permission(s)})
}
