package model

// Role is a named set of members that permissions are granted to.
type Role struct {
	Header
	Members []RoleMember
}

// RoleMember is a user or group account in a role.
type RoleMember struct {
	Name *string
	Sid  *string
}

// Permission holds the fields every permission kind shares.
type Permission struct {
	Header
	RoleID         *string
	Process        *bool
	ReadDefinition *string
	Read           *string
	Write          *string
}

// DatabasePermission grants a role access to a database.
type DatabasePermission struct {
	Permission
	Administer *bool
}

// CubePermission grants a role access to a cube.
type CubePermission struct {
	Permission
	ReadSourceData       *string
	DimensionPermissions []CubeDimensionPermission
	CellPermissions      []CellPermission
}

// CubeDimensionPermission restricts a role on one cube dimension.
type CubeDimensionPermission struct {
	CubeDimensionID      *string
	Description          *string
	Read                 *string
	Write                *string
	AttributePermissions []AttributePermission
	Annotations          []Annotation
}

// AttributePermission restricts the members of one attribute a role can see.
type AttributePermission struct {
	AttributeID   *string
	Description   *string
	DefaultMember *string
	VisualTotals  *string
	AllowedSet    *string
	DeniedSet     *string
	Annotations   []Annotation
}

// CellPermission restricts the cells a role can read or write.
type CellPermission struct {
	Access      *string
	Description *string
	Expression  *string
	Annotations []Annotation
}

// DimensionPermission grants a role access to a database dimension.
type DimensionPermission struct {
	Permission
	AttributePermissions  []AttributePermission
	AllowedRowsExpression *string
}

// MiningStructurePermission grants a role access to a mining structure.
type MiningStructurePermission struct {
	Permission
	AllowDrillThrough *bool
}

// MiningModelPermission grants a role access to a mining model.
type MiningModelPermission struct {
	Permission
	AllowDrillThrough *bool
	AllowBrowsing     *bool
}

// DataSourcePermission grants a role access to a data source.
type DataSourcePermission struct {
	Permission
}
