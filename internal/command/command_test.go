package command

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/ddl"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

func parse(t *testing.T, doc string) xmlnode.Node {
	t.Helper()
	n, err := xmlnode.ParseString(doc)
	require.NoError(t, err)
	return n
}

const nestedAlter = `<Execute xmlns="urn:schemas-microsoft-com:xml-analysis">
  <Command>
    <Alter AllowCreate="true" ObjectExpansion="ExpandFull">
      <Object><DatabaseID>Outer</DatabaseID></Object>
      <ObjectDefinition>
        <Database>
          <ID>Outer</ID>
          <Cubes>
            <Cube>
              <ID>Sales</ID>
              <MdxScripts>
                <MdxScript>
                  <ID>Script</ID>
                  <Commands>
                    <Command>
                      <Alter>
                        <Object><DatabaseID>Inner</DatabaseID></Object>
                        <ObjectDefinition>
                          <Database><ID>Inner</ID><Name>Inner database</Name></Database>
                        </ObjectDefinition>
                      </Alter>
                    </Command>
                  </Commands>
                </MdxScript>
              </MdxScripts>
            </Cube>
          </Cubes>
        </Database>
      </ObjectDefinition>
    </Alter>
  </Command>
  <Properties>
    <PropertyList>
      <Catalog>Outer</Catalog>
      <Format>Tabular</Format>
    </PropertyList>
  </Properties>
</Execute>`

func TestNestedAlterThroughMdxScript(t *testing.T) {
	d := New(Config{})
	exec, err := d.Execute(parse(t, nestedAlter))
	require.NoError(t, err)

	assert.Equal(t, []model.Property{{Name: "Catalog", Value: "Outer"}, {Name: "Format", Value: "Tabular"}}, exec.Properties)

	outer, ok := exec.Command.(model.Alter)
	require.True(t, ok, "outer command is %T", exec.Command)
	assert.Equal(t, "Outer", *outer.Object.DatabaseID)
	assert.True(t, *outer.AllowCreate)
	assert.Equal(t, model.ExpansionExpandFull, *outer.ObjectExpansion)
	assert.Nil(t, outer.Scope)

	db, ok := outer.ObjectDefinition.(model.Database)
	require.True(t, ok, "object definition is %T", outer.ObjectDefinition)
	require.Len(t, db.Cubes, 1)
	require.Len(t, db.Cubes[0].MdxScripts, 1)
	script := db.Cubes[0].MdxScripts[0]
	require.Len(t, script.Commands, 1)

	inner, ok := script.Commands[0].(model.Alter)
	require.True(t, ok, "script command is %T", script.Commands[0])
	assert.Nil(t, inner.AllowCreate)
	innerDB, ok := inner.ObjectDefinition.(model.Database)
	require.True(t, ok)
	assert.Equal(t, "Inner", *innerDB.ID)
	assert.Equal(t, "Inner database", *innerDB.Name)
}

func TestNestedErrorPathCrossesCommands(t *testing.T) {
	d := New(Config{})
	_, err := d.Execute(parse(t, `<Execute><Command><Alter><ObjectDefinition>
		<Cube><MdxScripts><MdxScript><Commands><Command>
			<Cancel><SPID>many</SPID></Cancel>
		</Command></Commands></MdxScript></MdxScripts></Cube>
	</ObjectDefinition></Alter></Command></Execute>`))
	require.Error(t, err)
	de, ok := xmlaerrors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, string(xmlaerrors.ErrInvalidBigInteger), de.Code)
	assert.Equal(t, "Command/Alter/ObjectDefinition/Cube/MdxScripts/MdxScript/Commands/Command/Cancel/SPID", de.Path)
}

func TestIllegalCommand(t *testing.T) {
	d := New(Config{})
	_, err := d.Command(parse(t, `<Command><Backup><Object/></Backup></Command>`))
	require.Error(t, err)
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrIllegalCommand))
	de, _ := xmlaerrors.AsDecode(err)
	assert.Equal(t, "Backup", de.Actual)

	_, err = d.Command(parse(t, `<Command/>`))
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrIllegalCommand))

	_, err = d.CommandAs(parse(t, `<Process/>`), "Process")
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrIllegalCommand))
}

func TestCommandIgnoresUnknownSiblings(t *testing.T) {
	d := New(Config{})
	cmd, err := d.Command(parse(t, `<Command><Comment>x</Comment><Statement>SELECT FROM [Sales]</Statement></Command>`))
	require.NoError(t, err)
	assert.Equal(t, model.Statement{Text: "SELECT FROM [Sales]"}, cmd)
}

func TestMissingCommand(t *testing.T) {
	d := New(Config{})
	_, err := d.Execute(parse(t, `<Execute><Properties/></Execute>`))
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrMissingCommand))
}

func TestExecuteProperties(t *testing.T) {
	d := New(Config{})
	tests := []struct {
		name string
		doc  string
		want []model.Property
	}{
		{
			name: "absent",
			doc:  `<Execute><Command><Statement/></Command></Execute>`,
			want: nil,
		},
		{
			name: "no property list",
			doc:  `<Execute><Command><Statement/></Command><Properties/></Execute>`,
			want: []model.Property{},
		},
		{
			name: "empty property list",
			doc:  `<Execute><Command><Statement/></Command><Properties><PropertyList/></Properties></Execute>`,
			want: []model.Property{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, err := d.Execute(parse(t, tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, exec.Properties)
		})
	}
}

func TestCancel(t *testing.T) {
	d := New(Config{})
	cmd, err := d.Command(parse(t, `<Command><Cancel>
		<ConnectionID>123456789012345678901234567890</ConnectionID>
		<SessionID>F1A2</SessionID>
		<SPID>77</SPID>
		<CancelAssociated>true</CancelAssociated>
	</Cancel></Command>`))
	require.NoError(t, err)
	c := cmd.(model.Cancel)
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, 0, want.Cmp(c.ConnectionID))
	assert.Equal(t, int64(77), c.SPID.Int64())
	assert.Equal(t, "F1A2", *c.SessionID)
	assert.True(t, *c.CancelAssociated)
}

func TestClearCache(t *testing.T) {
	d := New(Config{})
	cmd, err := d.Command(parse(t, `<Command><ClearCache><Object><DatabaseID>db</DatabaseID><CubeID>c</CubeID></Object></ClearCache></Command>`))
	require.NoError(t, err)
	cc := cmd.(model.ClearCache)
	assert.Equal(t, &model.ObjectReference{DatabaseID: ptr("db"), CubeID: ptr("c")}, cc.Object)

	cmd, err = d.Command(parse(t, `<Command><ClearCache/></Command>`))
	require.NoError(t, err)
	assert.Nil(t, cmd.(model.ClearCache).Object)
}

func TestAlterFlags(t *testing.T) {
	d := New(Config{})
	cmd, err := d.Command(parse(t, `<Command><Alter AllowCreate="true">
		<AllowCreate>false</AllowCreate>
		<ObjectExpansion>ObjectProperties</ObjectExpansion>
		<Scope>Session</Scope>
	</Alter></Command>`))
	require.NoError(t, err)
	alter := cmd.(model.Alter)
	assert.False(t, *alter.AllowCreate, "child element takes precedence over attribute")
	assert.Equal(t, model.ExpansionObjectProperties, *alter.ObjectExpansion)
	assert.Equal(t, model.ScopeSession, *alter.Scope)
	assert.Nil(t, alter.ObjectDefinition)

	_, err = d.Command(parse(t, `<Command><Alter ObjectExpansion="Everything"/></Command>`))
	require.Error(t, err)
	de, ok := xmlaerrors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, string(xmlaerrors.ErrInvalidEnum), de.Code)
	assert.Equal(t, "Alter/ObjectExpansion", de.Path)
}

func TestAlterWithUnknownMajorObject(t *testing.T) {
	var seen []string
	d := New(Config{OnUnknown: func(family, discriminator string) {
		seen = append(seen, family+":"+discriminator)
	}})
	cmd, err := d.Command(parse(t, `<Command><Alter><ObjectDefinition><Widget/></ObjectDefinition></Alter></Command>`))
	require.NoError(t, err)
	assert.Nil(t, cmd.(model.Alter).ObjectDefinition)
	assert.Equal(t, []string{ddl.FamilyMajorObject + ":Widget"}, seen)
}

func TestMajorObjectCoversEveryKind(t *testing.T) {
	d := New(Config{})
	for _, kind := range model.MajorObjectKinds {
		t.Run(kind, func(t *testing.T) {
			obj, ok, err := d.MajorObject(parse(t, "<"+kind+"/>"))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, kind, obj.MajorObjectKind())
		})
	}
}

func TestMajorObjectErrorCarriesKind(t *testing.T) {
	d := New(Config{})
	_, _, err := d.MajorObject(parse(t, `<Partition><EstimatedRows>lots</EstimatedRows></Partition>`))
	require.Error(t, err)
	de, ok := xmlaerrors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, "Partition/EstimatedRows", de.Path)
}

func TestCustomAnnotationsReachNestedObjects(t *testing.T) {
	var calls int
	d := New(Config{Annotations: func(xmlnode.Node) ([]model.Annotation, error) {
		calls++
		return []model.Annotation{}, nil
	}})
	obj, ok, err := d.MajorObject(parse(t, `<Database><Annotations/><Cubes><Cube><Annotations/></Cube></Cubes></Database>`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.NotNil(t, obj.(model.Database).Cubes[0].Annotations)
	assert.Same(t, d.Schema(), d.Schema())
}

func ptr[T any](v T) *T {
	return &v
}
