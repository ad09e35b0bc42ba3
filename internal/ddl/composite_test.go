package ddl

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

func TestSiblingDimensionsKeepSourceOrder(t *testing.T) {
	d := New(Config{})
	db, err := d.Database(parse(t, `<Database>
		<ID>Sales</ID>
		<Dimensions>
			<Dimension><ID>Customer</ID></Dimension>
			<Dimension><ID>Product</ID></Dimension>
			<Dimension><ID>Date</ID></Dimension>
		</Dimensions>
	</Database>`))
	require.NoError(t, err)
	require.Len(t, db.Dimensions, 3)
	ids := make([]string, 0, len(db.Dimensions))
	for _, dim := range db.Dimensions {
		ids = append(ids, *dim.ID)
	}
	assert.Equal(t, []string{"Customer", "Product", "Date"}, ids)
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	d := New(Config{})
	dim, err := d.Dimension(parse(t, `<Dimension><Name>Geography</Name><Attributes/></Dimension>`))
	require.NoError(t, err)

	assert.Equal(t, "Geography", *dim.Name)
	assert.Nil(t, dim.ID)
	assert.Nil(t, dim.WriteEnabled)
	assert.Nil(t, dim.ProcessingPriority)
	assert.Nil(t, dim.StorageMode)
	assert.Nil(t, dim.ErrorConfiguration)
	assert.Nil(t, dim.Source)
	assert.Nil(t, dim.Hierarchies)
	assert.Nil(t, dim.Annotations)
	assert.NotNil(t, dim.Attributes)
	assert.Empty(t, dim.Attributes)
}

func TestRepeatedScalarKeepsLastMatch(t *testing.T) {
	d := New(Config{})
	cube, err := d.Cube(parse(t, `<Cube><Name>first</Name><Visible>false</Visible><Name>second</Name><Visible>true</Visible></Cube>`))
	require.NoError(t, err)
	assert.Equal(t, "second", *cube.Name)
	assert.True(t, *cube.Visible)
}

func TestUnknownChildrenAreIgnored(t *testing.T) {
	d := New(Config{})
	role, err := d.Role(parse(t, `<Role>
		<Name>Readers</Name>
		<FutureSetting>42</FutureSetting>
		<Members><Member><Name>CORP\alice</Name><Sid>S-1</Sid></Member><Surprise/></Members>
	</Role>`))
	require.NoError(t, err)
	assert.Equal(t, "Readers", *role.Name)
	assert.Equal(t, []model.RoleMember{{Name: str(`CORP\alice`), Sid: str("S-1")}}, role.Members)
}

func TestDimensionDecodesNestedStructures(t *testing.T) {
	d := New(Config{})
	dim, err := d.Dimension(parse(t, `<Dimension `+xsiDecl+`>
		<ID>Date</ID>
		<Source xsi:type="DataSourceViewBinding"><DataSourceViewID>dsv</DataSourceViewID></Source>
		<StorageMode valuens="ddl200_200">InMemory</StorageMode>
		<ProcessingMode>LazyAggregations</ProcessingMode>
		<ErrorConfiguration><KeyErrorLimit>10</KeyErrorLimit><KeyNotFound>IgnoreError</KeyNotFound></ErrorConfiguration>
		<Annotations><Annotation><Name>owner</Name><Value>bi</Value></Annotation></Annotations>
		<Attributes>
			<Attribute>
				<ID>Year</ID>
				<Usage>Key</Usage>
				<KeyColumns>
					<KeyColumn><DataType>Integer</DataType><Source xsi:type="ColumnBinding"><TableID>t</TableID><ColumnID>y</ColumnID></Source></KeyColumn>
				</KeyColumns>
				<NameColumn><DataType>WChar</DataType><DataSize>20</DataSize></NameColumn>
				<Translations><Translation><Language>1031</Language><Caption>Jahr</Caption></Translation></Translations>
				<AttributeRelationships><AttributeRelationship><AttributeID>Quarter</AttributeID><Visible>false</Visible></AttributeRelationship></AttributeRelationships>
				<VisualizationProperties><FolderPosition>2</FolderPosition></VisualizationProperties>
			</Attribute>
		</Attributes>
		<Hierarchies>
			<Hierarchy><Name>Calendar</Name><Levels><Level><Name>Year</Name><SourceAttributeID>Year</SourceAttributeID></Level></Levels></Hierarchy>
		</Hierarchies>
	</Dimension>`))
	require.NoError(t, err)

	assert.Equal(t, model.DataSourceViewBinding{DataSourceViewID: str("dsv")}, dim.Source)
	require.NotNil(t, dim.StorageMode)
	assert.Equal(t, model.StorageModeInMemory, dim.StorageMode.Value)
	assert.Equal(t, "ddl200_200", *dim.StorageMode.ValueNS)
	assert.Equal(t, model.ProcessingModeLazyAggregations, *dim.ProcessingMode)
	assert.Equal(t, int64(10), *dim.ErrorConfiguration.KeyErrorLimit)
	assert.Equal(t, []model.Annotation{{Name: str("owner"), Value: str("bi")}}, dim.Annotations)

	require.Len(t, dim.Attributes, 1)
	attr := dim.Attributes[0]
	assert.Equal(t, "Year", *attr.ID)
	require.Len(t, attr.KeyColumns, 1)
	assert.Equal(t, model.ColumnBinding{TableID: str("t"), ColumnID: str("y")}, attr.KeyColumns[0].Source)
	assert.Equal(t, int32(20), *attr.NameColumn.DataSize)
	require.Len(t, attr.Translations, 1)
	assert.Equal(t, int32(1031), *attr.Translations[0].Language)
	assert.Equal(t, "Jahr", *attr.Translations[0].Caption)
	assert.False(t, *attr.AttributeRelationships[0].Visible)
	assert.Equal(t, int32(2), *attr.VisualizationProperties.FolderPosition)

	require.Len(t, dim.Hierarchies, 1)
	assert.Equal(t, "Year", *dim.Hierarchies[0].Levels[0].SourceAttributeID)
}

func TestMalformedPrimitiveCarriesPath(t *testing.T) {
	d := New(Config{})
	_, err := d.Database(parse(t, `<Database>
		<Dimensions><Dimension><WriteEnabled>yes</WriteEnabled></Dimension></Dimensions>
	</Database>`))
	require.Error(t, err)
	de, ok := xmlaerrors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, string(xmlaerrors.ErrInvalidBoolean), de.Code)
	assert.Equal(t, "Dimensions/Dimension/WriteEnabled", de.Path)
	assert.Equal(t, "yes", de.Actual)
}

func TestEmptyTextIsMalformedForTypedFields(t *testing.T) {
	d := New(Config{})
	_, err := d.Partition(parse(t, `<Partition><EstimatedRows></EstimatedRows></Partition>`))
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrInvalidLong))

	_, err = d.Partition(parse(t, `<Partition><StorageMode>Disk</StorageMode></Partition>`))
	assert.True(t, xmlaerrors.HasCode(err, xmlaerrors.ErrInvalidEnum))
}

func TestMeasureGroupWithPartitionsAndAggregations(t *testing.T) {
	d := New(Config{})
	mg, err := d.MeasureGroup(parse(t, `<MeasureGroup `+xsiDecl+`>
		<ID>Sales</ID>
		<Measures>
			<Measure><ID>Amount</ID><AggregateFunction>Sum</AggregateFunction>
				<Source><DataType>Double</DataType><Source xsi:type="ColumnBinding"><TableID>f</TableID><ColumnID>amt</ColumnID></Source></Source>
			</Measure>
		</Measures>
		<Dimensions>
			<Dimension xsi:type="RegularMeasureGroupDimension"><CubeDimensionID>Date</CubeDimensionID><Cardinality>Many</Cardinality></Dimension>
			<Dimension xsi:type="ManyToManyMeasureGroupDimension"><CubeDimensionID>Tag</CubeDimensionID><MeasureGroupID>Bridge</MeasureGroupID></Dimension>
		</Dimensions>
		<Partitions>
			<Partition>
				<ID>p2024</ID>
				<Source xsi:type="QueryBinding"><DataSourceID>ds</DataSourceID><QueryDefinition>SELECT 1</QueryDefinition></Source>
				<EstimatedRows>1000</EstimatedRows>
				<ProactiveCaching><SilenceInterval>PT10S</SilenceInterval><Enabled>true</Enabled>
					<Source xsi:type="ProactiveCachingInheritedBinding"><NotificationTechnique>Server</NotificationTechnique></Source>
				</ProactiveCaching>
			</Partition>
		</Partitions>
		<AggregationDesigns>
			<AggregationDesign><ID>ad</ID><EstimatedPerformanceGain>30</EstimatedPerformanceGain>
				<Aggregations><Aggregation><ID>a1</ID><Dimensions><Dimension><CubeDimensionID>Date</CubeDimensionID>
					<Attributes><Attribute><AttributeID>Year</AttributeID></Attribute></Attributes></Dimension></Dimensions></Aggregation></Aggregations>
			</AggregationDesign>
		</AggregationDesigns>
	</MeasureGroup>`))
	require.NoError(t, err)

	require.Len(t, mg.Measures, 1)
	assert.Equal(t, "Sum", *mg.Measures[0].AggregateFunction)
	assert.Equal(t, model.KindColumnBinding, mg.Measures[0].Source.Source.BindingKind())

	require.Len(t, mg.Dimensions, 2)
	assert.Equal(t, model.KindRegularMeasureGroupDimension, mg.Dimensions[0].MeasureGroupDimensionKind())
	m2m := mg.Dimensions[1].(model.ManyToManyMeasureGroupDimension)
	assert.Equal(t, "Bridge", *m2m.MeasureGroupID)

	require.Len(t, mg.Partitions, 1)
	p := mg.Partitions[0]
	assert.Equal(t, model.QueryBinding{DataSourceID: str("ds"), QueryDefinition: str("SELECT 1")}, p.Source)
	assert.Equal(t, int64(1000), *p.EstimatedRows)
	assert.Equal(t, 10*time.Second, *p.ProactiveCaching.SilenceInterval)
	assert.True(t, *p.ProactiveCaching.Enabled)
	assert.Equal(t, model.ProactiveCachingInheritedBinding{NotificationTechnique: str("Server")}, p.ProactiveCaching.Source)

	require.Len(t, mg.AggregationDesigns, 1)
	ad := mg.AggregationDesigns[0]
	assert.Equal(t, int32(30), *ad.EstimatedPerformanceGain)
	assert.Equal(t, "Year", *ad.Aggregations[0].Dimensions[0].Attributes[0].AttributeID)
}

func TestCubeExtras(t *testing.T) {
	d := New(Config{})
	cube, err := d.Cube(parse(t, `<Cube `+xsiDecl+`>
		<ID>Sales</ID>
		<Dimensions><Dimension><ID>Date</ID><DimensionID>Date</DimensionID>
			<Attributes><Attribute><AttributeID>Year</AttributeID><AttributeHierarchyEnabled>true</AttributeHierarchyEnabled></Attribute></Attributes>
		</Dimension></Dimensions>
		<Kpis><Kpi><ID>Margin</ID><Value>[Measures].[Margin]</Value><Goal>0.3</Goal></Kpi></Kpis>
		<Perspectives><Perspective><ID>Lite</ID>
			<MeasureGroups><MeasureGroup><MeasureGroupID>Sales</MeasureGroupID><Measures><Measure><MeasureID>Amount</MeasureID></Measure></Measures></MeasureGroup></MeasureGroups>
			<Kpis><Kpi><KpiID>Margin</KpiID></Kpi></Kpis>
		</Perspective></Perspectives>
		<Actions><Action xsi:type="StandardAction"><ID>open</ID><Type>Url</Type><Expression>"http://x"</Expression></Action></Actions>
		<CubePermissions><CubePermission><RoleID>Readers</RoleID><Read>Allowed</Read>
			<CellPermissions><CellPermission><Access>Read</Access><Expression>1</Expression></CellPermission></CellPermissions>
		</CubePermission></CubePermissions>
	</Cube>`))
	require.NoError(t, err)

	assert.True(t, *cube.Dimensions[0].Attributes[0].AttributeHierarchyEnabled)
	assert.Equal(t, "0.3", *cube.Kpis[0].Goal)
	assert.Equal(t, "Amount", *cube.Perspectives[0].MeasureGroups[0].Measures[0].MeasureID)
	assert.Equal(t, "Margin", *cube.Perspectives[0].Kpis[0].KpiID)
	std := cube.Actions[0].(model.StandardAction)
	assert.Equal(t, model.ActionTypeURL, *std.Type)
	assert.Equal(t, "Readers", *cube.CubePermissions[0].RoleID)
	assert.Equal(t, "Read", *cube.CubePermissions[0].CellPermissions[0].Access)
	assert.Nil(t, cube.MdxScripts)
}

func TestMdxScriptCommandsUseInjectedDecoder(t *testing.T) {
	doc := `<MdxScript><ID>s</ID><Commands>
		<Command><Text>CALCULATE;</Text></Command>
		<Command><Text>SCOPE;</Text></Command>
	</Commands></MdxScript>`

	_, err := New(Config{}).MdxScript(parse(t, doc))
	assert.ErrorIs(t, err, ErrNoCommandDecoder)

	var calls int
	d := New(Config{Command: func(n xmlnode.Node) (model.Command, error) {
		calls++
		return model.Statement{Text: *childText(n, "Text")}, nil
	}})
	script, err := d.MdxScript(parse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []model.Command{model.Statement{Text: "CALCULATE;"}, model.Statement{Text: "SCOPE;"}}, script.Commands)

	boom := errors.New("boom")
	d = New(Config{Command: func(xmlnode.Node) (model.Command, error) { return nil, boom }})
	_, err = d.MdxScript(parse(t, doc))
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "Commands: Command: boom")
}

func childText(n xmlnode.Node, name string) *string {
	if c := xmlnode.Find(n, name); c != nil {
		v := c.Text()
		return &v
	}
	return nil
}

func TestInjectedAnnotationsDecoder(t *testing.T) {
	d := New(Config{Annotations: func(n xmlnode.Node) ([]model.Annotation, error) {
		return []model.Annotation{{Name: str("custom")}}, nil
	}})
	ds, err := d.DataSource(parse(t, `<DataSource><ID>ds</ID><Annotations><Annotation><Name>ignored</Name></Annotation></Annotations></DataSource>`))
	require.NoError(t, err)
	assert.Equal(t, []model.Annotation{{Name: str("custom")}}, ds.Annotations)

	ds, err = d.DataSource(parse(t, `<DataSource><ID>ds</ID></DataSource>`))
	require.NoError(t, err)
	assert.Nil(t, ds.Annotations, "absent container never reaches the decoder")
}

func TestAnnotationValueKeepsDirectText(t *testing.T) {
	a, err := Annotation(parse(t, `<Annotation><Name>n</Name><Value>lead<x>inner</x>tail</Value></Annotation>`))
	require.NoError(t, err)
	assert.Equal(t, "leadtail", *a.Value)

	a, err = Annotation(parse(t, `<Annotation><Value><x>inner</x></Value></Annotation>`))
	require.NoError(t, err)
	require.NotNil(t, a.Value)
	assert.Empty(t, *a.Value)
}

func TestDataSourceImpersonationAndTimeout(t *testing.T) {
	d := New(Config{})
	ds, err := d.DataSource(parse(t, `<DataSource>
		<ConnectionString>Provider=SQLNCLI11</ConnectionString>
		<ImpersonationInfo><ImpersonationMode>ImpersonateServiceAccount</ImpersonationMode></ImpersonationInfo>
		<Timeout>PT0S</Timeout>
		<MaxActiveConnections>10</MaxActiveConnections>
	</DataSource>`))
	require.NoError(t, err)
	assert.Equal(t, model.ImpersonationImpersonateServiceAccount, *ds.ImpersonationInfo.ImpersonationMode)
	assert.Equal(t, time.Duration(0), *ds.Timeout)
	assert.Equal(t, int32(10), *ds.MaxActiveConnections)
	assert.Nil(t, ds.QueryImpersonationInfo)
}

func TestTraceFilterTree(t *testing.T) {
	d := New(Config{})
	tr, err := d.Trace(parse(t, `<Trace>
		<ID>t1</ID>
		<LogFileSize>100</LogFileSize>
		<Events><Event><EventID>10</EventID><Columns><ColumnID>1</ColumnID><ColumnID>2</ColumnID></Columns></Event></Events>
		<Filter>
			<And>
				<Equal><ColumnID>3</ColumnID><Value>Sales</Value></Equal>
				<Not><Like><ColumnID>42</ColumnID><Value>%tmp%</Value></Like></Not>
				<Unknown/>
			</And>
		</Filter>
	</Trace>`))
	require.NoError(t, err)
	assert.Equal(t, int64(100), *tr.LogFileSize)
	assert.Equal(t, []model.TraceEvent{{EventID: str("10"), Columns: []string{"1", "2"}}}, tr.Events)

	require.NotNil(t, tr.Filter)
	assert.Equal(t, model.TraceFilterAnd, tr.Filter.Op)
	require.Len(t, tr.Filter.Operands, 2)
	assert.Equal(t, model.TraceFilter{Op: model.TraceFilterEqual, ColumnID: str("3"), Value: str("Sales")}, tr.Filter.Operands[0])
	not := tr.Filter.Operands[1]
	assert.Equal(t, model.TraceFilterNot, not.Op)
	require.Len(t, not.Operands, 1)
	assert.Equal(t, "%tmp%", *not.Operands[0].Value)

	empty, err := d.Trace(parse(t, `<Trace><Filter/></Trace>`))
	require.NoError(t, err)
	assert.Nil(t, empty.Filter)
}

func TestMiningStructureAndModel(t *testing.T) {
	d := New(Config{})
	ms, err := d.MiningStructure(parse(t, `<MiningStructure `+xsiDecl+`>
		<ID>Buyers</ID>
		<HoldoutMaxPercent>30</HoldoutMaxPercent>
		<Columns><Column xsi:type="ScalarMiningStructureColumn"><Name>Age</Name><Type>Long</Type><Content>Continuous</Content></Column></Columns>
		<MiningModels>
			<MiningModel><ID>Tree</ID><Algorithm>Microsoft_Decision_Trees</Algorithm>
				<AlgorithmParameters><AlgorithmParameter><Name>COMPLEXITY_PENALTY</Name><Value>0.5</Value></AlgorithmParameter></AlgorithmParameters>
				<Columns><Column><Name>Age</Name><SourceColumnID>Age</SourceColumnID><Usage>Predict</Usage></Column></Columns>
				<FoldingParameters><FoldCount>5</FoldCount></FoldingParameters>
				<MiningModelPermissions><MiningModelPermission><RoleID>r</RoleID><AllowBrowsing>true</AllowBrowsing></MiningModelPermission></MiningModelPermissions>
			</MiningModel>
		</MiningModels>
		<MiningStructurePermissions><MiningStructurePermission><RoleID>r</RoleID><AllowDrillThrough>false</AllowDrillThrough></MiningStructurePermission></MiningStructurePermissions>
	</MiningStructure>`))
	require.NoError(t, err)
	assert.Equal(t, int32(30), *ms.HoldoutMaxPercent)
	scalar := ms.Columns[0].(model.ScalarMiningStructureColumn)
	assert.Equal(t, "Continuous", *scalar.Content)
	mm := ms.MiningModels[0]
	assert.Equal(t, "0.5", *mm.AlgorithmParameters[0].Value)
	assert.Equal(t, "Predict", *mm.Columns[0].Usage)
	assert.Equal(t, int32(5), *mm.FoldingParameters.FoldCount)
	assert.True(t, *mm.MiningModelPermissions[0].AllowBrowsing)
	assert.False(t, *ms.MiningStructurePermissions[0].AllowDrillThrough)
}

func TestServerDecodesPropertiesAndAssemblies(t *testing.T) {
	d := New(Config{})
	srv, err := d.Server(parse(t, `<Server>
		<Name>olap01</Name>
		<EditionID>1804890536</EditionID>
		<ServerProperties><ServerProperty><Name>Port</Name><Value>2383</Value><RequiresRestart>true</RequiresRestart></ServerProperty></ServerProperties>
		<Assemblies><Assembly><ID>System</ID><PermissionSet>Safe</PermissionSet>
			<Files><File><Name>sys.dll</Name><Type>Main</Type><Data><Block>AAAA</Block><Block>BBBB</Block></Data></File></Files>
		</Assembly></Assemblies>
		<Databases><Database><ID>db</ID><Accounts><Account><AccountType>Asset</AccountType><Aliases><Alias>Assets</Alias></Aliases></Account></Accounts></Database></Databases>
	</Server>`))
	require.NoError(t, err)
	assert.Equal(t, int64(1804890536), *srv.EditionID)
	assert.True(t, *srv.ServerProperties[0].RequiresRestart)
	assert.Equal(t, []string{"AAAA", "BBBB"}, srv.Assemblies[0].Files[0].Data)
	assert.Equal(t, []string{"Assets"}, srv.Databases[0].Accounts[0].Aliases)
}

func TestDecodingIsReferentiallyTransparent(t *testing.T) {
	d := New(Config{})
	doc := `<Database ` + xsiDecl + `><ID>x</ID><Cubes><Cube><ID>c</ID><Source xsi:type="DataSourceViewBinding"><DataSourceViewID>v</DataSourceViewID></Source></Cube></Cubes></Database>`
	first, err := d.Database(parse(t, doc))
	require.NoError(t, err)
	second, err := d.Database(parse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
