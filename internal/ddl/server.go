package ddl

import (
	"slices"

	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Server decodes a Server element.
func (d *Decoder) Server(n xmlnode.Node) (model.Server, error) {
	s := fieldset.New(n)
	return finish(s, model.Server{
		Header:           d.header(s),
		ProductName:      s.String("ProductName"),
		Edition:          s.String("Edition"),
		EditionID:        s.Long("EditionID"),
		Version:          s.String("Version"),
		Databases:        fieldset.List(s, "Databases", "Database", d.Database),
		Assemblies:       fieldset.List(s, "Assemblies", "Assembly", d.Assembly),
		Traces:           fieldset.List(s, "Traces", "Trace", d.Trace),
		Roles:            fieldset.List(s, "Roles", "Role", d.Role),
		ServerProperties: fieldset.List(s, "ServerProperties", "ServerProperty", serverProperty),
	})
}

func serverProperty(n xmlnode.Node) (model.ServerProperty, error) {
	s := fieldset.New(n)
	return finish(s, model.ServerProperty{
		Name:            s.String("Name"),
		Value:           s.String("Value"),
		RequiresRestart: s.Bool("RequiresRestart"),
		PendingValue:    s.String("PendingValue"),
		DefaultValue:    s.String("DefaultValue"),
		DisplayFlag:     s.Bool("DisplayFlag"),
		Units:           s.String("Units"),
	})
}

// Database decodes a Database element.
func (d *Decoder) Database(n xmlnode.Node) (model.Database, error) {
	s := fieldset.New(n)
	return finish(s, model.Database{
		Header:                      d.header(s),
		LastUpdate:                  s.Instant("LastUpdate"),
		State:                       s.String("State"),
		ReadWriteMode:               s.String("ReadWriteMode"),
		DbStorageLocation:           s.String("DbStorageLocation"),
		AggregationPrefix:           s.String("AggregationPrefix"),
		ProcessingPriority:          s.Int("ProcessingPriority"),
		EstimatedSize:               s.Long("EstimatedSize"),
		LastProcessed:               s.Instant("LastProcessed"),
		Language:                    s.Int("Language"),
		Collation:                   s.String("Collation"),
		Visible:                     s.Bool("Visible"),
		MasterDataSourceID:          s.String("MasterDataSourceID"),
		DataSourceImpersonationInfo: fieldset.One(s, "DataSourceImpersonationInfo", ImpersonationInfo),
		Accounts:                    fieldset.List(s, "Accounts", "Account", d.account),
		DataSources:                 fieldset.List(s, "DataSources", "DataSource", d.DataSource),
		DataSourceViews:             fieldset.List(s, "DataSourceViews", "DataSourceView", d.DataSourceView),
		Dimensions:                  fieldset.List(s, "Dimensions", "Dimension", d.Dimension),
		Cubes:                       fieldset.List(s, "Cubes", "Cube", d.Cube),
		MiningStructures:            fieldset.List(s, "MiningStructures", "MiningStructure", d.MiningStructure),
		Roles:                       fieldset.List(s, "Roles", "Role", d.Role),
		Assemblies:                  fieldset.List(s, "Assemblies", "Assembly", d.Assembly),
		DatabasePermissions:         fieldset.List(s, "DatabasePermissions", "DatabasePermission", d.databasePermission),
		Translations:                d.translations(s),
		StorageEngineUsed:           s.String("StorageEngineUsed"),
		CompatibilityLevel:          s.Int("CompatibilityLevel"),
		DirectQueryMode:             s.String("DirectQueryMode"),
	})
}

func (d *Decoder) account(n xmlnode.Node) (model.Account, error) {
	s := fieldset.New(n)
	return finish(s, model.Account{
		AccountType:         s.String("AccountType"),
		AggregationFunction: s.String("AggregationFunction"),
		Aliases:             s.StringList("Aliases", "Alias"),
		Annotations:         d.annotationsOf(s),
	})
}

// DataSource decodes a DataSource element.
func (d *Decoder) DataSource(n xmlnode.Node) (model.DataSource, error) {
	s := fieldset.New(n)
	return finish(s, model.DataSource{
		Header:                   d.header(s),
		ManagedProvider:          s.String("ManagedProvider"),
		ConnectionString:         s.String("ConnectionString"),
		ConnectionStringSecurity: s.String("ConnectionStringSecurity"),
		ImpersonationInfo:        fieldset.One(s, "ImpersonationInfo", ImpersonationInfo),
		Isolation:                s.String("Isolation"),
		MaxActiveConnections:     s.Int("MaxActiveConnections"),
		Timeout:                  s.Duration("Timeout"),
		DataSourcePermissions:    fieldset.List(s, "DataSourcePermissions", "DataSourcePermission", d.dataSourcePermission),
		QueryImpersonationInfo:   fieldset.One(s, "QueryImpersonationInfo", ImpersonationInfo),
		QueryHints:               s.String("QueryHints"),
	})
}

// DataSourceView decodes a DataSourceView element.
func (d *Decoder) DataSourceView(n xmlnode.Node) (model.DataSourceView, error) {
	s := fieldset.New(n)
	return finish(s, model.DataSourceView{
		Header:       d.header(s),
		DataSourceID: s.String("DataSourceID"),
	})
}

// Assembly decodes an Assembly element.
func (d *Decoder) Assembly(n xmlnode.Node) (model.Assembly, error) {
	s := fieldset.New(n)
	return finish(s, model.Assembly{
		Header:            d.header(s),
		ImpersonationInfo: fieldset.One(s, "ImpersonationInfo", ImpersonationInfo),
		PermissionSet:     s.String("PermissionSet"),
		Source:            s.String("Source"),
		Files:             fieldset.List(s, "Files", "File", assemblyFile),
	})
}

func assemblyFile(n xmlnode.Node) (model.AssemblyFile, error) {
	s := fieldset.New(n)
	return finish(s, model.AssemblyFile{
		Name: s.String("Name"),
		Type: s.String("Type"),
		Data: s.StringList("Data", "Block"),
	})
}

// Trace decodes a Trace element.
func (d *Decoder) Trace(n xmlnode.Node) (model.Trace, error) {
	s := fieldset.New(n)
	return finish(s, model.Trace{
		Header:          d.header(s),
		LogFileName:     s.String("LogFileName"),
		LogFileAppend:   s.Bool("LogFileAppend"),
		LogFileSize:     s.Long("LogFileSize"),
		LogFileRollover: s.Bool("LogFileRollover"),
		AutoRestart:     s.Bool("AutoRestart"),
		StopTime:        s.Instant("StopTime"),
		Filter:          fieldset.One(s, "Filter", traceFilterRoot),
		Events:          fieldset.List(s, "Events", "Event", traceEvent),
	})
}

func traceEvent(n xmlnode.Node) (model.TraceEvent, error) {
	s := fieldset.New(n)
	return finish(s, model.TraceEvent{
		EventID: s.String("EventID"),
		Columns: s.StringList("Columns", "ColumnID"),
	})
}

// traceFilterRoot decodes the operator held by a Filter element. The last
// recognized operator wins; none yields nil.
func traceFilterRoot(n xmlnode.Node) (*model.TraceFilter, error) {
	var op xmlnode.Node
	for _, child := range n.Children() {
		if isTraceFilterOp(child.LocalName()) {
			op = child
		}
	}
	if op == nil {
		return nil, nil
	}
	f, err := traceFilter(op)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func traceFilter(n xmlnode.Node) (model.TraceFilter, error) {
	f := model.TraceFilter{Op: model.TraceFilterOp(n.LocalName())}
	if f.IsLogical() {
		f.Operands = []model.TraceFilter{}
		for _, child := range n.Children() {
			if !isTraceFilterOp(child.LocalName()) {
				continue
			}
			operand, err := traceFilter(child)
			if err != nil {
				return model.TraceFilter{}, err
			}
			f.Operands = append(f.Operands, operand)
		}
		return f, nil
	}
	s := fieldset.New(n)
	f.ColumnID = s.String("ColumnID")
	f.Value = s.String("Value")
	return finish(s, f)
}

func isTraceFilterOp(name string) bool {
	return slices.Contains(model.TraceFilterOps, model.TraceFilterOp(name))
}
