package xmla_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmla "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

const statementExecute = `<Execute xmlns="urn:schemas-microsoft-com:xml-analysis">
  <Command><Statement>SELECT [Measures].[Amount] ON 0 FROM [Sales]</Statement></Command>
  <Properties><PropertyList><Catalog>Sales</Catalog></PropertyList></Properties>
</Execute>`

func TestDecodeExecuteAcceptsEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "bare execute", doc: statementExecute},
		{name: "soap body", doc: `<Body>` + statementExecute + `</Body>`},
		{
			name: "soap envelope",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Header/>
  <soap:Body>` + statementExecute + `</soap:Body>
</soap:Envelope>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, err := xmla.DecodeExecute(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, model.Statement{Text: "SELECT [Measures].[Amount] ON 0 FROM [Sales]"}, exec.Command)
			assert.Equal(t, []model.Property{{Name: "Catalog", Value: "Sales"}}, exec.Properties)
		})
	}
}

func TestDecodeExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
		path string
	}{
		{name: "malformed xml", doc: `<Execute><Command>`, code: errors.ErrXMLParse},
		{name: "empty input", doc: ``, code: errors.ErrXMLParse},
		{name: "no execute", doc: `<Discover/>`, code: errors.ErrMissingCommand},
		{name: "no command", doc: `<Execute/>`, code: errors.ErrMissingCommand, path: "Execute"},
		{name: "illegal command", doc: `<Execute><Command><Insert/></Command></Execute>`, code: errors.ErrIllegalCommand, path: "Execute/Command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := xmla.DecodeExecute(strings.NewReader(tt.doc))
			require.Error(t, err)
			de, ok := errors.AsDecode(err)
			require.True(t, ok, "error %v is not a decode error", err)
			assert.Equal(t, string(tt.code), de.Code)
			assert.Equal(t, tt.path, de.Path)
		})
	}

	_, err := xmla.NewDecoder(xmla.NewOptions()).DecodeExecute(nil)
	assert.True(t, errors.HasCode(err, errors.ErrXMLParse))
}

func TestDecodeExecuteKeepsParseCause(t *testing.T) {
	_, err := xmla.DecodeExecute(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrXMLParse))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeExecuteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.xml")
	require.NoError(t, os.WriteFile(path, []byte(statementExecute), 0o600))

	exec, err := xmla.DecodeExecuteFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.KindStatement, exec.Command.CommandKind())

	_, err = xmla.DecodeExecuteFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeCommand(t *testing.T) {
	n, err := xmlnode.ParseString(`<Command><Cancel><SessionID>s1</SessionID></Cancel></Command>`)
	require.NoError(t, err)
	cmd, err := xmla.DecodeCommand(n)
	require.NoError(t, err)
	assert.Equal(t, "s1", *cmd.(model.Cancel).SessionID)

	n, err = xmlnode.ParseString(`<Command><Cancel><CancelAssociated>1</CancelAssociated></Cancel></Command>`)
	require.NoError(t, err)
	_, err = xmla.DecodeCommand(n)
	de, ok := errors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, "Command/Cancel/CancelAssociated", de.Path)

	_, err = xmla.DecodeCommand(nil)
	assert.True(t, errors.HasCode(err, errors.ErrIllegalCommand))
}

func TestDecodeMajorObject(t *testing.T) {
	n, err := xmlnode.ParseString(`<DataSourceView><ID>dsv</ID><DataSourceID>ds</DataSourceID></DataSourceView>`)
	require.NoError(t, err)
	obj, err := xmla.DecodeMajorObject(n)
	require.NoError(t, err)
	assert.Equal(t, "ds", *obj.(model.DataSourceView).DataSourceID)

	n, err = xmlnode.ParseString(`<Widget/>`)
	require.NoError(t, err)
	_, err = xmla.DecodeMajorObject(n)
	de, ok := errors.AsDecode(err)
	require.True(t, ok)
	assert.Equal(t, string(errors.ErrIllegalMajorObject), de.Code)
	assert.Equal(t, "Widget", de.Actual)

	_, err = xmla.DecodeMajorObject(nil)
	assert.True(t, errors.HasCode(err, errors.ErrIllegalMajorObject))
}

func TestLoggerReceivesUnknownDiscriminators(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := xmla.NewDecoder(xmla.NewOptions().WithLogger(logger))

	n, err := xmlnode.ParseString(`<Dimension xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
		<Source xsi:type="FutureBinding"/>
	</Dimension>`)
	require.NoError(t, err)
	obj, err := d.DecodeMajorObject(n)
	require.NoError(t, err)
	assert.Nil(t, obj.(model.Dimension).Source)

	var unknown *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Data["family"] != nil {
			unknown = e
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, logrus.DebugLevel, unknown.Level)
	assert.Equal(t, "Binding", unknown.Data["family"])
	assert.Equal(t, "FutureBinding", unknown.Data["discriminator"])
	assert.Equal(t, "Dimension", hook.LastEntry().Data["kind"])
}

func TestOptionsAreValues(t *testing.T) {
	base := xmla.NewOptions()
	logger, _ := logtest.NewNullLogger()
	withLogger := base.WithLogger(logger)
	assert.Nil(t, base.Logger())
	assert.Equal(t, logger, withLogger.Logger())
}

func TestWithAnnotationsDecoder(t *testing.T) {
	opts := xmla.NewOptions().WithAnnotationsDecoder(func(xmlnode.Node) ([]model.Annotation, error) {
		name := "replaced"
		return []model.Annotation{{Name: &name}}, nil
	})
	n, err := xmlnode.ParseString(`<Role><Annotations><Annotation><Name>original</Name></Annotation></Annotations></Role>`)
	require.NoError(t, err)
	obj, err := xmla.NewDecoder(opts).DecodeMajorObject(n)
	require.NoError(t, err)
	role := obj.(model.Role)
	require.Len(t, role.Annotations, 1)
	assert.Equal(t, "replaced", *role.Annotations[0].Name)
}

func TestXMLMaxDepth(t *testing.T) {
	d := xmla.NewDecoder(xmla.NewOptions().WithXMLMaxDepth(2))
	_, err := d.DecodeExecute(strings.NewReader(statementExecute))
	assert.True(t, errors.HasCode(err, errors.ErrXMLParse))

	d = xmla.NewDecoder(xmla.NewOptions().WithXMLMaxDepth(4).WithXMLMaxAttrs(1))
	_, err = d.DecodeExecute(strings.NewReader(statementExecute))
	assert.NoError(t, err)
}
