package command

import (
	xmlaerrors "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/errors"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/ddl"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// MajorObject decodes n as the major object named by its local name. An
// unknown name yields nil and false without error.
func (d *Decoder) MajorObject(n xmlnode.Node) (model.MajorObject, bool, error) {
	kind := n.LocalName()
	decode := d.majorObjectDecoder(kind)
	if decode == nil {
		if d.onUnknown != nil {
			d.onUnknown(ddl.FamilyMajorObject, kind)
		}
		return nil, false, nil
	}
	obj, err := decode(n)
	if err != nil {
		return nil, false, err
	}
	return obj, true, nil
}

// objectDefinition decodes the last child of an ObjectDefinition element.
// An empty definition yields nil.
func (d *Decoder) objectDefinition(n xmlnode.Node) (model.MajorObject, error) {
	children := n.Children()
	if len(children) == 0 {
		return nil, nil
	}
	obj, _, err := d.MajorObject(children[len(children)-1])
	return obj, err
}

func (d *Decoder) majorObjectDecoder(kind string) func(xmlnode.Node) (model.MajorObject, error) {
	s := d.schema
	switch kind {
	case model.KindAggregationDesign:
		return majorObject(s.AggregationDesign)
	case model.KindAssembly:
		return majorObject(s.Assembly)
	case model.KindCube:
		return majorObject(s.Cube)
	case model.KindDatabase:
		return majorObject(s.Database)
	case model.KindDataSource:
		return majorObject(s.DataSource)
	case model.KindDataSourceView:
		return majorObject(s.DataSourceView)
	case model.KindDimension:
		return majorObject(s.Dimension)
	case model.KindMdxScript:
		return majorObject(s.MdxScript)
	case model.KindMeasureGroup:
		return majorObject(s.MeasureGroup)
	case model.KindMiningModel:
		return majorObject(s.MiningModel)
	case model.KindMiningStructure:
		return majorObject(s.MiningStructure)
	case model.KindPartition:
		return majorObject(s.Partition)
	case model.KindPerspective:
		return majorObject(s.Perspective)
	case model.KindRole:
		return majorObject(s.Role)
	case model.KindServer:
		return majorObject(s.Server)
	case model.KindTrace:
		return majorObject(s.Trace)
	default:
		return nil
	}
}

func majorObject[T model.MajorObject](decode func(xmlnode.Node) (T, error)) func(xmlnode.Node) (model.MajorObject, error) {
	return func(n xmlnode.Node) (model.MajorObject, error) {
		v, err := decode(n)
		if err != nil {
			return nil, xmlaerrors.WithPath(n.LocalName(), err)
		}
		return v, nil
	}
}
