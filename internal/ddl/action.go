package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Action decodes an Action element using its own discriminator.
func (d *Decoder) Action(n xmlnode.Node) (model.Action, bool, error) {
	return d.ActionAs(n, xmlnode.Discriminator(n))
}

// ActionAs decodes n as the Action variant named kind. An unknown kind yields
// nil and false without error.
func (d *Decoder) ActionAs(n xmlnode.Node, kind string) (model.Action, bool, error) {
	s := fieldset.New(n)
	var a model.Action
	switch kind {
	case model.KindStandardAction:
		a = model.StandardAction{
			ActionHeader: d.actionHeader(s),
			Expression:   s.String("Expression"),
		}
	case model.KindReportAction:
		a = model.ReportAction{
			ActionHeader:           d.actionHeader(s),
			ReportServer:           s.String("ReportServer"),
			Path:                   s.String("Path"),
			ReportParameters:       fieldset.List(s, "ReportParameters", "ReportParameter", reportParameter),
			ReportFormatParameters: fieldset.List(s, "ReportFormatParameters", "ReportFormatParameter", reportFormatParameter),
		}
	case model.KindDrillThroughAction:
		a = model.DrillThroughAction{
			ActionHeader: d.actionHeader(s),
			Default:      s.Bool("Default"),
			Columns:      fieldset.List(s, "Columns", "Column", d.binding),
			MaximumRows:  s.Int("MaximumRows"),
		}
	default:
		d.unknown(FamilyAction, kind)
		return nil, false, nil
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (d *Decoder) action(n xmlnode.Node) (model.Action, error) {
	a, _, err := d.Action(n)
	return a, err
}

func (d *Decoder) actionHeader(s *fieldset.Set) model.ActionHeader {
	return model.ActionHeader{
		Name:         s.String("Name"),
		ID:           s.String("ID"),
		Caption:      s.String("Caption"),
		CaptionIsMdx: s.Bool("CaptionIsMdx"),
		Translations: d.translations(s),
		TargetType:   s.String("TargetType"),
		Target:       s.String("Target"),
		Condition:    s.String("Condition"),
		Type:         fieldset.Enum(s, "Type", model.ActionTypeValues...),
		Invocation:   s.String("Invocation"),
		Application:  s.String("Application"),
		Description:  s.String("Description"),
		Annotations:  d.annotationsOf(s),
	}
}

func reportParameter(n xmlnode.Node) (model.ReportParameter, error) {
	s := fieldset.New(n)
	return finish(s, model.ReportParameter{
		Name:  s.String("Name"),
		Value: s.String("Value"),
	})
}

func reportFormatParameter(n xmlnode.Node) (model.ReportFormatParameter, error) {
	s := fieldset.New(n)
	return finish(s, model.ReportFormatParameter{
		Name:  s.String("Name"),
		Value: s.String("Value"),
	})
}
