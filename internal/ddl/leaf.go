package ddl

import (
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/fieldset"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/internal/lexical"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/pkg/xmlnode"
)

// Annotations decodes an Annotations container into its Annotation children.
// An empty container yields an empty, non-nil slice.
func Annotations(n xmlnode.Node) ([]model.Annotation, error) {
	out := []model.Annotation{}
	for _, child := range n.Children() {
		if child.LocalName() != "Annotation" {
			continue
		}
		a, err := Annotation(child)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Annotation decodes one Annotation element. Only the direct text of Value
// is kept.
func Annotation(n xmlnode.Node) (model.Annotation, error) {
	s := fieldset.New(n)
	return finish(s, model.Annotation{
		Name:       s.String("Name"),
		Visibility: s.String("Visibility"),
		Value:      s.String("Value"),
	})
}

// Translation decodes a Translation element.
func (d *Decoder) Translation(n xmlnode.Node) (model.Translation, error) {
	s := fieldset.New(n)
	return finish(s, d.translation(s))
}

func (d *Decoder) translation(s *fieldset.Set) model.Translation {
	return model.Translation{
		Language:      s.Int("Language"),
		Caption:       s.String("Caption"),
		Description:   s.String("Description"),
		DisplayFolder: s.String("DisplayFolder"),
		Annotations:   d.annotationsOf(s),
	}
}

// AttributeTranslation decodes the Translation element of a dimension attribute.
func (d *Decoder) AttributeTranslation(n xmlnode.Node) (model.AttributeTranslation, error) {
	s := fieldset.New(n)
	return finish(s, model.AttributeTranslation{
		Translation:            d.translation(s),
		CaptionColumn:          fieldset.One(s, "CaptionColumn", ptr(d.DataItem)),
		MembersWithDataCaption: s.String("MembersWithDataCaption"),
	})
}

// DataItem decodes a column description with its binding.
func (d *Decoder) DataItem(n xmlnode.Node) (model.DataItem, error) {
	s := fieldset.New(n)
	return finish(s, model.DataItem{
		DataType:             s.String("DataType"),
		DataSize:             s.Int("DataSize"),
		MimeType:             s.String("MimeType"),
		NullProcessing:       s.String("NullProcessing"),
		Trimming:             s.String("Trimming"),
		InvalidXmlCharacters: s.String("InvalidXmlCharacters"),
		Collation:            s.String("Collation"),
		Format:               s.String("Format"),
		Source:               fieldset.One(s, "Source", d.binding),
		Annotations:          d.annotationsOf(s),
	})
}

func (d *Decoder) dataItems(s *fieldset.Set, container, item string) []model.DataItem {
	return fieldset.List(s, container, item, d.DataItem)
}

// ErrorConfiguration decodes an ErrorConfiguration element.
func ErrorConfiguration(n xmlnode.Node) (*model.ErrorConfiguration, error) {
	s := fieldset.New(n)
	return finish(s, &model.ErrorConfiguration{
		KeyErrorLimit:             s.Long("KeyErrorLimit"),
		KeyErrorLogFile:           s.String("KeyErrorLogFile"),
		KeyErrorAction:            s.String("KeyErrorAction"),
		KeyErrorLimitAction:       s.String("KeyErrorLimitAction"),
		KeyNotFound:               s.String("KeyNotFound"),
		KeyDuplicate:              s.String("KeyDuplicate"),
		NullKeyConvertedToUnknown: s.String("NullKeyConvertedToUnknown"),
		NullKeyNotAllowed:         s.String("NullKeyNotAllowed"),
		CalculationError:          s.String("CalculationError"),
	})
}

// ImpersonationInfo decodes an ImpersonationInfo element.
func ImpersonationInfo(n xmlnode.Node) (*model.ImpersonationInfo, error) {
	s := fieldset.New(n)
	return finish(s, &model.ImpersonationInfo{
		ImpersonationMode:         fieldset.Enum(s, "ImpersonationMode", model.ImpersonationModeValues...),
		Account:                   s.String("Account"),
		Password:                  s.String("Password"),
		ImpersonationInfoSecurity: s.String("ImpersonationInfoSecurity"),
	})
}

// ProactiveCaching decodes a ProactiveCaching element.
func (d *Decoder) ProactiveCaching(n xmlnode.Node) (*model.ProactiveCaching, error) {
	s := fieldset.New(n)
	return finish(s, &model.ProactiveCaching{
		OnlineMode:              s.String("OnlineMode"),
		AggregationStorage:      s.String("AggregationStorage"),
		Source:                  fieldset.One(s, "Source", d.proactiveCachingBinding),
		SilenceInterval:         s.Duration("SilenceInterval"),
		Latency:                 s.Duration("Latency"),
		SilenceOverrideInterval: s.Duration("SilenceOverrideInterval"),
		ForceRebuildInterval:    s.Duration("ForceRebuildInterval"),
		Enabled:                 s.Bool("Enabled"),
	})
}

// StorageMode decodes a StorageMode element and its valuens attribute.
func StorageMode(n xmlnode.Node) (*model.StorageMode, error) {
	raw := n.Text()
	v, err := lexical.Enum(&raw, model.StorageModeValues...)
	if err != nil {
		return nil, err
	}
	out := &model.StorageMode{Value: *v}
	if ns, ok := n.Attr("valuens"); ok {
		out.ValueNS = &ns
	}
	return out, nil
}

func int32Text(n xmlnode.Node) (int32, error) {
	raw := n.Text()
	v, err := lexical.Int(&raw)
	if err != nil {
		return 0, err
	}
	return *v, nil
}

func text(n xmlnode.Node) (string, error) {
	return n.Text(), nil
}
