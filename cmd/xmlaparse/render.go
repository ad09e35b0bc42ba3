package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var supportedFormats = []string{formatJSON, formatYAML}

// document is the rendered form of one decoded request.
type document struct {
	File       string           `json:"file" yaml:"file"`
	Kind       string           `json:"kind" yaml:"kind"`
	Command    model.Command    `json:"command" yaml:"command"`
	Properties []model.Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func newDocument(path string, exec model.Execute) document {
	return document{
		File:       path,
		Kind:       exec.Command.CommandKind(),
		Command:    exec.Command,
		Properties: exec.Properties,
	}
}

type renderer interface {
	render(doc document) error
	close() error
}

func newRenderer(format string, w io.Writer) (renderer, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return jsonRenderer{enc: enc}, nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return yamlRenderer{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q, want one of %v", format, supportedFormats)
	}
}

type jsonRenderer struct {
	enc *json.Encoder
}

func (r jsonRenderer) render(doc document) error {
	return r.enc.Encode(doc)
}

func (jsonRenderer) close() error {
	return nil
}

// yamlRenderer writes one YAML document per request into a single stream.
type yamlRenderer struct {
	enc *yaml.Encoder
}

func (r yamlRenderer) render(doc document) error {
	return r.enc.Encode(doc)
}

func (r yamlRenderer) close() error {
	return r.enc.Close()
}
