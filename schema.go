package cliargs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Schema is a list of fields as read from a YAML or TOML document:
//
//	fields:
//	  - name: verbose
//	    kind: bool
//	    meta: verbose,v
//	    desc: print more
//	  - name: include
//	    kind: string
//	    seq: true
//	    meta: include,I=[.]
//	    arg: <dir>
//
// or in TOML:
//
//	[[fields]]
//	name = "verbose"
//	kind = "bool"
//	meta = "verbose,v"
type Schema struct {
	Fields []SchemaField `yaml:"fields" toml:"fields"`
}

// SchemaField is a Field as written in a schema document. Kind is one of the
// names returned by Kind.String.
type SchemaField struct {
	Name string `yaml:"name" toml:"name"`
	Kind string `yaml:"kind" toml:"kind"`
	Seq  bool   `yaml:"seq,omitempty" toml:"seq,omitempty"`
	Meta string `yaml:"meta,omitempty" toml:"meta,omitempty"`
	Desc string `yaml:"desc,omitempty" toml:"desc,omitempty"`
	Arg  string `yaml:"arg,omitempty" toml:"arg,omitempty"`
}

// Format of a schema document.
type Format uint8

// Schema formats.
const (
	YAML Format = iota
	TOML
)

// LoadSchema reads the schema in file path. The format is TOML if the file
// name ends with .toml, else YAML.
func LoadSchema(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := YAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = TOML
	}
	s, err := ReadSchema(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ReadSchema reads a schema document in the given format.
func ReadSchema(r io.Reader, format Format) (*Schema, error) {
	var s Schema
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, err
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("unknown schema format %d", format)
	}
	return &s, nil
}

// ToFields converts the schema to fields. Fields have no target.
func (s *Schema) ToFields() ([]Field, error) {
	fields := make([]Field, 0, len(s.Fields))
	for _, sf := range s.Fields {
		kind, err := ParseKind(sf.Kind)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, sf.Name, err)
		}
		fields = append(fields, Field{
			Name:      sf.Name,
			Kind:      kind,
			Seq:       sf.Seq,
			Meta:      sf.Meta,
			Desc:      sf.Desc,
			ArgInHelp: sf.Arg,
		})
	}
	return fields, nil
}
