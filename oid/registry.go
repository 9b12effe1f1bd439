package oid

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed names.yaml
var defaultNames []byte

// Registry maps object identifiers to human readable names.
// A Registry is not safe for concurrent mutation.
type Registry struct {
	names map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	if err := r.LoadYAML(bytes.NewReader(defaultNames)); err != nil {
		panic(err)
	}
	return r
})

// Default returns a registry holding the built-in names. Every call returns
// an independent copy that may be extended with Add or LoadYAML.
func Default() *Registry {
	return defaultRegistry().Clone()
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{names: maps.Clone(r.names)}
}

// Add names o, replacing any previous name.
func (r *Registry) Add(o OID, name string) {
	r.names[o.String()] = name
}

// Lookup returns the name registered for o.
func (r *Registry) Lookup(o OID) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.names[o.String()]
	return name, ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.names) }

type namesFile struct {
	Names []struct {
		OID  string `yaml:"oid"`
		Name string `yaml:"name"`
	} `yaml:"names"`
}

// LoadYAML adds the names listed in a YAML document of the form
//
//	names:
//	  - oid: 1.2.840.113549.1.7.2
//	    name: signedData
//
// Unknown fields are rejected. Entries already present are overwritten.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var f namesFile
	d := yaml.NewDecoder(rd)
	d.KnownFields(true)
	if err := d.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode oid names: %w", err)
	}
	for i, n := range f.Names {
		o, err := Parse(n.OID)
		if err != nil {
			return fmt.Errorf("oid names entry %d (%q): %w", i, n.OID, err)
		}
		if n.Name == "" {
			return fmt.Errorf("oid names entry %d (%q): empty name", i, n.OID)
		}
		r.Add(o, n.Name)
	}
	return nil
}
