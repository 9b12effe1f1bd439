// Package dump renders the element tree of a BER/DER document for humans and
// for other tools.
//
// Build walks a document with the ber runtime and returns one Node per
// element. The tree can then be written as indented text, JSON, YAML, CBOR or
// MessagePack.
package dump

import (
	"encoding/hex"

	"github.com/synadia-labs/ber.go/oid"
	ber "github.com/synadia-labs/ber.go/runtime"
)

// Node is one element of a decoded document.
type Node struct {
	Kind   string `json:"kind" yaml:"kind" cbor:"kind"`
	Tag    byte   `json:"tag" yaml:"tag" cbor:"tag"`
	Number *int   `json:"number,omitempty" yaml:"number,omitempty" cbor:"number,omitempty"` // application tag number
	Offset int    `json:"offset" yaml:"offset" cbor:"offset"`                                // of the tag octet
	Header int    `json:"header" yaml:"header" cbor:"header"`
	Length int    `json:"length" yaml:"length" cbor:"length"` // of the contents
	OID    string `json:"oid,omitempty" yaml:"oid,omitempty" cbor:"oid,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	// Hex holds the contents of primitive elements.
	Hex      string  `json:"hex,omitempty" yaml:"hex,omitempty" cbor:"hex,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// Options configures Build.
type Options struct {
	// Names resolves OIDs to names. Nil disables name resolution.
	Names *oid.Registry
	// MaxDepth bounds the nesting depth. Zero means ber.DefaultMaxDepth.
	MaxDepth int
}

// Build decodes every top-level element in b.
func Build(b []byte, opts Options) ([]*Node, error) {
	var roots []*Node
	// stack[d] is the most recent node seen at depth d
	var stack []*Node
	w := ber.Walker{MaxDepth: opts.MaxDepth}
	err := w.Walk(ber.NewCursor(b), func(v ber.Visit) error {
		n := newNode(v, opts.Names)
		stack = stack[:v.Depth]
		if v.Depth == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[v.Depth-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roots, nil
}

func newNode(v ber.Visit, names *oid.Registry) *Node {
	el := v.Element
	n := &Node{
		Kind:   v.Kind.String(),
		Tag:    el.Tag,
		Offset: el.Offset,
		Header: el.Header,
		Length: el.Content.Len(),
	}
	switch v.Kind {
	case ber.KindApplication:
		num := v.Contents.Tag()
		n.Number = &num
	case ber.KindSequence, ber.KindSet:
	case ber.KindOID:
		n.Hex = hex.EncodeToString(el.Content.Data)
		if id, err := oid.Decode(el.Content.Data); err == nil {
			n.OID = id.String()
			n.Name, _ = names.Lookup(id)
		}
	default:
		n.Hex = hex.EncodeToString(el.Content.Data)
	}
	return n
}
