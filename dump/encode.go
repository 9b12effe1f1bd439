package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	ber "github.com/synadia-labs/ber.go/runtime"
)

// Format selects an output encoding.
type Format int

const (
	FormatText Format = iota
	FormatDiag
	FormatJSON
	FormatYAML
	FormatCBOR
	FormatMsgpack
)

var formatNames = [...]string{
	FormatText:    "text",
	FormatDiag:    "diag",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
	FormatCBOR:    "cbor",
	FormatMsgpack: "msgpack",
}

// FormatNames lists the accepted format names in declaration order.
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat maps a format name to its Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(formatNames[:], ", "))
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool {
	return f == FormatCBOR || f == FormatMsgpack
}

// Render decodes b and writes it to w in format f.
func Render(w io.Writer, f Format, b []byte, opts Options) error {
	if f == FormatDiag {
		s, err := ber.Walker{MaxDepth: opts.MaxDepth}.DiagDocument(b)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	}
	nodes, err := Build(b, opts)
	if err != nil {
		return err
	}
	switch f {
	case FormatText:
		return WriteText(w, nodes)
	case FormatJSON:
		return EncodeJSON(w, nodes)
	case FormatYAML:
		return EncodeYAML(w, nodes)
	case FormatCBOR:
		return EncodeCBOR(w, nodes)
	case FormatMsgpack:
		_, err := w.Write(AppendMsgpack(nil, nodes))
		return err
	}
	return fmt.Errorf("unsupported format %v", f)
}

// WriteText writes nodes as an indented outline, one element per line.
func WriteText(w io.Writer, nodes []*Node) error {
	var sb strings.Builder
	for _, n := range nodes {
		writeTextNode(&sb, n, 0)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTextNode(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Label())
	fmt.Fprintf(sb, "  @%d+%d len=%d\n", n.Offset, n.Header, n.Length)
	for _, c := range n.Children {
		writeTextNode(sb, c, depth+1)
	}
}

// Label is the one-line description used by WriteText.
func (n *Node) Label() string {
	switch n.Kind {
	case ber.KindApplication.String():
		if n.Number != nil {
			return "[" + strconv.Itoa(*n.Number) + "]"
		}
		return "[?]"
	case ber.KindSequence.String():
		return "SEQUENCE"
	case ber.KindSet.String():
		return "SET"
	case ber.KindOID.String():
		switch {
		case n.OID == "":
			return "OID h'" + n.Hex + "'"
		case n.Name != "":
			return "OID " + n.OID + " (" + n.Name + ")"
		}
		return "OID " + n.OID
	case ber.KindOctetString.String():
		return "OCTET STRING h'" + n.Hex + "'"
	}
	return fmt.Sprintf("tag(0x%02x) h'%s'", n.Tag, n.Hex)
}

// EncodeJSON writes nodes as an indented JSON array.
func EncodeJSON(w io.Writer, nodes []*Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nonNil(nodes))
}

// EncodeYAML writes nodes as a YAML sequence.
func EncodeYAML(w io.Writer, nodes []*Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(nodes)); err != nil {
		return err
	}
	return enc.Close()
}

var cborEncMode = func() fxcbor.EncMode {
	em, err := fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// EncodeCBOR writes nodes as a CBOR array using core deterministic encoding.
func EncodeCBOR(w io.Writer, nodes []*Node) error {
	b, err := cborEncMode.Marshal(nonNil(nodes))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// AppendMsgpack appends nodes to b as a MessagePack array of maps. Map keys
// and omitted fields match the JSON encoding.
func AppendMsgpack(b []byte, nodes []*Node) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(nodes)))
	for _, n := range nodes {
		b = n.appendMsgpack(b)
	}
	return b
}

func (n *Node) appendMsgpack(b []byte) []byte {
	sz := uint32(5)
	if n.Number != nil {
		sz++
	}
	if n.OID != "" {
		sz++
	}
	if n.Name != "" {
		sz++
	}
	if n.Hex != "" {
		sz++
	}
	if len(n.Children) > 0 {
		sz++
	}
	b = msgp.AppendMapHeader(b, sz)
	b = msgp.AppendString(b, "kind")
	b = msgp.AppendString(b, n.Kind)
	b = msgp.AppendString(b, "tag")
	b = msgp.AppendUint8(b, n.Tag)
	if n.Number != nil {
		b = msgp.AppendString(b, "number")
		b = msgp.AppendInt(b, *n.Number)
	}
	b = msgp.AppendString(b, "offset")
	b = msgp.AppendInt(b, n.Offset)
	b = msgp.AppendString(b, "header")
	b = msgp.AppendInt(b, n.Header)
	b = msgp.AppendString(b, "length")
	b = msgp.AppendInt(b, n.Length)
	if n.OID != "" {
		b = msgp.AppendString(b, "oid")
		b = msgp.AppendString(b, n.OID)
	}
	if n.Name != "" {
		b = msgp.AppendString(b, "name")
		b = msgp.AppendString(b, n.Name)
	}
	if n.Hex != "" {
		b = msgp.AppendString(b, "hex")
		b = msgp.AppendString(b, n.Hex)
	}
	if len(n.Children) > 0 {
		b = msgp.AppendString(b, "children")
		b = AppendMsgpack(b, n.Children)
	}
	return b
}

// nonNil keeps empty documents encoding as an empty array rather than null.
func nonNil(nodes []*Node) []*Node {
	if nodes == nil {
		return []*Node{}
	}
	return nodes
}
