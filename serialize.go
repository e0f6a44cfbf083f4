package xmltree

import (
	"bytes"
	"io"

	"github.com/jharte/xmltree/internal/entity"
)

// String renders the document as XML text. Reserved characters in content
// and attribute values are escaped with named entity references; the
// declaration line is emitted only when at least one declaration field is
// set. Serialization is a pure function of tree state: rendering twice
// yields identical text.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Bytes renders the document as XML text.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.writeDeclaration(&buf)
	writeElement(&buf, d.root)
	return buf.Bytes()
}

// WriteTo renders the document into w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

func (d *Document) writeDeclaration(buf *bytes.Buffer) {
	if d.version == "" && d.encoding == "" && d.standalone == "" {
		return
	}
	buf.WriteString("<?xml")
	for i, value := range [3]string{d.version, d.encoding, d.standalone} {
		if value == "" {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(declAttrs[i])
		buf.WriteString(`="`)
		buf.WriteString(value)
		buf.WriteByte('"')
	}
	buf.WriteString("?>")
}

func writeElement(buf *bytes.Buffer, n *node) {
	buf.WriteByte('<')
	buf.WriteString(n.name)
	for _, key := range n.attrKeys {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteString(`="`)
		buf.WriteString(entity.Escape(n.attrs[key]))
		buf.WriteByte('"')
	}

	if n.content == "" && len(n.children) == 0 {
		buf.WriteString(" />")
		return
	}

	buf.WriteByte('>')
	buf.WriteString(entity.Escape(n.content))
	for _, child := range n.children {
		writeElement(buf, child)
	}
	buf.WriteString("</")
	buf.WriteString(n.name)
	buf.WriteByte('>')
}
