package xmltree

// Document owns one element tree plus the optional XML declaration fields.
// The declaration fields are populated only when the parsed text carried a
// declaration or the caller set them explicitly.
//
// A Document is not safe for concurrent mutation. Concurrent reads through
// Element views are safe while no mutation is in flight.
type Document struct {
	root       *node
	version    string
	encoding   string
	standalone string
}

// NewDocument builds a blank document with a root element of the given name
// and no declaration.
func NewDocument(root string) *Document {
	return &Document{root: &node{name: root}}
}

// NewDocumentDecl builds a blank document with a root element and the given
// declaration triple. Empty fields are omitted when serializing.
func NewDocumentDecl(root, version, encoding, standalone string) *Document {
	return &Document{
		root:       &node{name: root},
		version:    version,
		encoding:   encoding,
		standalone: standalone,
	}
}

// Root returns an Element view over the root node. The view borrows from
// the Document and must not outlive it.
func (d *Document) Root() Element {
	return Element{n: d.root}
}

// Version returns the declaration version, or "" if absent.
func (d *Document) Version() string { return d.version }

// Encoding returns the declaration encoding, or "" if absent.
func (d *Document) Encoding() string { return d.encoding }

// Standalone returns the declaration standalone value, or "" if absent.
func (d *Document) Standalone() string { return d.standalone }

// SetVersion sets the declaration version.
func (d *Document) SetVersion(v string) { d.version = v }

// SetEncoding sets the declaration encoding.
func (d *Document) SetEncoding(e string) { d.encoding = e }

// SetStandalone sets the declaration standalone value.
func (d *Document) SetStandalone(s string) { d.standalone = s }

// Copy returns a deep copy of the document. The copy shares no nodes with
// the original.
func (d *Document) Copy() *Document {
	return &Document{
		root:       d.root.copyTree(),
		version:    d.version,
		encoding:   d.encoding,
		standalone: d.standalone,
	}
}
