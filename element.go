package xmltree

import (
	"strings"

	xmlerrors "github.com/jharte/xmltree/errors"
)

// Element is a borrowing view over a node in the tree. It grants read and
// mutate access but has no lifetime of its own: it must not be retained
// past the Document that owns the node. Multiple views over the same node
// are fine for reads; mutation is not synchronized.
type Element struct {
	n *node
}

// Attr is one attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Name returns the full element name, including any namespace prefix.
func (e Element) Name() string {
	return e.n.name
}

// SetName sets the full element name.
func (e Element) SetName(name string) {
	e.n.name = name
}

// SetNameNS sets the element name from a namespace prefix and a local name.
// An empty prefix sets the local name alone.
func (e Element) SetNameNS(prefix, local string) {
	if prefix == "" {
		e.n.name = local
		return
	}
	e.n.name = prefix + ":" + local
}

// Prefix returns the namespace prefix, the part before the first ':'.
// It returns "" if the name has no prefix.
func (e Element) Prefix() string {
	if i := strings.IndexByte(e.n.name, ':'); i >= 0 {
		return e.n.name[:i]
	}
	return ""
}

// Local returns the local name, the part after the first ':'. It returns
// the full name if there is no prefix.
func (e Element) Local() string {
	if i := strings.IndexByte(e.n.name, ':'); i >= 0 {
		return e.n.name[i+1:]
	}
	return e.n.name
}

// Content returns the text content.
func (e Element) Content() string {
	return e.n.content
}

// SetContent sets the text content. It fails if the element has children:
// an element holds either content or children, never both.
func (e Element) SetContent(content string) error {
	if len(e.n.children) > 0 {
		return xmlerrors.Newf(xmlerrors.ErrContentConflict,
			"cannot set content on element %q with %d children", e.n.name, len(e.n.children))
	}
	e.n.content = content
	return nil
}

// SetAttribute adds or overwrites an attribute. It always succeeds.
func (e Element) SetAttribute(name, value string) {
	e.n.setAttr(name, value)
}

// Attribute returns the value of the named attribute.
func (e Element) Attribute(name string) (string, error) {
	if v, ok := e.n.attrs[name]; ok {
		return v, nil
	}
	return "", xmlerrors.Newf(xmlerrors.ErrAttributeNotFound, "attribute %q not found", name)
}

// AttributeAt returns the attribute at the given index, in insertion order.
func (e Element) AttributeAt(index int) (Attr, error) {
	if index < 0 || index >= len(e.n.attrKeys) {
		return Attr{}, xmlerrors.Newf(xmlerrors.ErrIndexOutOfRange,
			"attribute %d not found, attribute count = %d", index, len(e.n.attrKeys))
	}
	key := e.n.attrKeys[index]
	return Attr{Name: key, Value: e.n.attrs[key]}, nil
}

// AttributeCount returns the number of attributes.
func (e Element) AttributeCount() int {
	return len(e.n.attrKeys)
}

// ChildCount returns the number of child elements.
func (e Element) ChildCount() int {
	return len(e.n.children)
}

// Child returns a view over the child at the given index.
func (e Element) Child(index int) (Element, error) {
	if index < 0 || index >= len(e.n.children) {
		return Element{}, xmlerrors.Newf(xmlerrors.ErrIndexOutOfRange,
			"child %d not found, child count = %d", index, len(e.n.children))
	}
	return Element{n: e.n.children[index]}, nil
}

// ChildByName returns a view over the first child with the exact name.
func (e Element) ChildByName(name string) (Element, error) {
	for _, child := range e.n.children {
		if child.name == name {
			return Element{n: child}, nil
		}
	}
	return Element{}, xmlerrors.Newf(xmlerrors.ErrChildNotFound, "child %q not found", name)
}

// AddChild appends a new child element with the given name and returns a
// view over it. It fails if the element has non-empty content.
func (e Element) AddChild(name string) (Element, error) {
	return e.InsertChild(len(e.n.children), name)
}

// InsertChild inserts a new child element at the given position and returns
// a view over it. The position must be within [0, ChildCount]. It fails if
// the element has non-empty content.
func (e Element) InsertChild(index int, name string) (Element, error) {
	if e.n.content != "" {
		return Element{}, xmlerrors.Newf(xmlerrors.ErrChildConflict,
			"cannot add child to element %q with non-empty content", e.n.name)
	}
	if index < 0 || index > len(e.n.children) {
		return Element{}, xmlerrors.Newf(xmlerrors.ErrIndexOutOfRange,
			"insert position %d out of range, child count = %d", index, len(e.n.children))
	}
	child := &node{name: name}
	e.n.children = append(e.n.children, nil)
	copy(e.n.children[index+1:], e.n.children[index:])
	e.n.children[index] = child
	return Element{n: child}, nil
}

// Copy returns a view over a deep copy of this element's subtree. The copy
// shares no memory with the original tree and is not attached to any
// document.
func (e Element) Copy() Element {
	return Element{n: e.n.copyTree()}
}
