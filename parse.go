package xmltree

import (
	"bytes"

	xmlerrors "github.com/jharte/xmltree/errors"
	"github.com/jharte/xmltree/internal/entity"
	"github.com/jharte/xmltree/internal/scan"
)

var declAttrs = [3]string{"version", "encoding", "standalone"}

func parse(data []byte, opts parseOptions) (*Document, error) {
	bounds := scan.Boundaries(data)
	bounds = scan.RemoveGaps(data, bounds)
	bounds, err := scan.CollapseComments(data, bounds)
	if err != nil {
		return nil, xmlerrors.New(xmlerrors.ErrMalformed, "unterminated comment")
	}

	// Comments before the declaration or root must not be mistaken for
	// either, so drop them here.
	for len(bounds) >= 2 && scan.Classify(data, bounds[0], bounds[1]) == scan.KindComment {
		bounds = bounds[1:]
	}
	if len(bounds) < 2 || data[bounds[0]] != '<' {
		return nil, xmlerrors.New(xmlerrors.ErrMalformed, "malformed beginning")
	}

	doc := &Document{}
	if bytes.HasPrefix(data[bounds[0]:bounds[1]], []byte("<?")) {
		decl := scan.Attributes(data, bounds[0], bounds[1])
		fields := [3]*string{&doc.version, &doc.encoding, &doc.standalone}
		for _, attr := range decl {
			for i, key := range declAttrs {
				if attr.Key == key {
					*fields[i] = attr.Value
				}
			}
		}
		bounds = bounds[1:]

		for len(bounds) >= 2 && scan.Classify(data, bounds[0], bounds[1]) == scan.KindComment {
			bounds = bounds[1:]
		}
	}

	root, err := buildTree(data, bounds, opts.resolveEntities)
	if err != nil {
		return nil, err
	}
	doc.root = root
	return doc, nil
}

// buildTree constructs the element tree from the filtered boundary
// sequence with an explicit stack of open nodes. The declaration token must
// already be removed. Tokens after the root element closes are ignored.
func buildTree(data []byte, bounds []int, resolveEntities bool) (*node, error) {
	if len(bounds) < 2 {
		return nil, xmlerrors.New(xmlerrors.ErrMalformed, "no root element")
	}

	kind := scan.Classify(data, bounds[0], bounds[1])
	if kind == scan.KindError {
		return nil, xmlerrors.New(xmlerrors.ErrMalformed, "tag is not closed")
	}
	if kind&scan.KindOpen == 0 {
		return nil, xmlerrors.New(xmlerrors.ErrMalformed, "document must begin with an opening tag")
	}

	root := newElementNode(data, bounds[0], bounds[1])
	stack := []*node{root}
	if kind&scan.KindClose != 0 {
		stack = stack[:0]
	}

	for i := 1; i+1 < len(bounds) && len(stack) > 0; i++ {
		lo, hi := bounds[i], bounds[i+1]

		switch kind := scan.Classify(data, lo, hi); {
		case kind == scan.KindError:
			return nil, xmlerrors.New(xmlerrors.ErrMalformed, "tag is not closed")
		case kind == scan.KindComment:
			// already collapsed to a single token by the filter
		case kind == scan.KindContent:
			top := stack[len(stack)-1]
			top.content += string(data[lo:hi])
			if resolveEntities {
				top.content = entity.Substitute(top.content)
			}
		default:
			if kind&scan.KindOpen != 0 {
				child := newElementNode(data, lo, hi)
				top := stack[len(stack)-1]
				top.children = append(top.children, child)
				stack = append(stack, child)
			}
			if kind&scan.KindClose != 0 {
				// no name matching against the opening tag
				stack = stack[:len(stack)-1]
			}
		}
	}
	return root, nil
}

func newElementNode(data []byte, lo, hi int) *node {
	n := &node{name: scan.Name(data, lo, hi)}
	for _, attr := range scan.Attributes(data, lo, hi) {
		n.setAttr(attr.Key, attr.Value) // duplicate keys: last wins
	}
	return n
}
