package xmltree

// node is the owned tree unit: a name, attributes, text content, and child
// nodes. A node is reachable only through its Document or an Element view;
// Copy is the only way to obtain a tree that does not alias it.
//
// Attribute keys are unique. attrKeys preserves first-insertion order so
// that index enumeration and serialization are stable; on duplicate keys
// the last value wins.
type node struct {
	name     string
	attrs    map[string]string
	attrKeys []string
	content  string
	children []*node
}

func (n *node) setAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if _, ok := n.attrs[key]; !ok {
		n.attrKeys = append(n.attrKeys, key)
	}
	n.attrs[key] = value
}

func (n *node) copyTree() *node {
	clone := &node{
		name:    n.name,
		content: n.content,
	}
	if len(n.attrs) > 0 {
		clone.attrs = make(map[string]string, len(n.attrs))
		clone.attrKeys = make([]string, len(n.attrKeys))
		copy(clone.attrKeys, n.attrKeys)
		for k, v := range n.attrs {
			clone.attrs[k] = v
		}
	}
	if len(n.children) > 0 {
		clone.children = make([]*node, len(n.children))
		for i, child := range n.children {
			clone.children[i] = child.copyTree()
		}
	}
	return clone
}
