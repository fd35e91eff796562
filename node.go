package xmlbind

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/dmahoney/xmlbind/binderr"
	"github.com/dmahoney/xmlbind/xmltree"
)

// Node describes one element: its name, whether it is required, and an
// ordered collection of child descriptors fixed at construction.
type Node struct {
	name     string
	required bool
	children []Descriptor
}

// NewNode returns a Node descriptor for the named element. children may
// mix attribute, text and list descriptors with the Required marker;
// their order is the traversal order.
func NewNode(name string, children ...Descriptor) *Node {
	return &Node{name: name, required: isRequired(children), children: children}
}

// Name returns the element name the descriptor was declared with.
func (n *Node) Name() string { return n.name }

func (n *Node) locate(parent *xmlquery.Node) handle {
	return handle{node: xmltree.Child(parent, n.name)}
}

func (n *Node) validate(h handle) (bool, error) {
	if h.node == nil {
		if n.required {
			return false, errors.WithStack(binderr.MissingNode(n.name))
		}
		return false, nil
	}
	// Lookup already filters by name, so only handles that arrive
	// without going through locate (the document element, or a node
	// rebuilt from a record during serialization) can mismatch here.
	if h.node.Data != n.name {
		return false, errors.WithStack(binderr.NameMismatch(n.name, h.node.Data))
	}
	return true, nil
}

func (n *Node) parse(rec *Record, h handle) error {
	rec.Name = n.name
	return parseChildren(rec, h.node, n.children)
}

func (n *Node) serialize(parent *xmlquery.Node, rec *Record) error {
	node := xmltree.AppendChild(parent, rec.Name)
	if err := serializeChildren(node, rec, n.children); err != nil {
		return err
	}
	// structural self-check of the freshly built element
	_, err := n.validate(handle{node: node})
	return err
}

// parseChildren runs each child descriptor's locate/validate/parse
// sequence against node, in declared order. Validation failures abort;
// absent optional targets are skipped.
func parseChildren(rec *Record, node *xmlquery.Node, children []Descriptor) error {
	for _, d := range children {
		h := d.locate(node)
		ok, err := d.validate(h)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := d.parse(rec, h); err != nil {
			return err
		}
	}
	return nil
}

func serializeChildren(node *xmlquery.Node, rec *Record, children []Descriptor) error {
	for _, d := range children {
		if err := d.serialize(node, rec); err != nil {
			return err
		}
	}
	return nil
}
