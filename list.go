package xmlbind

import (
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/dmahoney/xmlbind/xmltree"
)

// NewList returns a Descriptor matching zero or more child elements
// described by inner, preserving document order. The child selector is
// compiled once here and reused for every document.
func NewList(inner *Node) Descriptor {
	return &listDescriptor{
		inner: inner,
		query: xpath.MustCompile("child::" + inner.Name()),
	}
}

type listDescriptor struct {
	inner *Node
	query *xpath.Expr
}

func (d *listDescriptor) locate(parent *xmlquery.Node) handle {
	return handle{seq: xmltree.SelectAll(parent, d.query)}
}

func (d *listDescriptor) validate(h handle) (bool, error) {
	for _, child := range h.seq {
		ok, err := d.inner.validate(handle{node: child})
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (d *listDescriptor) parse(rec *Record, h handle) error {
	for _, child := range h.seq {
		sub := &Record{}
		if err := d.inner.parse(sub, handle{node: child}); err != nil {
			return err
		}
		rec.appendNode(d.inner.Name(), sub)
	}
	return nil
}

func (d *listDescriptor) serialize(parent *xmlquery.Node, rec *Record) error {
	subs, ok := rec.Subnodes[d.inner.Name()]
	if !ok {
		return nil
	}
	for _, sub := range subs {
		if err := d.inner.serialize(parent, sub); err != nil {
			return err
		}
	}
	return nil
}
