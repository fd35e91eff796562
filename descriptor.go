package xmlbind

import (
	"github.com/antchfx/xmlquery"

	"github.com/dmahoney/xmlbind/xmltree"
)

// Descriptor is one unit of document schema. It knows how to locate its
// target under a parent element, validate the target's presence, parse
// it into a Record, and serialize it back out of one. The variant set
// is closed: descriptors are built with NewNode, NewAttr, NewText and
// NewList, plus the Required marker.
type Descriptor interface {
	// locate finds the descriptor's target under the parent element.
	locate(parent *xmlquery.Node) handle
	// validate reports whether the located target should be parsed.
	// An absent optional target reports false without error.
	validate(h handle) (bool, error)
	// parse stores the located target's value into rec.
	parse(rec *Record, h handle) error
	// serialize writes this descriptor's portion of rec under parent.
	serialize(parent *xmlquery.Node, rec *Record) error
}

// handle is a located document fragment. At most one field is set,
// matching the descriptor kind that produced it.
type handle struct {
	node *xmlquery.Node   // element; nil when absent
	attr *xmltree.Attr    // attribute; nil when absent
	text string           // inline text; empty when absent
	seq  []*xmlquery.Node // repeated same-named elements
}

// Required marks the descriptor it accompanies as mandatory. It may
// appear anywhere in a constructor's argument list; it takes no part in
// traversal itself.
var Required Descriptor = requiredMarker{}

type requiredMarker struct{}

func (requiredMarker) locate(parent *xmlquery.Node) handle     { return handle{node: parent} }
func (requiredMarker) validate(handle) (bool, error)           { return true, nil }
func (requiredMarker) parse(*Record, handle) error             { return nil }
func (requiredMarker) serialize(*xmlquery.Node, *Record) error { return nil }

// isRequired reports whether the Required marker appears among a
// constructor's arguments.
func isRequired(mods []Descriptor) bool {
	for _, m := range mods {
		if _, ok := m.(requiredMarker); ok {
			return true
		}
	}
	return false
}
