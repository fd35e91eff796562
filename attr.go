package xmlbind

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/dmahoney/xmlbind/binderr"
	"github.com/dmahoney/xmlbind/xmltree"
)

// NewAttr returns a Descriptor for the named attribute of the enclosing
// element. Pass Required to make the attribute mandatory.
func NewAttr(name string, mods ...Descriptor) Descriptor {
	return &attrDescriptor{name: name, required: isRequired(mods)}
}

type attrDescriptor struct {
	name     string
	required bool
}

func (d *attrDescriptor) locate(parent *xmlquery.Node) handle {
	return handle{attr: xmltree.Attribute(parent, d.name)}
}

func (d *attrDescriptor) validate(h handle) (bool, error) {
	if h.attr == nil {
		if d.required {
			return false, errors.WithStack(binderr.MissingAttribute(d.name))
		}
		return false, nil
	}
	return true, nil
}

func (d *attrDescriptor) parse(rec *Record, h handle) error {
	rec.setAttr(d.name, h.attr.Value)
	return nil
}

func (d *attrDescriptor) serialize(parent *xmlquery.Node, rec *Record) error {
	// absent optional attributes are omitted, not written empty
	if v, ok := rec.Attr(d.name); ok {
		xmltree.AppendAttribute(parent, d.name, v)
	}
	return nil
}
