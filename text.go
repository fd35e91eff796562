package xmlbind

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/dmahoney/xmlbind/binderr"
	"github.com/dmahoney/xmlbind/xmltree"
)

// NewText returns a Descriptor for the enclosing element's inline text.
// Pass Required to reject elements whose text is absent or empty.
func NewText(mods ...Descriptor) Descriptor {
	return &textDescriptor{required: isRequired(mods)}
}

type textDescriptor struct {
	required bool
}

func (d *textDescriptor) locate(parent *xmlquery.Node) handle {
	return handle{text: xmltree.Text(parent)}
}

func (d *textDescriptor) validate(h handle) (bool, error) {
	if h.text == "" {
		if d.required {
			return false, errors.WithStack(binderr.MissingText())
		}
		return false, nil
	}
	return true, nil
}

func (d *textDescriptor) parse(rec *Record, h handle) error {
	rec.Text = h.text
	return nil
}

func (d *textDescriptor) serialize(parent *xmlquery.Node, rec *Record) error {
	// Text is written unconditionally: a record that never had its
	// text populated serializes it as empty rather than omitting it.
	xmltree.SetText(parent, rec.Text)
	return nil
}
