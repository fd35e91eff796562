package xmlbind

import (
	"github.com/dmahoney/xmlbind/xmltree"
)

// Parse converts document text into a Record according to schema.
//
// The document element is validated directly against the root
// descriptor, so an unrelated root element fails with a name-mismatch
// error. Any validation failure during the walk aborts immediately; no
// partial record is returned.
func Parse(text string, schema *Node) (*Record, error) {
	doc, err := xmltree.Load(text)
	if err != nil {
		return nil, err
	}
	root := doc.Element()
	if _, err := schema.validate(handle{node: root}); err != nil {
		return nil, err
	}
	rec := &Record{}
	if err := schema.parse(rec, handle{node: root}); err != nil {
		return nil, err
	}
	return rec, nil
}

// Serialize converts rec into compact document text according to
// schema. The root element takes its name from rec, not the schema;
// the built element is re-validated before printing, so a record whose
// name differs from the schema's declaration fails with a
// name-mismatch error.
func Serialize(rec *Record, schema *Node) (string, error) {
	doc := xmltree.New()
	root := doc.AppendRoot(rec.Name)
	if err := serializeChildren(root, rec, schema.children); err != nil {
		return "", err
	}
	if _, err := schema.validate(handle{node: root}); err != nil {
		return "", err
	}
	return doc.Print(), nil
}
