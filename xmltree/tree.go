package xmltree

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/dmahoney/xmlbind/binderr"
)

// Document is an in-memory XML document, either parsed from text or
// built up for printing.
type Document struct {
	root *xmlquery.Node
}

// Load parses text into a Document, returning a malformed-input error
// if the text is not well-formed XML.
func Load(text string) (*Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.WithStack(binderr.MalformedInput(binderr.WithCause(err)))
	}
	return &Document{root: root}, nil
}

// New returns a fresh, empty Document for output construction.
func New() *Document {
	return &Document{root: &xmlquery.Node{Type: xmlquery.DocumentNode}}
}

// Element returns the document element, or nil if the document has none.
func (d *Document) Element() *xmlquery.Node {
	for n := d.root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

// AppendRoot appends and returns a new document element with the given name.
func (d *Document) AppendRoot(name string) *xmlquery.Node {
	return AppendChild(d.root, name)
}

// Print returns the document as compact XML text, without indentation
// or a declaration.
func (d *Document) Print() string {
	return d.root.OutputXML(false)
}

// Attr is an attribute handle: a name/value pair found on an element.
// A nil *Attr means the attribute was absent.
type Attr struct {
	Name  string
	Value string
}

// Attribute finds the named attribute on n, returning nil if absent.
func Attribute(n *xmlquery.Node, name string) *Attr {
	if n == nil {
		return nil
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return &Attr{Name: name, Value: a.Value}
		}
	}
	return nil
}

// Text returns n's inline text: the first text or CDATA child that is
// not whitespace-only. Absent text reads as the empty string.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.TextNode && c.Type != xmlquery.CharDataNode {
			continue
		}
		if strings.TrimSpace(c.Data) == "" {
			continue
		}
		return c.Data
	}
	return ""
}

// Child finds the first child element of n with the given name,
// returning nil if absent.
func Child(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := first(n); c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// Children returns all child elements of n with the given name, in
// document order.
func Children(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := first(n); c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// SelectAll evaluates a compiled XPath expression against n, returning
// matching nodes in document order.
func SelectAll(n *xmlquery.Node, expr *xpath.Expr) []*xmlquery.Node {
	if n == nil {
		return nil
	}
	return xmlquery.QuerySelectorAll(n, expr)
}

// AppendChild appends and returns a new child element named name.
func AppendChild(parent *xmlquery.Node, name string) *xmlquery.Node {
	child := &xmlquery.Node{Type: xmlquery.ElementNode, Data: name}
	xmlquery.AddChild(parent, child)
	return child
}

// AppendAttribute appends an attribute to n.
func AppendAttribute(n *xmlquery.Node, name, value string) {
	xmlquery.AddAttr(n, name, value)
}

// SetText replaces n's inline text with value. Any existing text or
// CDATA children are removed first; an empty value leaves none behind.
func SetText(n *xmlquery.Node, value string) {
	var old []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			old = append(old, c)
		}
	}
	for _, c := range old {
		xmlquery.RemoveFromTree(c)
	}
	if value == "" {
		return
	}
	xmlquery.AddChild(n, &xmlquery.Node{Type: xmlquery.TextNode, Data: value})
}

func first(n *xmlquery.Node) *xmlquery.Node {
	if n == nil {
		return nil
	}
	return n.FirstChild
}
