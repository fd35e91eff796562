package xmlbind

// Record is the dynamically shaped value produced by Parse and consumed
// by Serialize. A Record exclusively owns its attributes, text and
// nested records; Parse populates it in one pass and the core never
// mutates it afterwards.
type Record struct {
	// Name is the element's tag name.
	Name string
	// Text is the element's inline text, populated only when the
	// schema declares a text field.
	Text string
	// Attributes maps declared attribute names to their values.
	// Absent optional attributes have no key.
	Attributes map[string]string
	// Subnodes maps declared repeated-child names to the child
	// records, in document order.
	Subnodes map[string][]*Record
}

// Attr returns the named attribute's value and whether it was present.
func (r *Record) Attr(name string) (string, bool) {
	v, ok := r.Attributes[name]
	return v, ok
}

// Nodes returns the repeated children stored under name, in document
// order. Absent names return a nil slice.
func (r *Record) Nodes(name string) []*Record {
	return r.Subnodes[name]
}

func (r *Record) setAttr(name, value string) {
	if r.Attributes == nil {
		r.Attributes = map[string]string{}
	}
	r.Attributes[name] = value
}

func (r *Record) appendNode(name string, sub *Record) {
	if r.Subnodes == nil {
		r.Subnodes = map[string][]*Record{}
	}
	r.Subnodes[name] = append(r.Subnodes[name], sub)
}
