/*
Package xmlbind converts between XML document text and generic records,
driven by a declarative schema.

A schema is composed once from a small set of descriptors and reused for
every document processed:

	schema := xmlbind.NewNode("root",
		xmlbind.Required,
		xmlbind.NewAttr("key", xmlbind.Required),
		xmlbind.NewAttr("client_id"),
		xmlbind.NewList(xmlbind.NewNode("data",
			xmlbind.NewAttr("id", xmlbind.Required),
			xmlbind.NewText(xmlbind.Required))))

Parse validates document text against the schema and returns a Record
holding the declared attributes, text and repeated children; Serialize
prints a Record back to compact XML text. Only names the schema declares
are ever captured, required fields are enforced with typed errors from
the binderr package, and repeated children keep document order both ways.

A built schema holds no per-call state and is safe for concurrent use.
*/
package xmlbind
