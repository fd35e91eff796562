package xmlbind_test

import (
	"fmt"

	"github.com/dmahoney/xmlbind"
)

func demoSchema() *xmlbind.Node {
	return xmlbind.NewNode("root",
		xmlbind.Required,
		xmlbind.NewAttr("key", xmlbind.Required),
		xmlbind.NewAttr("client_id"),
		xmlbind.NewList(xmlbind.NewNode("data",
			xmlbind.NewAttr("id", xmlbind.Required),
			xmlbind.NewText(xmlbind.Required))))
}

func ExampleParse() {
	schema := demoSchema()
	for _, doc := range []string{
		`<wrong />`,
		`<root />`,
		`<root key="mykey" />`,
		`<root key="mykey"><data id="1" /></root>`,
		`<root key="mykey"><data id="1">D1</data><data id="2">D2</data></root>`,
	} {
		rec, err := xmlbind.Parse(doc, schema)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		key, _ := rec.Attr("key")
		fmt.Printf("key=%s data=%d", key, len(rec.Nodes("data")))
		for _, d := range rec.Nodes("data") {
			fmt.Printf(" %s", d.Text)
		}
		fmt.Println()
	}
	// Output:
	// error: name-mismatch expected:root actual:wrong
	// error: missing-attribute name:key
	// key=mykey data=0
	// error: missing-text
	// key=mykey data=2 D1 D2
}

func ExampleSerialize() {
	schema := demoSchema()
	rec, err := xmlbind.Parse(
		`<root key="mykey"><data id="1">D1</data><data id="2">D2</data></root>`, schema)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, err := xmlbind.Serialize(rec, schema)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// <root key="mykey"><data id="1">D1</data><data id="2">D2</data></root>
}
