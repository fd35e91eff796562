/*
Package xmltree binds the schema binding core to an in-memory XML tree.

It wraps the github.com/antchfx/xmlquery document model behind the small
handle-based surface the binding core needs: load a document from text,
find attributes and children by name, read and write inline text, append
nodes and attributes, and print a document back to compact text.

Node handles are *xmlquery.Node values. All lookup helpers tolerate a nil
node handle, reporting absence rather than panicking, so callers can probe
an absent subtree without special-casing it.
*/
package xmltree
