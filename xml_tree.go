package course2osm

import (
	"path/filepath"
	"sort"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// loadXML reads whole file and returns its root element
func loadXML(fileName string) (*etree.Element, error) {
	doc := etree.NewDocument()
	err := doc.ReadFromFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read XML '%s'", fileName)
	}
	root := doc.Root()
	if root == nil {
		return nil, newStructuralError(fileName, "document has no root element")
	}
	return root, nil
}

// saveXML writes element as the root of a new document. Parent directory must exist.
func saveXML(root *etree.Element, fileName string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="no"`)
	doc.SetRoot(root)
	doc.Indent(4)
	err := doc.WriteToFile(fileName)
	if err != nil {
		return errors.Wrapf(err, "Can't write XML '%s'", filepath.Clean(fileName))
	}
	return nil
}

// attributes returns element attributes as a map. Namespaced attributes keep their prefix.
func attributes(el *etree.Element) map[string]string {
	attrs := make(map[string]string, len(el.Attr))
	for _, attr := range el.Attr {
		attrs[attr.FullKey()] = attr.Value
	}
	return attrs
}

// setAttributes writes map entries as attributes in sorted key order
func setAttributes(el *etree.Element, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.CreateAttr(k, attrs[k])
	}
}
