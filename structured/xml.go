package structured

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ExportXML writes generic data (maps, slices, scalars) to path as
// indented XML under a root element. Map entries become child elements
// named by key (emitted in sorted key order for determinism), slice
// entries become repeated <item> elements, and scalars become element
// text. An existing file is left untouched unless overwrite is set.
func ExportXML(path string, data any, overwrite bool, rootTag string) error {
	ok, err := shouldExport(path, overwrite)
	if err != nil || !ok {
		return err
	}
	if rootTag == "" {
		rootTag = "root"
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := encodeElement(&buf, rootTag, data, 0); err != nil {
		return fmt.Errorf("structured: encoding xml for %q: %w", path, err)
	}
	return writeAtomic(path, buf.Bytes())
}

func encodeElement(buf *bytes.Buffer, tag string, data any, depth int) error {
	indent := strings.Repeat("    ", depth)

	switch value := data.(type) {
	case map[string]any:
		fmt.Fprintf(buf, "%s<%s>\n", indent, tag)
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := encodeElement(buf, key, value[key], depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(buf, "%s</%s>\n", indent, tag)

	case []any:
		fmt.Fprintf(buf, "%s<%s>\n", indent, tag)
		for _, item := range value {
			if err := encodeElement(buf, "item", item, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(buf, "%s</%s>\n", indent, tag)

	default:
		var text bytes.Buffer
		if err := xml.EscapeText(&text, []byte(fmt.Sprint(value))); err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s<%s>%s</%s>\n", indent, tag, text.String(), tag)
	}
	return nil
}

// xmlNode is an intermediate tree used when importing.
type xmlNode struct {
	tag      string
	text     string
	children []*xmlNode
}

// ImportXML reads an XML file into generic data, inverting ExportXML's
// conventions: a childless element becomes its text, an element whose
// children all share one tag becomes a []any, and anything else becomes
// a map[string]any (values for repeated tags are promoted to lists).
// It returns (nil, nil) when the file does not exist.
func ImportXML(path string) (any, error) {
	data, err := readIfExists(path)
	if err != nil || data == nil {
		return nil, err
	}

	root, err := parseXML(data)
	if err != nil {
		return nil, fmt.Errorf("structured: decoding xml %q: %w", path, err)
	}
	if root == nil {
		return nil, fmt.Errorf("structured: decoding xml %q: no root element", path)
	}
	return nodeToData(root), nil
}

func parseXML(data []byte) (*xmlNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *xmlNode
	var stack []*xmlNode

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			node := &xmlNode{tag: tok.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(tok)
			}
		}
	}
	return root, nil
}

func nodeToData(node *xmlNode) any {
	if len(node.children) == 0 {
		return strings.TrimSpace(node.text)
	}

	sameTag := true
	for _, child := range node.children[1:] {
		if child.tag != node.children[0].tag {
			sameTag = false
			break
		}
	}
	if sameTag && len(node.children) > 1 {
		list := make([]any, 0, len(node.children))
		for _, child := range node.children {
			list = append(list, nodeToData(child))
		}
		return list
	}

	result := make(map[string]any, len(node.children))
	for _, child := range node.children {
		value := nodeToData(child)
		if existing, dup := result[child.tag]; dup {
			if list, isList := existing.([]any); isList {
				result[child.tag] = append(list, value)
			} else {
				result[child.tag] = []any{existing, value}
			}
		} else {
			result[child.tag] = value
		}
	}
	return result
}
