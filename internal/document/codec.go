package document

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DecodeJSON parses a JSON document into a node tree.
//
// The format is one object per node: {"kind": "...", "key": "...",
// "type": "...", "data": {...}, "nodes": [...], "text": "..."}. Missing
// keys are generated; text leaves must not carry children.
func DecodeJSON(data []byte) (*Node, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &DecodeError{Err: ErrMalformedDocument}
	}
	return decodeNode(root, "")
}

func decodeNode(v gjson.Result, jsonPath string) (*Node, error) {
	kindStr := v.Get("kind").String()
	kind, ok := ParseKind(kindStr)
	if !ok {
		return nil, &DecodeError{
			Path: jsonPath,
			Err:  fmt.Errorf("%w: %q", ErrUnknownKind, kindStr),
		}
	}

	n := &Node{
		Kind: kind,
		Key:  Key(v.Get("key").String()),
		Type: v.Get("type").String(),
		Text: v.Get("text").String(),
	}
	if n.Key.IsZero() {
		n.Key = NewKey()
	}
	if data := v.Get("data"); data.IsObject() {
		n.Data = data.Value().(map[string]any)
	}

	children := v.Get("nodes")
	if kind == KindText {
		if children.Exists() && len(children.Array()) > 0 {
			return nil, &DecodeError{
				Path: jsonPath,
				Err:  fmt.Errorf("%w: text leaf with children", ErrMalformedDocument),
			}
		}
		return n, nil
	}

	var err error
	children.ForEach(func(_, child gjson.Result) bool {
		childPath := fmt.Sprintf("nodes.%d", len(n.Nodes))
		if jsonPath != "" {
			childPath = jsonPath + "." + childPath
		}
		var cn *Node
		cn, err = decodeNode(child, childPath)
		if err != nil {
			return false
		}
		n.Nodes = append(n.Nodes, cn)
		return true
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// EncodeJSON serializes a node tree to JSON in the DecodeJSON format.
func EncodeJSON(n *Node) ([]byte, error) {
	s, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func encodeNode(n *Node) (string, error) {
	out := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}

	set("kind", n.Kind.String())
	set("key", n.Key.String())
	if n.Type != "" {
		set("type", n.Type)
	}
	if len(n.Data) > 0 {
		set("data", n.Data)
	}
	if n.IsText() {
		set("text", n.Text)
		return out, err
	}
	if err != nil {
		return "", err
	}

	// sjson has no empty-array literal setter, so seed the key first.
	out, err = sjson.SetRaw(out, "nodes", "[]")
	for _, child := range n.Nodes {
		if err != nil {
			return "", err
		}
		var cs string
		cs, err = encodeNode(child)
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, "nodes.-1", cs)
	}
	return out, err
}
