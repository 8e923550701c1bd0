package diagram

import (
	"bytes"
	"encoding/json"
)

// NodeMap is an insertion-ordered map of node id to Node. Iteration order
// and JSON object key order both follow the order in which ids were first
// set, matching the ordered-map semantics of the parser's output.
type NodeMap struct {
	keys  []string
	nodes map[string]Node
}

// NewNodeMap returns an empty node map.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[string]Node)}
}

// Set inserts or replaces a node. Replacing keeps the id's original
// position.
func (m *NodeMap) Set(node Node) {
	if m.nodes == nil {
		m.nodes = make(map[string]Node)
	}
	if _, exists := m.nodes[node.ID]; !exists {
		m.keys = append(m.keys, node.ID)
	}
	m.nodes[node.ID] = node
}

// Get returns the node for id.
func (m *NodeMap) Get(id string) (Node, bool) {
	node, ok := m.nodes[id]
	return node, ok
}

// Len returns the number of nodes.
func (m *NodeMap) Len() int {
	return len(m.keys)
}

// IDs returns the node ids in insertion order. The slice is shared; callers
// must not mutate it.
func (m *NodeMap) IDs() []string {
	return m.keys
}

// Nodes returns the nodes in insertion order.
func (m *NodeMap) Nodes() []Node {
	out := make([]Node, 0, len(m.keys))
	for _, id := range m.keys {
		out = append(out, m.nodes[id])
	}
	return out
}

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m *NodeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.nodes[id])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving its key order.
func (m *NodeMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.nodes = make(map[string]Node)

	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return err
		}
		id, _ := keyToken.(string)
		var node Node
		if err := dec.Decode(&node); err != nil {
			return err
		}
		if node.ID == "" {
			node.ID = id
		}
		m.Set(node)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
