package pypi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// URLMap is a string-to-string mapping that preserves key insertion order.
//
// PyPI's project_urls object has meaningful ordering: repository discovery
// and DOI extraction walk its values in the order the publisher listed them,
// so decoding into a plain Go map would make those fallback chains
// nondeterministic. URLMap decodes via the json.Decoder token stream to keep
// the wire order.
//
// All methods are nil-safe; a nil *URLMap behaves like an empty mapping.
type URLMap struct {
	keys   []string
	values map[string]string
}

// Set appends a key/value pair, or overwrites the value if key is present.
func (m *URLMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *URLMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *URLMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *URLMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Values returns the values in insertion order.
func (m *URLMap) Values() []string {
	if m == nil {
		return nil
	}
	vals := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		vals = append(vals, m.values[k])
	}
	return vals
}

// UnmarshalJSON decodes a JSON object token by token, recording keys in wire
// order. A JSON null yields an empty mapping. Non-string values (PyPI emits
// the occasional null URL) are skipped.
func (m *URLMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("project_urls: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("project_urls: non-string key %v", keyTok)
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		if s, ok := val.(string); ok {
			m.Set(key, s)
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m *URLMap) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
