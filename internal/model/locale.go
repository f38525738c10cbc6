package model

import (
	"bytes"
	"encoding/json"
)

// LocaleTable is a flat key/value translation table that keeps keys in first
// insertion order, so regenerated files diff cleanly.
type LocaleTable struct {
	keys   []string
	values map[string]string
}

// NewLocaleTable returns an empty table.
func NewLocaleTable() *LocaleTable {
	return &LocaleTable{values: make(map[string]string)}
}

// Set stores value under key. Overwriting keeps the key's original position
// and returns the previous value.
func (t *LocaleTable) Set(key, value string) (string, bool) {
	prev, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
	}

	t.values[key] = value

	return prev, ok
}

// Get returns the value stored for key.
func (t *LocaleTable) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of keys.
func (t *LocaleTable) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *LocaleTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)

	return out
}

// Each calls fn for every entry in insertion order.
func (t *LocaleTable) Each(fn func(key, value string)) {
	for _, k := range t.keys {
		fn(k, t.values[k])
	}
}

// MarshalJSON renders the table as a two-space indented JSON object.
func (t *LocaleTable) MarshalJSON() ([]byte, error) {
	if t == nil || len(t.keys) == 0 {
		return []byte("{}"), nil
	}

	var b bytes.Buffer

	b.WriteString("{\n")

	for i, k := range t.keys {
		b.WriteString("  ")

		if err := writeJSONString(&b, k); err != nil {
			return nil, err
		}

		b.WriteString(": ")

		if err := writeJSONString(&b, t.values[k]); err != nil {
			return nil, err
		}

		if i < len(t.keys)-1 {
			b.WriteByte(',')
		}

		b.WriteByte('\n')
	}

	b.WriteString("}")

	return b.Bytes(), nil
}

func writeJSONString(b *bytes.Buffer, s string) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	// Encode appends a newline.
	b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))

	return nil
}
