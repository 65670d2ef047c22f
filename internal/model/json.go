package model

import (
	"bytes"
	"encoding/json"
)

// marshalNoEscape marshals v without escaping <, > and & so that markup
// tokens inside card text survive as written.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeIndented renders v as two-space-indented JSON without HTML
// escaping, the format every tool writes documents in.
func encodeIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// extraFields unmarshals data into a raw map and strips every known key,
// leaving only the fields the schema does not model.
func extraFields(data []byte, known []string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeExtra folds residual fields back into the marshaled struct JSON.
// Typed fields win on key collision.
func mergeExtra(structJSON []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return structJSON, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(structJSON, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return marshalNoEscape(m)
}
