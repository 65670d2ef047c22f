package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bag is one node of a Tabletop Simulator scene export: either a
// container holding further objects or a leaf object. Leaf cards carry
// JSON-encoded metadata in GMNotes. Everything the schema does not
// model — and a TTS save carries a lot — is preserved in Extra.
type Bag struct {
	Name        string `json:"Name,omitempty"`
	Nickname    string `json:"Nickname,omitempty"`
	Description string `json:"Description,omitempty"`
	GMNotes     string `json:"GMNotes,omitempty"`

	ContainedObjects []*Bag `json:"ContainedObjects,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type bagAlias Bag

// UnmarshalJSON keeps known keys whose value is empty in Extra instead
// of the typed fields: TTS exports carry "Nickname": "", "GMNotes": ""
// and "ContainedObjects": [] on nearly every node, omitempty would drop
// them on save, and a round trip has to write them back verbatim.
func (b *Bag) UnmarshalJSON(data []byte) error {
	var a bagAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if a.Name != "" {
		delete(raw, "Name")
	}
	if a.Nickname != "" {
		delete(raw, "Nickname")
	}
	if a.Description != "" {
		delete(raw, "Description")
	}
	if a.GMNotes != "" {
		delete(raw, "GMNotes")
	}
	if len(a.ContainedObjects) > 0 {
		delete(raw, "ContainedObjects")
	}
	if len(raw) > 0 {
		a.Extra = raw
	}
	*b = Bag(a)
	return nil
}

func (b Bag) MarshalJSON() ([]byte, error) {
	data, err := marshalNoEscape(bagAlias(b))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, b.Extra)
}

// Walk traverses the tree depth-first and calls visit on every leaf.
// A node with a ContainedObjects array is a container and is never
// itself visited, even when the array is empty.
func (b *Bag) Walk(visit func(*Bag)) {
	if b.ContainedObjects != nil {
		for _, contained := range b.ContainedObjects {
			contained.Walk(visit)
		}
		return
	}
	visit(b)
}

// LoadBag reads and decodes a TTS scene export.
func LoadBag(path string) (*Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Bag
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &b, nil
}

// Save writes the scene export pretty-printed to path.
func (b *Bag) Save(path string) error {
	data, err := encodeIndented(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
