package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Project is one fan-content package: metadata plus cards, packs and
// encounter sets.
type Project struct {
	Meta ProjectMeta `json:"meta"`
	Data ProjectData `json:"data"`
}

// ProjectMeta identifies a project. Code is the stable external
// identifier; URL is set by the rehosting tool once the document itself
// has been uploaded.
type ProjectMeta struct {
	Code        string   `json:"code"`
	Types       []string `json:"types"`
	DateUpdated string   `json:"date_updated,omitempty"`
	BannerURL   string   `json:"banner_url,omitempty"`
	URL         string   `json:"url,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// ProjectData holds the entity arrays of a project.
type ProjectData struct {
	Cards         []Card         `json:"cards"`
	Packs         []Pack         `json:"packs"`
	EncounterSets []EncounterSet `json:"encounter_sets"`
}

// Pack is a packaging grouping with an optional icon image.
type Pack struct {
	Code    string `json:"code"`
	IconURL string `json:"icon_url,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// EncounterSet is a scenario grouping with an optional icon image.
type EncounterSet struct {
	Code    string `json:"code"`
	IconURL string `json:"icon_url,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var metaKnownFields = []string{"code", "types", "date_updated", "banner_url", "url"}

type metaAlias ProjectMeta

func (m *ProjectMeta) UnmarshalJSON(data []byte) error {
	var a metaAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data, metaKnownFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*m = ProjectMeta(a)
	return nil
}

func (m ProjectMeta) MarshalJSON() ([]byte, error) {
	b, err := marshalNoEscape(metaAlias(m))
	if err != nil {
		return nil, err
	}
	return mergeExtra(b, m.Extra)
}

var iconEntityKnownFields = []string{"code", "icon_url"}

type packAlias Pack

func (p *Pack) UnmarshalJSON(data []byte) error {
	var a packAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data, iconEntityKnownFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*p = Pack(a)
	return nil
}

func (p Pack) MarshalJSON() ([]byte, error) {
	b, err := marshalNoEscape(packAlias(p))
	if err != nil {
		return nil, err
	}
	return mergeExtra(b, p.Extra)
}

type encounterSetAlias EncounterSet

func (e *EncounterSet) UnmarshalJSON(data []byte) error {
	var a encounterSetAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data, iconEntityKnownFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*e = EncounterSet(a)
	return nil
}

func (e EncounterSet) MarshalJSON() ([]byte, error) {
	b, err := marshalNoEscape(encounterSetAlias(e))
	if err != nil {
		return nil, err
	}
	return mergeExtra(b, e.Extra)
}

// ProjectPath returns the path of a project file inside a projects
// directory: <dir>/<name>.json.
func ProjectPath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// LoadProject reads and decodes one project document.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the project back out pretty-printed. The destination is
// overwritten in place; no backup is kept.
func (p *Project) Save(path string) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode renders the project as indented JSON without HTML escaping.
func (p *Project) Encode() ([]byte, error) {
	return encodeIndented(p)
}
