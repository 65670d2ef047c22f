package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRoundTripKeepsUnknownFields(t *testing.T) {
	src := `{
		"code": "01001",
		"name": "Agatha",
		"text": "<b>Response:</b> draw a card.",
		"octgn_id": "a1b2",
		"custom_stats": {"wild": 2}
	}`

	var card Card
	require.NoError(t, json.Unmarshal([]byte(src), &card))

	assert.Equal(t, "01001", card.Code)
	assert.Equal(t, "Agatha", card.Name)
	require.Len(t, card.Extra, 2)
	assert.JSONEq(t, `"a1b2"`, string(card.Extra["octgn_id"]))

	out, err := json.Marshal(card)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
}

func TestCardNullFieldsDecodeEmpty(t *testing.T) {
	src := `{"code": "01001b", "hidden": true, "text": null, "traits": null, "flavor": null}`

	var card Card
	require.NoError(t, json.Unmarshal([]byte(src), &card))

	assert.True(t, card.Hidden)
	assert.Empty(t, card.Text)
	assert.Empty(t, card.Traits)
	assert.Empty(t, card.Flavor)
	assert.Nil(t, card.Extra)
}

func TestProjectSaveDoesNotEscapeMarkup(t *testing.T) {
	p := &Project{
		Meta: ProjectMeta{Code: "dark_matter", Types: []string{"player"}},
		Data: ProjectData{
			Cards: []Card{{Code: "c1", Name: "N", Text: "<b>Forced</b> \"quote\""}},
		},
	}

	path := filepath.Join(t.TempDir(), "dark_matter.json")
	require.NoError(t, p.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<b>Forced</b>")
	assert.NotContains(t, string(data), `\u003c`)

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, p.Data.Cards[0].Text, loaded.Data.Cards[0].Text)
}

func TestProjectMetaKeepsUnknownFields(t *testing.T) {
	src := `{"meta": {"code": "x", "types": ["player"], "author": "someone"}, "data": {"cards": [], "packs": [], "encounter_sets": []}}`

	var p Project
	require.NoError(t, json.Unmarshal([]byte(src), &p))
	require.Contains(t, p.Meta.Extra, "author")

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
}

func TestBagWalkVisitsOnlyLeaves(t *testing.T) {
	root := &Bag{
		Name: "Bag",
		ContainedObjects: []*Bag{
			{Name: "Card", Nickname: "A"},
			{
				Name: "Deck",
				ContainedObjects: []*Bag{
					{Name: "Card", Nickname: "B"},
					{Name: "Card", Nickname: "C"},
				},
			},
		},
	}

	var visited []string
	root.Walk(func(b *Bag) { visited = append(visited, b.Nickname) })

	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestBagWalkSkipsEmptyContainer(t *testing.T) {
	src := `{
		"ContainedObjects": [
			{"Name": "Bag", "ContainedObjects": []},
			{"Name": "Card", "Nickname": "A"}
		]
	}`

	var b Bag
	require.NoError(t, json.Unmarshal([]byte(src), &b))

	var visited []string
	b.Walk(func(n *Bag) { visited = append(visited, n.Nickname) })

	assert.Equal(t, []string{"A"}, visited, "an empty container is not a leaf")
}

func TestBagRoundTripKeepsEmptySceneKeys(t *testing.T) {
	src := `{
		"Name": "Card",
		"Nickname": "",
		"Description": "",
		"GMNotes": "",
		"ContainedObjects": []
	}`

	var b Bag
	require.NoError(t, json.Unmarshal([]byte(src), &b))

	out, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out), "empty-valued keys survive the round trip")
}

func TestBagRoundTripKeepsSceneFields(t *testing.T) {
	src := `{
		"SaveName": "export",
		"ContainedObjects": [
			{"Name": "Card", "Nickname": "A", "GMNotes": "{\"id\":\"01001\"}", "Transform": {"posX": 1.5}}
		]
	}`

	var b Bag
	require.NoError(t, json.Unmarshal([]byte(src), &b))
	require.Len(t, b.ContainedObjects, 1)
	assert.Contains(t, b.Extra, "SaveName")
	assert.Contains(t, b.ContainedObjects[0].Extra, "Transform")

	out, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
}

func TestProjectPath(t *testing.T) {
	got := ProjectPath("projects", "dark_matter")
	want := filepath.Join("projects", "dark_matter.json")
	if got != want {
		t.Errorf("ProjectPath() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, ".json") {
		t.Errorf("ProjectPath() missing .json suffix: %q", got)
	}
}
