package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldritchfan/fancontent/internal/model"
)

func writeProject(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunAppliesMapperAndTextFixes(t *testing.T) {
	dir := t.TempDir()

	// dark_matter has the back-folding mapper registered: the hidden
	// scanning back must be folded into the front card, and the text
	// fix pass must remove the leftover closing alignment tag.
	writeProject(t, dir, "dark_matter", `{
		"meta": {"code": "dark_matter", "types": ["campaign"]},
		"data": {
			"cards": [
				{"code": "01001", "name": "Agatha", "text": "<center>Hi</center>"},
				{"code": "01001b", "name": "", "hidden": true, "text": null, "traits": null, "flavor": null, "image_url": "back.png"}
			],
			"packs": [],
			"encounter_sets": []
		}
	}`)

	p := &Processor{Dir: dir}
	require.NoError(t, p.Run("dark_matter"))

	got, err := model.LoadProject(model.ProjectPath(dir, "dark_matter"))
	require.NoError(t, err)

	require.Len(t, got.Data.Cards, 1)
	card := got.Data.Cards[0]
	assert.Equal(t, "01001", card.Code)
	assert.Equal(t, "Hi", card.Text)
	assert.Equal(t, "back.png", card.BackImageURL)
}

func TestRunWithoutMapperOnlyFixesText(t *testing.T) {
	dir := t.TempDir()

	writeProject(t, dir, "plain_project", `{
		"meta": {"code": "plain_project", "types": []},
		"data": {
			"cards": [
				{"code": "c1", "name": "“Lucky” Lou", "subname": "<hdr>Gambler</hdr>", "flavor": "“Deal me in.”"}
			],
			"packs": [],
			"encounter_sets": []
		}
	}`)

	p := &Processor{Dir: dir}
	require.NoError(t, p.Run("plain_project"))

	got, err := model.LoadProject(model.ProjectPath(dir, "plain_project"))
	require.NoError(t, err)

	card := got.Data.Cards[0]
	assert.Equal(t, `"Lucky" Lou`, card.Name)
	assert.Equal(t, "<b>Gambler</b>", card.Subname)
	assert.Equal(t, `"Deal me in."`, card.Flavor)
}

func TestRunMalformedProjectLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, "broken", `{"meta": {`)

	p := &Processor{Dir: dir}
	require.Error(t, p.Run("broken"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"meta": {`, string(data))
}

func TestRunAllProcessesEveryJSONFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"alpha", "beta"} {
		writeProject(t, dir, name, `{
			"meta": {"code": "`+name+`", "types": []},
			"data": {"cards": [{"code": "c", "name": "“Q”"}], "packs": [], "encounter_sets": []}
		}`)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	p := &Processor{Dir: dir}
	processed, err := p.RunAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, processed)
}
