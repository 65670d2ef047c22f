package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldritchfan/fancontent/internal/model"
)

const canonical = "7345f12b-9b9b-4c9e-8cae-bc33282ca5f1"

func project(cards ...model.Card) *model.Project {
	return &model.Project{
		Meta: model.ProjectMeta{Code: "test"},
		Data: model.ProjectData{Cards: cards},
	}
}

func cardLeaf(nickname, description, notes string) *model.Bag {
	return &model.Bag{Name: "Card", Nickname: nickname, Description: description, GMNotes: notes}
}

func TestRunResolvesUniqueMatch(t *testing.T) {
	p := project(
		model.Card{Code: canonical, Name: "Agatha", Subname: "Tracker"},
		model.Card{Code: "other-code-000000000000000000000000", Name: "Agatha", Subname: "Hermit"},
	)
	leaf := cardLeaf(" Agatha ", "Tracker", `{"id":"01001","type":"asset"}`)
	root := &model.Bag{Name: "Bag", ContainedObjects: []*model.Bag{leaf}}

	report := Run(p, root)

	require.Len(t, report.Resolutions, 1)
	res := report.Resolutions[0]
	assert.Equal(t, StatusResolved, res.Status)
	assert.Equal(t, canonical, res.Code)
	assert.Equal(t, "01001", res.LegacyID)
	assert.Equal(t, 1, report.Resolved())

	var notes map[string]any
	require.NoError(t, json.Unmarshal([]byte(leaf.GMNotes), &notes))
	assert.Equal(t, canonical, notes["TtsZoopGuid"])
	assert.NotContains(t, notes, "id", "legacy id dropped")
	assert.Equal(t, "asset", notes["type"], "unrelated note fields preserved")
}

func TestRunLeavesAmbiguousLeafUnmodified(t *testing.T) {
	p := project(
		model.Card{Code: "code-a", Name: "Agatha", Subname: "Tracker"},
		model.Card{Code: "code-b", Name: "Agatha", Subname: "Tracker"},
	)
	original := `{"id":"01001"}`
	leaf := cardLeaf("Agatha", "Tracker", original)
	root := &model.Bag{ContainedObjects: []*model.Bag{leaf}}

	report := Run(p, root)

	require.Len(t, report.Resolutions, 1)
	res := report.Resolutions[0]
	assert.Equal(t, StatusAmbiguous, res.Status)
	assert.ElementsMatch(t, []string{"code-a", "code-b"}, res.Candidates)
	assert.Equal(t, original, leaf.GMNotes, "ambiguous leaf untouched")
	assert.Len(t, report.Unresolved(), 1)
}

func TestRunReportsNotFound(t *testing.T) {
	p := project(model.Card{Code: "x", Name: "Someone Else"})
	leaf := cardLeaf("Agatha", "", `{"id":"01001"}`)
	root := &model.Bag{ContainedObjects: []*model.Bag{leaf}}

	report := Run(p, root)
	require.Len(t, report.Resolutions, 1)
	assert.Equal(t, StatusNotFound, report.Resolutions[0].Status)
}

func TestRunSkipsCanonicalAndNonCardLeaves(t *testing.T) {
	p := project(model.Card{Code: canonical, Name: "Agatha"})
	root := &model.Bag{ContainedObjects: []*model.Bag{
		cardLeaf("Agatha", "", `{"TtsZoopGuid":"`+canonical+`"}`), // already canonical
		{Name: "Figurine", Nickname: "Agatha", GMNotes: `{"id":"legacy"}`},
		cardLeaf("Agatha", "", ""),               // no metadata
		cardLeaf("Agatha", "", "not valid json"), // unparsable metadata
	}}

	report := Run(p, root)
	assert.Empty(t, report.Resolutions)
}

func TestRunOnlyInspectsLeaves(t *testing.T) {
	p := project(model.Card{Code: canonical, Name: "Agatha"})

	// A container that itself looks like a card must not be rewritten.
	container := cardLeaf("Agatha", "", `{"id":"01001"}`)
	container.ContainedObjects = []*model.Bag{cardLeaf("Agatha", "", `{"id":"01002"}`)}
	root := &model.Bag{ContainedObjects: []*model.Bag{container}}

	report := Run(p, root)

	require.Len(t, report.Resolutions, 1)
	assert.Equal(t, "01002", report.Resolutions[0].LegacyID)
	assert.Equal(t, `{"id":"01001"}`, container.GMNotes)
}

func TestRunPrefersGuidKeyOverLegacy(t *testing.T) {
	p := project(model.Card{Code: canonical, Name: "Agatha"})
	leaf := cardLeaf("Agatha", "", `{"TtsZoopGuid":"short","id":"ignored"}`)
	root := &model.Bag{ContainedObjects: []*model.Bag{leaf}}

	report := Run(p, root)
	require.Len(t, report.Resolutions, 1)
	assert.Equal(t, "short", report.Resolutions[0].LegacyID)
}
