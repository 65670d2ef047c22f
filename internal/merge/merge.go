// Package merge combines per-season project files into one release
// document.
package merge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eldritchfan/fancontent/internal/model"
)

// Run reads every .json file under dir, concatenates their cards, packs
// and encounter sets onto the metadata of the existing document at
// outPath, and overwrites outPath with the result.
//
// Input order is directory listing order. Declared types are unioned,
// first seen first, and date_updated is stamped with the current time.
// All preconditions are checked before anything is written: the input
// directory and the output file must exist and the directory must
// contain at least one JSON file.
func Run(dir, outPath string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("input directory %s: %w", dir, err)
	}

	base, err := model.LoadProject(outPath)
	if err != nil {
		return fmt.Errorf("output file %s: %w", outPath, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var inputs []model.Project
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		p, err := model.LoadProject(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		inputs = append(inputs, *p)
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no JSON files found in directory %s", dir)
	}

	merged := Combine(base.Meta, inputs, time.Now().UTC())
	slog.Info("merged projects",
		"inputs", len(inputs),
		"cards", len(merged.Data.Cards),
		"types", len(merged.Meta.Types))

	return merged.Save(outPath)
}

// Combine builds a merged project from the base metadata and the input
// projects, in order. The base's own entity arrays and declared types
// are discarded; only the inputs contribute cards and types.
func Combine(baseMeta model.ProjectMeta, inputs []model.Project, now time.Time) *model.Project {
	merged := &model.Project{
		Meta: baseMeta,
		Data: model.ProjectData{
			Cards:         []model.Card{},
			Packs:         []model.Pack{},
			EncounterSets: []model.EncounterSet{},
		},
	}
	merged.Meta.Types = []string{}
	merged.Meta.DateUpdated = now.Format(time.RFC3339)

	seen := make(map[string]bool)
	for _, input := range inputs {
		merged.Data.Cards = append(merged.Data.Cards, input.Data.Cards...)
		merged.Data.Packs = append(merged.Data.Packs, input.Data.Packs...)
		merged.Data.EncounterSets = append(merged.Data.EncounterSets, input.Data.EncounterSets...)

		for _, t := range input.Meta.Types {
			if !seen[t] {
				seen[t] = true
				merged.Meta.Types = append(merged.Meta.Types, t)
			}
		}
	}

	return merged
}
