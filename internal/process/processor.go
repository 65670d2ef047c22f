// Package process implements the post-processing pass that cleans up
// freshly imported project files in place.
package process

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eldritchfan/fancontent/internal/mapper"
	"github.com/eldritchfan/fancontent/internal/model"
	"github.com/eldritchfan/fancontent/internal/textfix"
)

// Processor cleans project documents under Dir. For each project it
// applies the registered mapper for that project name, if one exists,
// then runs the standard text fixes over every text-bearing card field,
// and writes the document back to the same path.
type Processor struct {
	Dir string
}

// Run processes a single project by name. The source file is
// overwritten; a decode failure aborts before anything is written.
func (p *Processor) Run(name string) error {
	path := model.ProjectPath(p.Dir, name)

	project, err := model.LoadProject(path)
	if err != nil {
		return err
	}

	if fn, ok := mapper.Lookup(name); ok {
		slog.Info("applying mapper", "project", name)
		project.Data.Cards = fn(project.Data.Cards)
	}

	for i := range project.Data.Cards {
		fixCardText(&project.Data.Cards[i])
	}

	return project.Save(path)
}

// RunAll processes every .json file in the projects directory, in
// lexical order, and returns the project names it touched.
func (p *Processor) RunAll() ([]string, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading projects directory: %w", err)
	}

	var processed []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		if err := p.Run(name); err != nil {
			return processed, fmt.Errorf("processing %s: %w", name, err)
		}
		processed = append(processed, name)
	}

	return processed, nil
}

func fixCardText(card *model.Card) {
	card.Name = textfix.Fix(card.Name)
	if card.Text != "" {
		card.Text = textfix.Fix(card.Text)
	}
	if card.BackText != "" {
		card.BackText = textfix.Fix(card.BackText)
	}
	if card.Subname != "" {
		card.Subname = textfix.Fix(card.Subname)
	}
	if card.Flavor != "" {
		card.Flavor = textfix.Fix(card.Flavor)
	}
	if card.BackFlavor != "" {
		card.BackFlavor = textfix.Fix(card.BackFlavor)
	}
}
