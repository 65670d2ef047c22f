// Package reconcile rewrites legacy card identifiers in a Tabletop
// Simulator scene export to the canonical codes of a project document.
//
// Scene exports predating the canonical code scheme carry short ad-hoc
// ids in each card's GMNotes metadata. Reconciliation matches every
// such card against the project by display name and subtitle and, when
// exactly one card matches, replaces the legacy id with the card's
// code. Ambiguous and unmatched cards are reported, not failed: the
// traversal always completes and the caller decides what to do with
// the leftovers.
package reconcile

import (
	"encoding/json"
	"strings"

	"github.com/eldritchfan/fancontent/internal/model"
)

// canonicalCodeLength is the length of a canonical card code. Anything
// else is a legacy id in need of reconciliation.
const canonicalCodeLength = 36

// guidKey is the GMNotes field canonical codes live under; legacyKey is
// the pre-scheme field that gets dropped on rewrite.
const (
	guidKey   = "TtsZoopGuid"
	legacyKey = "id"
)

// Status classifies the outcome for one leaf.
type Status int

const (
	StatusResolved Status = iota
	StatusAmbiguous
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusAmbiguous:
		return "ambiguous"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Resolution records the outcome for one card leaf that carried a
// legacy id.
type Resolution struct {
	LegacyID string
	Name     string
	Subname  string
	Status   Status

	// Code is the canonical code written back; set only when resolved.
	Code string

	// Candidates holds the codes of every matching card when the match
	// was ambiguous.
	Candidates []string
}

// Report aggregates the outcomes of one run.
type Report struct {
	Resolutions []Resolution
}

// Unresolved returns the resolutions that need manual follow-up.
func (r *Report) Unresolved() []Resolution {
	var out []Resolution
	for _, res := range r.Resolutions {
		if res.Status != StatusResolved {
			out = append(out, res)
		}
	}
	return out
}

// Resolved returns how many leaves were rewritten.
func (r *Report) Resolved() int {
	n := 0
	for _, res := range r.Resolutions {
		if res.Status == StatusResolved {
			n++
		}
	}
	return n
}

// Run walks the scene export and rewrites every resolvable legacy id in
// place, returning a report of every leaf it considered. Only leaf
// nodes named "Card" whose metadata carries a non-canonical id are
// considered; everything else is left untouched.
func Run(project *model.Project, root *model.Bag) *Report {
	report := &Report{}

	root.Walk(func(leaf *model.Bag) {
		if res, ok := reconcileLeaf(project, leaf); ok {
			report.Resolutions = append(report.Resolutions, res)
		}
	})

	return report
}

func reconcileLeaf(project *model.Project, leaf *model.Bag) (Resolution, bool) {
	if leaf.Name != "Card" || leaf.GMNotes == "" {
		return Resolution{}, false
	}

	var notes map[string]any
	if err := json.Unmarshal([]byte(leaf.GMNotes), &notes); err != nil {
		return Resolution{}, false
	}

	id := noteString(notes, guidKey)
	if id == "" {
		id = noteString(notes, legacyKey)
	}
	if id == "" || len(id) == canonicalCodeLength {
		return Resolution{}, false
	}

	res := Resolution{
		LegacyID: id,
		Name:     strings.TrimSpace(leaf.Nickname),
		Subname:  strings.TrimSpace(leaf.Description),
	}

	var matches []string
	for _, card := range project.Data.Cards {
		if strings.TrimSpace(card.Name) == res.Name && strings.TrimSpace(card.Subname) == res.Subname {
			matches = append(matches, card.Code)
		}
	}

	switch len(matches) {
	case 1:
		notes[guidKey] = matches[0]
		delete(notes, legacyKey)
		encoded, err := json.Marshal(notes)
		if err != nil {
			res.Status = StatusNotFound
			return res, true
		}
		leaf.GMNotes = string(encoded)
		res.Status = StatusResolved
		res.Code = matches[0]
	case 0:
		res.Status = StatusNotFound
	default:
		res.Status = StatusAmbiguous
		res.Candidates = matches
	}

	return res, true
}

func noteString(notes map[string]any, key string) string {
	s, _ := notes[key].(string)
	return s
}
