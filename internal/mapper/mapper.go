// Package mapper holds the per-project structural fixes applied to a
// card list before the generic text cleanup pass.
//
// Each mapper is a pure function from card slice to card slice; it may
// reorder or drop elements. Mappers are registered against the project
// file name they belong to, and projects without an entry are processed
// with text fixes only.
package mapper

import "github.com/eldritchfan/fancontent/internal/model"

// Func transforms a project's card list.
type Func func(cards []model.Card) []model.Card

var registry = map[string]Func{
	"dark_matter":         foldScanningBacks,
	"campaign_playalong":  tagPlayalongPool,
	"campaign_play_along": tagPlayalongExpansions,
	"baldurs_gate_3":      tagPermanents,
}

// Lookup returns the mapper registered for a project name, if any.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}
