package mapper

import (
	"strings"

	"github.com/eldritchfan/fancontent/internal/model"
)

// Cards added to the campaign card pool by later seasons, keyed by card
// code. The value is the pool extension type.
var playalongPoolCards = map[string]string{
	"70b5bb78-8b12-40e4-a567-85f6996e836f": "card",
	"c0cf9323-5f01-4d19-a967-e09a1b439414": "card",
	"798eba12-1ccb-4a52-87d8-b4fc262e5916": "card",
	"fdd09839-a4cd-4144-82eb-e8232950c31f": "card",
	"0ddf93ab-39ef-4b3d-9e73-fcb300f5fa4b": "card",
	"cefcfe23-7514-42c2-a70e-6e9967796414": "card",
	"0cb1d7a3-56e1-44d3-9373-a5acc2045ada": "card",
	"581e4bf9-2736-4086-8364-93399201a510": "card",
	"676974a0-aada-424f-b1bf-295c20782614": "card",
}

// Same idea as playalongPoolCards, but the source data tagged whole
// expansions rather than individual cards.
var playalongPoolExpansions = map[string]string{
	"70b5bb78-8b12-40e4-a567-85f6996e836f": "card",
	"c0cf9323-5f01-4d19-a967-e09a1b439414": "card",
	"798eba12-1ccb-4a52-87d8-b4fc262e5916": "card",
	"a2ab773f-3420-43e9-ab8e-342927687e46": "card",
	"fdd09839-a4cd-4144-82eb-e8232950c31f": "card",
	"0ddf93ab-39ef-4b3d-9e73-fcb300f5fa4b": "card",
	"cefcfe23-7514-42c2-a70e-6e9967796414": "card",
	"0cb1d7a3-56e1-44d3-9373-a5acc2045ada": "card",
}

// tagPlayalongPool attaches a card_pool_extension descriptor to cards
// on the allow-list and flags cards whose rules text marks them as
// permanent. Matching is exact substring containment, no normalization.
func tagPlayalongPool(cards []model.Card) []model.Card {
	out := make([]model.Card, len(cards))

	for i, card := range cards {
		if poolType, ok := playalongPoolCards[card.Code]; ok {
			card.CardPoolExtension = []model.CardPoolExtension{{Type: poolType}}
		}
		if strings.Contains(card.Text, "Ultimatum") || strings.Contains(card.Text, "Permanent.") {
			card.Permanent = true
		}
		out[i] = card
	}

	return out
}

// tagPlayalongExpansions is the expansion_code variant of the pool
// tagging fix.
func tagPlayalongExpansions(cards []model.Card) []model.Card {
	out := make([]model.Card, len(cards))

	for i, card := range cards {
		if poolType, ok := playalongPoolExpansions[card.ExpansionCode]; ok {
			card.CardPoolExtension = []model.CardPoolExtension{{Type: poolType}}
		}
		out[i] = card
	}

	return out
}

// tagPermanents flags cards whose rules text contains the Permanent
// keyword.
func tagPermanents(cards []model.Card) []model.Card {
	out := make([]model.Card, len(cards))

	for i, card := range cards {
		if strings.Contains(card.Text, "Permanent.") {
			card.Permanent = true
		}
		out[i] = card
	}

	return out
}
