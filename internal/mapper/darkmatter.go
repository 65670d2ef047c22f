package mapper

import (
	"regexp"

	"github.com/eldritchfan/fancontent/internal/model"
)

// Story cards whose backs were exported as separate card records even
// though they carry text; the heuristic below cannot catch these.
var scanningStoryBacks = map[string]bool{
	"7345f12b-9b9b-4c9e-8cae-bc33282ca5f1-back": true,
	"483b591b-84a8-4f4d-a459-459dedbbfb6a-back": true,
	"d120e254-8da1-446e-971d-adeaa89852e2-back": true,
}

var alignmentOpenTags = regexp.MustCompile(`<(center|left|right)>`)

// foldScanningBacks removes card records that exist only to carry the
// back-face scan of the previous card, moving their images onto that
// card's back_image_url and back_thumbnail_url. Scanning backs are
// assumed to immediately follow their front card in array order.
//
// Remaining cards get opening alignment tags stripped from their text,
// and a double_sided flag left over from the folded back is cleared
// when no back text, traits or flavor survives.
func foldScanningBacks(cards []model.Card) []model.Card {
	out := make([]model.Card, 0, len(cards))

	for _, card := range cards {
		if isScanningBack(card) {
			if len(out) > 0 {
				front := &out[len(out)-1]
				front.BackLink = ""
				front.DeckLimit = nil
				front.BackImageURL = card.ImageURL
				front.BackThumbnailURL = card.ThumbnailURL
			}
			continue
		}

		if card.Text != "" {
			card.Text = alignmentOpenTags.ReplaceAllString(card.Text, "")
		}

		if card.DoubleSided && card.BackText == "" && card.BackTraits == "" && card.BackFlavor == "" {
			card.DoubleSided = false
		}

		out = append(out, card)
	}

	return out
}

func isScanningBack(card model.Card) bool {
	if scanningStoryBacks[card.Code] {
		return true
	}
	return card.Hidden && card.Text == "" && card.Traits == "" && card.Flavor == ""
}
