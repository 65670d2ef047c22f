package model

import "encoding/json"

// Card is one card record in a project document.
//
// The recognized fields are typed; everything else the source JSON
// carries lands in Extra and is written back verbatim. String fields
// that may be absent or null in the source decode to "", which the
// pipeline treats the same as missing.
type Card struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Subname string `json:"subname,omitempty"`

	Text       string `json:"text,omitempty"`
	BackText   string `json:"back_text,omitempty"`
	Flavor     string `json:"flavor,omitempty"`
	BackFlavor string `json:"back_flavor,omitempty"`
	Traits     string `json:"traits,omitempty"`
	BackTraits string `json:"back_traits,omitempty"`

	Hidden      bool `json:"hidden,omitempty"`
	DoubleSided bool `json:"double_sided,omitempty"`
	Permanent   bool `json:"permanent,omitempty"`

	ImageURL         string `json:"image_url,omitempty"`
	BackImageURL     string `json:"back_image_url,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	BackThumbnailURL string `json:"back_thumbnail_url,omitempty"`

	DeckLimit *int   `json:"deck_limit,omitempty"`
	BackLink  string `json:"back_link,omitempty"`

	ExpansionCode     string              `json:"expansion_code,omitempty"`
	CardPoolExtension []CardPoolExtension `json:"card_pool_extension,omitempty"`

	// Extra holds fields the schema does not model, keyed by their JSON
	// name. Never contains a key that collides with a typed field.
	Extra map[string]json.RawMessage `json:"-"`
}

// CardPoolExtension tags a card as extending a card pool.
type CardPoolExtension struct {
	Type string `json:"type"`
}

// cardKnownFields mirrors the JSON tags of Card's typed fields.
var cardKnownFields = []string{
	"code", "name", "subname",
	"text", "back_text", "flavor", "back_flavor", "traits", "back_traits",
	"hidden", "double_sided", "permanent",
	"image_url", "back_image_url", "thumbnail_url", "back_thumbnail_url",
	"deck_limit", "back_link",
	"expansion_code", "card_pool_extension",
}

type cardAlias Card

func (c *Card) UnmarshalJSON(data []byte) error {
	var a cardAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := extraFields(data, cardKnownFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*c = Card(a)
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	b, err := marshalNoEscape(cardAlias(c))
	if err != nil {
		return nil, err
	}
	return mergeExtra(b, c.Extra)
}
