package rehost

import (
	"log/slog"
	"path"
	"strings"

	"github.com/eldritchfan/fancontent/internal/model"
)

// keyPrefix roots every object key uploaded by this tool.
const keyPrefix = "fan_made_content"

// target describes one file to fetch and rehost: where it comes from,
// the object key it lands under, and how to rewrite the field that
// referenced it.
type target struct {
	sourceURL string
	key       string
	// compress marks targets eligible for PNG to JPEG transcoding.
	// Icons stay in their source format.
	compress bool
	assign   func(cdnURL string)
}

var cardImageFields = []struct {
	suffix string
	get    func(*model.Card) string
	set    func(*model.Card, string)
}{
	{"", func(c *model.Card) string { return c.ImageURL }, func(c *model.Card, u string) { c.ImageURL = u }},
	{"_back", func(c *model.Card) string { return c.BackImageURL }, func(c *model.Card, u string) { c.BackImageURL = u }},
	{"_thumb", func(c *model.Card) string { return c.ThumbnailURL }, func(c *model.Card, u string) { c.ThumbnailURL = u }},
	{"_back_thumb", func(c *model.Card) string { return c.BackThumbnailURL }, func(c *model.Card, u string) { c.BackThumbnailURL = u }},
}

// collectTargets walks the project and builds the full upload list.
// Fields whose source URL has no file extension are logged and skipped.
func collectTargets(project *model.Project) []target {
	code := project.Meta.Code
	var targets []target

	if src := project.Meta.BannerURL; src != "" {
		if ext := extension(src); ext != "" {
			targets = append(targets, target{
				sourceURL: src,
				key:       makeKey(code, "banner"+ext),
				compress:  true,
				assign:    func(u string) { project.Meta.BannerURL = u },
			})
		} else {
			slog.Warn("no file extension", "entity", code, "url", src)
		}
	}

	for i := range project.Data.Cards {
		card := &project.Data.Cards[i]
		for _, field := range cardImageFields {
			src := field.get(card)
			if src == "" {
				continue
			}
			ext := extension(src)
			if ext == "" {
				slog.Warn("no file extension", "entity", card.Code, "url", src)
				continue
			}
			set := field.set
			targets = append(targets, target{
				sourceURL: src,
				key:       makeKey(code, card.Code+field.suffix+ext),
				compress:  true,
				assign:    func(u string) { set(card, u) },
			})
		}
	}

	for i := range project.Data.Packs {
		pack := &project.Data.Packs[i]
		if t, ok := iconTarget(code, pack.Code, pack.IconURL, func(u string) { pack.IconURL = u }); ok {
			targets = append(targets, t)
		}
	}
	for i := range project.Data.EncounterSets {
		set := &project.Data.EncounterSets[i]
		if t, ok := iconTarget(code, set.Code, set.IconURL, func(u string) { set.IconURL = u }); ok {
			targets = append(targets, t)
		}
	}

	return targets
}

func iconTarget(projectCode, entityCode, src string, assign func(string)) (target, bool) {
	if src == "" {
		return target{}, false
	}
	ext := extension(src)
	if ext == "" {
		slog.Warn("no file extension", "entity", entityCode, "url", src)
		return target{}, false
	}
	return target{
		sourceURL: src,
		key:       makeKey(projectCode, "pack_"+entityCode+ext),
		assign:    assign,
	}, true
}

// cleanPath strips a querystring so extension and content-type logic
// see the bare file path.
func cleanPath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		return p[:i]
	}
	return p
}

func extension(p string) string {
	return path.Ext(cleanPath(p))
}

// contentTypeFor infers the upload content type from a source path.
// Anything that is not JSON is assumed to be an image, defaulting to
// PNG when the extension gives nothing to go on.
func contentTypeFor(p string) string {
	ext := extension(p)
	if ext == ".json" {
		return "application/json"
	}
	if ext == "" {
		return "image/png"
	}
	return "image/" + strings.TrimPrefix(ext, ".")
}

func makeKey(projectCode, file string) string {
	return keyPrefix + "/" + projectCode + "/" + cleanPath(file)
}
