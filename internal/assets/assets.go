// Package assets resolves the decorative references carried by routine items
// and the soundtrack list. A reference that cannot be resolved is replaced by
// a default and logged; it never reaches the user.
package assets

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// AssetLoadError reports a reference that could not be resolved.
type AssetLoadError struct {
	Kind string
	Ref  string
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s %q: %v", e.Kind, e.Ref, e.Err)
	}
	return fmt.Sprintf("load %s %q: unknown asset", e.Kind, e.Ref)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// Image is a pixel-art sprite reduced to a terminal glyph.
type Image struct {
	Name  string
	File  string
	Glyph string
}

// DefaultImage is substituted for unknown references.
const DefaultImage = "breathe"

var images = map[string]Image{
	"wakeup":        {Name: "wakeup", File: "images/pixel/wakeup.png", Glyph: "☀"},
	"water":         {Name: "water", File: "images/pixel/water.png", Glyph: "💧"},
	"yoga":          {Name: "yoga", File: "images/pixel/yoga.png", Glyph: "🧘"},
	"tea_journal":   {Name: "tea_journal", File: "images/pixel/tea_journal.png", Glyph: "🍵"},
	"breakfast":     {Name: "breakfast", File: "images/pixel/breakfast.png", Glyph: "🍳"},
	"study":         {Name: "study", File: "images/pixel/study.png", Glyph: "📖"},
	"lunch":         {Name: "lunch", File: "images/pixel/lunch.png", Glyph: "🍱"},
	"walk":          {Name: "walk", File: "images/pixel/walk.png", Glyph: "🌿"},
	"reflect":       {Name: "reflect", File: "images/pixel/reflect.png", Glyph: "🏅"},
	"dinner":        {Name: "dinner", File: "images/pixel/dinner.png", Glyph: "🍲"},
	"prepare_sleep": {Name: "prepare_sleep", File: "images/pixel/prepare_sleep.png", Glyph: "🌙"},
	"sleep":         {Name: "sleep", File: "images/pixel/sleep.png", Glyph: "💤"},
	"breathe":       {Name: "breathe", File: "images/pixel/breathe.png", Glyph: "✦"},
}

// LookupImage returns the image for ref, or the default image together with
// an *AssetLoadError.
func LookupImage(ref string) (Image, error) {
	if img, ok := images[ref]; ok {
		return img, nil
	}
	return images[DefaultImage], &AssetLoadError{Kind: "image", Ref: ref}
}

// Catalog resolves images and logs substitutions once per reference.
type Catalog struct {
	log    *log.Logger
	warned map[string]bool
}

// NewCatalog returns a catalog logging through l.
func NewCatalog(l *log.Logger) *Catalog {
	return &Catalog{log: l, warned: map[string]bool{}}
}

// Image always returns something drawable.
func (c *Catalog) Image(ref string) Image {
	img, err := LookupImage(ref)
	if err != nil && !c.warned[ref] {
		c.warned[ref] = true
		if c.log != nil {
			c.log.Warn("using default image", "ref", ref, "err", err)
		}
	}
	return img
}
