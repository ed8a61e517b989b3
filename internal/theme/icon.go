package theme

import (
	"html"
	"strings"
)

// IconOptions carries per-call details for an icon.
type IconOptions struct {
	Title string
}

// IconRenderer turns a list of icon classes into markup.
type IconRenderer interface {
	RenderIcon(classes []string, opts IconOptions) string
}

// IconRendererFunc adapts a plain function to IconRenderer.
type IconRendererFunc func(classes []string, opts IconOptions) string

// RenderIcon calls f.
func (f IconRendererFunc) RenderIcon(classes []string, opts IconOptions) string {
	return f(classes, opts)
}

// SpanRenderer emits an empty HTML span carrying the classes, the shape
// icon fonts such as glyphicons expect.
type SpanRenderer struct{}

// RenderIcon implements IconRenderer.
func (SpanRenderer) RenderIcon(classes []string, opts IconOptions) string {
	return ElementRenderer{Tag: "span"}.RenderIcon(classes, opts)
}

// ElementRenderer emits an empty element of the given tag carrying the classes,
// e.g. <i class="..."></i> for Semantic UI or Font Awesome.
type ElementRenderer struct {
	Tag string
}

// RenderIcon implements IconRenderer.
func (e ElementRenderer) RenderIcon(classes []string, opts IconOptions) string {
	tag := e.Tag
	if tag == "" {
		tag = "span"
	}
	var b strings.Builder
	b.WriteString("<" + tag + ` class="`)
	b.WriteString(html.EscapeString(strings.Join(classes, " ")))
	b.WriteString(`"`)
	if opts.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(html.EscapeString(opts.Title))
		b.WriteString(`"`)
	}
	b.WriteString("></" + tag + ">")
	return b.String()
}

// GlyphRenderer maps icon classes to terminal glyphs. The first class with a
// known glyph wins; Fallback is returned when none match.
type GlyphRenderer struct {
	Glyphs   map[string]string
	Fallback string
}

// DefaultGlyphs covers the icon classes used by the built-in presets.
func DefaultGlyphs() map[string]string {
	return map[string]string{
		"glyphicon-chevron-up":     "▲",
		"glyphicon-chevron-down":   "▼",
		"glyphicon-menu-hamburger": "≡",
		"glyphicon-step-backward":  "«",
		"glyphicon-chevron-left":   "‹",
		"glyphicon-chevron-right":  "›",
		"glyphicon-step-forward":   "»",
		"angle double left icon":   "«",
		"left chevron icon":        "‹",
		"right chevron icon":       "›",
		"angle double right icon":  "»",
		"up":                       "▲",
		"down":                     "▼",
		"sidebar":                  "≡",
	}
}

// ASCIIGlyphs is the fallback mapping for terminals without unicode support.
func ASCIIGlyphs() map[string]string {
	return map[string]string{
		"glyphicon-chevron-up":     "^",
		"glyphicon-chevron-down":   "v",
		"glyphicon-menu-hamburger": "=",
		"glyphicon-step-backward":  "<<",
		"glyphicon-chevron-left":   "<",
		"glyphicon-chevron-right":  ">",
		"glyphicon-step-forward":   ">>",
		"angle double left icon":   "<<",
		"left chevron icon":        "<",
		"right chevron icon":       ">",
		"angle double right icon":  ">>",
		"up":                       "^",
		"down":                     "v",
		"sidebar":                  "=",
	}
}

// NewGlyphRenderer returns a GlyphRenderer over the default unicode glyphs,
// or plain ASCII when unicode is false.
func NewGlyphRenderer(unicode bool) GlyphRenderer {
	if unicode {
		return GlyphRenderer{Glyphs: DefaultGlyphs()}
	}
	return GlyphRenderer{Glyphs: ASCIIGlyphs()}
}

// RenderIcon implements IconRenderer. Multi-word classes ("chevron up icon")
// are matched word by word as well as whole.
func (g GlyphRenderer) RenderIcon(classes []string, _ IconOptions) string {
	for _, class := range classes {
		if glyph, ok := g.Glyphs[class]; ok {
			return glyph
		}
		for _, word := range strings.Fields(class) {
			if glyph, ok := g.Glyphs[word]; ok {
				return glyph
			}
		}
	}
	return g.Fallback
}
