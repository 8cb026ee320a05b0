package attachment

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

var placeholderPalette = [...]string{
	"#4299e1", "#38a169", "#ed8936", "#9f7aea",
	"#f56565", "#4fd1c7", "#ed64a6", "#667eea",
}

// DefaultPlaceholderSize is the edge length in pixels used when none is requested.
const DefaultPlaceholderSize = 150

// PlaceholderColor picks the palette colour for a name from its first character.
func PlaceholderColor(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return placeholderPalette[0]
	}
	return placeholderPalette[int(r)%len(placeholderPalette)]
}

// PlaceholderSVG renders a square avatar showing the uppercased first letter of name.
// A blank name renders "?" titled "Unknown".
func PlaceholderSVG(name string, size int) []byte {
	if size <= 0 {
		size = DefaultPlaceholderSize
	}
	name = strings.TrimSpace(name)
	glyph, title := "?", "Unknown"
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		glyph, title = string(unicode.ToUpper(r)), name
	}

	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[1]d" viewBox="0 0 %[1]d %[1]d">`+
			`<title>%[2]s</title>`+
			`<rect width="100%%" height="100%%" fill="%[3]s"/>`+
			`<text x="50%%" y="50%%" dy=".35em" text-anchor="middle" fill="#ffffff" font-family="sans-serif" font-size="%[4]d">%[5]s</text>`+
			`</svg>`,
		size, html.EscapeString(title), PlaceholderColor(name), size*2/5, html.EscapeString(glyph),
	))
}
