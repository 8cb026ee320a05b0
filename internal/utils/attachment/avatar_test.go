package attachment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderColor(t *testing.T) {
	// 'A' = 65, 65 % 8 = 1
	assert.Equal(t, "#38a169", PlaceholderColor("Ali"))
	// 'H' = 72, 72 % 8 = 0
	assert.Equal(t, "#4299e1", PlaceholderColor("Hana"))
	assert.Equal(t, "#4299e1", PlaceholderColor(""))
	assert.Equal(t, PlaceholderColor("Sara"), PlaceholderColor("Samir"))
}

func TestPlaceholderSVG(t *testing.T) {
	svg := string(PlaceholderSVG("ali", 100))

	assert.Contains(t, svg, `width="100"`)
	assert.Contains(t, svg, `fill="#38a169"`)
	assert.Contains(t, svg, `>A</text>`)
	assert.Contains(t, svg, `<title>ali</title>`)
	assert.Contains(t, svg, `font-size="40"`)
}

func TestPlaceholderSVG_BlankName(t *testing.T) {
	svg := string(PlaceholderSVG("   ", 0))

	assert.Contains(t, svg, `>?</text>`)
	assert.Contains(t, svg, `<title>Unknown</title>`)
	assert.Contains(t, svg, `width="150"`)
}

func TestPlaceholderSVG_EscapesName(t *testing.T) {
	svg := string(PlaceholderSVG("<b>", 10))

	assert.Contains(t, svg, `<title>&lt;b&gt;</title>`)
	assert.Contains(t, svg, `>&lt;</text>`)
}
