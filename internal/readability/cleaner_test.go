package readability

import (
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/stretchr/testify/assert"
)

func TestCleanRemovesTagExceptVideo(t *testing.T) {
	body := parseFragment(t, `<div><object data="http://www.youtube.com/x"></object><object data="ad.swf"></object></div>`)
	div := findFirst(body, "div")
	clean(div, "object")
	objects := htmlquery.Find(div, ".//object")
	if assert.Len(t, objects, 1) {
		assert.Contains(t, attr(objects[0], "data"), "youtube")
	}
}

func TestCleanStylesStripsRecursively(t *testing.T) {
	body := parseFragment(t, `<div style="color:red"><span style="color:blue">x</span></div>`)
	div := findFirst(body, "div")
	cleanStyles(div)
	assert.Equal(t, "", attr(div, "style"))
	assert.Equal(t, "", attr(findFirst(div, "span"), "style"))
}

func TestCleanHeadersDropsNegativeWeight(t *testing.T) {
	body := parseFragment(t, `<div><h1 class="comment">Title</h1></div>`)
	div := findFirst(body, "div")
	cleanHeaders(div, FlagAll)
	assert.Nil(t, findFirst(div, "h1"))
}

func TestCleanConditionallyNoOpWithoutFlag(t *testing.T) {
	body := parseFragment(t, `<div><table><tr><td>x</td></tr></table></div>`)
	div := findFirst(body, "div")
	scores := newScoreStore()
	cleanConditionally(div, "table", FlagNone, scores)
	assert.NotNil(t, findFirst(div, "table"))
}
