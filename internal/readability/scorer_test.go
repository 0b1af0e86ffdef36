package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeNodeTagBaseline(t *testing.T) {
	body := parseFragment(t, `<div class="x"></div>`)
	div := findFirst(body, "div")
	scores := newScoreStore()
	initializeNode(div, FlagNone, scores)
	assert.Equal(t, 5.0, scores.get(div))
}

func TestInitializeNodeNegativeTags(t *testing.T) {
	body := parseFragment(t, `<ul></ul>`)
	ul := findFirst(body, "ul")
	scores := newScoreStore()
	initializeNode(ul, FlagNone, scores)
	assert.Equal(t, -3.0, scores.get(ul))
}

func TestSelectScorableRetagsLeafDiv(t *testing.T) {
	body := parseFragment(t, `<div id="x">some plain text with no block children at all here</div>`)
	scores := newScoreStore()
	toScore := selectScorable(body, FlagAll, scores, nil)
	found := false
	for _, n := range toScore {
		if n.Data == "p" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSelectScorableStripsUnlikely(t *testing.T) {
	body := parseFragment(t, `<div id="sidebar-ads">skip me</div><p>keep this paragraph with enough text in it to count</p>`)
	scores := newScoreStore()
	toScore := selectScorable(body, FlagAll, scores, nil)
	assert.Nil(t, findFirst(body, "div"))
	assert.Len(t, toScore, 1)
}

func TestScoreParasProducesContent(t *testing.T) {
	body := parseFragment(t, `<div><p>This is a long enough paragraph to be scored, with several, commas, in, it.</p></div>`)
	scores := newScoreStore()
	toScore := selectScorable(body, FlagAll, scores, nil)
	content := scoreParas(toScore, body, FlagAll, scores)
	assert.Equal(t, "div", content.Data)
	assert.Contains(t, InnerText(content, true), "long enough paragraph")
}
