package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnlikelyRequiresFlag(t *testing.T) {
	body := parseFragment(t, `<div id="comment-123">x</div>`)
	div := findFirst(body, "div")
	assert.False(t, isUnlikely(div, FlagNone))
	assert.True(t, isUnlikely(div, FlagAll))
}

func TestIsUnlikelyMaybeCandidateOverrides(t *testing.T) {
	body := parseFragment(t, `<div id="comment-main-article">x</div>`)
	div := findFirst(body, "div")
	// "comment" matches unlikely, but "main"/"article" match maybe-candidate.
	assert.False(t, isUnlikely(div, FlagAll))
}

func TestIsUnlikelyNeverTrueForBody(t *testing.T) {
	body := parseFragment(t, `x`)
	setAttr(body, "id", "sidebar-comment")
	assert.False(t, isUnlikely(body, FlagAll))
}

func TestScoreStoreReadability(t *testing.T) {
	body := parseFragment(t, `<div>x</div>`)
	div := findFirst(body, "div")
	scores := newScoreStore()
	assert.False(t, scores.isReadable(div))
	scores.set(div, 5)
	assert.True(t, scores.isReadable(div))
	assert.Equal(t, 5.0, scores.get(div))
	scores.add(div, 2)
	assert.Equal(t, 7.0, scores.get(div))
}
