package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestConvertBRsSplitsOnRuns(t *testing.T) {
	body := parseFragment(t, `<div>one<br><br>two<br>three</div>`)
	div := findFirst(body, "div")
	result := convertBRs(div)

	paras := elementChildren(result)
	if assert.Len(t, paras, 3) {
		assert.Equal(t, "p", paras[0].Data)
		assert.Equal(t, "p", paras[1].Data)
		assert.Equal(t, "p", paras[2].Data)
	}
	assert.Contains(t, render(t, result), "one")
	assert.Contains(t, render(t, result), "two")
	assert.Contains(t, render(t, result), "three")
}

func TestConvertBRsLeavesNonBRAlone(t *testing.T) {
	body := parseFragment(t, `<div><p>already a paragraph</p></div>`)
	div := findFirst(body, "div")
	result := convertBRs(div)
	assert.Equal(t, "div", result.Data)
	assert.Equal(t, "p", findFirst(result, "p").Data)
}

func TestConvertBRsPreservesNonBRChildren(t *testing.T) {
	body := parseFragment(t, `<div>a<br>b<em>c</em>d</div>`)
	div := findFirst(body, "div")
	result := convertBRs(div)
	assert.NotNil(t, findFirst(result, "em"))
}

func TestParagraphizeTextWrapsFragments(t *testing.T) {
	body := parseFragment(t, `<div>lead<img src="x.png">trail</div>`)
	div := findFirst(body, "div")
	created := paragraphizeText(div)
	assert.Len(t, created, 2)
	for _, p := range created {
		assert.Equal(t, "p", p.Data)
	}
}

func TestCloneNodePreservesStructure(t *testing.T) {
	body := parseFragment(t, `<div class="x"><span>hi</span></div>`)
	div := findFirst(body, "div")
	clone := cloneNode(div)
	assert.Equal(t, "x", attr(clone, "class"))
	assert.NotNil(t, findFirst(clone, "span"))
	assert.Nil(t, clone.Parent)
}
