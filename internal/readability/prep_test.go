package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepDocumentSynthesizesBody(t *testing.T) {
	body, err := prepDocument([]byte(`<p>no html or body wrapper</p>`), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "body", body.Data)
	assert.Equal(t, readableBodyID, attr(body, "id"))
}

func TestPrepDocumentStripsHiddenNodes(t *testing.T) {
	body, err := prepDocument([]byte(`<html><body><div style="display:none">hidden</div><p>visible</p></body></html>`), "", nil)
	require.NoError(t, err)
	assert.Nil(t, findFirst(body, "div"))
	assert.NotNil(t, findFirst(body, "p"))
}

func TestPrepDocumentPrunesBodySiblings(t *testing.T) {
	body, err := prepDocument([]byte(`<html><head><title>t</title></head><body><p>x</p></body></html>`), "", nil)
	require.NoError(t, err)
	assert.Nil(t, body.NextSibling)
	assert.Nil(t, body.PrevSibling)
}

func TestPrepDocumentEmptyInput(t *testing.T) {
	_, err := prepDocument(nil, "", nil)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestPrepDocumentRejectsOversizedInput(t *testing.T) {
	_, err := prepDocument([]byte(`<html><body><p>a</p><p>b</p><p>c</p></body></html>`), "", &Options{MaxElemsToParse: 1})
	assert.Error(t, err)
}
