package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCatalogKey_BareKey(t *testing.T) {
	key, ok := ExtractCatalogKey("OL123456W")
	assert.True(t, ok)
	assert.Equal(t, "OL123456W", key)
}

func TestExtractCatalogKey_FullURL(t *testing.T) {
	key, ok := ExtractCatalogKey("https://openlibrary.org/works/OL123456W")
	assert.True(t, ok)
	assert.Equal(t, "OL123456W", key)
}

func TestExtractCatalogKey_URLAndBareKeyAgree(t *testing.T) {
	fromURL, ok := ExtractCatalogKey("https://openlibrary.org/works/OL123456W")
	assert.True(t, ok)

	fromKey, ok2 := ExtractCatalogKey("OL123456W")
	assert.True(t, ok2)

	assert.Equal(t, fromURL, fromKey)
}

func TestExtractCatalogKey_EditionKey(t *testing.T) {
	key, ok := ExtractCatalogKey("/books/OL9674499M")
	assert.True(t, ok)
	assert.Equal(t, "OL9674499M", key)
}

func TestExtractCatalogKey_RejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "12345", "OLW", "openlibrary.org/works/abc", "ol123w"} {
		_, ok := ExtractCatalogKey(raw)
		assert.False(t, ok, "input %q should not normalize", raw)
	}
}

func TestCoverURLFromID(t *testing.T) {
	assert.Equal(t, "https://covers.openlibrary.org/b/id/8739161-M.jpg", CoverURLFromID(8739161))
	assert.Empty(t, CoverURLFromID(0))
}
