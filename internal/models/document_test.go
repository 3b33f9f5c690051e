package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DocumentCategories_Count(t *testing.T) {
	assert.Len(t, DocumentCategories, 16)
}

func Test_SetDocument_AllCategories(t *testing.T) {
	for _, cat := range DocumentCategories {
		var a Application
		a.SetDocument(cat, "https://files.example/x", "ALI_VELI - x.pdf")

		link, name := a.Document(cat)
		require.NotNil(t, link, string(cat))
		require.NotNil(t, name, string(cat))
		assert.Equal(t, "https://files.example/x", *link)
		assert.Equal(t, "ALI_VELI - x.pdf", *name)

		// no other category got touched
		for _, other := range DocumentCategories {
			if other == cat {
				continue
			}
			l, n := a.Document(other)
			assert.Nil(t, l)
			assert.Nil(t, n)
		}
	}
}

func Test_Document_UnknownCategory(t *testing.T) {
	var a Application
	a.SetDocument(DocumentCategory("bilinmeyen"), "x", "y")

	link, name := a.Document(DocumentCategory("bilinmeyen"))
	assert.Nil(t, link)
	assert.Nil(t, name)
}
