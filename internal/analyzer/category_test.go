package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMediaType(t *testing.T) {
	tests := []struct {
		code int
		want Category
	}{
		{0, CategoryText},
		{1, CategoryImage},
		{2, CategoryAudio},
		{3, CategoryVideo},
		{4, CategoryContact},
		{5, CategoryLocation},
		{9, CategoryDocument},
		{13, CategoryGIF},
		{20, CategorySticker},
		{777, CategoryOther},
		{6, CategoryOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMediaType(tt.code), "code %d", tt.code)
	}
}

func TestNormalizeRawTypeAliases(t *testing.T) {
	// Several raw provider codes collapse onto the same canonical bucket.
	assert.Equal(t, NormalizeRawType(2), NormalizeRawType(8))
	assert.Equal(t, NormalizeRawType(2), NormalizeRawType(14))
	assert.Equal(t, NormalizeRawType(9), NormalizeRawType(7))
	assert.Equal(t, NormalizeRawType(9), NormalizeRawType(42))
	assert.Equal(t, NormalizeRawType(1), NormalizeRawType(15))
	assert.Equal(t, NormalizeRawType(3), NormalizeRawType(26))

	// Both mappings resolve into the same category set.
	assert.Equal(t, CategoryAudio, ClassifyMediaType(NormalizeRawType(14)))
	assert.Equal(t, CategoryVideo, ClassifyMediaType(NormalizeRawType(26)))

	// Unknown raw codes ingest as text.
	assert.Equal(t, 0, NormalizeRawType(999))
}

func TestCategoryStrings(t *testing.T) {
	assert.Equal(t, "Text", CategoryText.String())
	assert.Equal(t, "GIF", CategoryGIF.String())
	assert.Equal(t, "Other", Category(42).String())
	assert.Len(t, Categories, 10)
}
