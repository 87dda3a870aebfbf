package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageExtension(t *testing.T) {
	ext, ok := ImageExtension("image/png")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	ext, ok = ImageExtension("IMAGE/JPEG; charset=binary")
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	_, ok = ImageExtension("application/pdf")
	assert.False(t, ok)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/bkt/cars/1/a.png", PublicURL("bkt", "cars/1/a.png"))
}
