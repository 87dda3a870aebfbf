package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"home", "cars", "dashboard", "header", "footer", "car"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStatic(t *testing.T) {
	_, err := fs.Stat(Static(), "site.css")
	assert.NoError(t, err)
}
