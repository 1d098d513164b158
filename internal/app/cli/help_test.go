package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_renderHelp(t *testing.T) {
	view := renderHelp()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "sewerlink")
	assert.Contains(t, view, "Usage:")
	assert.Contains(t, view, "Examples:")

	for _, c := range commands {
		assert.Contains(t, view, c.command)
		assert.Contains(t, view, c.summary)
	}

	for _, e := range examples {
		assert.Contains(t, view, e.command)
	}

	assert.Contains(t, view, "--fixtures")
}
