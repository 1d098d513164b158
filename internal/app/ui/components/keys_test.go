package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{name: "up", binding: km.Up, keys: []string{"up", "k"}},
		{name: "down", binding: km.Down, keys: []string{"down", "j"}},
		{name: "enter", binding: km.Enter, keys: []string{"enter"}},
		{name: "chemicals", binding: km.Chemicals, keys: []string{"c"}},
		{name: "gps", binding: km.GPS, keys: []string{"g"}},
		{name: "menu", binding: km.Menu, keys: []string{"m"}},
		{name: "past missions", binding: km.PastMissions, keys: []string{"p"}},
		{name: "back", binding: km.Back, keys: []string{"esc", "backspace"}},
		{name: "tips", binding: km.ToggleTips, keys: []string{"t"}},
		{name: "quit", binding: km.Quit, keys: []string{"q"}},
		{name: "force quit", binding: km.ForceQuit, keys: []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ShortHelp(), km.Quit)
	assert.Contains(t, km.ShortHelp(), km.Back)
	assert.Len(t, km.FullHelp(), 3)

	total := 0
	for _, column := range km.FullHelp() {
		total += len(column)
	}

	assert.Equal(t, 11, total)
}
