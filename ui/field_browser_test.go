package ui

import (
	"strings"
	"testing"

	"nifti-savior/nifti"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBrowser(t *testing.T) FieldBrowser {
	header, err := nifti.NewDefault()
	require.NoError(t, err)
	return CreateFieldBrowser("brain.nii", header)
}

func press(b FieldBrowser, key string) FieldBrowser {
	model, _ := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return model.(FieldBrowser)
}

func TestFieldBrowserMovement(t *testing.T) {
	b := createBrowser(t)
	b = press(b, "k")
	assert.Equal(t, 0, b.Cursor())

	b = press(press(b, "j"), "j")
	assert.Equal(t, 2, b.Cursor())

	b = press(b, "G")
	assert.Equal(t, len(b.rows)-1, b.Cursor())
	b = press(b, "j")
	assert.Equal(t, len(b.rows)-1, b.Cursor())

	b = press(b, "g")
	assert.Equal(t, 0, b.Cursor())
}

func TestFieldBrowserScroll(t *testing.T) {
	b := createBrowser(t)
	model, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	b = model.(FieldBrowser)
	for i := 0; i < 8; i++ {
		b = press(b, "j")
	}
	view := b.View()
	assert.Contains(t, view, "> "+b.rows[8][0])
	assert.NotContains(t, view, " "+b.rows[0][0]+" ")
}

func TestFieldBrowserViewMode(t *testing.T) {
	b := createBrowser(t)
	assert.True(t, strings.Contains(b.View(), "sizeof_hdr"))

	b = press(b, "d")
	assert.Equal(t, ViewModeDescription, b.ViewMode())
	assert.Contains(t, b.View(), "datatype: uint8")

	b = press(b, "d")
	assert.Equal(t, ViewModeValues, b.ViewMode())
}

func TestFieldBrowserQuit(t *testing.T) {
	b := createBrowser(t)
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFieldBrowserUnknownViewMode(t *testing.T) {
	b := createBrowser(t)
	b.viewMode = "raw"
	assert.Panics(t, func() { _ = b.View() })
}
