package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limnkit/limn/pkg/overlay"
)

func TestLoadDefaultTheme(t *testing.T) {
	th, err := Load("default")
	require.NoError(t, err)

	assert.Equal(t, "default", th.Name)
	assert.True(t, th.IsDefault)
	assert.Equal(t, overlay.DefaultPalette(), th.Palette, "bundled default matches the built-in palette")
}

func TestLoadEmptyNameUsesDefault(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", th.Name)
}

func TestLoadBundledThemes(t *testing.T) {
	for _, name := range ListEmbeddedThemes() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.NotZero(t, th.Palette.Info.BG.A, "popup backgrounds are visible")
		})
	}
}

func TestLoadUnknownFallsBack(t *testing.T) {
	th, err := Load("no-such-theme")
	require.Error(t, err)
	require.NotNil(t, th, "fallback theme returned alongside the error")
	assert.Equal(t, "default", th.Name)
	assert.Equal(t, overlay.DefaultPalette(), th.Palette)
}

func TestParsePartialThemeKeepsDefaults(t *testing.T) {
	th, err := parse("partial", []byte("highlight: \"#00ff00\"\n"))
	require.NoError(t, err)

	assert.Equal(t, overlay.ColorGreen, th.Palette.Highlight)
	def := overlay.DefaultPalette()
	assert.Equal(t, def.Info, th.Palette.Info, "unset entries keep built-in colors")
	assert.Equal(t, def.BadgeText, th.Palette.BadgeText)
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := parse("bad", []byte("highlight: \"red\"\n"))
	assert.Error(t, err)

	_, err = parse("bad", []byte("popups:\n  error:\n    bg: \"#zz\"\n"))
	assert.Error(t, err)
}

func TestIsEmbeddedTheme(t *testing.T) {
	assert.True(t, IsEmbeddedTheme("default"))
	assert.True(t, IsEmbeddedTheme("dusk"))
	assert.True(t, IsEmbeddedTheme("mono"))
	assert.False(t, IsEmbeddedTheme("nonexistent"))
}
