package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(Marigold) })

	p := Marigold
	p.Primary = "#123456"
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, lipgloss.Color("#123456"), ColorPrimary)
	assert.Equal(t, lipgloss.Color("#123456"), TextPrimaryBoldStyle.GetForeground())
}

func TestFormTheme(t *testing.T) {
	theme := FormTheme()
	require.NotNil(t, theme)
	assert.Equal(t, ColorError, theme.Focused.ErrorMessage.GetForeground())
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, Marigold.Primary, *cfg.H1.Color)
	require.NotNil(t, cfg.Code.Color)
	assert.Equal(t, Marigold.Secondary, *cfg.Code.Color)
}
