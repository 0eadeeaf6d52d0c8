package app

import (
	"image/color"

	"matchline/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MatchTheme tints the default theme with the board's colors.
type MatchTheme struct{}

var _ fyne.Theme = (*MatchTheme)(nil)

func (t *MatchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Blue
	case theme.ColorNameSelection, theme.ColorNameHover:
		return colorutil.ActiveFill
	case theme.ColorNameError:
		return colorutil.Red
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *MatchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *MatchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *MatchTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return 15 // Labels sit inside fixed boxes
	}
	return theme.DefaultTheme().Size(name)
}
