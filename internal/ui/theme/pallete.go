package theme

import (
	"fmt"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

const DefaultFlavour = "mocha"

var theme = catppuccin.Mocha

// SetFlavour switches the palette to the named catppuccin flavour
// (latte, frappe, macchiato, mocha).
func SetFlavour(name string) error {
	if name == "" {
		name = DefaultFlavour
	}
	flavour := catppuccin.Variant(name)
	if flavour == nil {
		return fmt.Errorf("unknown flavour %q", name)
	}
	theme = flavour
	return nil
}

func Flavour() string { return theme.Name() }

func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Peach() lipgloss.Color    { return lipgloss.Color(theme.Peach().Hex) }
func Yellow() lipgloss.Color   { return lipgloss.Color(theme.Yellow().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Teal() lipgloss.Color     { return lipgloss.Color(theme.Teal().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Lavender() lipgloss.Color { return lipgloss.Color(theme.Lavender().Hex) }
func Mauve() lipgloss.Color    { return lipgloss.Color(theme.Mauve().Hex) }
func Text() lipgloss.Color     { return lipgloss.Color(theme.Text().Hex) }
func Subtext0() lipgloss.Color { return lipgloss.Color(theme.Subtext0().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Overlay1() lipgloss.Color { return lipgloss.Color(theme.Overlay1().Hex) }
func Surface0() lipgloss.Color { return lipgloss.Color(theme.Surface0().Hex) }
func Surface1() lipgloss.Color { return lipgloss.Color(theme.Surface1().Hex) }
func Surface2() lipgloss.Color { return lipgloss.Color(theme.Surface2().Hex) }
func Mantle() lipgloss.Color   { return lipgloss.Color(theme.Mantle().Hex) }
