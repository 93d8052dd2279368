// Package ui renders the dashboard. Presentation only - all state comes in
// as arguments and nothing here dispatches transitions.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AbhishekSharma9161/curio/internal/state"
)

// Theme bundles the styles for one color scheme.
type Theme struct {
	Header          Style
	StatusBar       Style
	SectionActive   Style
	SectionInactive Style
	SelectedItem    Style
	NormalItem      Style
	MutedText       Style
	ErrorText       Style
	FavoriteMark    Style
	KindBadge       Style
	Notification    Style
}

// Style aliases lipgloss.Style to keep the struct readable.
type Style = lipgloss.Style

// Light is the default scheme.
func Light() Theme {
	return Theme{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1),
		StatusBar:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("252")).Padding(0, 1),
		SectionActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Underline(true),
		SectionInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		SelectedItem:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1),
		NormalItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Padding(0, 1),
		MutedText:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		ErrorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		FavoriteMark:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		KindBadge:       lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Background(lipgloss.Color("254")).Padding(0, 1).MarginRight(1),
		Notification:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("222")).Padding(0, 1),
	}
}

// Dark is the dark scheme.
func Dark() Theme {
	return Theme{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("54")).Padding(0, 1),
		StatusBar:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Padding(0, 1),
		SectionActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true),
		SectionInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SelectedItem:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("54")).Padding(0, 1),
		NormalItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		MutedText:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		FavoriteMark:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		KindBadge:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Background(lipgloss.Color("238")).Padding(0, 1).MarginRight(1),
		Notification:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("179")).Padding(0, 1),
	}
}

// For returns the theme matching the persisted theme value.
func For(theme state.Theme) Theme {
	if theme == state.ThemeDark {
		return Dark()
	}
	return Light()
}
