package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/state"
)

// RenderItems renders the visible list in the chosen layout. The selected
// index refers to a position within items; pass -1 for no selection.
func RenderItems(items []content.Item, selected int, layout state.Layout, th Theme, width int) string {
	if len(items) == 0 {
		return th.MutedText.Render("  Nothing to show yet.")
	}

	if layout == state.LayoutGrid && width >= 80 {
		return renderGrid(items, selected, th, width)
	}
	return renderList(items, selected, th, width)
}

func renderList(items []content.Item, selected int, th Theme, width int) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, renderLine(item, i == selected, th, width))
	}
	return strings.Join(lines, "\n")
}

func renderGrid(items []content.Item, selected int, th Theme, width int) string {
	colWidth := width / 2
	rows := make([]string, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		left := renderCell(items[i], i == selected, th, colWidth)
		right := ""
		if i+1 < len(items) {
			right = renderCell(items[i+1], i+1 == selected, th, colWidth)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	return strings.Join(rows, "\n")
}

func renderLine(item content.Item, selected bool, th Theme, width int) string {
	mark := " "
	if item.IsFavorite {
		mark = th.FavoriteMark.Render("★")
	}
	badge := th.KindBadge.Render(string(item.Kind))
	title := truncate(item.Title, max(10, width-30))
	meta := th.MutedText.Render(fmt.Sprintf("%s · %s", item.Category, item.Published.Format("Jan 2 15:04")))

	line := fmt.Sprintf("%s %s%s  %s", mark, badge, title, meta)
	if selected {
		return th.SelectedItem.Render(line)
	}
	return th.NormalItem.Render(line)
}

func renderCell(item content.Item, selected bool, th Theme, width int) string {
	mark := " "
	if item.IsFavorite {
		mark = "★"
	}
	rating := ""
	if item.HasRating() {
		rating = fmt.Sprintf(" %.1f", item.RatingOrZero())
	}
	text := fmt.Sprintf("%s %s%s\n  %s", mark, truncate(item.Title, width-6), rating,
		truncate(item.Description, width-6))

	style := th.NormalItem
	if selected {
		style = th.SelectedItem
	}
	return style.Width(width - 2).Render(text)
}

// truncate shortens a string to maxLen runes, adding an ellipsis when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
