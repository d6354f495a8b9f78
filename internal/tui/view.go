package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const selectionPrefix = ">> "

func (m *Model) View() string {
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return ""
	}

	lay := computeLayout(m.windowWidth, m.windowHeight)

	// Start from a blank frame and splice each region in at its rect.
	frame := strings.Repeat("\n", max(m.windowHeight-1, 0))
	frame = spliceAt(frame, m.help.View(m.modeKeys()), lay.Help.X, lay.Help.Y)
	frame = spliceAt(frame, m.listView(lay.List), lay.List.X, lay.List.Y)

	if m.showPopup {
		area := centeredRect(popupWidthPercent, popupHeightPercent,
			Rect{X: 0, Y: 0, W: m.windowWidth, H: m.windowHeight})
		frame = dimColors(frame, popupDimFactor)
		frame = spliceAt(frame, m.popupView(area), area.X, area.Y)
	}

	return frame
}

// modeKeys returns the help bindings for the active input mode.
func (m *Model) modeKeys() help.KeyMap {
	if m.mode == modeEditing {
		return editingKeys{m.keys}
	}
	return normalKeys{m.keys}
}

// listView renders the bordered item list sized exactly to r.
func (m *Model) listView(r Rect) string {
	if r.W < 2 || r.H < 2 {
		return ""
	}
	inner := r.W - 2

	var b strings.Builder
	b.WriteString(boxTop("TODO List", inner, borderStyle, titleStyle))

	items := m.list.Items()
	selected, hasSelection := m.list.Selected()
	rows := r.H - 2
	for row := 0; row < rows; row++ {
		idx := m.scrollOffset + row
		var line string
		switch {
		case len(items) == 0 && row == 0:
			line = placeholderStyle.Render("No items")
		case idx < len(items):
			text := truncateText(items[idx].Text, inner-len(selectionPrefix))
			if hasSelection && idx == selected {
				line = selectionPrefix + selectedItemStyle.Render(text)
			} else {
				line = strings.Repeat(" ", len(selectionPrefix)) + normalItemStyle.Render(text)
			}
		}
		b.WriteString(boxRow(line, inner, borderStyle))
	}

	b.WriteString(boxBottom(inner, borderStyle))
	return b.String()
}

// popupView renders the text-entry overlay sized exactly to r. The first
// content row carries the buffer; the simulated cursor cell lands at the
// column popupCursor reports.
func (m *Model) popupView(r Rect) string {
	if r.W < 2 || r.H < 2 {
		return ""
	}
	inner := r.W - 2

	var b strings.Builder
	b.WriteString(boxTop("Add TODO", inner, popupBorderStyle, popupTitleStyle))

	rows := r.H - 2
	for row := 0; row < rows; row++ {
		var line string
		if row == 0 {
			line = m.inputLine(inner)
		}
		b.WriteString(boxRow(line, inner, popupBorderStyle))
	}

	b.WriteString(boxBottom(inner, popupBorderStyle))
	return b.String()
}

// inputLine renders the buffer plus the cursor cell, dropping leading runes
// once the text outgrows the row so the cursor stays visible.
func (m *Model) inputLine(inner int) string {
	text := m.editor.Value()
	if visible := inner - 1; visible >= 0 && m.editor.Width() > visible {
		runes := []rune(text)
		text = string(runes[len(runes)-visible:])
	}
	return inputStyle.Render(text) + cursorStyle.Render(" ")
}

// boxTop draws "┌ Title ────┐" with inner cells between the corners,
// embedding the title in the border the way the main list box does.
func boxTop(title string, inner int, border, titleStyle lipgloss.Style) string {
	t := truncateText(title, inner-2)
	fill := inner - 2 - utf8.RuneCountInString(t)
	if t == "" || fill < 0 {
		return border.Render("┌"+strings.Repeat("─", inner)+"┐") + "\n"
	}
	return border.Render("┌") + " " + titleStyle.Render(t) + " " +
		border.Render(strings.Repeat("─", fill)+"┐") + "\n"
}

// boxRow draws one bordered content row padded (or clipped) to inner cells.
func boxRow(content string, inner int, border lipgloss.Style) string {
	if w := visibleWidth(content); w < inner {
		content += strings.Repeat(" ", inner-w)
	} else if w > inner {
		content = truncateAnsi(content, inner)
	}
	return border.Render("│") + content + border.Render("│") + "\n"
}

func boxBottom(inner int, border lipgloss.Style) string {
	return border.Render("└" + strings.Repeat("─", inner) + "┘")
}

// truncateText clips s to maxLen runes, with an ellipsis when there is room.
func truncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
