package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox renders content inside a rounded box, optionally with a title
func RenderBox(title string, content string) string {
	style := BoxStyle
	if title != "" {
		style = style.BorderForeground(ColorPrimary)
		titleStyled := lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Render(title)

		combined := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", content)
		return style.Render(combined)
	}
	return style.Render(content)
}

// RenderKeyValue renders a dimmed key followed by its value
func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}

// RenderKeyValueList renders key/value pairs in the given key order with
// keys padded to a common width
func RenderKeyValueList(pairs map[string]string, keys []string) string {
	maxKeyLen := 0
	for _, key := range keys {
		keyLen := lipgloss.Width(key)
		if keyLen > maxKeyLen {
			maxKeyLen = keyLen
		}
	}

	var lines []string
	for _, key := range keys {
		padded := key + strings.Repeat(" ", maxKeyLen-lipgloss.Width(key))
		lines = append(lines, RenderKeyValue(padded, pairs[key]))
	}
	return strings.Join(lines, "\n")
}

// RenderSeparator renders a horizontal separator line
func RenderSeparator(width int) string {
	if width <= 0 {
		width = GetTerminalWidth()
	}
	return DimStyle.Render(strings.Repeat("─", width))
}
