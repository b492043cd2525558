package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var greyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// overlayAt draws popup over base with its top-left corner at column x, row y.
// Base lines the popup covers lose their colors.
func overlayAt(base, popup string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")
	popupWidth := lipgloss.Width(popup)

	for len(baseLines) < y+len(popupLines) {
		baseLines = append(baseLines, "")
	}

	for i, pl := range popupLines {
		row := y + i
		plain := []rune(ansiRE.ReplaceAllString(baseLines[row], ""))
		for len(plain) < x+popupWidth {
			plain = append(plain, ' ')
		}
		left := string(plain[:x])
		right := string(plain[x+popupWidth:])
		pad := strings.Repeat(" ", max(popupWidth-lipgloss.Width(pl), 0))
		baseLines[row] = greyStyle.Render(left) + pl + pad + greyStyle.Render(right)
	}
	return strings.Join(baseLines, "\n")
}

// overlayCenter draws popup centred over base
func overlayCenter(base, popup string, width, height int) string {
	x := max((width-lipgloss.Width(popup))/2, 0)
	y := max((height-lipgloss.Height(popup))/2, 0)
	return overlayAt(base, popup, x, y)
}
