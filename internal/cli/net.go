package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// stickerColors maps sticker colors to terminal background colors.
var stickerColors = map[gocube.Color]lipgloss.Color{
	gocube.White:  lipgloss.Color("15"),
	gocube.Yellow: lipgloss.Color("11"),
	gocube.Green:  lipgloss.Color("34"),
	gocube.Blue:   lipgloss.Color("21"),
	gocube.Red:    lipgloss.Color("196"),
	gocube.Orange: lipgloss.Color("208"),
}

// renderSticker draws one facelet. Without color it matches the letter
// used by Cube.String.
func renderSticker(c gocube.Color, color bool) string {
	if !color {
		return c.String() + " "
	}
	bg, ok := stickerColors[c]
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(bg).Render("  ")
}

// renderNet draws the cube as an unfolded net with U on top, then
// L F R B side by side, then D.
func renderNet(c *gocube.Cube, color bool) string {
	f := c.Facelets()
	var b strings.Builder

	pad := strings.Repeat(" ", 6)
	writeRows := func(faces ...gocube.NetFace) {
		for row := 0; row < 3; row++ {
			if len(faces) == 1 {
				b.WriteString(pad)
			}
			for _, face := range faces {
				for col := 0; col < 3; col++ {
					b.WriteString(renderSticker(f[face][row*3+col], color))
				}
			}
			b.WriteString("\n")
		}
	}

	writeRows(gocube.NetU)
	writeRows(gocube.NetL, gocube.NetF, gocube.NetR, gocube.NetB)
	writeRows(gocube.NetD)
	return b.String()
}

// caretLine underlines the rune at 1-based pos in input.
func caretLine(input string, pos int) string {
	n := pos - 1
	if n < 0 {
		n = 0
	}
	if end := len([]rune(input)); n > end {
		n = end
	}
	return strings.Repeat(" ", n) + "^"
}
