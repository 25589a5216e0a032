package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chintanlad10/cubesolver"
)

// Sticker styles, one per color.
var stickerStyles = map[cubesolver.Color]lipgloss.Style{
	cubesolver.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	cubesolver.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("235")),
	cubesolver.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	cubesolver.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
	cubesolver.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubesolver.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("235")),
}

var emptyStickerStyle = lipgloss.NewStyle().Background(lipgloss.Color("240"))

// sticker renders one colored sticker cell.
func sticker(c cubesolver.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		style = emptyStickerStyle
	}
	return style.Render(" " + c.String() + " ")
}

// renderCube renders the cube as a colored unfolded net.
func renderCube(c *cubesolver.Cube) string {
	var sb strings.Builder

	face := func(f cubesolver.Face, idxs [3]uint8) string {
		var row strings.Builder
		for _, idx := range idxs {
			if idx == 8 {
				row.WriteString(sticker(c.Center(f)))
			} else {
				row.WriteString(sticker(c.Sticker(cubesolver.Location{Face: f, Idx: idx})))
			}
		}
		return row.String()
	}

	indent := strings.Repeat(" ", 9)
	rows := [3][3]uint8{{0, 1, 2}, {7, 8, 3}, {6, 5, 4}}

	for _, idxs := range rows {
		sb.WriteString(indent + face(cubesolver.Up, idxs) + "\n")
	}
	for _, idxs := range rows {
		for _, f := range [4]cubesolver.Face{cubesolver.Left, cubesolver.Front, cubesolver.Right, cubesolver.Back} {
			sb.WriteString(face(f, idxs))
		}
		sb.WriteString("\n")
	}
	for _, idxs := range rows {
		sb.WriteString(indent + face(cubesolver.Down, idxs) + "\n")
	}

	return sb.String()
}
