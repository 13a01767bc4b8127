package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/pkg/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps each color to its terminal rendering.
var stickerStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("15")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("46")).Foreground(lipgloss.Color("0")),
}

func renderSticker(c cube.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

// renderFaceRow renders one two-sticker row of a face.
func renderFaceRow(s cube.State, f types.Face, row int) string {
	off := cube.SlotOffset(f) + row*2
	return renderSticker(s[off]) + renderSticker(s[off+1])
}

// renderNet renders the cube as an unfolded net:
//
//	      U U
//	      U U
//	L L | F F | R R | B B
//	L L | F F | R R | B B
//	      D D
//	      D D
func renderNet(s cube.State) string {
	pad := strings.Repeat(" ", 6) // width of one face
	var b strings.Builder

	for row := 0; row < 2; row++ {
		b.WriteString(pad + renderFaceRow(s, types.FaceU, row) + "\n")
	}
	for row := 0; row < 2; row++ {
		for _, f := range []types.Face{types.FaceL, types.FaceF, types.FaceR, types.FaceB} {
			b.WriteString(renderFaceRow(s, f, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 2; row++ {
		b.WriteString(pad + renderFaceRow(s, types.FaceD, row) + "\n")
	}

	return b.String()
}
