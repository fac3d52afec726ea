// Package render draws facelet states in the terminal as an unfolded
// cube net with lipgloss-colored stickers.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// faceStyles colors each sticker by the face letter of its home
// center in the canonical URFDLB alphabet.
var faceStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")), // white
	'R': lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")), // red
	'F': lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),  // green
	'D': lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("235")), // yellow
	'L': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")), // orange
	'B': lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),  // blue
}

var plainStyle = lipgloss.NewStyle()

func sticker(c byte) string {
	if s, ok := faceStyles[c]; ok {
		return s.Render(" " + string(c) + " ")
	}
	return plainStyle.Render(" " + string(c) + " ")
}

// face offsets in the 54-char string, URFDLB order.
const (
	offU = 0
	offR = 9
	offF = 18
	offD = 27
	offL = 36
	offB = 45
)

func faceRow(facelets string, off, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(sticker(facelets[off+row*3+col]))
	}
	return b.String()
}

// Net renders the classic unfolded layout:
//
//	    U
//	L F R B
//	    D
//
// The input must already be a valid 54-sticker string.
func Net(facelets string) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(facelets, offU, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(faceRow(facelets, offL, row))
		b.WriteString(faceRow(facelets, offF, row))
		b.WriteString(faceRow(facelets, offR, row))
		b.WriteString(faceRow(facelets, offB, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(facelets, offD, row))
		b.WriteString("\n")
	}
	return b.String()
}
