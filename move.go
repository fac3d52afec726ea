package kociemba

import (
	"strings"

	"github.com/SeamusWaldron/kociemba/internal/cube"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single face turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the move undoing this one. R becomes R', R' becomes
// R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move. The only
// legal suffixes are ' (counter-clockwise) and 2 (half turn).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation
// string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

var faceIndex = map[Face]int{
	FaceU: 0, FaceR: 1, FaceF: 2, FaceD: 3, FaceL: 4, FaceB: 5,
}

// toCubieMove converts a notation move to the generator index used by
// the move engine.
func toCubieMove(m Move) cube.Move {
	amount := 0
	switch m.Turn {
	case Double:
		amount = 1
	case CCW:
		amount = 2
	}
	return cube.Move(faceIndex[m.Face]*3 + amount)
}

// fromCubieMove converts a generator index back to notation.
func fromCubieMove(m cube.Move) Move {
	faces := [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}
	turns := [3]Turn{CW, Double, CCW}
	return Move{Face: faces[m.Face()], Turn: turns[int(m)%3]}
}
