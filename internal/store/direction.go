package store

import "strings"

// Direction is the way MoveClass shifts a class by one position.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
)

// ParseDirection accepts "u"/"up" and "d"/"down". Anything else yields
// NoDirection, which MoveClass rejects once the class itself has resolved.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "u", "up":
		return Up
	case "d", "down":
		return Down
	}
	return NoDirection
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}
