package cubesolver

import "strings"

// stateSlots maps a row-major position 0..8 within one face of a
// state string onto the clockwise slot ring. Position 4 is the
// center and has no slot.
//
//	state:  0 1 2    slots:  0 1 2
//	        3 4 5            7 . 3
//	        6 7 8            6 5 4

// CopyState loads the cube from a 54-character state string.
//
// The string lists the faces in the order Up, Down, Front, Back,
// Right, Left, nine characters per face reading left to right, top to
// bottom. Valid color characters are W, Y, R, O, B, G; anything else
// loads as Empty and leaves the cube unsolvable.
func (c *Cube) CopyState(state string) {
	for i := 0; i < 54 && i < len(state); i++ {
		face := Face(i / 9)
		color := colorForChar(state[i])
		switch idx := uint8(i % 9); {
		case idx < 3 || idx == 6:
			c.setSticker(Location{face, idx}, color)
		case idx == 3:
			c.setSticker(Location{face, 7}, color)
		case idx == 4:
			c.setCenter(face, color)
		case idx == 5:
			c.setSticker(Location{face, 3}, color)
		case idx == 7:
			c.setSticker(Location{face, 5}, color)
		case idx == 8:
			c.setSticker(Location{face, 4}, color)
		}
	}
}

// StateString renders the cube as the 54-character state form read by
// CopyState.
func (c *Cube) StateString() string {
	var sb strings.Builder
	sb.Grow(54)
	for face := Up; face <= Left; face++ {
		for _, idx := range [9]uint8{0, 1, 2, 7, 8, 3, 6, 5, 4} {
			if idx == 8 {
				sb.WriteString(c.Center(face).String())
			} else {
				sb.WriteString(c.Sticker(Location{face, idx}).String())
			}
		}
	}
	return sb.String()
}

// String renders the cube as an unfolded net:
//
//	    U
//	L F R B
//	    D
func (c *Cube) String() string {
	var sb strings.Builder

	row := func(face Face, a, b, ch uint8) string {
		mid := c.Sticker(Location{face, b}).String()
		if b == 8 {
			mid = c.Center(face).String()
		}
		return c.Sticker(Location{face, a}).String() + mid + c.Sticker(Location{face, ch}).String()
	}

	// up face, indented
	sb.WriteString("    " + row(Up, 0, 1, 2) + "\n")
	sb.WriteString("    " + row(Up, 7, 8, 3) + "\n")
	sb.WriteString("    " + row(Up, 6, 5, 4) + "\n\n")

	// left, front, right, back faces side by side
	for _, idxs := range [3][3]uint8{{0, 1, 2}, {7, 8, 3}, {6, 5, 4}} {
		parts := make([]string, 0, 4)
		for _, face := range [4]Face{Left, Front, Right, Back} {
			parts = append(parts, row(face, idxs[0], idxs[1], idxs[2]))
		}
		sb.WriteString(strings.Join(parts, " ") + "\n")
	}
	sb.WriteString("\n")

	// down face, indented
	sb.WriteString("    " + row(Down, 0, 1, 2) + "\n")
	sb.WriteString("    " + row(Down, 7, 8, 3) + "\n")
	sb.WriteString("    " + row(Down, 6, 5, 4) + "\n")

	return sb.String()
}
