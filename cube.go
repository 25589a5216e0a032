package cubesolver

// Face identifies one of the six cube faces.
type Face uint8

const (
	Up Face = iota
	Down
	Front
	Back
	Right
	Left
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Color represents a sticker color.
//
// Empty is reserved as the zero value so color comparisons on a
// well-formed cube are always between non-zero values. It only
// appears when an invalid state string is loaded.
type Color uint8

const (
	Empty Color = iota
	White
	Yellow
	Red
	Orange
	Blue
	Green
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return " "
	}
}

// colorForChar maps a state-string character to a Color.
// Unknown characters map to Empty.
func colorForChar(ch byte) Color {
	switch ch {
	case 'W':
		return White
	case 'Y':
		return Yellow
	case 'R':
		return Red
	case 'O':
		return Orange
	case 'B':
		return Blue
	case 'G':
		return Green
	default:
		return Empty
	}
}

// Location identifies a single non-center sticker as a face and an
// index on that face. The eight non-center stickers of a face are
// numbered clockwise from the top left:
//
//	0 1 2
//	7 . 3
//	6 5 4
//
// Even indices are corner stickers, odd indices are edge stickers.
type Location struct {
	Face Face
	Idx  uint8
}

// Bit masks selecting rows and columns of a packed face word.
// Each 8-bit slot i occupies bits (7-i)*8 .. (7-i)*8+7.
const (
	upMask        uint64 = 0xffffff0000000000 // slots 0,1,2
	rightMask     uint64 = 0x0000ffffff000000 // slots 2,3,4
	downMask      uint64 = 0x00000000ffffff00 // slots 4,5,6
	leftMask      uint64 = 0xff0000000000ffff // slots 6,7,0
	middleColMask uint64 = 0x00ff000000ff0000 // slots 1,5
	middleRowMask uint64 = 0x000000ff000000ff // slots 3,7
)

// Cube stores the complete state of a 3x3 Rubik's cube.
//
// Each face has nine stickers, but the centers are tracked separately
// because they only move under slice turns and rotations. A sticker
// color fits in 8 bits, so the eight moving stickers of a face pack
// into a single 64-bit word. Words 0-5 hold the faces in the order
// Up, Down, Front, Back, Right, Left; word 6 holds the six center
// colors in the same order, packed into slots 0-5.
type Cube struct {
	stickers [7]uint64
}

// NewCube returns a cube in the solved state.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	var centers uint64
	for i := uint64(0); i < 6; i++ {
		color := Color(i + 1)
		var face uint64
		for sticker := 0; sticker < 8; sticker++ {
			face |= uint64(color) << (sticker * 8)
		}
		c.stickers[i] = face
		centers |= uint64(color) << ((7 - i) * 8)
	}
	c.stickers[6] = centers
}

// IsSolved reports whether every sticker matches its face's center.
func (c *Cube) IsSolved() bool {
	for face := Up; face <= Left; face++ {
		center := c.Center(face)
		for idx := uint8(0); idx < 8; idx++ {
			if c.Sticker(Location{face, idx}) != center {
				return false
			}
		}
	}
	return true
}

// FaceWord returns the packed sticker word for the given face.
func (c *Cube) FaceWord(f Face) uint64 { return c.stickers[f] }

// Center returns the center color of the given face.
func (c *Cube) Center(f Face) Color {
	return Color(c.stickers[6] >> ((7 - uint8(f)) * 8) & 0xff)
}

// Sticker returns the color at the given location.
func (c *Cube) Sticker(l Location) Color {
	return Color(c.stickers[l.Face] >> ((7 - l.Idx) * 8) & 0xff)
}

// setFace overwrites the packed sticker word for the given face.
func (c *Cube) setFace(f Face, value uint64) { c.stickers[f] = value }

// setCenter overwrites the center color of the given face.
func (c *Cube) setCenter(f Face, color Color) {
	shift := (7 - uint8(f)) * 8
	mask := uint64(0xff) << shift
	c.stickers[6] = (c.stickers[6] &^ mask) | (uint64(color) << shift)
}

// setSticker overwrites the color at the given location.
func (c *Cube) setSticker(l Location, color Color) {
	shift := (7 - l.Idx) * 8
	face := c.FaceWord(l.Face)
	face &^= uint64(0xff) << shift
	face |= uint64(color) << shift
	c.setFace(l.Face, face)
}

// IsPieceSolved reports whether the piece holding the given sticker is
// in its solved position and orientation.
func (c *Cube) IsPieceSolved(loc Location) bool {
	if loc.Idx%2 == 0 {
		return c.isCornerSolved(loc)
	}
	return c.isEdgeSolved(loc)
}

// isEdgeSolved reports whether the edge at loc is solved: the sticker
// matches its center and the adjacent sticker matches its own center.
func (c *Cube) isEdgeSolved(loc Location) bool {
	if c.Center(loc.Face) != c.Sticker(loc) {
		return false
	}
	adj := c.AdjacentEdge(loc)
	return c.Center(adj.Face) == c.Sticker(adj)
}

// isCornerSolved reports whether the corner at loc is solved: all
// three of its stickers match their centers.
func (c *Cube) isCornerSolved(loc Location) bool {
	if c.Center(loc.Face) != c.Sticker(loc) {
		return false
	}
	adj0, adj1 := c.AdjacentCorner(loc)
	if c.Center(adj0.Face) != c.Sticker(adj0) {
		return false
	}
	return c.Center(adj1.Face) == c.Sticker(adj1)
}

// Turn performs a move of the given type on the requested outer face
// and returns the corresponding Move.
func (c *Cube) Turn(face Face, t MoveType) Move {
	var pieces Piece
	var cw, ccw func()
	switch face {
	case Up:
		pieces, cw, ccw = PieceUp, c.u, c.uPrime
	case Down:
		pieces, cw, ccw = PieceDown, c.d, c.dPrime
	case Front:
		pieces, cw, ccw = PieceFront, c.f, c.fPrime
	case Back:
		pieces, cw, ccw = PieceBack, c.b, c.bPrime
	case Right:
		pieces, cw, ccw = PieceRight, c.r, c.rPrime
	case Left:
		pieces, cw, ccw = PieceLeft, c.l, c.lPrime
	default:
		return Move{PieceUp, NoMove}
	}

	switch t {
	case Normal:
		cw()
	case Prime:
		ccw()
	case Double:
		cw()
		cw()
	default:
		return Move{pieces, NoMove}
	}
	return Move{pieces, t}
}

// u performs a clockwise turn of the up face.
func (c *Cube) u() {
	// turn the up face itself
	c.setFace(Up, rotateRight(c.FaceWord(Up), 16))

	// cycle the top rows of the four side faces
	toSave := c.FaceWord(Front) & upMask
	c.setFace(Front, (c.FaceWord(Front)&^upMask)|(c.FaceWord(Right)&upMask))
	c.setFace(Right, (c.FaceWord(Right)&^upMask)|(c.FaceWord(Back)&upMask))
	c.setFace(Back, (c.FaceWord(Back)&^upMask)|(c.FaceWord(Left)&upMask))
	c.setFace(Left, (c.FaceWord(Left)&^upMask)|toSave)
}

// uPrime performs a counter-clockwise turn of the up face.
func (c *Cube) uPrime() {
	c.setFace(Up, rotateLeft(c.FaceWord(Up), 16))

	toSave := c.FaceWord(Front) & upMask
	c.setFace(Front, (c.FaceWord(Front)&^upMask)|(c.FaceWord(Left)&upMask))
	c.setFace(Left, (c.FaceWord(Left)&^upMask)|(c.FaceWord(Back)&upMask))
	c.setFace(Back, (c.FaceWord(Back)&^upMask)|(c.FaceWord(Right)&upMask))
	c.setFace(Right, (c.FaceWord(Right)&^upMask)|toSave)
}

// d performs a clockwise turn of the down face.
func (c *Cube) d() {
	c.setFace(Down, rotateRight(c.FaceWord(Down), 16))

	toSave := c.FaceWord(Front) & downMask
	c.setFace(Front, (c.FaceWord(Front)&^downMask)|(c.FaceWord(Left)&downMask))
	c.setFace(Left, (c.FaceWord(Left)&^downMask)|(c.FaceWord(Back)&downMask))
	c.setFace(Back, (c.FaceWord(Back)&^downMask)|(c.FaceWord(Right)&downMask))
	c.setFace(Right, (c.FaceWord(Right)&^downMask)|toSave)
}

// dPrime performs a counter-clockwise turn of the down face.
func (c *Cube) dPrime() {
	c.setFace(Down, rotateLeft(c.FaceWord(Down), 16))

	toSave := c.FaceWord(Front) & downMask
	c.setFace(Front, (c.FaceWord(Front)&^downMask)|(c.FaceWord(Right)&downMask))
	c.setFace(Right, (c.FaceWord(Right)&^downMask)|(c.FaceWord(Back)&downMask))
	c.setFace(Back, (c.FaceWord(Back)&^downMask)|(c.FaceWord(Left)&downMask))
	c.setFace(Left, (c.FaceWord(Left)&^downMask)|toSave)
}

// f performs a clockwise turn of the front face.
//
// The strips around the F/B axis do not share an orientation, so the
// copied strips are rotated by 16 bits while moving between faces.
func (c *Cube) f() {
	c.setFace(Front, rotateRight(c.FaceWord(Front), 16))

	toSave := c.FaceWord(Up) & downMask
	c.setFace(Up, (c.FaceWord(Up)&^downMask)|((c.FaceWord(Left)&rightMask)>>16))
	c.setFace(Left, (c.FaceWord(Left)&^rightMask)|((c.FaceWord(Down)&upMask)>>16))
	c.setFace(Down, (c.FaceWord(Down)&^upMask)|rotateRight(c.FaceWord(Right)&leftMask, 16))
	c.setFace(Right, (c.FaceWord(Right)&^leftMask)|rotateRight(toSave, 16))
}

// fPrime performs a counter-clockwise turn of the front face.
func (c *Cube) fPrime() {
	c.setFace(Front, rotateLeft(c.FaceWord(Front), 16))

	toSave := c.FaceWord(Up) & downMask
	c.setFace(Up, (c.FaceWord(Up)&^downMask)|rotateLeft(c.FaceWord(Right)&leftMask, 16))
	c.setFace(Right, (c.FaceWord(Right)&^leftMask)|rotateLeft(c.FaceWord(Down)&upMask, 16))
	c.setFace(Down, (c.FaceWord(Down)&^upMask)|rotateLeft(c.FaceWord(Left)&rightMask, 16))
	c.setFace(Left, (c.FaceWord(Left)&^rightMask)|(toSave<<16))
}

// b performs a clockwise turn of the back face.
func (c *Cube) b() {
	c.setFace(Back, rotateRight(c.FaceWord(Back), 16))

	toSave := c.FaceWord(Up) & upMask
	c.setFace(Up, (c.FaceWord(Up)&^upMask)|((c.FaceWord(Right)&rightMask)<<16))
	c.setFace(Right, (c.FaceWord(Right)&^rightMask)|((c.FaceWord(Down)&downMask)<<16))
	c.setFace(Down, (c.FaceWord(Down)&^downMask)|rotateLeft(c.FaceWord(Left)&leftMask, 16))
	c.setFace(Left, (c.FaceWord(Left)&^leftMask)|rotateLeft(toSave, 16))
}

// bPrime performs a counter-clockwise turn of the back face.
func (c *Cube) bPrime() {
	c.setFace(Back, rotateLeft(c.FaceWord(Back), 16))

	toSave := c.FaceWord(Up) & upMask
	c.setFace(Up, (c.FaceWord(Up)&^upMask)|rotateRight(c.FaceWord(Left)&leftMask, 16))
	c.setFace(Left, (c.FaceWord(Left)&^leftMask)|rotateRight(c.FaceWord(Down)&downMask, 16))
	c.setFace(Down, (c.FaceWord(Down)&^downMask)|((c.FaceWord(Right)&rightMask)>>16))
	c.setFace(Right, (c.FaceWord(Right)&^rightMask)|(toSave>>16))
}

// r performs a clockwise turn of the right face.
func (c *Cube) r() {
	c.setFace(Right, rotateRight(c.FaceWord(Right), 16))

	toSave := c.FaceWord(Up) & rightMask
	c.setFace(Up, (c.FaceWord(Up)&^rightMask)|(c.FaceWord(Front)&rightMask))
	c.setFace(Front, (c.FaceWord(Front)&^rightMask)|(c.FaceWord(Down)&rightMask))
	c.setFace(Down, (c.FaceWord(Down)&^rightMask)|rotateRight(c.FaceWord(Back)&leftMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^leftMask)|rotateLeft(toSave, 32))
}

// rPrime performs a counter-clockwise turn of the right face.
func (c *Cube) rPrime() {
	c.setFace(Right, rotateLeft(c.FaceWord(Right), 16))

	toSave := c.FaceWord(Up) & rightMask
	c.setFace(Up, (c.FaceWord(Up)&^rightMask)|rotateRight(c.FaceWord(Back)&leftMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^leftMask)|rotateRight(c.FaceWord(Down)&rightMask, 32))
	c.setFace(Down, (c.FaceWord(Down)&^rightMask)|(c.FaceWord(Front)&rightMask))
	c.setFace(Front, (c.FaceWord(Front)&^rightMask)|toSave)
}

// l performs a clockwise turn of the left face.
func (c *Cube) l() {
	c.setFace(Left, rotateRight(c.FaceWord(Left), 16))

	toSave := c.FaceWord(Up) & leftMask
	c.setFace(Up, (c.FaceWord(Up)&^leftMask)|rotateRight(c.FaceWord(Back)&rightMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^rightMask)|rotateRight(c.FaceWord(Down)&leftMask, 32))
	c.setFace(Down, (c.FaceWord(Down)&^leftMask)|(c.FaceWord(Front)&leftMask))
	c.setFace(Front, (c.FaceWord(Front)&^leftMask)|toSave)
}

// lPrime performs a counter-clockwise turn of the left face.
func (c *Cube) lPrime() {
	c.setFace(Left, rotateLeft(c.FaceWord(Left), 16))

	toSave := c.FaceWord(Up) & leftMask
	c.setFace(Up, (c.FaceWord(Up)&^leftMask)|(c.FaceWord(Front)&leftMask))
	c.setFace(Front, (c.FaceWord(Front)&^leftMask)|(c.FaceWord(Down)&leftMask))
	c.setFace(Down, (c.FaceWord(Down)&^leftMask)|rotateRight(c.FaceWord(Back)&rightMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^rightMask)|rotateRight(toSave, 32))
}

// m performs a clockwise turn of the M slice (follows L).
func (c *Cube) m() {
	// rotate the centers
	toSaveCenter := c.Center(Up)
	c.setCenter(Up, c.Center(Back))
	c.setCenter(Back, c.Center(Down))
	c.setCenter(Down, c.Center(Front))
	c.setCenter(Front, toSaveCenter)

	// rotate the edge stickers
	toSave := c.FaceWord(Up) & middleColMask
	c.setFace(Up, (c.FaceWord(Up)&^middleColMask)|rotateRight(c.FaceWord(Back)&middleColMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^middleColMask)|rotateRight(c.FaceWord(Down)&middleColMask, 32))
	c.setFace(Down, (c.FaceWord(Down)&^middleColMask)|(c.FaceWord(Front)&middleColMask))
	c.setFace(Front, (c.FaceWord(Front)&^middleColMask)|toSave)
}

// mPrime performs a counter-clockwise turn of the M slice.
func (c *Cube) mPrime() {
	toSaveCenter := c.Center(Up)
	c.setCenter(Up, c.Center(Front))
	c.setCenter(Front, c.Center(Down))
	c.setCenter(Down, c.Center(Back))
	c.setCenter(Back, toSaveCenter)

	toSave := c.FaceWord(Up) & middleColMask
	c.setFace(Up, (c.FaceWord(Up)&^middleColMask)|(c.FaceWord(Front)&middleColMask))
	c.setFace(Front, (c.FaceWord(Front)&^middleColMask)|(c.FaceWord(Down)&middleColMask))
	c.setFace(Down, (c.FaceWord(Down)&^middleColMask)|rotateRight(c.FaceWord(Back)&middleColMask, 32))
	c.setFace(Back, (c.FaceWord(Back)&^middleColMask)|rotateRight(toSave, 32))
}

// e performs a clockwise turn of the E slice (follows D).
func (c *Cube) e() {
	toSaveCenter := c.Center(Front)
	c.setCenter(Front, c.Center(Left))
	c.setCenter(Left, c.Center(Back))
	c.setCenter(Back, c.Center(Right))
	c.setCenter(Right, toSaveCenter)

	toSave := c.FaceWord(Front) & middleRowMask
	c.setFace(Front, (c.FaceWord(Front)&^middleRowMask)|(c.FaceWord(Left)&middleRowMask))
	c.setFace(Left, (c.FaceWord(Left)&^middleRowMask)|(c.FaceWord(Back)&middleRowMask))
	c.setFace(Back, (c.FaceWord(Back)&^middleRowMask)|(c.FaceWord(Right)&middleRowMask))
	c.setFace(Right, (c.FaceWord(Right)&^middleRowMask)|toSave)
}

// ePrime performs a counter-clockwise turn of the E slice.
func (c *Cube) ePrime() {
	toSaveCenter := c.Center(Front)
	c.setCenter(Front, c.Center(Right))
	c.setCenter(Right, c.Center(Back))
	c.setCenter(Back, c.Center(Left))
	c.setCenter(Left, toSaveCenter)

	toSave := c.FaceWord(Front) & middleRowMask
	c.setFace(Front, (c.FaceWord(Front)&^middleRowMask)|(c.FaceWord(Right)&middleRowMask))
	c.setFace(Right, (c.FaceWord(Right)&^middleRowMask)|(c.FaceWord(Back)&middleRowMask))
	c.setFace(Back, (c.FaceWord(Back)&^middleRowMask)|(c.FaceWord(Left)&middleRowMask))
	c.setFace(Left, (c.FaceWord(Left)&^middleRowMask)|toSave)
}

// s performs a clockwise turn of the S slice (follows F).
func (c *Cube) s() {
	toSaveCenter := c.Center(Up)
	c.setCenter(Up, c.Center(Left))
	c.setCenter(Left, c.Center(Down))
	c.setCenter(Down, c.Center(Right))
	c.setCenter(Right, toSaveCenter)

	toSave := c.FaceWord(Up) & middleRowMask
	c.setFace(Up, (c.FaceWord(Up)&^middleRowMask)|((c.FaceWord(Left)&middleColMask)>>16))
	c.setFace(Left, (c.FaceWord(Left)&^middleColMask)|rotateRight(c.FaceWord(Down)&middleRowMask, 16))
	c.setFace(Down, (c.FaceWord(Down)&^middleRowMask)|((c.FaceWord(Right)&middleColMask)>>16))
	c.setFace(Right, (c.FaceWord(Right)&^middleColMask)|rotateRight(toSave, 16))
}

// sPrime performs a counter-clockwise turn of the S slice.
func (c *Cube) sPrime() {
	toSaveCenter := c.Center(Up)
	c.setCenter(Up, c.Center(Right))
	c.setCenter(Right, c.Center(Down))
	c.setCenter(Down, c.Center(Left))
	c.setCenter(Left, toSaveCenter)

	toSave := c.FaceWord(Up) & middleRowMask
	c.setFace(Up, (c.FaceWord(Up)&^middleRowMask)|rotateLeft(c.FaceWord(Right)&middleColMask, 16))
	c.setFace(Right, (c.FaceWord(Right)&^middleColMask)|rotateLeft(c.FaceWord(Down)&middleRowMask, 16))
	c.setFace(Down, (c.FaceWord(Down)&^middleRowMask)|rotateLeft(c.FaceWord(Left)&middleColMask, 16))
	c.setFace(Left, (c.FaceWord(Left)&^middleColMask)|rotateLeft(toSave, 16))
}

// Wide turns are an outer turn plus the parallel slice.

func (c *Cube) uWide()      { c.u(); c.ePrime() }
func (c *Cube) uPrimeWide() { c.uPrime(); c.e() }
func (c *Cube) dWide()      { c.d(); c.e() }
func (c *Cube) dPrimeWide() { c.dPrime(); c.ePrime() }
func (c *Cube) fWide()      { c.f(); c.s() }
func (c *Cube) fPrimeWide() { c.fPrime(); c.sPrime() }
func (c *Cube) bWide()      { c.b(); c.sPrime() }
func (c *Cube) bPrimeWide() { c.bPrime(); c.s() }
func (c *Cube) rWide()      { c.r(); c.mPrime() }
func (c *Cube) rPrimeWide() { c.rPrime(); c.m() }
func (c *Cube) lWide()      { c.l(); c.m() }
func (c *Cube) lPrimeWide() { c.lPrime(); c.mPrime() }

// Whole-cube rotations, composed from outer turns and slices. Not the
// fastest encoding, but it keeps the move palette closed.

func (c *Cube) x()      { c.r(); c.lPrime(); c.mPrime() }
func (c *Cube) xPrime() { c.rPrime(); c.l(); c.m() }
func (c *Cube) y()      { c.u(); c.dPrime(); c.ePrime() }
func (c *Cube) yPrime() { c.uPrime(); c.d(); c.e() }
func (c *Cube) z()      { c.f(); c.bPrime(); c.s() }
func (c *Cube) zPrime() { c.fPrime(); c.b(); c.sPrime() }
