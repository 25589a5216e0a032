package cubesolver

import (
	"math/rand"
	"strings"
	"testing"
)

func TestStateString_Solved(t *testing.T) {
	c := NewCube()
	want := "WWWWWWWWW" + "YYYYYYYYY" + "RRRRRRRRR" + "OOOOOOOOO" + "BBBBBBBBB" + "GGGGGGGGG"
	if got := c.StateString(); got != want {
		t.Errorf("StateString = %q, want %q", got, want)
	}
}

func TestCopyState_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		c := NewCube()
		c.ReadMoves(newScramble(DefaultScrambleLength, rng.Intn))

		loaded := NewCube()
		loaded.CopyState(c.StateString())

		for face := Up; face <= Left; face++ {
			if loaded.Center(face) != c.Center(face) {
				t.Fatalf("center %v differs after round trip", face)
			}
			for idx := uint8(0); idx < 8; idx++ {
				loc := Location{face, idx}
				if loaded.Sticker(loc) != c.Sticker(loc) {
					t.Fatalf("sticker %v differs after round trip", loc)
				}
			}
		}
	}
}

func TestCopyState_UnknownCharactersBecomeEmpty(t *testing.T) {
	c := NewCube()
	c.CopyState(strings.Repeat("?", 54))
	if c.Sticker(Location{Up, 0}) != Empty {
		t.Error("unknown state characters should load as Empty")
	}
	if c.Center(Front) != Empty {
		t.Error("unknown center characters should load as Empty")
	}
}

func TestString_ShowsNet(t *testing.T) {
	c := NewCube()
	out := c.String()
	if !strings.Contains(out, "WWW") {
		t.Error("net should show the white up face")
	}
	if !strings.Contains(out, "GGG RRR BBB OOO") {
		t.Errorf("net should show the middle band, got:\n%s", out)
	}
}
