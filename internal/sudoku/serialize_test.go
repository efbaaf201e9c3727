package sudoku

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFlattenRoundTrip(t *testing.T) {
	res := Generate(Easy, rand.New(rand.NewSource(11)))
	for _, g := range []Grid{res.Puzzle, res.Solution, {}} {
		seq := Flatten(g)
		if len(seq) != 81 {
			t.Fatalf("Flatten length = %d, want 81", len(seq))
		}
		back, err := Unflatten(seq)
		if err != nil {
			t.Fatalf("Unflatten: %v", err)
		}
		if back != g {
			t.Fatal("round trip changed the grid")
		}
	}
}

func TestFlattenIsRowMajor(t *testing.T) {
	var g Grid
	g[0][3] = 4
	g[2][0] = 7
	seq := Flatten(g)
	if seq[3] != 4 || seq[2*9] != 7 {
		t.Fatalf("unexpected row-major layout: seq[3]=%d seq[18]=%d", seq[3], seq[18])
	}
}

func TestUnflattenMalformed(t *testing.T) {
	cases := []struct {
		name string
		seq  []int
	}{
		{"too short", make([]int, 80)},
		{"too long", make([]int, 82)},
		{"nil", nil},
		{"value too large", func() []int {
			s := make([]int, 81)
			s[40] = 10
			return s
		}()},
		{"negative value", func() []int {
			s := make([]int, 81)
			s[0] = -1
			return s
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unflatten(tc.seq); !errors.Is(err, ErrMalformedGrid) {
				t.Fatalf("err = %v, want ErrMalformedGrid", err)
			}
		})
	}
}
