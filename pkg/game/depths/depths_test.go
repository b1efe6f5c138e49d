package depths

import "testing"

func TestStratumFor_Cycles(t *testing.T) {
	cases := []struct {
		depth int
		want  Stratum
	}{
		{1, Cellars},
		{2, Crypts},
		{5, Deeps},
		{6, Cellars},
		{12, Crypts},
		{0, Cellars},
		{-3, Cellars},
	}

	for _, c := range cases {
		if got := StratumFor(c.depth); got != c.want {
			t.Errorf("depth %d: got %v, want %v", c.depth, got, c.want)
		}
	}
}

func TestStratum_Texts(t *testing.T) {
	for s := Cellars; s <= Deeps; s++ {
		if s.Name() == "" {
			t.Errorf("stratum %d has no name", s)
		}
		if s.ArrivalText() == "" {
			t.Errorf("stratum %d has no arrival text", s)
		}
	}
}
