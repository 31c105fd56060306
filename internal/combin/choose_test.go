package combin

import "testing"

func TestChoose(t *testing.T) {
	tests := []struct {
		n, r, want int
	}{
		{3, 4, 0},
		{3, 0, 1},
		{3, 1, 3},
		{3, 2, 3},
		{3, 3, 1},
		{5, 2, 10},
		{52, 7, 133_784_560},
		{48, 5, 1_712_304},
	}
	for _, tt := range tests {
		if got := Choose(tt.n, tt.r); got != tt.want {
			t.Errorf("Choose(%d,%d) = %d, want %d", tt.n, tt.r, got, tt.want)
		}
	}
}
