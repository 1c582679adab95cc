package controllers

import "testing"

func TestSuccessRate(t *testing.T) {
	cases := []struct {
		completed, total int64
		want             int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 10, 50},
		{10, 10, 100},
	}
	for _, c := range cases {
		if got := successRate(c.completed, c.total); got != c.want {
			t.Errorf("successRate(%d, %d) = %d, want %d", c.completed, c.total, got, c.want)
		}
	}
}

func TestSuccessRateStaysInBounds(t *testing.T) {
	for completed := int64(0); completed <= 20; completed++ {
		for total := completed; total <= 20; total++ {
			rate := successRate(completed, total)
			if rate < 0 || rate > 100 {
				t.Fatalf("successRate(%d, %d) = %d, out of [0,100]", completed, total, rate)
			}
		}
	}
}
