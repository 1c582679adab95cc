package utils

import (
	"math"
	"testing"
)

func TestHaversineSymmetry(t *testing.T) {
	points := [][4]float64{
		{0, 0, 0, 1},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 10, -89.9, -170},
	}
	for _, p := range points {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Haversine(%v) = %f, reversed = %f", p, ab, ba)
		}
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	if d := Haversine(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("distance from a point to itself = %f, want 0", d)
	}
}

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is roughly 111 km.
	d := Haversine(0, 0, 0, 1)
	if d < 110 || d > 112 {
		t.Errorf("Haversine(0,0 -> 0,1) = %f, want ~111", d)
	}
}

func TestHaversineTriangleInequality(t *testing.T) {
	// Three points along the equator.
	a := [2]float64{0, 0}
	b := [2]float64{0, 1}
	c := [2]float64{0, 2.5}

	ab := Haversine(a[0], a[1], b[0], b[1])
	bc := Haversine(b[0], b[1], c[0], c[1])
	ac := Haversine(a[0], a[1], c[0], c[1])

	if ac > ab+bc+1e-6 {
		t.Errorf("triangle inequality violated: ac=%f > ab+bc=%f", ac, ab+bc)
	}
}

func TestRoundDistance(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{111.19492664455873, 111.19},
		{0.004, 0.0},
		{0.006, 0.01},
		{10, 10},
	}
	for _, c := range cases {
		if got := RoundDistance(c.in); got != c.want {
			t.Errorf("RoundDistance(%f) = %f, want %f", c.in, got, c.want)
		}
	}
}
