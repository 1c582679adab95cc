package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/models"
)

func donorAt(lat, lon float64) models.Donor {
	return models.Donor{Latitude: lat, Longitude: lon, IsAvailable: true}
}

func TestRankDonorsByDistanceFiltersByRadius(t *testing.T) {
	donors := []models.Donor{donorAt(0, 0), donorAt(0, 1)}

	// ~111 km apart: a 50 km radius excludes the far donor, 200 km includes it.
	near := rankDonorsByDistance(donors, 0, 0, 50, 20)
	if len(near) != 1 {
		t.Fatalf("radius 50: got %d donors, want 1", len(near))
	}
	if near[0].Distance != 0 {
		t.Errorf("radius 50: nearest distance = %f, want 0", near[0].Distance)
	}

	far := rankDonorsByDistance(donors, 0, 0, 200, 20)
	if len(far) != 2 {
		t.Fatalf("radius 200: got %d donors, want 2", len(far))
	}
	if far[1].Distance < 110 || far[1].Distance > 112 {
		t.Errorf("radius 200: second distance = %f, want ~111", far[1].Distance)
	}
}

func TestRankDonorsByDistanceSortsAscending(t *testing.T) {
	donors := []models.Donor{
		donorAt(0, 3),
		donorAt(0, 1),
		donorAt(0, 2),
		donorAt(0, 0.5),
	}

	ranked := rankDonorsByDistance(donors, 0, 0, 1000, 20)
	if len(ranked) != 4 {
		t.Fatalf("got %d donors, want 4", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Distance < ranked[i-1].Distance {
			t.Errorf("results not sorted: %f before %f", ranked[i-1].Distance, ranked[i].Distance)
		}
	}
}

func TestRankDonorsByDistanceNeverExceedsRadius(t *testing.T) {
	donors := []models.Donor{
		donorAt(0, 0.1),
		donorAt(0, 0.5),
		donorAt(0, 1),
		donorAt(1, 1),
		donorAt(10, 10),
	}

	radius := 120.0
	for _, d := range rankDonorsByDistance(donors, 0, 0, radius, 20) {
		if d.Distance > radius {
			t.Errorf("donor at distance %f exceeds radius %f", d.Distance, radius)
		}
	}
}

func TestRankDonorsByDistanceRespectsLimit(t *testing.T) {
	donors := []models.Donor{
		donorAt(0, 0.1),
		donorAt(0, 0.2),
		donorAt(0, 0.3),
		donorAt(0, 0.4),
	}

	ranked := rankDonorsByDistance(donors, 0, 0, 1000, 2)
	if len(ranked) != 2 {
		t.Fatalf("got %d donors, want 2", len(ranked))
	}
	if ranked[0].Distance > ranked[1].Distance {
		t.Error("limited results should keep the nearest donors")
	}
}

func TestRankDonorsByDistanceStableOnTies(t *testing.T) {
	first := donorAt(0, 1)
	first.City = "first"
	second := donorAt(0, 1)
	second.City = "second"

	ranked := rankDonorsByDistance([]models.Donor{first, second}, 0, 0, 200, 20)
	if len(ranked) != 2 {
		t.Fatalf("got %d donors, want 2", len(ranked))
	}
	if ranked[0].City != "first" || ranked[1].City != "second" {
		t.Errorf("tie order changed: got %q then %q", ranked[0].City, ranked[1].City)
	}
}

func TestRankDonorsByDistanceEmptyInput(t *testing.T) {
	ranked := rankDonorsByDistance(nil, 0, 0, 10, 20)
	if ranked == nil || len(ranked) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", ranked)
	}
}

func TestFindNearestDonorsRejectsMissingCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/donors/nearest", FindNearestDonors)

	for _, query := range []string{
		"",
		"latitude=12.5",
		"longitude=77.6",
		"latitude=abc&longitude=77.6",
		"latitude=12.5&longitude=xyz",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/donors/nearest?"+query, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want %d", query, w.Code, http.StatusBadRequest)
		}
	}
}
