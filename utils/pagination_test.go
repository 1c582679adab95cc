package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ctx
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		query               string
		wantPage, wantLimit int
		wantOffset          int
	}{
		{"page=3&limit=20", 3, 20, 40},
		{"", 1, 10, 0},
		{"page=0&limit=-5", 1, 10, 0},
		{"page=abc&limit=xyz", 1, 10, 0},
	}
	for _, c := range cases {
		page, limit, offset := PageParams(testContextWithQuery(t, c.query), 10)
		if page != c.wantPage || limit != c.wantLimit || offset != c.wantOffset {
			t.Errorf("PageParams(%q) = (%d, %d, %d), want (%d, %d, %d)",
				c.query, page, limit, offset, c.wantPage, c.wantLimit, c.wantOffset)
		}
	}
}

func TestPaginateMetadata(t *testing.T) {
	cases := []struct {
		page, limit int
		total       int64
		wantPages   int
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{2, 5, 23, 5},
	}
	for _, c := range cases {
		p := Paginate(c.page, c.limit, c.total)
		if p.TotalPages != c.wantPages {
			t.Errorf("Paginate(%d, %d, %d).TotalPages = %d, want %d",
				c.page, c.limit, c.total, p.TotalPages, c.wantPages)
		}
		if p.CurrentPage != c.page || p.ItemsPerPage != c.limit || p.TotalItems != c.total {
			t.Errorf("Paginate(%d, %d, %d) echoed (%d, %d, %d)",
				c.page, c.limit, c.total, p.CurrentPage, p.ItemsPerPage, p.TotalItems)
		}
	}
}
