package controllers

import "testing"

func TestSpecialSortClause(t *testing.T) {
	cases := []struct {
		sortBy, sortOrder, want string
	}{
		{"name", "asc", "name asc"},
		{"price", "desc", "price desc"},
		{"createdAt", "desc", "created_at desc"},
		{"preparationTime", "asc", "preparation_time asc"},
		// Unknown columns and directions fall back to safe defaults.
		{"password", "asc", "name asc"},
		{"name; DROP TABLE specials", "asc", "name asc"},
		{"price", "sideways", "price asc"},
		{"", "", "name asc"},
	}
	for _, c := range cases {
		if got := specialSortClause(c.sortBy, c.sortOrder); got != c.want {
			t.Errorf("specialSortClause(%q, %q) = %q, want %q", c.sortBy, c.sortOrder, got, c.want)
		}
	}
}

func TestParseJSONObject(t *testing.T) {
	if got := parseJSONObject(`{"calories": 250}`); got == nil {
		t.Error("valid JSON object was dropped")
	}
	if got := parseJSONObject("not json"); got != nil {
		t.Errorf("invalid JSON kept: %s", got)
	}
	if got := parseJSONObject(""); got != nil {
		t.Errorf("empty input should yield nil, got %s", got)
	}
}
