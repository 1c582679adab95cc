package controllers

import (
	"reflect"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title, want string
	}{
		{"Hello World", "hello-world"},
		{"  Food Drives: What Works!  ", "food-drives-what-works"},
		{"Already-Slugged-Title", "already-slugged-title"},
		{"100% Organic Produce", "100-organic-produce"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := generateSlug(c.title); got != c.want {
			t.Errorf("generateSlug(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestParseList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"food", []string{"food"}},
		{"food, clothing , books", []string{"food", "clothing", "books"}},
		{"a,,b,", []string{"a", "b"}},
		{`["food","books"]`, []string{"food", "books"}},
	}
	for _, c := range cases {
		if got := parseList(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseList(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToJSONListRoundTrips(t *testing.T) {
	got := string(toJSONList([]string{"food", "books"}))
	if got != `["food","books"]` {
		t.Errorf("toJSONList = %s", got)
	}
	if got := string(toJSONList([]string{})); got != "[]" {
		t.Errorf("toJSONList(empty) = %s, want []", got)
	}
}
