// file: internals/helpers/slug_test.go
package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyBasics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Input  ", "trimmed-input"},
		{"Kurs für Anfänger", "kurs-fur-anfanger"},
		{"Crème brûlée!", "creme-brulee"},
		{"UPPER_case & symbols!!", "upper-case-symbols"},
		{"---already---hyphened---", "already-hyphened"},
		{"2024 Tournament Results", "2024-tournament-results"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in, 0), "input %q", c.in)
	}
}

func TestSlugifyEmptyFallsBack(t *testing.T) {
	assert.Equal(t, "item", Slugify("", 0))
	assert.Equal(t, "item", Slugify("!!! ???", 0))
	assert.Equal(t, "item", Slugify("日本語", 0), "non-latin input with no ascii survivors")
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("word-", 40)
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"), "no dangling hyphen after the cut")
	assert.False(t, strings.HasPrefix(got, "-"))
}

func TestTrimForSuffixKeepsBudget(t *testing.T) {
	got := trimForSuffix("a-very-long-base-slug", "-17", 12)
	assert.LessOrEqual(t, len(got)+len("-17"), 12)
	assert.False(t, strings.HasSuffix(got, "-"))

	assert.Equal(t, "x", trimForSuffix("base", "-very-long-suffix", 5))
}

func TestSuggestSlugFromName(t *testing.T) {
	assert.Equal(t, "budi-santoso", SuggestSlugFromName("Budi Santoso"))
}
