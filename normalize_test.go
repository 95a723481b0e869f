package gazetteer

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeTerms(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", []string{}},
		{"Boston", []string{"boston"}},
		{"  New   York\tCity ", []string{"new", "york", "city"}},
		{"ST. LOUIS", []string{"st.", "louis"}},
		{"Straßenhaus", []string{"straßenhaus"}},
		{"РЕСТОН", []string{"рестон"}},
		{"Cafe\u0301", []string{"caf\u00e9"}}, // decomposed input composes to the indexed form
		{"Boston:", []string{"boston:"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := normalizeTerms(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeTerms(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	if got := normalizeName("  Kansas   CITY "); got != "kansas city" {
		t.Errorf("normalizeName = %q", got)
	}
	if normalizeName("Caf\u00e9") != normalizeName("Cafe\u0301") {
		t.Error("composed and decomposed forms normalize differently")
	}
}

func TestPrepareQuery(t *testing.T) {
	if got := prepareQuery("  Boston \n"); got != "Boston" {
		t.Errorf("prepareQuery trims: got %q", got)
	}

	long := strings.Repeat("ж", maxQueryLen+10)
	got := prepareQuery(long)
	if n := len([]rune(got)); n != maxQueryLen {
		t.Errorf("prepareQuery kept %d runes, want %d", n, maxQueryLen)
	}
}

func TestDistinctTerms(t *testing.T) {
	got := distinctTerms([]string{"new", "york", "new", "york", "city"})
	want := []string{"new", "york", "city"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("distinctTerms = %q, want %q", got, want)
	}
}

func TestPhraseScore(t *testing.T) {
	tests := []struct {
		query, name string
		want        float64
	}{
		{"boston", "boston", 1},
		{"kansas city", "kansas city", 1},
		{"city", "kansas city", 0.5},
		{"kansas", "kansas city", 0.5},
		{"city kansas", "kansas city", 0},
		{"york city", "new york city", 2.0 / 3},
		{"new city", "new york city", 0},
		{"kansas city missouri", "kansas city", 0},
		{"", "boston", 0},
	}

	for _, tt := range tests {
		got := phraseScore(strings.Fields(tt.query), strings.Fields(tt.name))
		if got != tt.want {
			t.Errorf("phraseScore(%q, %q) = %v, want %v", tt.query, tt.name, got, tt.want)
		}
	}
}
