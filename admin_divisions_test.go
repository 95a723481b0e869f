package gazetteer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAdminDivisions(t *testing.T) {
	a := NewAdminDivisions(fixtureAdmin1)
	if err := a.Err(); err != nil {
		t.Fatal(err)
	}

	// The bogus line and the unknown ZZ country are skipped.
	if a.Len() != 9 {
		t.Errorf("Len() = %d, want 9", a.Len())
	}

	// Check Texas exists
	tx, ok := a.Lookup("US", "TX")
	if !ok {
		t.Fatal("Texas (TX) not found in US divisions")
	}
	if tx.Name != "Texas" || tx.GeonameID != 4736286 || tx.Country != "US" {
		t.Errorf("Lookup(US, TX) = %+v", tx)
	}

	// Check Ontario exists (code 08)
	if got := a.Name("CA", "08"); got != "Ontario" {
		t.Errorf("Name(CA, 08) = %q, want Ontario", got)
	}

	// Check New South Wales exists (code 02)
	if got := a.Name("AU", "02"); got != "New South Wales" {
		t.Errorf("Name(AU, 02) = %q, want New South Wales", got)
	}

	if got := a.Name("GB", "eng"); got != "England" {
		t.Errorf("codes are matched case-insensitively: Name(GB, eng) = %q", got)
	}
	if _, ok := a.Lookup("US", "08"); ok {
		t.Error("Lookup(US, 08) found a division")
	}
	if got := a.Name("", "MA"); got != "" {
		t.Errorf("Name without country = %q", got)
	}
}

func TestAdminDivisionForEntity(t *testing.T) {
	a := NewAdminDivisions(fixtureAdmin1)

	div, ok := a.ForEntity(ParseRecord(restonRecord))
	if !ok || div.Name != "Virginia" {
		t.Errorf("ForEntity(Reston) = %+v, %v", div, ok)
	}

	strassenhaus := ParseRecord("2826158\tStraßenhaus\tStrassenhaus\t\t50.51667\t7.48333\tP\tPPLA4\tDE\t\t08")
	if div, _ := a.ForEntity(strassenhaus); div.Name != "Rheinland-Pfalz" {
		t.Errorf("ForEntity(Straßenhaus) = %+v", div)
	}
}

func TestAdminDivisionCountry(t *testing.T) {
	a := NewAdminDivisions(fixtureAdmin1)

	tests := []struct {
		code        string
		wantCountry CountryCode
		wantOK      bool
	}{
		{"TX", "US", true},
		{"MA", "US", true},
		{"ENG", "GB", true},
		{"eng", "GB", true},
		{"08", NullCountryCode, false}, // Ontario and Rheinland-Pfalz
		{"01", NullCountryCode, false},
		{"", NullCountryCode, false},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got, ok := a.Country(tc.code)
			if got != tc.wantCountry || ok != tc.wantOK {
				t.Errorf("Country(%q) = %q, %v; want %q, %v", tc.code, got, ok, tc.wantCountry, tc.wantOK)
			}
		})
	}
}

func TestLoadAdminDivisionsFromReader(t *testing.T) {
	a, err := LoadAdminDivisions(strings.NewReader("US.NY\tNew York\tNew York\t5128638\nFR.11\tÎle-de-France\tIle-de-France\tnot-a-number\n"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	fr, ok := a.Lookup("FR", "11")
	if !ok || fr.ASCIIName != "Ile-de-France" || fr.GeonameID != OutOfBounds {
		t.Errorf("Lookup(FR, 11) = %+v, %v", fr, ok)
	}
}

func TestAdminDivisionsMissingFile(t *testing.T) {
	a := NewAdminDivisions(filepath.Join(t.TempDir(), "admin1CodesASCII.txt"))
	if err := a.Err(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Err() = %v, want a not-exist error", err)
	}
	if a.Len() != 0 || a.Name("US", "TX") != "" {
		t.Error("failed lookup still returned divisions")
	}
}
