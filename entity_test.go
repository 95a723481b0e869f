package gazetteer

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const restonRecord = "4781530\tReston\tReston\tReston,Рестон\t38.96872\t-77.3411\tP\tPPL\tUS\t\tVA\t059\t\t\t58404\t100\t102\tAmerica/New_York\t2011-05-14"

func TestParseRecord(t *testing.T) {
	e := ParseRecord(restonRecord)

	want := Entity{
		ID:                    4781530,
		Name:                  "Reston",
		ASCIIName:             "Reston",
		AlternateNames:        []string{"Reston", "Рестон"},
		Latitude:              38.96872,
		Longitude:             -77.3411,
		FeatureClass:          FeatureClassP,
		FeatureCode:           "PPL",
		CountryCode:           "US",
		AlternateCountryCodes: []CountryCode{},
		Admin1Code:            "VA",
		Admin2Code:            "059",
		Population:            58404,
		Elevation:             100,
		DigitalElevationModel: 102,
		Timezone:              "America/New_York",
		ModificationDate:      time.Date(2011, 5, 14, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("ParseRecord(reston) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordIsDeterministic(t *testing.T) {
	a, b := ParseRecord(restonRecord), ParseRecord(restonRecord)
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same line twice produced different entities")
	}
	a.AlternateNames[0] = "changed"
	if b.AlternateNames[0] != "Reston" {
		t.Error("parsed entities share alternate name storage")
	}
}

func TestParseRecordShortLine(t *testing.T) {
	// Twelve columns: everything from admin3 on is missing.
	e := ParseRecord("2826158\tStraßenhaus\tStrassenhaus\t\t50.51667\t7.48333\tP\tPPLA4\tDE\t\t08\t00")

	if e.ID != 2826158 || e.Name != "Straßenhaus" || e.Admin1Code != "08" || e.Admin2Code != "00" {
		t.Errorf("leading columns not parsed: %+v", e)
	}
	if e.Admin3Code != "" || e.Admin4Code != "" {
		t.Errorf("admin3/admin4 = %q/%q, want empty", e.Admin3Code, e.Admin4Code)
	}
	if e.Population != OutOfBounds || e.Elevation != OutOfBounds || e.DigitalElevationModel != OutOfBounds {
		t.Errorf("trailing numerics = %d/%d/%d, want OutOfBounds", e.Population, e.Elevation, e.DigitalElevationModel)
	}
	if e.Timezone != "" || e.Location() != nil {
		t.Errorf("timezone = %q, want none", e.Timezone)
	}
	if !e.ModificationDate.Equal(time.Unix(0, 0)) {
		t.Errorf("modification date = %v, want epoch", e.ModificationDate)
	}
	if len(e.AlternateNames) != 0 || e.AlternateNames == nil {
		t.Errorf("alternate names = %#v, want empty slice", e.AlternateNames)
	}
}

func TestParseRecordVeryShortLine(t *testing.T) {
	e := ParseRecord("42\tSomewhere")
	if e.ID != 42 || e.Name != "Somewhere" {
		t.Errorf("got %+v", e)
	}
	if e.HasCoordinates() {
		t.Error("record without coordinates reports coordinates")
	}
	if e.CountryCode != NullCountryCode || e.FeatureClass != NullFeatureClass || e.FeatureCode != NullFeatureCode {
		t.Errorf("codes = %q/%q/%q, want NULL", e.CountryCode, e.FeatureClass, e.FeatureCode)
	}
}

func TestParseRecordMalformedFields(t *testing.T) {
	fields := strings.Split(restonRecord, "\t")

	tests := []struct {
		name  string
		col   int
		value string
		check func(Entity) bool
	}{
		{"id", 0, "abc", func(e Entity) bool { return e.ID == OutOfBounds }},
		{"latitude", 4, "north", func(e Entity) bool { return e.Latitude == OutOfBounds && e.Longitude == -77.3411 }},
		{"longitude", 5, "", func(e Entity) bool { return e.Longitude == OutOfBounds }},
		{"latitude out of range", 4, "95.5", func(e Entity) bool {
			return e.Latitude == OutOfBounds && e.Longitude == OutOfBounds
		}},
		{"longitude out of range", 5, "-181", func(e Entity) bool {
			return e.Latitude == OutOfBounds && e.Longitude == OutOfBounds
		}},
		{"feature class", 6, "Q", func(e Entity) bool { return e.FeatureClass == NullFeatureClass }},
		{"feature code", 7, "XXXX", func(e Entity) bool { return e.FeatureCode == NullFeatureCode }},
		{"country", 8, "ZZ", func(e Entity) bool { return e.CountryCode == NullCountryCode }},
		{"alternate countries", 9, "CA,ZZ,,toolong,MX", func(e Entity) bool {
			return reflect.DeepEqual(e.AlternateCountryCodes, []CountryCode{"CA", "MX"})
		}},
		{"alternate names", 3, ",Reston,,", func(e Entity) bool {
			return reflect.DeepEqual(e.AlternateNames, []string{"Reston"})
		}},
		{"population", 14, "lots", func(e Entity) bool { return e.Population == OutOfBounds }},
		{"elevation", 15, "", func(e Entity) bool { return e.Elevation == OutOfBounds }},
		{"dem", 16, "n/a", func(e Entity) bool { return e.DigitalElevationModel == OutOfBounds }},
		{"date", 18, "yesterday", func(e Entity) bool { return e.ModificationDate.Equal(time.Unix(0, 0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := append([]string(nil), fields...)
			broken[tt.col] = tt.value
			e := ParseRecord(strings.Join(broken, "\t"))
			if !tt.check(e) {
				t.Errorf("column %d = %q parsed as %+v", tt.col, tt.value, e)
			}
			if e.Name != "Reston" {
				t.Errorf("unrelated column lost: name = %q", e.Name)
			}
		})
	}
}

func TestEntityString(t *testing.T) {
	want := "Reston (United States, VA) [pop: 58404] <4781530>"
	if got := ParseRecord(restonRecord).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	noCountry := ParseRecord("7\tNowhere\tNowhere\t\t0\t0\tP\tPPL\t\t\t\t")
	if got := noCountry.String(); !strings.Contains(got, "No Man's Land") {
		t.Errorf("String() = %q, want NULL country name", got)
	}
}

func TestDistanceKm(t *testing.T) {
	boston := ParseRecord("4930956\tBoston\tBoston\t\t42.35843\t-71.05977\tP\tPPLA\tUS\t\tMA")
	london := ParseRecord("2643743\tLondon\tLondon\t\t51.50853\t-0.12574\tP\tPPLC\tGB\t\tENG")
	nowhere := ParseRecord("1\tNowhere\tNowhere\t\t\t\tP\tPPL\tUS")

	d, ok := boston.DistanceKm(london)
	if !ok {
		t.Fatal("DistanceKm reported missing coordinates")
	}
	if math.Abs(d-5264.4) > 1 {
		t.Errorf("Boston-London = %.1f km, want about 5264.4", d)
	}

	if d, ok := boston.DistanceKm(boston); !ok || d != 0 {
		t.Errorf("self distance = %v, %v", d, ok)
	}
	if _, ok := boston.DistanceKm(nowhere); ok {
		t.Error("DistanceKm to an entity without coordinates should fail")
	}
}

func TestLocation(t *testing.T) {
	if _, err := time.LoadLocation("America/New_York"); err != nil {
		t.Skipf("no tz database: %v", err)
	}
	loc := ParseRecord(restonRecord).Location()
	if loc == nil || loc.String() != "America/New_York" {
		t.Errorf("Location() = %v, want America/New_York", loc)
	}

	fields := strings.Split(restonRecord, "\t")
	fields[17] = "Mars/Olympus_Mons"
	if loc := ParseRecord(strings.Join(fields, "\t")).Location(); loc != nil {
		t.Errorf("Location() for unknown zone = %v, want nil", loc)
	}
}
