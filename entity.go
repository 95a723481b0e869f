package gazetteer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang/geo/s2"
)

// OutOfBounds is stored in numeric fields whose value is missing or could not
// be parsed (id, coordinates, population, elevation, DEM).
const OutOfBounds = -9999999

// earthRadiusKm converts s2 angles into kilometres.
const earthRadiusKm = 6371.0088

// recordColumns is the column count of a complete GeoNames record.
const recordColumns = 19

// modificationDateLayout is the GeoNames yyyy-MM-dd date format.
const modificationDateLayout = "2006-01-02"

// Entity is one gazetteer record. Values are derived from the raw record text
// and never shared with the index.
type Entity struct {
	ID             int      // geonameid
	Name           string   // name of the place (UTF-8)
	ASCIIName      string   // plain ASCII transliteration
	AlternateNames []string // alternate spellings, never contains ""

	Latitude  float64 // decimal degrees, OutOfBounds when unavailable
	Longitude float64 // decimal degrees, OutOfBounds when unavailable

	FeatureClass FeatureClass
	FeatureCode  FeatureCode

	CountryCode           CountryCode
	AlternateCountryCodes []CountryCode // disputed territories

	// Administrative subdivision codes, state/province first. These are bare
	// codes; see AdminDivisions for resolving admin1 names.
	Admin1Code string
	Admin2Code string
	Admin3Code string
	Admin4Code string

	Population            int64
	Elevation             int // metres
	DigitalElevationModel int // srtm3 or gtopo30 average, metres
	Timezone              string
	ModificationDate      time.Time
}

// ParseRecord builds an Entity from one tab-delimited GeoNames line. It never
// fails: fields that cannot be trusted are filled with OutOfBounds, empty
// strings, NULL codes or the Unix epoch.
func ParseRecord(line string) Entity {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	e := Entity{
		ID:             parseInt(field(0)),
		Name:           field(1),
		ASCIIName:      field(2),
		AlternateNames: splitList(field(3)),
		Latitude:       parseFloat(field(4)),
		Longitude:      parseFloat(field(5)),
		Admin1Code:     field(10),
		Admin2Code:     field(11),
	}

	if e.Latitude != OutOfBounds && e.Longitude != OutOfBounds {
		if !s2.LatLngFromDegrees(e.Latitude, e.Longitude).IsValid() {
			e.Latitude, e.Longitude = OutOfBounds, OutOfBounds
		}
	}

	e.FeatureClass, _ = ParseFeatureClass(field(6))
	e.FeatureCode, _ = ParseFeatureCode(field(7))
	e.CountryCode, _ = ParseCountryCode(field(8))

	e.AlternateCountryCodes = []CountryCode{}
	for _, code := range splitList(field(9)) {
		if cc, ok := ParseCountryCode(code); ok {
			e.AlternateCountryCodes = append(e.AlternateCountryCodes, cc)
		}
	}

	// A short record means the trailing columns are corrupted as a group.
	if len(fields) < recordColumns {
		e.Population = OutOfBounds
		e.Elevation = OutOfBounds
		e.DigitalElevationModel = OutOfBounds
		e.ModificationDate = time.Unix(0, 0).UTC()
		return e
	}

	e.Admin3Code = field(12)
	e.Admin4Code = field(13)
	e.Population = parseInt64(field(14))
	e.Elevation = parseInt(field(15))
	e.DigitalElevationModel = parseInt(field(16))
	e.Timezone = field(17)
	if t, err := time.Parse(modificationDateLayout, field(18)); err == nil {
		e.ModificationDate = t
	} else {
		e.ModificationDate = time.Unix(0, 0).UTC()
	}
	return e
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return OutOfBounds
	}
	return n
}

func parseInt64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return OutOfBounds
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return OutOfBounds
	}
	return f
}

// splitList splits a comma-separated column, dropping empty items so that an
// empty column yields an empty (non-nil) slice.
func splitList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for _, item := range strings.Split(s, ",") {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// HasCoordinates reports whether the record carries a usable position.
func (e Entity) HasCoordinates() bool {
	return e.Latitude != OutOfBounds && e.Longitude != OutOfBounds
}

// DistanceKm returns the great-circle distance to other in kilometres. The
// second result is false when either entity has no coordinates.
func (e Entity) DistanceKm(other Entity) (float64, bool) {
	if !e.HasCoordinates() || !other.HasCoordinates() {
		return 0, false
	}
	a := s2.LatLngFromDegrees(e.Latitude, e.Longitude)
	b := s2.LatLngFromDegrees(other.Latitude, other.Longitude)
	return a.Distance(b).Radians() * earthRadiusKm, true
}

// Location resolves the IANA timezone, returning nil when the record has no
// timezone or the name is unknown to the local tz database.
func (e Entity) Location() *time.Location {
	if e.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil
	}
	return loc
}

// String formats the entity as "Name (Country, admin1) [pop: N] <id>".
func (e Entity) String() string {
	return fmt.Sprintf("%s (%s, %s) [pop: %d] <%d>", e.Name, e.CountryCode.Name(), e.Admin1Code, e.Population, e.ID)
}
