package gazetteer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// AdminDivision represents a first-level administrative division (state, province, etc.)
type AdminDivision struct {
	Country   CountryCode
	Code      string // Admin1 code (e.g., "TX", "08")
	Name      string // Full name (e.g., "Texas", "Ontario")
	ASCIIName string
	GeonameID int
}

// AdminDivisions resolves (country, admin1 code) pairs to division names, read
// from a GeoNames admin1CodesASCII.txt file. Entities keep bare admin1 codes;
// this is the only place they are linked to anything.
type AdminDivisions struct {
	path string
	once sync.Once
	err  error

	byCountry map[CountryCode]map[string]AdminDivision
}

// NewAdminDivisions returns a lookup that reads path on first use.
func NewAdminDivisions(path string) *AdminDivisions {
	return &AdminDivisions{path: path}
}

// LoadAdminDivisions reads admin1 codes from r immediately.
func LoadAdminDivisions(r io.Reader) (*AdminDivisions, error) {
	a := &AdminDivisions{}
	a.once.Do(func() {
		a.err = a.read(r)
	})
	if a.err != nil {
		return nil, a.err
	}
	return a, nil
}

func (a *AdminDivisions) load() {
	a.once.Do(func() {
		fi, err := os.Open(a.path)
		if err != nil {
			a.err = fmt.Errorf("opening admin divisions: %w", err)
			a.byCountry = map[CountryCode]map[string]AdminDivision{}
			return
		}
		defer fi.Close()
		a.err = a.read(fi)
	})
}

// read parses lines of the form CC.CODE<tab>Name<tab>AsciiName<tab>GeonameId.
func (a *AdminDivisions) read(r io.Reader) error {
	a.byCountry = make(map[CountryCode]map[string]AdminDivision)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		parts := strings.SplitN(fields[0], ".", 2)
		if len(parts) != 2 {
			continue
		}
		country, ok := ParseCountryCode(parts[0])
		if !ok {
			continue
		}

		div := AdminDivision{Country: country, Code: parts[1], Name: fields[1], GeonameID: OutOfBounds}
		if len(fields) > 2 {
			div.ASCIIName = fields[2]
		}
		if len(fields) > 3 {
			if id, err := strconv.Atoi(fields[3]); err == nil {
				div.GeonameID = id
			}
		}

		if a.byCountry[country] == nil {
			a.byCountry[country] = make(map[string]AdminDivision)
		}
		a.byCountry[country][strings.ToUpper(div.Code)] = div
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading admin divisions: %w", err)
	}
	return nil
}

// Err returns the error from loading the file, if any. Lookups on a lookup
// that failed to load find nothing.
func (a *AdminDivisions) Err() error {
	a.load()
	return a.err
}

// Len returns the number of divisions loaded.
func (a *AdminDivisions) Len() int {
	a.load()
	n := 0
	for _, divisions := range a.byCountry {
		n += len(divisions)
	}
	return n
}

// Lookup returns the division with the given admin1 code in country.
func (a *AdminDivisions) Lookup(country CountryCode, code string) (AdminDivision, bool) {
	a.load()
	div, ok := a.byCountry[country][strings.ToUpper(code)]
	return div, ok
}

// Name returns the division name, or "" when unknown.
func (a *AdminDivisions) Name(country CountryCode, code string) string {
	div, _ := a.Lookup(country, code)
	return div.Name
}

// ForEntity returns the admin1 division of e.
func (a *AdminDivisions) ForEntity(e Entity) (AdminDivision, bool) {
	return a.Lookup(e.CountryCode, e.Admin1Code)
}

// Country returns the country a division code belongs to when exactly one
// country uses it. Examples: "TX" -> "US", "NSW" -> "AU".
func (a *AdminDivisions) Country(code string) (CountryCode, bool) {
	a.load()
	code = strings.ToUpper(code)

	var matches []CountryCode
	for country, divisions := range a.byCountry {
		if _, ok := divisions[code]; ok {
			matches = append(matches, country)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return NullCountryCode, false
}
