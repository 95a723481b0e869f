package gazetteer

import (
	"context"
	"path/filepath"
	"testing"
)

const (
	fixtureGazetteer     = "testdata/gazetteer.txt"
	fixtureSupplementary = "testdata/supplementary.txt"
	fixtureAdmin1        = "testdata/admin1CodesASCII.txt"
)

// Geoname ids of fixture records used across tests.
const (
	bostonMA        = 4930956
	bostonUK        = 2655138
	haverhillMA     = 4939085
	haverhillUK     = 2647310
	worcesterMA     = 4956184
	worcesterUK     = 2633560
	springfieldMA   = 4951788
	springfieldIL   = 4250542
	springfieldMO   = 4409896
	chicagoIL       = 4887398
	rockfordIL      = 4907959
	decaturIL       = 4236895
	kansasCityMO    = 4393217
	stLouisMO       = 6955119
	independenceMO  = 4391812
	londonUK        = 2643743
	manchesterUK    = 2643123
	torontoON       = 6167865
	ottawaON        = 6094817
	hamiltonON      = 5969785
	kitchenerON     = 5992996
	londonON        = 6058560
	restonVA        = 4781530
	strassenhausDE  = 2826158
	gunBarrelCityTX = 4695535
	bostanIR        = 142000
	sriLanka        = 1227603
)

// buildMemoryFixture indexes the fixture gazetteer, plus any extra sources,
// into a closed MemoryIndex.
func buildMemoryFixture(extra ...string) (*MemoryIndex, error) {
	idx := NewMemoryIndex()
	if _, err := BuildIndex(context.Background(), idx, fixtureGazetteer, extra); err != nil {
		return nil, err
	}
	return idx, nil
}

// buildSQLiteFixture writes the fixture gazetteer to a SQLite index in dir and
// opens it.
func buildSQLiteFixture(dir string, extra ...string) (*SQLiteIndex, error) {
	path := filepath.Join(dir, "gazetteer.db")
	w, err := CreateSQLiteIndex(path)
	if err != nil {
		return nil, err
	}
	if _, err := BuildIndex(context.Background(), w, fixtureGazetteer, extra, WithBatchSize(7)); err != nil {
		return nil, err
	}
	return OpenSQLiteIndex(path)
}

func newFixtureResolver(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	idx, err := buildMemoryFixture()
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewResolver(idx, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func matchIDs(matches []ResolvedMatch) []int {
	ids := make([]int, len(matches))
	for i, m := range matches {
		ids[i] = m.Entity.ID
	}
	return ids
}
