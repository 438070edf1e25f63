package companies

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS companies (
    ticker TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    sector TEXT NOT NULL,
    created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);
`

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return NewRepository(db, zerolog.Nop())
}

func sampleCatalog() []Company {
	return []Company{
		{Ticker: "1120.SR", Name: "Al Rajhi Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "2222.SR", Name: "Saudi Aramco", Country: "Saudi Arabia", Sector: "Energy"},
		{Ticker: "QNBK.QA", Name: "Qatar National Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "COMI.CA", Name: "Commercial International Bank", Country: "Egypt", Sector: "Banking"},
	}
}

func TestSeedAndCount(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Seed(sampleCatalog()))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Seed(sampleCatalog()))
	require.NoError(t, repo.Seed(sampleCatalog()))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestSeedKeepsFirstEntryOnTickerConflict(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Seed([]Company{
		{Ticker: "2060.SR", Name: "Tasnee", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2060.SR", Name: "National Industrialization", Country: "Saudi Arabia", Sector: "Industrial"},
	}))

	got, err := repo.GetByTicker("2060.SR")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tasnee", got.Name)
}

func TestCountries(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Seed(sampleCatalog()))

	countries, err := repo.Countries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Egypt", "Qatar", "Saudi Arabia"}, countries)
}

func TestListByCountry(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Seed(sampleCatalog()))

	saudi, err := repo.ListByCountry("Saudi Arabia")
	require.NoError(t, err)
	require.Len(t, saudi, 2)
	// Ordered by sector then name.
	assert.Equal(t, "Al Rajhi Bank", saudi[0].Name)
	assert.Equal(t, "Saudi Aramco", saudi[1].Name)

	empty, err := repo.ListByCountry("Oman")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListFiltered(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Seed(sampleCatalog()))

	all, err := repo.ListFiltered("", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	banks, err := repo.ListFiltered("", "Banking")
	require.NoError(t, err)
	assert.Len(t, banks, 3)

	saudiBanks, err := repo.ListFiltered("Saudi Arabia", "Banking")
	require.NoError(t, err)
	require.Len(t, saudiBanks, 1)
	assert.Equal(t, "1120.SR", saudiBanks[0].Ticker)
}

func TestGetByTicker(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Seed(sampleCatalog()))

	got, err := repo.GetByTicker("QNBK.QA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Qatar National Bank", got.Name)
	assert.Equal(t, "Qatar", got.Country)

	missing, err := repo.GetByTicker("NOPE.XX")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBuiltInCatalog(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	seen := make(map[string]bool, len(catalog))
	countries := make(map[string]bool)
	for _, c := range catalog {
		assert.NotEmpty(t, c.Ticker)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Sector)
		assert.Falsef(t, seen[c.Ticker], "duplicate ticker %s", c.Ticker)
		seen[c.Ticker] = true
		countries[c.Country] = true
	}

	for _, want := range []string{"Saudi Arabia", "Qatar", "Kuwait", "Egypt", "Bahrain"} {
		assert.Truef(t, countries[want], "catalog missing country %s", want)
	}
}
