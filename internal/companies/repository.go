package companies

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/database"
)

// Repository provides catalog queries against the catalog database.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a catalog repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "companies").Logger(),
	}
}

// Seed inserts the given companies, leaving existing rows untouched.
// Safe to run on every startup.
func (r *Repository) Seed(catalog []Company) error {
	err := database.WithTransaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			"INSERT OR IGNORE INTO companies (ticker, name, country, sector) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare seed statement: %w", err)
		}
		defer stmt.Close()

		for _, c := range catalog {
			if _, err := stmt.Exec(c.Ticker, c.Name, c.Country, c.Sector); err != nil {
				return fmt.Errorf("failed to seed company %s: %w", c.Ticker, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.log.Info().Int("companies", len(catalog)).Msg("company catalog seeded")
	return nil
}

// Countries returns the distinct countries in the catalog, sorted.
func (r *Repository) Countries() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT country FROM companies ORDER BY country")
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	var countries []string
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

// ListByCountry returns all companies for a country, sorted by sector
// then name for a stable selection UI.
func (r *Repository) ListByCountry(country string) ([]Company, error) {
	rows, err := r.db.Query(
		"SELECT ticker, name, country, sector FROM companies WHERE country = ? ORDER BY sector, name",
		country)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies for %s: %w", country, err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// ListFiltered returns companies matching the given country and sector.
// Empty filters match everything.
func (r *Repository) ListFiltered(country, sector string) ([]Company, error) {
	query := "SELECT ticker, name, country, sector FROM companies WHERE 1=1"
	args := []interface{}{}
	if country != "" {
		query += " AND country = ?"
		args = append(args, country)
	}
	if sector != "" {
		query += " AND sector = ?"
		args = append(args, sector)
	}
	query += " ORDER BY country, sector, name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// List returns the entire catalog.
func (r *Repository) List() ([]Company, error) {
	rows, err := r.db.Query(
		"SELECT ticker, name, country, sector FROM companies ORDER BY country, sector, name")
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// GetByTicker returns one company, or nil when the ticker is unknown.
func (r *Repository) GetByTicker(ticker string) (*Company, error) {
	var c Company
	err := r.db.QueryRow(
		"SELECT ticker, name, country, sector FROM companies WHERE ticker = ?",
		ticker).Scan(&c.Ticker, &c.Name, &c.Country, &c.Sector)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", ticker, err)
	}
	return &c, nil
}

// Count returns the catalog size.
func (r *Repository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}

func scanCompanies(rows *sql.Rows) ([]Company, error) {
	var out []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Ticker, &c.Name, &c.Country, &c.Sector); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
