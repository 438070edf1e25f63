// Package clientdata provides persistent caching of market-data
// snapshots. Payloads are stored as MessagePack blobs with expiration
// timestamps for cache-first behavior.
package clientdata

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
)

const snapshotTable = "yahoo_snapshots"

// snapshotRecord is the storable form of a RawSnapshot. Statements are
// flattened to their line-item maps for encoding.
type snapshotRecord struct {
	Ticker          string             `msgpack:"ticker"`
	Period          string             `msgpack:"period"`
	History         []domain.PriceBar  `msgpack:"history"`
	BalanceSheet    map[string]float64 `msgpack:"balance_sheet"`
	IncomeStatement map[string]float64 `msgpack:"income_statement"`
	CashFlow        map[string]float64 `msgpack:"cash_flow"`
	Info            domain.Info        `msgpack:"info"`
}

func toRecord(s *domain.RawSnapshot) snapshotRecord {
	return snapshotRecord{
		Ticker:          s.Ticker,
		Period:          s.Period,
		History:         s.History,
		BalanceSheet:    s.BalanceSheet.Items(),
		IncomeStatement: s.IncomeStatement.Items(),
		CashFlow:        s.CashFlow.Items(),
		Info:            s.Info,
	}
}

func (r snapshotRecord) toSnapshot() *domain.RawSnapshot {
	return &domain.RawSnapshot{
		Ticker:          r.Ticker,
		Period:          r.Period,
		History:         r.History,
		BalanceSheet:    domain.NewStatement(r.BalanceSheet),
		IncomeStatement: domain.NewStatement(r.IncomeStatement),
		CashFlow:        domain.NewStatement(r.CashFlow),
		Info:            r.Info,
	}
}

// Repository provides cache operations for fetched snapshots.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a snapshot cache repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Store saves a snapshot with expiration = now + ttl, replacing any
// previous entry for the same ticker and period.
func (r *Repository) Store(ticker, period string, snapshot *domain.RawSnapshot, ttl time.Duration) error {
	payload, err := msgpack.Marshal(toRecord(snapshot))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	expiresAt := time.Now().Add(ttl).Unix()

	_, err = r.db.Exec(
		"INSERT OR REPLACE INTO "+snapshotTable+" (ticker, period, payload, expires_at) VALUES (?, ?, ?, ?)",
		ticker, period, payload, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot for %s/%s: %w", ticker, period, err)
	}
	return nil
}

// GetIfFresh returns a snapshot only if it has not expired. Returns
// nil, nil on a miss; use Get to fall back to stale data when the
// upstream is unavailable.
func (r *Repository) GetIfFresh(ticker, period string) (*domain.RawSnapshot, error) {
	return r.get(ticker, period, true)
}

// Get returns a snapshot regardless of expiration. Stale data is better
// than no data when the upstream fetch fails. Returns nil, nil on a miss.
func (r *Repository) Get(ticker, period string) (*domain.RawSnapshot, error) {
	return r.get(ticker, period, false)
}

func (r *Repository) get(ticker, period string, freshOnly bool) (*domain.RawSnapshot, error) {
	query := "SELECT payload FROM " + snapshotTable + " WHERE ticker = ? AND period = ?"
	args := []interface{}{ticker, period}
	if freshOnly {
		query += " AND expires_at > ?"
		args = append(args, time.Now().Unix())
	}

	var payload []byte
	err := r.db.QueryRow(query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for %s/%s: %w", ticker, period, err)
	}

	var record snapshotRecord
	if err := msgpack.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot for %s/%s: %w", ticker, period, err)
	}
	return record.toSnapshot(), nil
}

// Delete removes a specific entry.
func (r *Repository) Delete(ticker, period string) error {
	_, err := r.db.Exec("DELETE FROM "+snapshotTable+" WHERE ticker = ? AND period = ?", ticker, period)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot for %s/%s: %w", ticker, period, err)
	}
	return nil
}

// DeleteExpired removes all rows past their expiration. Returns the
// number of rows deleted.
func (r *Repository) DeleteExpired() (int64, error) {
	result, err := r.db.Exec("DELETE FROM "+snapshotTable+" WHERE expires_at < ?", time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired snapshots: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}
