package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sprintertech/signet-orders/bundle"
)

// Outcome is a journaled bundle resolution.
type Outcome struct {
	BundleID    string        `json:"bundleId"`
	State       string        `json:"state"`
	TargetBlock uint64        `json:"targetBlock"`
	TxHashes    []common.Hash `json:"txHashes"`
	OrderHashes []common.Hash `json:"orderHashes"`
	FilledCount int           `json:"filledCount"`
	RecordedAt  time.Time     `json:"recordedAt"`
}

// Journal persists bundle outcomes to sqlite.
type Journal struct {
	db *sql.DB
}

func NewJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	j := &Journal{db: db}
	err = j.init()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) init() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS bundle_outcomes (
			bundle_id TEXT PRIMARY KEY,
			state TEXT,
			target_block INTEGER,
			tx_hashes TEXT,
			order_hashes TEXT,
			filled_count INTEGER,
			recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed creating bundle_outcomes table: %w", err)
	}
	return nil
}

// Record stores the resolution of a bundle, replacing an earlier record with
// the same bundle id.
func (j *Journal) Record(ctx context.Context, status bundle.Status, filledCount int) error {
	txHashes, err := json.Marshal(status.TxHashes)
	if err != nil {
		return err
	}
	orderHashes, err := json.Marshal(status.OrderHashes)
	if err != nil {
		return err
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO bundle_outcomes (bundle_id, state, target_block, tx_hashes, order_hashes, filled_count, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, status.ID.String(), status.State, status.TargetBlock, string(txHashes), string(orderHashes), filledCount, time.Now().UTC())
	return err
}

// Outcomes returns the latest journaled outcomes, newest first.
func (j *Journal) Outcomes(ctx context.Context, limit int) ([]Outcome, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT bundle_id, state, target_block, tx_hashes, order_hashes, filled_count, recorded_at
		FROM bundle_outcomes
		ORDER BY target_block DESC, recorded_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outcomes := make([]Outcome, 0)
	for rows.Next() {
		var outcome Outcome
		var txHashes, orderHashes string
		err := rows.Scan(&outcome.BundleID, &outcome.State, &outcome.TargetBlock, &txHashes, &orderHashes, &outcome.FilledCount, &outcome.RecordedAt)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal([]byte(txHashes), &outcome.TxHashes)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal([]byte(orderHashes), &outcome.OrderHashes)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rows.Err()
}

// Counts returns the number of journaled bundles per state.
func (j *Journal) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT state, COUNT(*) FROM bundle_outcomes GROUP BY state
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var state string
		var count int
		err := rows.Scan(&state, &count)
		if err != nil {
			return nil, err
		}
		counts[state] = count
	}
	return counts, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
