package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	bands, err := json.Marshal(r.Bands)
	if err != nil {
		return fmt.Errorf("encode bands: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO runs
		(run_id, created_at, risk_per_trade, win_rate, avg_r, vol_level, paths,
		 horizon_trades, dd50_risk, final_p05, final_p50, final_p95, bands)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created.UTC(), r.Inputs.RiskPerTrade, r.Inputs.WinRate, r.Inputs.AvgR,
		r.Inputs.VolLevel.String(), r.Inputs.Paths,
		r.HorizonTrades, r.DD50Risk, r.FinalP05, r.FinalP50, r.FinalP95, string(bands),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
