package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/survival/sim"
)

const runColumns = `run_id, created_at, risk_per_trade, win_rate, avg_r, vol_level, paths,
	horizon_trades, dd50_risk, final_p05, final_p50, final_p95, bands`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var (
		rec   RunRecord
		vol   string
		bands string
	)
	err := s.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Inputs.RiskPerTrade,
		&rec.Inputs.WinRate,
		&rec.Inputs.AvgR,
		&vol,
		&rec.Inputs.Paths,
		&rec.HorizonTrades,
		&rec.DD50Risk,
		&rec.FinalP05,
		&rec.FinalP50,
		&rec.FinalP95,
		&bands,
	)
	if err != nil {
		return RunRecord{}, err
	}

	if rec.Inputs.VolLevel, err = sim.ParseVolLevel(vol); err != nil {
		return RunRecord{}, fmt.Errorf("run %s: %w", rec.RunID, err)
	}
	if err := json.Unmarshal([]byte(bands), &rec.Bands); err != nil {
		return RunRecord{}, fmt.Errorf("run %s: decode bands: %w", rec.RunID, err)
	}
	return rec, nil
}

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRunsBetween returns runs created within [start, end), oldest first.
func (j *SQLite) ListRunsBetween(start, end time.Time) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, run_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// ListRecent returns up to limit runs, newest first.
func (j *SQLite) ListRecent(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows *sql.Rows) ([]RunRecord, error) {
	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
