// Package journal records completed simulation runs. It sits outside the
// simulator: callers decide whether a result is worth keeping.
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/survival/config"
	"github.com/rustyeddy/survival/sim"
)

// RunRecord is one journaled simulation.
type RunRecord struct {
	RunID   string
	Created time.Time
	Inputs  sim.Inputs

	HorizonTrades int
	DD50Risk      float64

	// Final-step band values, kept as columns for querying.
	FinalP05 float64
	FinalP50 float64
	FinalP95 float64

	Bands sim.Bands
}

// NewRunRecord captures res under runID.
func NewRunRecord(runID string, created time.Time, res sim.Result) RunRecord {
	rec := RunRecord{
		RunID:         runID,
		Created:       created,
		Inputs:        res.Inputs,
		HorizonTrades: res.HorizonTrades,
		DD50Risk:      res.DD50Risk,
		Bands:         res.Bands,
	}
	if n := res.Bands.Len(); n > 0 {
		rec.FinalP05 = res.Bands.P05[n-1]
		rec.FinalP50 = res.Bands.P50[n-1]
		rec.FinalP95 = res.Bands.P95[n-1]
	}
	return rec
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}

// Open builds the journal described by cfg. Type "none" discards records.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Nop{}, nil
	case "csv":
		return NewCSV(cfg.RunsFile, cfg.BandsFile)
	case "sqlite":
		return NewSQLite(cfg.DBPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
}

// Nop drops every record.
type Nop struct{}

func (Nop) RecordRun(RunRecord) error { return nil }
func (Nop) Close() error              { return nil }
