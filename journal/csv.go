package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

var (
	runsHeader  = []string{"run_id", "created_at", "risk_per_trade", "win_rate", "avg_r", "vol_level", "paths", "horizon_trades", "dd50_risk", "final_p05", "final_p50", "final_p95"}
	bandsHeader = []string{"run_id", "step", "p05", "p25", "p50", "p75", "p95"}
)

// CSVJournal appends run summaries to one file and band series to another.
type CSVJournal struct {
	runs  *csv.Writer
	bands *csv.Writer
	rf, bf *os.File
}

// NewCSV opens both files for appending, creating them as needed. Headers
// are written only to empty files, so one journal accumulates across runs.
func NewCSV(runsPath, bandsPath string) (*CSVJournal, error) {
	rf, rw, err := openAppend(runsPath, runsHeader)
	if err != nil {
		return nil, err
	}
	bf, bw, err := openAppend(bandsPath, bandsHeader)
	if err != nil {
		_ = rf.Close()
		return nil, err
	}
	return &CSVJournal{rw, bw, rf, bf}, nil
}

func openAppend(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(header); err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, nil, fmt.Errorf("write header %s: %w", path, err)
		}
	}
	return f, w, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.UTC().Format(time.RFC3339),
		f(r.Inputs.RiskPerTrade),
		f(r.Inputs.WinRate),
		f(r.Inputs.AvgR),
		r.Inputs.VolLevel.String(),
		strconv.Itoa(r.Inputs.Paths),
		strconv.Itoa(r.HorizonTrades),
		f(r.DD50Risk),
		f(r.FinalP05),
		f(r.FinalP50),
		f(r.FinalP95),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}

	if err := writeBands(j.bands, r); err != nil {
		return err
	}
	j.bands.Flush()
	return j.bands.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.bands.Flush()
	if err := j.bands.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.bf.Close(); err != nil {
		return err
	}
	return nil
}

// WriteBandsCSV writes a standalone bands table for r to w.
func WriteBandsCSV(w io.Writer, r RunRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bandsHeader); err != nil {
		return err
	}
	if err := writeBands(cw, r); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeBands(w *csv.Writer, r RunRecord) error {
	b := r.Bands
	if len(b.P05) != b.Len() || len(b.P25) != b.Len() || len(b.P75) != b.Len() || len(b.P95) != b.Len() {
		return fmt.Errorf("run %s: band series have mismatched lengths", r.RunID)
	}
	for i := 0; i < b.Len(); i++ {
		err := w.Write([]string{
			r.RunID,
			strconv.Itoa(i),
			f(b.P05[i]),
			f(b.P25[i]),
			f(b.P50[i]),
			f(b.P75[i]),
			f(b.P95[i]),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
