// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	risk_per_trade REAL NOT NULL,
	win_rate REAL NOT NULL,
	avg_r REAL NOT NULL,
	vol_level TEXT NOT NULL,
	paths INTEGER NOT NULL,
	horizon_trades INTEGER NOT NULL,
	dd50_risk REAL NOT NULL,
	final_p05 REAL NOT NULL,
	final_p50 REAL NOT NULL,
	final_p95 REAL NOT NULL,
	bands TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
