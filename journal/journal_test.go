package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/survival/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunRecordFinals(t *testing.T) {
	t.Parallel()

	rec := sampleRecord("R1", time.Now())
	assert.Equal(t, 0.8, rec.FinalP05)
	assert.Equal(t, 1.05, rec.FinalP50)
	assert.Equal(t, 1.3, rec.FinalP95)
	assert.Equal(t, 147, rec.HorizonTrades)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.JournalConfig
		wantErr bool
	}{
		{"none", config.JournalConfig{Type: "none"}, false},
		{"empty", config.JournalConfig{}, false},
		{"sqlite", config.JournalConfig{Type: "sqlite", DBPath: filepath.Join(dir, "j.db")}, false},
		{"csv", config.JournalConfig{Type: "csv", RunsFile: filepath.Join(dir, "runs.csv"), BandsFile: filepath.Join(dir, "bands.csv")}, false},
		{"unknown", config.JournalConfig{Type: "mongo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, j.RecordRun(sampleRecord("R-"+tt.name, time.Now())))
			assert.NoError(t, j.Close())
		})
	}
}
