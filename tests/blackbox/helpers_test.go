//go:build blackbox

package blackbox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/survival/worker"
	"github.com/stretchr/testify/require"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func decodeResponse(t *testing.T, out string) worker.Response {
	t.Helper()

	var resp worker.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output:\n%s", out)
	return resp
}

// writeConfig writes a JSON config whose journal lives under dir.
func writeConfig(t *testing.T, dir string) (cfgPath, dbPath string) {
	t.Helper()

	dbPath = filepath.Join(dir, "journal.sqlite")
	cfgPath = filepath.Join(dir, "survival.json")
	cfg := map[string]any{
		"journal": map[string]any{"type": "sqlite", "db_path": dbPath},
		"log":     map[string]any{"level": "warn"},
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, data, 0o644))
	return cfgPath, dbPath
}
