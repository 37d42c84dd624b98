package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatRunOrg renders a RunRecord as an Org-mode block. Structured facts go
// in a PROPERTIES drawer; Assumptions and Decision are left for notes.
func FormatRunOrg(r RunRecord) string {
	heading := fmt.Sprintf("** Run: %s %.2f%% risk (%s)", r.Inputs.VolLevel, 100*r.Inputs.RiskPerTrade, shortID(r.RunID))
	created := r.Created.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":RUN_ID: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf(":ID: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", created))
	b.WriteString(fmt.Sprintf(":RISK_PER_TRADE: %.4f\n", r.Inputs.RiskPerTrade))
	b.WriteString(fmt.Sprintf(":WIN_RATE: %.4f\n", r.Inputs.WinRate))
	b.WriteString(fmt.Sprintf(":AVG_R: %.2f\n", r.Inputs.AvgR))
	b.WriteString(fmt.Sprintf(":VOL_LEVEL: %s\n", r.Inputs.VolLevel))
	b.WriteString(fmt.Sprintf(":PATHS: %d\n", r.Inputs.Paths))
	b.WriteString(fmt.Sprintf(":HORIZON_TRADES: %d\n", r.HorizonTrades))
	b.WriteString(fmt.Sprintf(":DD50_RISK: %.4f\n", r.DD50Risk))
	b.WriteString(fmt.Sprintf(":FINAL_P05: %.4f\n", r.FinalP05))
	b.WriteString(fmt.Sprintf(":FINAL_P50: %.4f\n", r.FinalP50))
	b.WriteString(fmt.Sprintf(":FINAL_P95: %.4f\n", r.FinalP95))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Assumptions\n- \n\n")
	b.WriteString("*** Decision\n- \n")

	return b.String()
}

// FormatRunsOrg renders multiple runs separated by blank lines.
func FormatRunsOrg(runs []RunRecord) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatRunOrg(r))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
