package api

import (
	"github.com/rustyeddy/survival/sim"
)

// simulateRequest accepts either {"id": ..., "inputs": {...}} or the input
// fields at the top level.
type simulateRequest struct {
	ID     string         `json:"id"`
	Inputs *inputsPayload `json:"inputs"`
	inputsPayload
}

// inputsPayload keeps every field optional so absent fields can fall back
// to the server defaults. The regime stays a string here so an unknown
// label is reported as a simulation failure and not as malformed JSON.
type inputsPayload struct {
	RiskPerTrade *float64 `json:"riskPerTrade"`
	WinRate      *float64 `json:"winRate"`
	AvgR         *float64 `json:"avgR"`
	VolLevel     *string  `json:"volLevel"`
	Paths        *int     `json:"paths"`
}

func (p inputsPayload) apply(def sim.Inputs) (sim.Inputs, error) {
	in := def
	if p.RiskPerTrade != nil {
		in.RiskPerTrade = *p.RiskPerTrade
	}
	if p.WinRate != nil {
		in.WinRate = *p.WinRate
	}
	if p.AvgR != nil {
		in.AvgR = *p.AvgR
	}
	if p.Paths != nil {
		in.Paths = *p.Paths
	}
	if p.VolLevel != nil {
		lvl, err := sim.ParseVolLevel(*p.VolLevel)
		if err != nil {
			return sim.Inputs{}, err
		}
		in.VolLevel = lvl
	}
	return in, nil
}
