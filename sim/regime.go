package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVolLevel is returned when a volatility regime label is not one
// of LOW, MED, HIGH or EXTREME.
var ErrUnknownVolLevel = errors.New("unknown volatility level")

// VolLevel is a coarse volatility regime. The zero value is not a valid
// level; use ParseVolLevel or one of the constants.
type VolLevel int

const (
	VolLow VolLevel = iota + 1
	VolMed
	VolHigh
	VolExtreme
)

// VolLevels lists every valid regime from calmest to wildest.
var VolLevels = []VolLevel{VolLow, VolMed, VolHigh, VolExtreme}

// ParseVolLevel is case-insensitive and accepts MEDIUM for MED.
func ParseVolLevel(s string) (VolLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return VolLow, nil
	case "MED", "MEDIUM":
		return VolMed, nil
	case "HIGH":
		return VolHigh, nil
	case "EXTREME":
		return VolExtreme, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVolLevel, s)
}

func (v VolLevel) Valid() bool {
	return v >= VolLow && v <= VolExtreme
}

func (v VolLevel) String() string {
	switch v {
	case VolLow:
		return "LOW"
	case VolMed:
		return "MED"
	case VolHigh:
		return "HIGH"
	case VolExtreme:
		return "EXTREME"
	}
	return fmt.Sprintf("VolLevel(%d)", int(v))
}

// Dispersion is the noise multiplier for the regime. Callers must pass a
// valid level; Engine.Run checks that before simulating.
func (v VolLevel) Dispersion() float64 {
	switch v {
	case VolLow:
		return 0.55
	case VolMed:
		return 0.85
	case VolHigh:
		return 1.15
	case VolExtreme:
		return 1.55
	}
	panic(fmt.Sprintf("sim: dispersion requested for invalid %s", v))
}

func (v VolLevel) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVolLevel, int(v))
	}
	return []byte(v.String()), nil
}

func (v *VolLevel) UnmarshalText(b []byte) error {
	lvl, err := ParseVolLevel(string(b))
	if err != nil {
		return err
	}
	*v = lvl
	return nil
}

// Set and Type let a VolLevel be bound directly as a cobra/pflag flag.
func (v *VolLevel) Set(s string) error { return v.UnmarshalText([]byte(s)) }

func (v *VolLevel) Type() string { return "LOW|MED|HIGH|EXTREME" }
