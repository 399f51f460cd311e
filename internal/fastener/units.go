package fastener

import (
	"fmt"
	"strings"
)

// UnitSystem selects unit-dependent formulas. It never converts values.
type UnitSystem int

const (
	ISO UnitSystem = iota
	USCustomary
)

func (u UnitSystem) String() string {
	switch u {
	case ISO:
		return "iso"
	case USCustomary:
		return "us"
	default:
		return "unknown"
	}
}

func (u UnitSystem) ForceUnit() string {
	if u == USCustomary {
		return "lbf"
	}
	return "N"
}

func (u UnitSystem) LengthUnit() string {
	if u == USCustomary {
		return "in"
	}
	return "mm"
}

func (u UnitSystem) StressUnit() string {
	if u == USCustomary {
		return "psi"
	}
	return "MPa"
}

func (u UnitSystem) StiffnessUnit() string {
	return u.ForceUnit() + "/" + u.LengthUnit()
}

func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iso", "metric", "si":
		return ISO, nil
	case "us", "usc", "us-customary", "imperial", "unc":
		return USCustomary, nil
	default:
		return ISO, fmt.Errorf("unknown unit system: %s", s)
	}
}

func (u UnitSystem) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UnitSystem) UnmarshalText(text []byte) error {
	parsed, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
