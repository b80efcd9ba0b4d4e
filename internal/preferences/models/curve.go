package models

import "fmt"

// InsulinCurve selects the insulin activity model used by the dosing algorithm.
type InsulinCurve string

const (
	InsulinCurveRapidActing InsulinCurve = "rapid-acting"
	InsulinCurveUltraRapid  InsulinCurve = "ultra-rapid"
	InsulinCurveBilinear    InsulinCurve = "bilinear"
)

// DefaultInsulinCurve is returned whenever a curve cannot be read.
const DefaultInsulinCurve = InsulinCurveRapidActing

var insulinCurves = []InsulinCurve{
	InsulinCurveRapidActing,
	InsulinCurveUltraRapid,
	InsulinCurveBilinear,
}

// InsulinCurves lists every supported curve in display order.
func InsulinCurves() []InsulinCurve {
	out := make([]InsulinCurve, len(insulinCurves))
	copy(out, insulinCurves)
	return out
}

func (c InsulinCurve) IsValid() bool {
	for _, known := range insulinCurves {
		if c == known {
			return true
		}
	}
	return false
}

func (c InsulinCurve) String() string {
	return string(c)
}

// ParseInsulinCurve accepts the persisted curve names.
func ParseInsulinCurve(raw string) (InsulinCurve, error) {
	c := InsulinCurve(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown insulin curve %q", raw)
	}
	return c, nil
}

func (c InsulinCurve) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *InsulinCurve) UnmarshalText(text []byte) error {
	parsed, err := ParseInsulinCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
