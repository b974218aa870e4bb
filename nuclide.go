package nuchart

import (
	"fmt"
	"strconv"
)

// DecayMode is the canonical primary decay classification of a nuclide.
type DecayMode int

const (
	DecayUnknown DecayMode = iota
	DecayStable
	DecayBetaMinus
	DecayBetaPlus
	DecayAlpha
	DecayFission
	DecayProton
	DecayTwoProton
	DecayNeutron
	DecayUnbound
)

var decayModeNames = map[DecayMode]string{
	DecayUnknown:   "unknown",
	DecayStable:    "stable",
	DecayBetaMinus: "beta-",
	DecayBetaPlus:  "beta+",
	DecayAlpha:     "alpha",
	DecayFission:   "fission",
	DecayProton:    "proton",
	DecayTwoProton: "two-proton",
	DecayNeutron:   "neutron",
	DecayUnbound:   "unbound",
}

func (m DecayMode) String() string {
	if s, ok := decayModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("DecayMode(%d)", int(m))
}

// DecayBranch is one entry of the decay-mode field: a mode token, the
// relation under which its branching ratio is given ("=", "~", ">", "<",
// "≤", "≥"), the ratio in percent (or "?" when unknown) and its uncertainty.
type DecayBranch struct {
	Mode        string
	Relation    string
	Value       string
	Uncertainty string
}

// Percent returns the branching ratio as a number. The second return value
// is false when the ratio is unknown or not numeric.
func (b DecayBranch) Percent() (float64, bool) {
	v, err := strconv.ParseFloat(b.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Nuclide is one ground-state entry of the database. Value type; every
// field is fully populated by the parser before the record is handed on.
type Nuclide struct {
	A int // mass number
	Z int // proton number
	N int // neutron number, always A - Z

	// Element is the chemical symbol for Z, or the parenthesized
	// placeholder "(Z)" for elements beyond the symbol table. The
	// parenthesis is meaningful: renderers size numeric placeholders
	// differently from letter symbols.
	Element string

	// MassExcess and MassError are in keV. MassKnown separates a
	// measured 0.0 from an empty field in the source record.
	MassExcess float64
	MassError  float64
	MassKnown  bool

	// Extrapolated is set when the mass-excess or half-life token
	// carried the '#' systematics marker.
	Extrapolated bool

	// HalfLife is the normalized display string with unit suffix, e.g.
	// "4.5 Gy" or "&lt; 1 ms", or the sentinels "stbl" / "p-unst".
	// Comparison operators are already in their markup-safe form.
	HalfLife string

	// Spin is the ground-state spin/parity label. Parsed but not used
	// by the renderers.
	Spin string

	Mode DecayMode

	// Branches lists every decay branch in database order; the first
	// entry is the dominant one and is what Mode was classified from.
	Branches []DecayBranch
}

// String returns the conventional isotope label, e.g. "C12".
func (n *Nuclide) String() string {
	return fmt.Sprintf("%s%d", n.Element, n.A)
}

// Stable reports whether the nuclide classified as stable.
func (n *Nuclide) Stable() bool { return n.Mode == DecayStable }
