package nuchart

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Two-nucleon separation energies are derived from mass-excess
// differences between grid neighbors:
//
//	S2n(Z, N) = 2·Δm(n) + M(Z, N-2) - M(Z, N)
//	S2p(Z, N) = 2·Δm(¹H) + M(Z-2, N) - M(Z, N)
//
// with the mass excesses taken in MeV. The doubled neutron and hydrogen
// mass excesses are format constants of the evaluation.
const (
	twoNeutronMassExcess = 16.142 // MeV
	twoProtonMassExcess  = 14.578 // MeV
)

// SeparationKind selects which two-nucleon separation energy to tabulate.
type SeparationKind int

const (
	TwoNeutron SeparationKind = iota // S2n, neighbor two neutrons lighter
	TwoProton                        // S2p, neighbor two protons lighter
)

func (k SeparationKind) String() string {
	if k == TwoProton {
		return "S2p"
	}
	return "S2n"
}

// WriteSeparationTable emits the separation-energy table for every (Z, N)
// pair whose cell and lighter neighbor both carry a measured mass excess.
// A pair with either mass absent is suppressed entirely; a measured 0.0
// still counts as present. Output is one header comment, rows of
// "Z N value uncertainty" (N and Z swapped for S2p) and a blank line
// between blocks. The table must be fully populated before this runs:
// neighbor lookups have to see sibling records regardless of input order.
func WriteSeparationTable(w io.Writer, t *Table, kind SeparationKind) error {
	minZ, maxZ, minN, maxN, ok := t.Bounds()
	if !ok {
		return fmt.Errorf("empty nuclide table")
	}

	bw := bufio.NewWriter(w)
	switch kind {
	case TwoProton:
		fmt.Fprintf(bw, "# N  Z  %s\n", kind)
		for n := minN; n <= maxN; n++ {
			emitted := false
			for z := minZ + 2; z <= maxZ; z++ {
				if row, ok := separationRow(t, z, n, kind); ok {
					fmt.Fprintln(bw, row)
					emitted = true
				}
			}
			if emitted {
				fmt.Fprintln(bw)
			}
		}
	default:
		fmt.Fprintf(bw, "# Z  N  %s\n", kind)
		for z := minZ; z <= maxZ; z++ {
			emitted := false
			for n := minN + 2; n <= maxN; n++ {
				if row, ok := separationRow(t, z, n, kind); ok {
					fmt.Fprintln(bw, row)
					emitted = true
				}
			}
			if emitted {
				fmt.Fprintln(bw)
			}
		}
	}
	return bw.Flush()
}

func separationRow(t *Table, z, n int, kind SeparationKind) (string, bool) {
	var lighterMass, lighterErr float64
	var ok bool
	base := twoNeutronMassExcess
	if kind == TwoProton {
		lighterMass, lighterErr, ok = t.Mass(z-2, n)
		base = twoProtonMassExcess
	} else {
		lighterMass, lighterErr, ok = t.Mass(z, n-2)
	}
	if !ok {
		return "", false
	}
	mass, massErr, ok := t.Mass(z, n)
	if !ok {
		return "", false
	}

	// Mass excesses are stored in keV; the table is in MeV.
	value := base + (lighterMass-mass)/1000.0
	uncertainty := math.Sqrt(lighterErr*lighterErr+massErr*massErr) / 1000.0

	a, b := z, n
	if kind == TwoProton {
		a, b = n, z
	}
	return fmt.Sprintf("%d %d %s %s", a, b, sigFigs(value), sigFigs(uncertainty)), true
}

// sigFigs formats an energy to six significant digits.
func sigFigs(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
