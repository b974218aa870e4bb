package nuchart

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
)

func massNuclide(z, n int, mass, uncertainty float64) *Nuclide {
	return &Nuclide{
		Z: z, N: n, A: z + n,
		MassExcess: mass,
		MassError:  uncertainty,
		MassKnown:  true,
	}
}

func TestWriteSeparationTableS2n(t *testing.T) {
	table := testTable(
		massNuclide(8, 8, -4737.0, 10),
		massNuclide(8, 10, -782.0, 20),
	)

	var buf bytes.Buffer
	if err := WriteSeparationTable(&buf, table, TwoNeutron); err != nil {
		t.Fatalf("WriteSeparationTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "# Z  N  S2n" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected exactly one data row, got %d lines: %q", len(lines), lines)
	}

	fields := strings.Fields(lines[1])
	if len(fields) != 4 || fields[0] != "8" || fields[1] != "10" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	value, _ := strconv.ParseFloat(fields[2], 64)
	want := 16.142 + (-4.737) - (-0.782)
	if math.Abs(value-want) > 1e-4 {
		t.Errorf("expected S2n %.4f, got %g", want, value)
	}
	uncertainty, _ := strconv.ParseFloat(fields[3], 64)
	if math.Abs(uncertainty-math.Sqrt(0.01*0.01+0.02*0.02)) > 1e-6 {
		t.Errorf("unexpected uncertainty %g", uncertainty)
	}
}

func TestSeparationAbsentNeighborSuppressesRow(t *testing.T) {
	table := testTable(
		massNuclide(8, 10, -782.0, 20),
		// Neighbor two neutrons lighter exists but carries no mass.
		testNuclide(8, 8, DecayStable, "stbl"),
	)
	var buf bytes.Buffer
	if err := WriteSeparationTable(&buf, table, TwoNeutron); err != nil {
		t.Fatalf("WriteSeparationTable: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestSeparationZeroMassIsPresent(t *testing.T) {
	table := testTable(
		massNuclide(6, 6, 0, 0.1),
		massNuclide(6, 8, 3019.893, 0.4),
	)
	var buf bytes.Buffer
	if err := WriteSeparationTable(&buf, table, TwoNeutron); err != nil {
		t.Fatalf("WriteSeparationTable: %v", err)
	}
	if !strings.Contains(buf.String(), "6 8 ") {
		t.Errorf("measured zero mass excess must not suppress the pair: %q", buf.String())
	}
}

func TestWriteSeparationTableS2p(t *testing.T) {
	table := testTable(
		massNuclide(6, 8, -3019.0, 2),
		massNuclide(8, 8, -4737.0, 10),
	)
	var buf bytes.Buffer
	if err := WriteSeparationTable(&buf, table, TwoProton); err != nil {
		t.Fatalf("WriteSeparationTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "# N  Z  S2p" {
		t.Errorf("unexpected header %q", lines[0])
	}
	fields := strings.Fields(lines[1])
	if len(fields) != 4 || fields[0] != "8" || fields[1] != "8" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	value, _ := strconv.ParseFloat(fields[2], 64)
	want := 14.578 + (-3.019) - (-4.737)
	if math.Abs(value-want) > 1e-4 {
		t.Errorf("expected S2p %.4f, got %g", want, value)
	}
}

func TestWriteSeparationTableBlankLineBetweenBlocks(t *testing.T) {
	table := testTable(
		massNuclide(8, 8, -4737.0, 10),
		massNuclide(8, 10, -782.0, 20),
		massNuclide(9, 8, 1951.0, 0.2),
		massNuclide(9, 10, -1487.4, 0.5),
	)
	var buf bytes.Buffer
	if err := WriteSeparationTable(&buf, table, TwoNeutron); err != nil {
		t.Fatalf("WriteSeparationTable: %v", err)
	}
	if !strings.Contains(buf.String(), "\n\n9 10 ") {
		t.Errorf("expected blank line between Z blocks: %q", buf.String())
	}
}

func TestWriteSeparationTableEmpty(t *testing.T) {
	if err := WriteSeparationTable(&bytes.Buffer{}, NewTable(), TwoNeutron); err == nil {
		t.Error("expected error for empty table")
	}
}
