package nuchart

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/encoding/charmap"
)

type cellKey struct {
	Z, N int
}

// Table holds parsed nuclides keyed by (Z, N). It owns every record it
// stores; duplicate keys are last-write-wins.
type Table struct {
	cells map[cellKey]*Nuclide

	minZ, maxZ int
	minN, maxN int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cells: make(map[cellKey]*Nuclide)}
}

// Add stores a nuclide, replacing any previous record at the same (Z, N).
func (t *Table) Add(n *Nuclide) {
	if len(t.cells) == 0 {
		t.minZ, t.maxZ = n.Z, n.Z
		t.minN, t.maxN = n.N, n.N
	} else {
		if n.Z < t.minZ {
			t.minZ = n.Z
		}
		if n.Z > t.maxZ {
			t.maxZ = n.Z
		}
		if n.N < t.minN {
			t.minN = n.N
		}
		if n.N > t.maxN {
			t.maxN = n.N
		}
	}
	t.cells[cellKey{n.Z, n.N}] = n
}

// Lookup returns the nuclide at (Z, N), if present.
func (t *Table) Lookup(z, n int) (*Nuclide, bool) {
	nuc, ok := t.cells[cellKey{z, n}]
	return nuc, ok
}

// Mass returns the mass excess and its uncertainty at (Z, N) in keV. The
// third return value is false when the cell is absent or its mass was not
// measured — an empty mass field is distinct from a measured 0.0.
func (t *Table) Mass(z, n int) (mass, uncertainty float64, ok bool) {
	nuc, ok := t.cells[cellKey{z, n}]
	if !ok || !nuc.MassKnown {
		return 0, 0, false
	}
	return nuc.MassExcess, nuc.MassError, true
}

// Len returns the number of stored nuclides.
func (t *Table) Len() int { return len(t.cells) }

// Bounds returns the observed (Z, N) extents. ok is false for an empty table.
func (t *Table) Bounds() (minZ, maxZ, minN, maxN int, ok bool) {
	if len(t.cells) == 0 {
		return 0, 0, 0, 0, false
	}
	return t.minZ, t.maxZ, t.minN, t.maxN, true
}

// Nuclides returns every stored record ordered by Z then N. Renderers
// iterate this slice so output never depends on map iteration order.
func (t *Table) Nuclides() []*Nuclide {
	out := make([]*Nuclide, 0, len(t.cells))
	for _, n := range t.cells {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].N < out[j].N
	})
	return out
}

// ReadTable streams the fixed-column database from r, one line per
// record, and returns the populated table. Comment lines and isomer
// entries are skipped silently; any other malformed line aborts with an
// error naming the line number, because a partially parsed record would
// chart as misleading output with no error signal. The stream is decoded
// as Latin-1: the historical data files predate UTF-8.
func (p *Parser) ReadTable(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if Skippable(line) {
			continue
		}
		n, err := p.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		t.Add(n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return t, nil
}
