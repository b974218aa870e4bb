package nuchart

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// elementSymbols lists chemical symbols in order of atomic number Z.
// Index 0 is the bare neutron. Names beyond Z=112 follow the provisional
// IUPAC systematic symbols in use when the NuBase 2003 tables were issued.
var elementSymbols = []string{
	"n",
	"H", "He", "Li", "Be", "B",
	"C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P",
	"S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn",
	"Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br",
	"Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh",
	"Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs",
	"Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb",
	"Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re",
	"Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At",
	"Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am",
	"Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db",
	"Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Uut", "Fl", "Uup",
	"Lv", "Uus", "Uuo", "Uue", "Ubn",
}

// ElementTable maps atomic number Z to a chemical symbol. The zero value
// is unusable; use NewElementTable or LoadElementTable.
type ElementTable struct {
	symbols []string
}

// NewElementTable returns the built-in symbol table.
func NewElementTable() *ElementTable {
	return &ElementTable{symbols: elementSymbols}
}

// LoadElementTable reads a line-indexed symbol file: line k (0-indexed)
// holds the symbol for Z = k. Blank trailing lines are ignored. This is
// the periodic.dat convention kept for compatibility with existing files.
func LoadElementTable(r io.Reader) (*ElementTable, error) {
	var symbols []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		symbols = append(symbols, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading element table: %w", err)
	}
	for len(symbols) > 0 && symbols[len(symbols)-1] == "" {
		symbols = symbols[:len(symbols)-1]
	}
	return &ElementTable{symbols: symbols}, nil
}

// Symbol returns the chemical symbol for Z. A Z beyond the table's extent
// yields the parenthesized numeric placeholder "(Z)" rather than an error,
// so superheavy and undiscovered elements still chart.
func (t *ElementTable) Symbol(z int) string {
	if z >= 0 && z < len(t.symbols) && t.symbols[z] != "" {
		return t.symbols[z]
	}
	return fmt.Sprintf("(%d)", z)
}

// Len returns the number of symbols in the table.
func (t *ElementTable) Len() int { return len(t.symbols) }
