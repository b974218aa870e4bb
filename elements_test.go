package nuchart

import (
	"strings"
	"testing"
)

func TestElementSymbols(t *testing.T) {
	table := NewElementTable()
	cases := map[int]string{
		0:   "n",
		1:   "H",
		6:   "C",
		53:  "I",
		92:  "U",
		118: "Uuo",
		120: "Ubn",
	}
	for z, want := range cases {
		if got := table.Symbol(z); got != want {
			t.Errorf("Symbol(%d): expected %q, got %q", z, want, got)
		}
	}
}

func TestElementSymbolPlaceholder(t *testing.T) {
	table := NewElementTable()
	if got := table.Symbol(121); got != "(121)" {
		t.Errorf("expected placeholder (121), got %q", got)
	}
	if got := table.Symbol(-1); got != "(-1)" {
		t.Errorf("expected placeholder for negative Z, got %q", got)
	}
}

func TestLoadElementTable(t *testing.T) {
	table, err := LoadElementTable(strings.NewReader("n\nH\nHe\n  Li  \n\n\n"))
	if err != nil {
		t.Fatalf("LoadElementTable: %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("expected 4 symbols after trailing-blank trim, got %d", table.Len())
	}
	if got := table.Symbol(3); got != "Li" {
		t.Errorf("expected trimmed Li, got %q", got)
	}
	if got := table.Symbol(4); got != "(4)" {
		t.Errorf("expected placeholder past table end, got %q", got)
	}
}
