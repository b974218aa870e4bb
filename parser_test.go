package nuchart

import (
	"errors"
	"strings"
	"testing"
)

// buildRecord lays field strings onto a blank punch-card line at their
// format offsets. The isomer column defaults to ground state.
func buildRecord(fields map[int]string) string {
	size := 120
	for off, s := range fields {
		if off+len(s) > size {
			size = off + len(s)
		}
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = ' '
	}
	buf[7] = '0'
	for off, s := range fields {
		copy(buf[off:], s)
	}
	return string(buf)
}

func carbon12Line() string {
	return buildRecord(map[int]string{
		0:   "012",
		4:   "006",
		11:  "12C",
		18:  "0.0",
		29:  "0.0",
		60:  "stbl",
		79:  "0+",
		106: "IS=98.93 8",
	})
}

func TestParseRecordCarbon12(t *testing.T) {
	n, err := NewParser().ParseRecord(carbon12Line())
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if n.A != 12 || n.Z != 6 || n.N != 6 {
		t.Errorf("expected A=12 Z=6 N=6, got A=%d Z=%d N=%d", n.A, n.Z, n.N)
	}
	if n.Element != "C" {
		t.Errorf("expected element C, got %q", n.Element)
	}
	if n.Mode != DecayStable {
		t.Errorf("expected stable, got %v", n.Mode)
	}
	if !n.MassKnown || n.MassExcess != 0 {
		t.Errorf("expected measured zero mass excess, got known=%v value=%g", n.MassKnown, n.MassExcess)
	}
	if n.HalfLife != "stbl" {
		t.Errorf("expected half-life sentinel stbl, got %q", n.HalfLife)
	}
	if n.Spin != "0+" {
		t.Errorf("expected spin 0+, got %q", n.Spin)
	}
	if len(n.Branches) != 1 || n.Branches[0].Mode != "IS" || n.Branches[0].Value != "98.93" {
		t.Errorf("unexpected branches: %+v", n.Branches)
	}
	if n.String() != "C12" {
		t.Errorf("expected label C12, got %q", n.String())
	}
}

func TestParseRecordHalfLifeMarkup(t *testing.T) {
	line := buildRecord(map[int]string{
		0:   "100",
		4:   "035",
		18:  "-56430#",
		29:  "200#",
		60:  "<1#",
		69:  "ms",
		79:  "(2-)#",
		106: "B-=100",
	})
	n, err := NewParser().ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if n.HalfLife != "&lt; 1 ms" {
		t.Errorf("expected half-life %q, got %q", "&lt; 1 ms", n.HalfLife)
	}
	if !n.Extrapolated {
		t.Error("expected extrapolated record")
	}
	if n.Mode != DecayBetaMinus {
		t.Errorf("expected beta-, got %v", n.Mode)
	}
	if n.MassExcess != -56430 {
		t.Errorf("expected mass excess -56430, got %g", n.MassExcess)
	}
	if n.MassError != 200 {
		t.Errorf("expected mass error 200, got %g", n.MassError)
	}
	if n.Spin != "(2-)" {
		t.Errorf("expected spin (2-), got %q", n.Spin)
	}
}

func TestParseRecordNeutronNumber(t *testing.T) {
	cases := []struct {
		a, z string
		n    int
	}{
		{"001", "000", 1},
		{"002", "001", 1},
		{"238", "092", 146},
		{"294", "118", 176},
	}
	for _, c := range cases {
		line := buildRecord(map[int]string{
			0: c.a, 4: c.z, 60: "1", 69: "s", 79: "0+", 106: "B-=100",
		})
		n, err := NewParser().ParseRecord(line)
		if err != nil {
			t.Fatalf("ParseRecord A=%s Z=%s: %v", c.a, c.z, err)
		}
		if n.N != c.n || n.N != n.A-n.Z {
			t.Errorf("A=%s Z=%s: expected N=%d, got %d", c.a, c.z, c.n, n.N)
		}
	}
}

func TestParseRecordUnknownElement(t *testing.T) {
	line := buildRecord(map[int]string{
		0: "330", 4: "130", 60: "1", 69: "us", 79: "0+", 106: "A ?",
	})
	n, err := NewParser().ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if n.Element != "(130)" {
		t.Errorf("expected placeholder (130), got %q", n.Element)
	}
}

func TestParseRecordMissingMass(t *testing.T) {
	line := buildRecord(map[int]string{
		0: "020", 4: "004", 60: "1", 69: "zs", 79: "0+", 106: "2n ?",
	})
	n, err := NewParser().ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if n.MassKnown {
		t.Error("empty mass field must parse as absent, not zero")
	}
	if n.Mode != DecayNeutron {
		t.Errorf("expected neutron emission, got %v", n.Mode)
	}
}

func TestParseRecordFilters(t *testing.T) {
	if _, err := NewParser().ParseRecord("# NUBASE table header"); !errors.Is(err, ErrCommentLine) {
		t.Errorf("comment line: expected ErrCommentLine, got %v", err)
	}

	isomer := []byte(carbon12Line())
	isomer[7] = '1'
	if _, err := NewParser().ParseRecord(string(isomer)); !errors.Is(err, ErrNotGroundState) {
		t.Errorf("isomer line: expected ErrNotGroundState, got %v", err)
	}

	if _, err := NewParser().ParseRecord(carbon12Line()[:50]); !errors.Is(err, ErrShortRecord) {
		t.Errorf("short line: expected ErrShortRecord, got %v", err)
	}
}

func TestSkippable(t *testing.T) {
	if !Skippable("# comment") {
		t.Error("comment line should be skippable")
	}
	isomer := []byte(carbon12Line())
	isomer[7] = '2'
	if !Skippable(string(isomer)) {
		t.Error("isomer line should be skippable")
	}
	if Skippable(carbon12Line()) {
		t.Error("ground-state line should not be skippable")
	}
}

func TestStripExtrapolationIdempotent(t *testing.T) {
	for _, s := range []string{"1234#", "12#34", "stbl", "  5.0  ", "##"} {
		once, _ := stripExtrapolation(s)
		twice, marked := stripExtrapolation(once)
		if once != twice {
			t.Errorf("%q: stripping not idempotent: %q != %q", s, once, twice)
		}
		if marked {
			t.Errorf("%q: second strip still saw a marker", s)
		}
	}
}

func TestNormalizeHalfLifeGreaterThan(t *testing.T) {
	hl, extrapolated := normalizeHalfLife(" >5    ")
	if hl != "&gt; 5" {
		t.Errorf("expected %q, got %q", "&gt; 5", hl)
	}
	if extrapolated {
		t.Error("no marker present, must not report extrapolation")
	}
}

func TestParseRecordGarbageNumeric(t *testing.T) {
	line := buildRecord(map[int]string{
		0: "0xA", 4: "006", 60: "stbl", 79: "0+",
	})
	if _, err := NewParser().ParseRecord(line); err == nil {
		t.Error("expected error for non-numeric mass number field")
	}
	line = buildRecord(map[int]string{
		0: "012", 4: "006", 18: "1.2.3", 60: "stbl", 79: "0+",
	})
	if _, err := NewParser().ParseRecord(line); err == nil ||
		!strings.Contains(err.Error(), "mass excess") {
		t.Errorf("expected mass excess field error, got %v", err)
	}
}
