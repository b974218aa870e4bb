package nuchart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The NuBase ascii file uses a punch-card scheme: every field starts at a
// fixed byte offset. Spans are 0-indexed and half-open.
type fieldSpan struct {
	start, end int
}

var (
	fieldMassNumber   = fieldSpan{0, 3}    // mass number A
	fieldAtomicNumber = fieldSpan{4, 7}    // atomic number Z
	fieldMassExcess   = fieldSpan{18, 27}  // mass excess in keV
	fieldMassError    = fieldSpan{29, 38}  // mass excess uncertainty in keV
	fieldHalfLife     = fieldSpan{60, 67}  // half-life value or stbl/p-unst
	fieldHalfLifeUnit = fieldSpan{69, 71}  // half-life unit (ms, s, y, Gy, ...)
	fieldSpin         = fieldSpan{79, 92}  // ground-state spin/parity
	fieldDecayModes   = fieldSpan{106, -1} // decay branches, runs to end of line
)

// colIsomerFlag holds '0' for ground-state entries; isomers carry 1, 2, ...
const colIsomerFlag = 7

// commentMarker in the first column marks a non-data line.
const commentMarker = '#'

// extrapolationMarker flags values taken from systematics, not measurement.
const extrapolationMarker = "#"

var (
	// ErrCommentLine marks a line whose first column is the comment marker.
	ErrCommentLine = errors.New("comment line")
	// ErrNotGroundState marks an isomer entry, which the chart does not show.
	ErrNotGroundState = errors.New("not a ground-state entry")
	// ErrShortRecord marks a line too short for the fixed-column format.
	ErrShortRecord = errors.New("record shorter than fixed-column format")
)

// Parser turns fixed-column database lines into Nuclide records.
type Parser struct {
	Elements *ElementTable
}

// NewParser returns a Parser using the built-in element symbol table.
func NewParser() *Parser {
	return &Parser{Elements: NewElementTable()}
}

// Skippable reports whether line is filtered out before field extraction:
// a comment line, or an entry whose isomer column is non-zero.
func Skippable(line string) bool {
	if line == "" || line[0] == commentMarker {
		return true
	}
	return len(line) > colIsomerFlag && line[colIsomerFlag] != '0'
}

// ParseRecord parses one ground-state line into a fully populated Nuclide.
// Comment and isomer lines return ErrCommentLine / ErrNotGroundState; a
// line shorter than the spin field extent returns ErrShortRecord, since a
// partial extraction would yield a silently corrupt record.
func (p *Parser) ParseRecord(line string) (*Nuclide, error) {
	if line == "" || line[0] == commentMarker {
		return nil, ErrCommentLine
	}
	if len(line) <= colIsomerFlag {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortRecord, len(line))
	}
	if line[colIsomerFlag] != '0' {
		return nil, ErrNotGroundState
	}
	if len(line) < fieldSpin.end {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrShortRecord, len(line), fieldSpin.end)
	}

	n := &Nuclide{}

	a, err := strconv.Atoi(strings.TrimSpace(cut(line, fieldMassNumber)))
	if err != nil {
		return nil, fmt.Errorf("mass number field: %w", err)
	}
	z, err := strconv.Atoi(strings.TrimSpace(cut(line, fieldAtomicNumber)))
	if err != nil {
		return nil, fmt.Errorf("atomic number field: %w", err)
	}
	n.A = a
	n.Z = z
	n.N = a - z
	if n.Z < 0 || n.N < 0 {
		return nil, fmt.Errorf("inconsistent record: A=%d Z=%d", a, z)
	}
	n.Element = p.Elements.Symbol(z)

	mass, extrapolated := stripExtrapolation(cut(line, fieldMassExcess))
	if mass != "" {
		v, err := strconv.ParseFloat(mass, 64)
		if err != nil {
			return nil, fmt.Errorf("mass excess field %q: %w", mass, err)
		}
		n.MassExcess = v
		n.MassKnown = true
	}
	n.Extrapolated = extrapolated

	if errTok, _ := stripExtrapolation(cut(line, fieldMassError)); errTok != "" {
		v, err := strconv.ParseFloat(errTok, 64)
		if err != nil {
			return nil, fmt.Errorf("mass error field %q: %w", errTok, err)
		}
		n.MassError = v
	}

	hl, hlExtrapolated := normalizeHalfLife(cut(line, fieldHalfLife))
	n.Extrapolated = n.Extrapolated || hlExtrapolated
	if hl != halfLifeStable && hl != halfLifeUnbound {
		if unit := stripSpaces(cut(line, fieldHalfLifeUnit)); unit != "" {
			hl += " " + unit
		}
	}
	n.HalfLife = hl

	spin, _ := stripExtrapolation(stripSpaces(cut(line, fieldSpin)))
	n.Spin = spin

	n.Branches = ParseDecayBranches(cut(line, fieldDecayModes))
	n.Mode = Classify(n.HalfLife, n.Branches)

	return n, nil
}

// cut extracts a field span from line. Spans past the end of the line are
// clipped; an open end (-1) runs to end of line. Callers have already
// verified the line reaches every mandatory field.
func cut(line string, f fieldSpan) string {
	if f.start >= len(line) {
		return ""
	}
	end := f.end
	if end < 0 || end > len(line) {
		end = len(line)
	}
	return line[f.start:end]
}

// stripSpaces removes every space, not only the padding: fields can carry
// interior alignment blanks.
func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// stripExtrapolation removes the '#' systematics marker and surrounding
// whitespace, reporting whether the marker was present. Idempotent.
func stripExtrapolation(s string) (string, bool) {
	marked := strings.Contains(s, extrapolationMarker)
	s = strings.ReplaceAll(s, extrapolationMarker, "")
	return strings.TrimSpace(s), marked
}

// Half-life sentinels used by the database evaluators.
const (
	halfLifeStable  = "stbl"
	halfLifeUnbound = "p-unst"
)

// normalizeHalfLife collapses the raw half-life token into its display
// form: spaces removed, '<' and '>' rewritten to their markup-safe
// entities (the string ends up embedded in SVG text), '#' stripped.
func normalizeHalfLife(s string) (string, bool) {
	s = stripSpaces(s)
	s = strings.Replace(s, "<", "&lt; ", 1)
	s = strings.Replace(s, ">", "&gt; ", 1)
	clean, extrapolated := stripExtrapolation(s)
	return clean, extrapolated
}
