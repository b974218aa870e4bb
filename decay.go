package nuchart

import (
	"regexp"
	"strings"
)

// Relation markers separating a decay-mode token from its branching ratio.
// The raw field also contains the fortran relics "LE" and "GE", which are
// rewritten to their unicode forms before splitting.
const branchRelationMarkers = "=~><≤≥"

// isotopicallyStable is the branch token for stable isotopes; the value
// given with it is the natural abundance, not a branching ratio.
const isotopicallyStable = "IS"

// unknownBranch stands in for an empty decay-mode field.
var unknownBranch = DecayBranch{Mode: "?", Relation: "=", Value: "?", Uncertainty: "0"}

// ParseDecayBranches parses the raw decay-mode field into its ordered
// branch list. The database lists the dominant branch first; entries are
// ';'-separated "mode RELATION value [uncertainty]" items, with "mode ?"
// shorthand for an unknown ratio. An empty field yields the single
// unknown branch.
func ParseDecayBranches(field string) []DecayBranch {
	if strings.TrimSpace(field) == "" {
		return []DecayBranch{unknownBranch}
	}
	field = strings.ReplaceAll(field, "LE", "≤")
	field = strings.ReplaceAll(field, "GE", "≥")

	var branches []DecayBranch
	for _, item := range strings.Split(field, ";") {
		branches = append(branches, parseBranch(item))
	}
	return branches
}

func parseBranch(item string) DecayBranch {
	// Evaluators write unknown ratios as "mode ?", "mode=?" or "mode= ?";
	// normalize to the '=' form before splitting.
	if strings.Contains(item, " ?") && !strings.Contains(item, "=") {
		item = strings.Replace(item, " ?", "=?", 1)
	}

	i := strings.IndexAny(item, branchRelationMarkers)
	if i < 0 {
		// Bare mode with no ratio at all.
		mode := strings.ReplaceAll(stripSpaces(item), "?", "")
		return DecayBranch{Mode: mode, Relation: "=", Value: "?", Uncertainty: "0"}
	}

	b := DecayBranch{
		Mode:        strings.TrimSpace(item[:i]),
		Relation:    string([]rune(item[i:])[0]),
		Value:       "?",
		Uncertainty: "0",
	}
	rest := strings.Fields(item[i+len(b.Relation):])
	if len(rest) > 0 {
		b.Value = rest[0]
	}
	if len(rest) > 1 {
		b.Uncertainty = rest[1]
	}
	return b
}

// Classify derives the canonical decay mode from the normalized half-life
// string and the parsed branch list. The stable and particle-unstable
// sentinels win over any branch token; otherwise the dominant (first)
// branch is matched case-sensitively against the fixed vocabulary, and
// anything unmatched degrades to DecayUnknown rather than failing — the
// database is known to carry incomplete entries and the chart's job is to
// show that uncertainty.
func Classify(halfLife string, branches []DecayBranch) DecayMode {
	token := ""
	if len(branches) > 0 {
		token = stripSpaces(branches[0].Mode)
	}

	switch {
	case halfLife == halfLifeStable || token == isotopicallyStable:
		return DecayStable
	case halfLife == halfLifeUnbound:
		return DecayUnbound
	}

	switch token {
	case "B-":
		return DecayBetaMinus
	case "B+", "EC":
		return DecayBetaPlus
	case "A":
		return DecayAlpha
	case "SF":
		return DecayFission
	case "p":
		return DecayProton
	case "2p":
		return DecayTwoProton
	case "n", "2n":
		// Single and double neutron emission share one tag.
		return DecayNeutron
	}
	return DecayUnknown
}

// clusterPattern matches cluster-emission branch tokens written as an
// isotope name, e.g. "14C" or "24Ne". Cluster decay appears only as a
// secondary or tertiary branch.
var clusterPattern = regexp.MustCompile(`^[0-9]+[A-Z]+[a-z]?$`)

// IsClusterEmission reports whether a branch token names cluster emission.
func IsClusterEmission(mode string) bool {
	return clusterPattern.MatchString(stripSpaces(mode))
}
