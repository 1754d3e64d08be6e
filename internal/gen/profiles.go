package gen

import (
	"strings"

	"github.com/parsegen-dev/parsegen/internal/parse"
)

// genericKeywords route lone amounts to the debit column for banks
// without a dedicated profile.
var genericKeywords = []string{"debit", "withdrawal", "payment", "purchase", "atm", "card"}

// iciciKeywords is the narrower ICICI list.
var iciciKeywords = []string{"debit", "withdrawal", "payment", "purchase"}

// ProfileFor selects the heuristic profile for a bank key. Only a
// binary distinction exists: ICICI gets the narrow keyword list,
// everything else the generic one.
func ProfileFor(bank string) parse.Profile {
	switch strings.ToLower(bank) {
	case "icici":
		return parse.Profile{Label: "ICICI Bank", Keywords: iciciKeywords}
	default:
		return parse.Profile{Label: "Generic Bank", Keywords: genericKeywords}
	}
}
