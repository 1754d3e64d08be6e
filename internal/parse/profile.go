package parse

import "strings"

// Profile selects the keyword heuristics for a bank. Only the keyword
// list and label vary between banks; the parsing algorithm is shared.
type Profile struct {
	Label    string
	Keywords []string
}

// IsDebit reports whether a description routes a lone amount to the
// debit column: the lower-cased description contains any keyword.
func (p Profile) IsDebit(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range p.Keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
