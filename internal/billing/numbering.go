package billing

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitRuns = regexp.MustCompile(`\d+`)

// NextInvoiceNumber suggests the next invoice number given the existing
// numbers in the target scope (caller filters to non-deleted, same folder).
// The last contiguous digit run of each existing number is parsed as its
// sequence value; numbers without digits contribute nothing. The result is
// max+1, zero-padded to at least 3 digits, joined to the optional prefix
// with a hyphen ("INV" + 7 -> "INV-007").
func NextInvoiceNumber(existing []string, prefix string) string {
	max := 0
	for _, number := range existing {
		runs := digitRuns.FindAllString(number, -1)
		if len(runs) == 0 {
			continue
		}
		n, err := strconv.Atoi(runs[len(runs)-1])
		if err != nil {
			// Digit run too long for int, e.g. a pasted UUID. Skip it
			// rather than poisoning the suggestion.
			continue
		}
		if n > max {
			max = n
		}
	}

	next := fmt.Sprintf("%03d", max+1)
	if prefix != "" {
		return prefix + "-" + next
	}
	return next
}
