package sheet

import (
	"regexp"

	"github.com/etnz/fifo"
)

// rolePatterns are tried from the most specific to the most generic: for each role
// the first pattern matching any header wins.
var rolePatterns = map[fifo.Role][]*regexp.Regexp{
	fifo.RoleDate: {
		regexp.MustCompile(`(?i)\bvalue.?date\b`),
		regexp.MustCompile(`(?i)^date$`),
		regexp.MustCompile(`(?i)\bopt_flwfst\b`),
		regexp.MustCompile(`(?i)date|time|dt`),
	},
	fifo.RoleDirection: {
		regexp.MustCompile(`(?i)\bb/?s\b`),
		regexp.MustCompile(`(?i)direction|side|buy.*sell`),
	},
	fifo.RoleNominal: {
		regexp.MustCompile(`(?i)\bnominal\s*0\b`),
		regexp.MustCompile(`(?i)\bqty\b|\bquantity\b`),
		regexp.MustCompile(`(?i)\bnominal\b`),
		regexp.MustCompile(`(?i)amount|notional|volume`),
	},
	fifo.RoleTRN: {
		regexp.MustCompile(`(?i)\btrn[.\s]?nb\b`),
		regexp.MustCompile(`(?i)\btrn\b`),
		regexp.MustCompile(`(?i)transaction`),
	},
	fifo.RoleCNC: {
		regexp.MustCompile(`(?i)\bcnt[.\s]?nb\b`),
		regexp.MustCompile(`(?i)\bcnc\b`),
		regexp.MustCompile(`(?i)contract`),
	},
	fifo.RolePCK: {
		regexp.MustCompile(`(?i)\bpck[.\s]?nb\b`),
		regexp.MustCompile(`(?i)\bpck\b`),
		regexp.MustCompile(`(?i)package`),
	},
}

// AutoMap guesses the column of each role from the header names. Roles without a
// matching header are left out. Nothing prevents two roles from landing on the same
// column: the result is a suggestion to check with fifo.Mapping.Validate.
func AutoMap(headers []string) fifo.Mapping {
	m := make(fifo.Mapping)
	for _, role := range fifo.Roles {
	patterns:
		for _, re := range rolePatterns[role] {
			for i, h := range headers {
				if re.MatchString(h) {
					m[role] = i
					break patterns
				}
			}
		}
	}
	return m
}
