package fifo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Role is the meaning of a sheet column for the engine.
type Role string

const (
	RoleDate      Role = "date"
	RoleDirection Role = "direction"
	RoleNominal   Role = "nominal"
	RoleTRN       Role = "trn"
	RoleCNC       Role = "cnc"
	RolePCK       Role = "pck"
)

// Roles lists every required role in display order.
var Roles = []Role{RoleDate, RoleDirection, RoleNominal, RoleTRN, RoleCNC, RolePCK}

// ParseRole parses a role name, case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown column role: %q", s)
}

// Mapping assigns a 0-based column index to each role.
type Mapping map[Role]int

// Column returns the column mapped to r, or -1.
func (m Mapping) Column(r Role) int {
	if i, ok := m[r]; ok {
		return i
	}
	return -1
}

// Validate checks that every role is assigned to a distinct column in [0, columns).
// All problems are reported at once.
func (m Mapping) Validate(columns int) error {
	var result *multierror.Error
	owner := make(map[int]Role)
	for _, r := range Roles {
		i, ok := m[r]
		if !ok || i < 0 {
			result = multierror.Append(result, fmt.Errorf("no column selected for %q", r))
			continue
		}
		if i >= columns {
			result = multierror.Append(result, fmt.Errorf("column %d for %q is out of range (%d columns)", i, r, columns))
			continue
		}
		if prev, dup := owner[i]; dup {
			result = multierror.Append(result, fmt.Errorf("column %d is used for both %q and %q", i, prev, r))
			continue
		}
		owner[i] = r
	}
	return result.ErrorOrNil()
}

// ErrAmbiguousKeywords is returned when the buy and sell keywords cannot tell rows apart.
var ErrAmbiguousKeywords = errors.New("fifo: ambiguous direction keywords")

// Keywords are the substrings that identify a buy or a sell in the direction column.
type Keywords struct {
	Buy  string
	Sell string
}

// DefaultKeywords matches "buy" and "sell".
var DefaultKeywords = Keywords{Buy: "buy", Sell: "sell"}

// normalized returns the keywords trimmed and lower-cased.
func (k Keywords) normalized() Keywords {
	return Keywords{
		Buy:  strings.ToLower(strings.TrimSpace(k.Buy)),
		Sell: strings.ToLower(strings.TrimSpace(k.Sell)),
	}
}

// Validate rejects keywords that are empty, or where one contains the other: with such
// keywords every row matching the longer one matches both and would be dropped.
func (k Keywords) Validate() error {
	n := k.normalized()
	if n.Buy == "" || n.Sell == "" {
		return fmt.Errorf("%w: buy and sell keywords must not be empty", ErrAmbiguousKeywords)
	}
	if strings.Contains(n.Buy, n.Sell) || strings.Contains(n.Sell, n.Buy) {
		return fmt.Errorf("%w: %q and %q overlap", ErrAmbiguousKeywords, n.Buy, n.Sell)
	}
	return nil
}
