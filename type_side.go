package fifo

import (
	"encoding/json"
	"fmt"
)

// Side is the direction of a transaction, and the side of the position a lot holds.
type Side int

const (
	// Buy is a purchase; a Buy lot is a long position.
	Buy Side = iota
	// Sell is a sale; a Sell lot is a short position.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown side: %q", s)
	}
}

func (s Side) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Status is the state of a lot. It only ever moves from Open to Closed.
type Status int

const (
	Open Status = iota
	Closed
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s Status) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "open":
		*s = Open
	case "closed":
		*s = Closed
	default:
		return fmt.Errorf("unknown status: %q", str)
	}
	return nil
}

// StatusFilter selects lots by status when listing or exporting them.
type StatusFilter int

const (
	AllLots StatusFilter = iota
	OpenLots
	ClosedLots
)

func (f StatusFilter) String() string {
	switch f {
	case AllLots:
		return "all"
	case OpenLots:
		return "open"
	case ClosedLots:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseStatusFilter parses a string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch s {
	case "", "all":
		return AllLots, nil
	case "open":
		return OpenLots, nil
	case "closed":
		return ClosedLots, nil
	default:
		return 0, fmt.Errorf("unknown status filter: %q", s)
	}
}

// Keep reports whether a lot with status s passes the filter.
func (f StatusFilter) Keep(s Status) bool {
	switch f {
	case OpenLots:
		return s == Open
	case ClosedLots:
		return s == Closed
	default:
		return true
	}
}
