package fifo

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places every quantity update is rounded to.
const Precision = 8

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a nominal quantity. Its zero value is 0.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the quantity for value.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// Round returns q rounded half away from zero to Precision decimal places.
func (q Quantity) Round() Quantity { return Quantity{value: q.value.Round(Precision)} }

// Add returns q+p rounded to Precision.
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)}.Round() }

// Sub returns q-p rounded to Precision.
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{value: q.value.Sub(p.value)}.Round() }

// Min returns the smaller of q and p.
func (q Quantity) Min(p Quantity) Quantity {
	if p.value.LessThan(q.value) {
		return p
	}
	return q
}

func (q Quantity) Abs() Quantity               { return Quantity{value: q.value.Abs()} }
func (q Quantity) Neg() Quantity               { return Quantity{value: q.value.Neg()} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) Cmp(p Quantity) int          { return q.value.Cmp(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }

// Float64 returns the nearest float64 value of q.
func (q Quantity) Float64() float64 {
	f, _ := q.value.Float64()
	return f
}

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}

var (
	notNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	numericPrefix = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParseQuantity reads a nominal from free text: every character other than digits,
// '.' and '-' is removed, the longest leading number is parsed and its absolute
// value returned. It returns false when no number can be read.
//
// "1,250.50 EUR" reads as 1250.5 and "(300)" as 300.
func ParseQuantity(s string) (Quantity, bool) {
	cleaned := notNumeric.ReplaceAllString(strings.TrimSpace(s), "")
	lit := numericPrefix.FindString(cleaned)
	if lit == "" {
		return Quantity{}, false
	}
	// decimal wants digits on both sides of the point.
	lit = strings.TrimSuffix(lit, ".")
	if neg := strings.HasPrefix(lit, "-"); strings.HasPrefix(strings.TrimPrefix(lit, "-"), ".") {
		lit = "0" + strings.TrimPrefix(lit, "-")
		if neg {
			lit = "-" + lit
		}
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return Quantity{}, false
	}
	return Quantity{value: d.Abs()}, true
}
