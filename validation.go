package fifo

import "fmt"

// Verify checks the lot invariants: ids follow creation order, 0 <= remaining <= open,
// a lot is closed exactly when nothing remains, the first contribution opened the
// lot, and own-side minus opposite-side contributions equals the remaining quantity.
func Verify(lots []Lot) error {
	for i, l := range lots {
		if l.ID != i+1 {
			return fmt.Errorf("%w: lot at position %d has id %d", ErrInvariant, i, l.ID)
		}
		if l.RemainingQty.IsNegative() || l.RemainingQty.GreaterThan(l.OpenQty) {
			return fmt.Errorf("%w: lot %d remaining %v outside [0, %v]", ErrInvariant, l.ID, l.RemainingQty, l.OpenQty)
		}
		if closed := l.RemainingQty.IsZero(); closed != (l.Status == Closed) {
			return fmt.Errorf("%w: lot %d is %v with remaining %v", ErrInvariant, l.ID, l.Status, l.RemainingQty)
		}
		if len(l.Contributors) == 0 {
			return fmt.Errorf("%w: lot %d has no contributors", ErrInvariant, l.ID)
		}
		if first := l.Contributors[0]; first.Direction != l.Side || !first.Qty.Equal(l.OpenQty) {
			return fmt.Errorf("%w: lot %d first contributor is not its opening", ErrInvariant, l.ID)
		}
		var balance Quantity
		for _, c := range l.Contributors {
			if !c.Qty.IsPositive() {
				return fmt.Errorf("%w: lot %d has a contribution of %v from row %d", ErrInvariant, l.ID, c.Qty, c.SourceRow)
			}
			balance = balance.Add(signed(l.Side, c))
		}
		if !balance.Equal(l.RemainingQty) {
			return fmt.Errorf("%w: lot %d contributions sum to %v, remaining is %v", ErrInvariant, l.ID, balance, l.RemainingQty)
		}
	}
	return nil
}

// signed returns c's quantity, negated when c is on the other side of the lot.
func signed(side Side, c Contribution) Quantity {
	if c.Direction == side {
		return c.Qty
	}
	return c.Qty.Neg()
}
