package fifo

// Summary holds the aggregate figures of a matching run.
type Summary struct {
	Lots        int      `json:"lots"`
	OpenLots    int      `json:"openLots"`
	ClosedLots  int      `json:"closedLots"`
	OpenLong    Quantity `json:"openLong"`    // remaining of open Buy lots
	OpenShort   Quantity `json:"openShort"`   // remaining of open Sell lots
	NetOpen     Quantity `json:"netOpen"`     // OpenLong - OpenShort
	TotalBought Quantity `json:"totalBought"` // opening size of Buy lots
	TotalSold   Quantity `json:"totalSold"`   // opening size of Sell lots
}

// NewSummary aggregates lots. Totals use each lot's opening size, so they are not
// affected by later closes.
func NewSummary(lots []Lot) Summary {
	s := Summary{Lots: len(lots)}
	for _, l := range lots {
		if l.Status == Open {
			s.OpenLots++
			if l.Side == Buy {
				s.OpenLong = s.OpenLong.Add(l.RemainingQty)
			} else {
				s.OpenShort = s.OpenShort.Add(l.RemainingQty)
			}
		} else {
			s.ClosedLots++
		}
		if l.Side == Buy {
			s.TotalBought = s.TotalBought.Add(l.OpenQty)
		} else {
			s.TotalSold = s.TotalSold.Add(l.OpenQty)
		}
	}
	s.NetOpen = s.OpenLong.Sub(s.OpenShort)
	return s
}
