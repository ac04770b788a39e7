package scoring

import "fmt"

// The delivery ledger is the innings' ordered list of balls. Insertion order
// is the sole source of truth for "last ball": the engine assigns positions
// monotonically, so no re-sorting is ever needed.

// appendDelivery stamps the delivery with its engine-derived over/ball
// position and appends it to the ledger.
func (inn *Innings) appendDelivery(d *Delivery) {
	legal := inn.legalBallCount()
	d.InningsID = inn.ID
	d.OverNumber = legal/6 + 1
	d.BallNumber = legal%6 + 1
	inn.Deliveries = append(inn.Deliveries, *d)
}

// removeLastDelivery pops the ledger tail. The caller is responsible for
// reversing the removed ball's contribution to the cached aggregates.
func (inn *Innings) removeLastDelivery() (*Delivery, error) {
	if len(inn.Deliveries) == 0 {
		return nil, fmt.Errorf("%w: innings %d has no deliveries to undo", ErrNotFound, inn.Number)
	}
	last := inn.Deliveries[len(inn.Deliveries)-1]
	inn.Deliveries = inn.Deliveries[:len(inn.Deliveries)-1]
	return &last, nil
}

// lastDelivery returns the ledger tail, or nil for an empty ledger.
func (inn *Innings) lastDelivery() *Delivery {
	if len(inn.Deliveries) == 0 {
		return nil
	}
	return &inn.Deliveries[len(inn.Deliveries)-1]
}

// lastLegalDelivery returns the most recent ball that counted toward an over.
func (inn *Innings) lastLegalDelivery() *Delivery {
	for i := len(inn.Deliveries) - 1; i >= 0; i-- {
		if inn.Deliveries[i].ExtraType.IsLegal() {
			return &inn.Deliveries[i]
		}
	}
	return nil
}

// legalBallCount recounts legal deliveries straight off the ledger. Cached
// LegalBalls must always agree with this.
func (inn *Innings) legalBallCount() int {
	n := 0
	for i := range inn.Deliveries {
		if inn.Deliveries[i].ExtraType.IsLegal() {
			n++
		}
	}
	return n
}
