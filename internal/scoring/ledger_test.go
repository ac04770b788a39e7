package scoring

import (
	"errors"
	"testing"
)

func TestLedgerPositionStamping(t *testing.T) {
	m := testMatch(11)
	mustToss(t, m, 1, DecisionBat)

	// Five legal balls, a wide, then two more legal balls. The wide repeats
	// the ball number and the over rolls only on the sixth legal ball.
	for i := 0; i < 5; i++ {
		mustRecord(t, m, ball(101, 102, 201, 0))
	}
	wide := ball(101, 102, 201, 0)
	wide.ExtraType = ExtraWide
	wide.Extras = 1
	mustRecord(t, m, wide)
	mustRecord(t, m, ball(101, 102, 201, 0))
	mustRecord(t, m, ball(101, 102, 202, 0))

	inn := m.CurrentInnings()
	want := []struct{ over, ball int }{
		{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{1, 6}, // the wide occupies the sixth slot but does not consume it
		{1, 6},
		{2, 1},
	}
	if len(inn.Deliveries) != len(want) {
		t.Fatalf("ledger length = %d, want %d", len(inn.Deliveries), len(want))
	}
	for i, w := range want {
		d := inn.Deliveries[i]
		if d.OverNumber != w.over || d.BallNumber != w.ball {
			t.Errorf("delivery %d at %d.%d, want %d.%d", i, d.OverNumber, d.BallNumber, w.over, w.ball)
		}
	}
	if inn.LegalBalls != 7 {
		t.Fatalf("legal balls = %d, want 7", inn.LegalBalls)
	}
}

func TestLastLegalDeliverySkipsExtras(t *testing.T) {
	m := testMatch(11)
	mustToss(t, m, 1, DecisionBat)

	mustRecord(t, m, ball(101, 102, 201, 0))
	nb := ball(101, 102, 201, 0)
	nb.ExtraType = ExtraNoBall
	nb.Extras = 1
	mustRecord(t, m, nb)

	inn := m.CurrentInnings()
	last := inn.lastLegalDelivery()
	if last == nil || last.ExtraType != ExtraNone {
		t.Fatalf("lastLegalDelivery returned %+v", last)
	}
	if tail := inn.lastDelivery(); tail == nil || tail.ExtraType != ExtraNoBall {
		t.Fatalf("lastDelivery returned %+v", tail)
	}
}

func TestRemoveLastDeliveryOnEmptyLedger(t *testing.T) {
	inn := &Innings{Number: 1}
	if _, err := inn.removeLastDelivery(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
