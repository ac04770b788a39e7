package scoring

import "testing"

// awardsFixture builds a match with hand-written ledgers, bypassing the
// engine, so the tallies under test are easy to read off the deliveries.
func awardsFixture(deliveries ...Delivery) *Match {
	m := testMatch(11)
	m.Innings = []Innings{{Number: 1, BattingTeamID: 1, BowlingTeamID: 2, Deliveries: deliveries}}
	return m
}

func TestBestBatsmanTieBreaksOnBallsFaced(t *testing.T) {
	// Both strikers score 10; 102 needs fewer balls.
	m := awardsFixture(
		Delivery{StrikerID: 101, BowlerID: 201, RunsOffBat: 4, ExtraType: ExtraNone},
		Delivery{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
		Delivery{StrikerID: 101, BowlerID: 201, RunsOffBat: 0, ExtraType: ExtraNone},
		Delivery{StrikerID: 102, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
		Delivery{StrikerID: 102, BowlerID: 201, RunsOffBat: 4, ExtraType: ExtraNone},
	)

	best, _, _ := ComputeAwards(m)
	if best == nil || *best != 102 {
		t.Fatalf("best batsman = %v, want 102", best)
	}
}

func TestBatsmanBallsFacedExcludeWides(t *testing.T) {
	// Same runs and same legal balls; the wide faced by 101 must not count
	// against him, leaving a dead tie that falls to the lower ID.
	m := awardsFixture(
		Delivery{StrikerID: 101, BowlerID: 201, RunsOffBat: 4, ExtraType: ExtraNone},
		Delivery{StrikerID: 101, BowlerID: 201, Extras: 1, ExtraType: ExtraWide},
		Delivery{StrikerID: 102, BowlerID: 201, RunsOffBat: 4, ExtraType: ExtraNone},
	)

	best, _, _ := ComputeAwards(m)
	if best == nil || *best != 101 {
		t.Fatalf("best batsman = %v, want 101 on the ID tie-break", best)
	}
}

func TestBestBowlerIgnoresRunOuts(t *testing.T) {
	out1, out2 := uint(101), uint(102)
	m := awardsFixture(
		Delivery{StrikerID: 101, BowlerID: 201, IsWicket: true, WicketType: WicketBowled, PlayerOutID: &out1, ExtraType: ExtraNone},
		Delivery{StrikerID: 102, BowlerID: 202, IsWicket: true, WicketType: WicketRunOut, PlayerOutID: &out2, ExtraType: ExtraNone},
		Delivery{StrikerID: 103, BowlerID: 202, IsWicket: true, WicketType: WicketRunOut, PlayerOutID: &out2, ExtraType: ExtraNone},
	)

	_, best, _ := ComputeAwards(m)
	if best == nil || *best != 201 {
		t.Fatalf("best bowler = %v, want 201 (run outs carry no credit)", best)
	}
}

func TestBowlerConcededExcludesByes(t *testing.T) {
	// 201 concedes 4 in byes and leg byes, which are not his; 202 concedes 2
	// in wides, which are. With zero wickets each, 201 wins on fewer conceded.
	m := awardsFixture(
		Delivery{StrikerID: 101, BowlerID: 201, Extras: 2, ExtraType: ExtraBye},
		Delivery{StrikerID: 101, BowlerID: 201, Extras: 2, ExtraType: ExtraLegBye},
		Delivery{StrikerID: 101, BowlerID: 202, Extras: 2, ExtraType: ExtraWide},
	)

	_, best, _ := ComputeAwards(m)
	if best == nil || *best != 201 {
		t.Fatalf("best bowler = %v, want 201", best)
	}
}

func TestManOfTheMatchPoints(t *testing.T) {
	// 101 scores 30 with the bat. 201 scores 5 and takes two wickets for
	// 5 + 2*20 = 45 points, beating 101's 30.
	out := uint(102)
	m := testMatch(11)
	m.Innings = []Innings{
		{Number: 1, BattingTeamID: 1, BowlingTeamID: 2, Deliveries: []Delivery{
			{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
			{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
			{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
			{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
			{StrikerID: 101, BowlerID: 201, RunsOffBat: 6, ExtraType: ExtraNone},
			{StrikerID: 102, BowlerID: 201, IsWicket: true, WicketType: WicketBowled, PlayerOutID: &out, ExtraType: ExtraNone},
			{StrikerID: 103, BowlerID: 201, IsWicket: true, WicketType: WicketCaught, PlayerOutID: &out, ExtraType: ExtraNone},
		}},
		{Number: 2, BattingTeamID: 2, BowlingTeamID: 1, Deliveries: []Delivery{
			{StrikerID: 201, BowlerID: 101, RunsOffBat: 5, ExtraType: ExtraNone},
		}},
	}

	bat, bowl, mom := ComputeAwards(m)
	if bat == nil || *bat != 101 {
		t.Fatalf("best batsman = %v, want 101", bat)
	}
	if bowl == nil || *bowl != 201 {
		t.Fatalf("best bowler = %v, want 201", bowl)
	}
	if mom == nil || *mom != 201 {
		t.Fatalf("man of the match = %v, want 201", mom)
	}
}

func TestAwardsOnEmptyMatch(t *testing.T) {
	m := testMatch(11)
	bat, bowl, mom := ComputeAwards(m)
	if bat != nil || bowl != nil || mom != nil {
		t.Fatalf("awards on an empty match: %v %v %v", bat, bowl, mom)
	}
}
