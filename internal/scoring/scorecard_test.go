package scoring

import "testing"

func TestBuildScorecard(t *testing.T) {
	m := testMatch(3)
	mustToss(t, m, 1, DecisionBat)

	mustRecord(t, m, ball(101, 102, 201, 4))
	mustRecord(t, m, ball(101, 102, 201, 6))
	lb := ball(101, 102, 201, 0)
	lb.ExtraType = ExtraLegBye
	lb.Extras = 2
	mustRecord(t, m, lb)
	wide := ball(102, 101, 201, 0)
	wide.ExtraType = ExtraWide
	wide.Extras = 1
	mustRecord(t, m, wide)
	mustRecord(t, m, wicket(102, 101, 201, WicketBowled, 102))

	card := BuildScorecard(m)

	if card.MatchID != m.ID || card.Status != StatusLive {
		t.Fatalf("header wrong: %+v", card)
	}
	if card.TossWinnerName != "Alpha" || card.TossDecision != DecisionBat {
		t.Fatalf("toss not projected: %q %q", card.TossWinnerName, card.TossDecision)
	}
	if len(card.Innings) != 1 {
		t.Fatalf("innings cards = %d, want 1", len(card.Innings))
	}

	inn := card.Innings[0]
	if inn.BattingTeamName != "Alpha" || inn.BowlingTeamName != "Bravo" {
		t.Fatalf("team names: %q vs %q", inn.BattingTeamName, inn.BowlingTeamName)
	}
	if inn.TotalRuns != 13 || inn.TotalWickets != 1 {
		t.Fatalf("totals = %d/%d, want 13/1", inn.TotalRuns, inn.TotalWickets)
	}
	if inn.Extras.LegByes != 2 || inn.Extras.Wides != 1 || inn.Extras.Total != 3 {
		t.Fatalf("extras breakdown wrong: %+v", inn.Extras)
	}
	if inn.Overs != "0.4" {
		t.Fatalf("overs = %s, want 0.4", inn.Overs)
	}

	if len(inn.Batting) != 2 {
		t.Fatalf("batting lines = %d, want 2", len(inn.Batting))
	}
	opener := inn.Batting[0]
	if opener.PlayerID != 101 || opener.Runs != 10 || opener.BallsFaced != 3 {
		t.Fatalf("opener line: %+v", opener)
	}
	if opener.Fours != 1 || opener.Sixes != 1 || opener.Out {
		t.Fatalf("opener boundaries/out: %+v", opener)
	}
	if opener.StrikeRate < 333 || opener.StrikeRate > 334 {
		t.Fatalf("opener strike rate = %f", opener.StrikeRate)
	}
	second := inn.Batting[1]
	if second.PlayerID != 102 || !second.Out || second.HowOut != "bowled" {
		t.Fatalf("second batsman line: %+v", second)
	}
	// The wide he faced does not count as a ball.
	if second.BallsFaced != 1 {
		t.Fatalf("second batsman balls faced = %d, want 1", second.BallsFaced)
	}

	if len(inn.Bowling) != 1 {
		t.Fatalf("bowling lines = %d, want 1", len(inn.Bowling))
	}
	bowler := inn.Bowling[0]
	if bowler.PlayerID != 201 || bowler.LegalBalls != 4 || bowler.Overs != "0.4" {
		t.Fatalf("bowler line: %+v", bowler)
	}
	// Leg byes are not the bowler's runs; the wide is.
	if bowler.RunsConceded != 11 || bowler.Wickets != 1 {
		t.Fatalf("bowler conceded/wickets = %d/%d, want 11/1", bowler.RunsConceded, bowler.Wickets)
	}
}

func TestScorecardNamesAwardsAndWinner(t *testing.T) {
	m := testMatch(2)
	mustToss(t, m, 1, DecisionBat)
	mustRecord(t, m, ball(101, 102, 201, 4))
	mustRecord(t, m, wicket(101, 102, 201, WicketBowled, 101))
	mustRecord(t, m, ball(201, 202, 101, 6))

	card := BuildScorecard(m)
	if card.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", card.Status)
	}
	if card.WinnerName != "Bravo" {
		t.Fatalf("winner = %q, want Bravo", card.WinnerName)
	}
	if card.BestBatsman == "" || card.BestBowler == "" || card.ManOfTheMatch == "" {
		t.Fatalf("award names missing: %+v", card)
	}
	if len(card.Innings) != 2 {
		t.Fatalf("innings cards = %d, want 2", len(card.Innings))
	}
}
