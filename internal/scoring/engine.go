package scoring

import (
	"fmt"
)

// DeliveryInput is one ball as reported by the scorer. Over/ball positions are
// deliberately absent: the engine derives them from the ledger.
type DeliveryInput struct {
	StrikerID    uint
	NonStrikerID *uint
	BowlerID     uint
	RunsOffBat   int
	Extras       int
	ExtraType    ExtraType
	IsWicket     bool
	WicketType   WicketType
	PlayerOutID  *uint
	FielderID    *uint
	Declare      bool
}

// UndoResult reports what UndoLastDelivery removed so the persistence layer
// can delete the corresponding rows.
type UndoResult struct {
	Removed        Delivery
	DroppedInnings *Innings // an empty successor innings undone by reopening, if any
}

// RecordToss assigns the batting order and opens the first innings. Valid only
// while the match is in setup.
func RecordToss(m *Match, winnerTeamID uint, decision TossDecision) error {
	if m.Status != StatusSetup {
		return fmt.Errorf("%w: toss can only be recorded during setup, match is %s", ErrInvalidState, m.Status)
	}
	if decision != DecisionBat && decision != DecisionBowl {
		return fmt.Errorf("%w: unknown toss decision %q", ErrRuleViolation, decision)
	}
	if m.TeamByID(winnerTeamID) == nil {
		return fmt.Errorf("%w: team %d is not playing this match", ErrInvalidReference, winnerTeamID)
	}

	battingTeamID := winnerTeamID
	if decision == DecisionBowl {
		battingTeamID = m.OpponentOf(winnerTeamID)
	}

	winner := winnerTeamID
	m.TossWinnerTeamID = &winner
	m.TossDecision = decision
	m.Innings = append(m.Innings, Innings{
		MatchID:       m.ID,
		Number:        1,
		BattingTeamID: battingTeamID,
		BowlingTeamID: m.OpponentOf(battingTeamID),
	})
	m.Status = StatusLive
	return nil
}

// RecordDelivery validates and appends one ball, updates the innings
// aggregates, and runs the completion cascade: close the innings, open the
// second one or finalize the match. The match is not mutated on any error.
func RecordDelivery(m *Match, in DeliveryInput) error {
	if m.Status != StatusLive {
		return fmt.Errorf("%w: deliveries can only be recorded while the match is live, match is %s", ErrInvalidState, m.Status)
	}
	inn := m.CurrentInnings()
	if inn == nil || inn.Completed {
		return fmt.Errorf("%w: no active innings", ErrInvalidState)
	}

	if err := m.validateDeliveryInput(inn, in); err != nil {
		return err
	}

	// A bowler cannot bowl consecutive overs: at an over boundary the incoming
	// bowler must differ from whoever bowled the previous legal ball.
	if inn.atOverBoundary() {
		if prev := inn.lastLegalDelivery(); prev != nil && prev.BowlerID == in.BowlerID {
			return fmt.Errorf("%w: bowler %d cannot bowl consecutive overs", ErrRuleViolation, in.BowlerID)
		}
	}

	d := Delivery{
		StrikerID:     in.StrikerID,
		NonStrikerID:  in.NonStrikerID,
		BowlerID:      in.BowlerID,
		RunsOffBat:    in.RunsOffBat,
		Extras:        in.Extras,
		ExtraType:     in.ExtraType,
		IsFour:        in.RunsOffBat == 4,
		IsSix:         in.RunsOffBat == 6,
		IsWicket:      in.IsWicket,
		WicketType:    in.WicketType,
		PlayerOutID:   in.PlayerOutID,
		FielderID:     in.FielderID,
		IsDeclaration: in.Declare,
	}
	inn.appendDelivery(&d)
	inn.applyDelivery(&d)

	if !m.inningsComplete(inn) {
		return nil
	}
	inn.Completed = true

	if inn.Number == 1 {
		// Teams swap for the chase. Appending may reallocate m.Innings, so no
		// use of inn past this point.
		m.Innings = append(m.Innings, Innings{
			MatchID:       m.ID,
			Number:        2,
			BattingTeamID: inn.BowlingTeamID,
			BowlingTeamID: inn.BattingTeamID,
		})
		return nil
	}

	m.finalize()
	return nil
}

// UndoLastDelivery removes the most recent ball of the current innings, or of
// the previous innings when the current one has not seen a ball yet. It
// reverses aggregates, reopens an innings completed by the removed ball, drops
// a successor innings the completion had opened, and de-finalizes the match if
// needed.
func UndoLastDelivery(m *Match) (*UndoResult, error) {
	cur := m.CurrentInnings()
	if cur == nil {
		return nil, fmt.Errorf("%w: no innings recorded", ErrNotFound)
	}

	target := cur
	if len(cur.Deliveries) == 0 {
		prev := m.InningsByNumber(cur.Number - 1)
		if prev == nil || len(prev.Deliveries) == 0 {
			return nil, fmt.Errorf("%w: no deliveries to undo", ErrNotFound)
		}
		target = prev
	}

	removed, err := target.removeLastDelivery()
	if err != nil {
		return nil, err
	}
	target.reverseDelivery(removed)

	res := &UndoResult{Removed: *removed}

	if target.Completed && !m.inningsComplete(target) {
		target.Completed = false

		// The removed ball had closed this innings. Whatever the cascade did
		// next is rolled back with it.
		if next := m.InningsByNumber(target.Number + 1); next != nil && len(next.Deliveries) == 0 {
			dropped := *next
			res.DroppedInnings = &dropped
			m.dropInnings(next.Number)
		}
		if m.Status == StatusCompleted {
			m.unfinalize()
		}
	}
	return res, nil
}

// validateDeliveryInput checks that every referenced player belongs to the
// right side of this match and that the ball description is coherent.
func (m *Match) validateDeliveryInput(inn *Innings, in DeliveryInput) error {
	if in.RunsOffBat < 0 || in.Extras < 0 {
		return fmt.Errorf("%w: negative runs", ErrRuleViolation)
	}
	if !in.ExtraType.Valid() {
		return fmt.Errorf("%w: unknown extra type %q", ErrRuleViolation, in.ExtraType)
	}
	if in.ExtraType == ExtraNone && in.Extras != 0 {
		return fmt.Errorf("%w: extras recorded without an extra type", ErrRuleViolation)
	}
	if !in.WicketType.Valid() {
		return fmt.Errorf("%w: unknown wicket type %q", ErrRuleViolation, in.WicketType)
	}
	if in.IsWicket && in.WicketType == WicketNone {
		return fmt.Errorf("%w: wicket recorded without a dismissal type", ErrRuleViolation)
	}
	if !in.IsWicket && (in.WicketType != WicketNone || in.PlayerOutID != nil) {
		return fmt.Errorf("%w: dismissal details on a ball with no wicket", ErrRuleViolation)
	}
	if in.NonStrikerID == nil && !m.LastManStanding {
		return fmt.Errorf("%w: non-striker is required unless last man standing is enabled", ErrRuleViolation)
	}
	if in.NonStrikerID != nil && *in.NonStrikerID == in.StrikerID {
		return fmt.Errorf("%w: striker and non-striker are the same player", ErrRuleViolation)
	}

	batting := m.TeamByID(inn.BattingTeamID)
	bowling := m.TeamByID(inn.BowlingTeamID)
	if batting == nil || bowling == nil {
		return fmt.Errorf("%w: innings teams do not belong to this match", ErrInvalidReference)
	}
	if !batting.HasPlayer(in.StrikerID) {
		return fmt.Errorf("%w: striker %d is not in the batting side", ErrInvalidReference, in.StrikerID)
	}
	if in.NonStrikerID != nil && !batting.HasPlayer(*in.NonStrikerID) {
		return fmt.Errorf("%w: non-striker %d is not in the batting side", ErrInvalidReference, *in.NonStrikerID)
	}
	if !bowling.HasPlayer(in.BowlerID) {
		return fmt.Errorf("%w: bowler %d is not in the bowling side", ErrInvalidReference, in.BowlerID)
	}
	if in.PlayerOutID != nil && !batting.HasPlayer(*in.PlayerOutID) {
		return fmt.Errorf("%w: dismissed player %d is not in the batting side", ErrInvalidReference, *in.PlayerOutID)
	}
	if in.FielderID != nil && !bowling.HasPlayer(*in.FielderID) {
		return fmt.Errorf("%w: fielder %d is not in the bowling side", ErrInvalidReference, *in.FielderID)
	}
	return nil
}

// finalize closes the match: decides the winner by comparing innings totals
// (equal totals tie with no winner) and computes the three awards.
func (m *Match) finalize() {
	m.Status = StatusCompleted

	first := m.InningsByNumber(1)
	second := m.InningsByNumber(2)
	if first != nil && second != nil {
		switch {
		case first.TotalRuns > second.TotalRuns:
			id := first.BattingTeamID
			m.WinnerTeamID = &id
		case second.TotalRuns > first.TotalRuns:
			id := second.BattingTeamID
			m.WinnerTeamID = &id
		}
	}

	m.BestBatsmanID, m.BestBowlerID, m.ManOfTheMatchID = ComputeAwards(m)
}

// unfinalize reverts a completed match to live and clears everything finalize
// set.
func (m *Match) unfinalize() {
	m.Status = StatusLive
	m.WinnerTeamID = nil
	m.WinnerTeam = nil
	m.BestBatsmanID = nil
	m.BestBatsman = nil
	m.BestBowlerID = nil
	m.BestBowler = nil
	m.ManOfTheMatchID = nil
	m.ManOfTheMatch = nil
}

func (m *Match) dropInnings(number int) {
	for i := range m.Innings {
		if m.Innings[i].Number == number {
			m.Innings = append(m.Innings[:i], m.Innings[i+1:]...)
			return
		}
	}
}
