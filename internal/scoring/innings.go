package scoring

import "fmt"

// applyDelivery folds one ball into the innings' cached aggregates.
func (inn *Innings) applyDelivery(d *Delivery) {
	inn.TotalRuns += d.TotalRuns()
	if d.IsWicket {
		inn.TotalWickets++
	}
	if d.ExtraType.IsLegal() {
		inn.LegalBalls++
	}
	if d.IsDeclaration {
		inn.Declared = true
	}
	inn.updateOvers()
}

// reverseDelivery is the exact inverse of applyDelivery.
func (inn *Innings) reverseDelivery(d *Delivery) {
	inn.TotalRuns -= d.TotalRuns()
	if d.IsWicket {
		inn.TotalWickets--
	}
	if d.ExtraType.IsLegal() {
		inn.LegalBalls--
	}
	if d.IsDeclaration {
		inn.Declared = false
	}
	inn.updateOvers()
}

// updateOvers rederives the display overs value from the legal-ball count.
func (inn *Innings) updateOvers() {
	inn.Overs = float32(inn.LegalBalls/6) + float32(inn.LegalBalls%6)/10
}

// OversDisplay renders the authoritative position, e.g. "12.4".
func (inn *Innings) OversDisplay() string {
	return fmt.Sprintf("%d.%d", inn.LegalBalls/6, inn.LegalBalls%6)
}

// completedOvers is the number of whole overs bowled.
func (inn *Innings) completedOvers() int {
	return inn.LegalBalls / 6
}

// atOverBoundary reports whether the next legal ball starts a new over.
func (inn *Innings) atOverBoundary() bool {
	return inn.LegalBalls%6 == 0
}

// wicketsToClose is how many wickets end the innings: the full roster when the
// last man may bat alone, one fewer otherwise.
func (m *Match) wicketsToClose(inn *Innings) int {
	size := 0
	if t := m.TeamByID(inn.BattingTeamID); t != nil {
		size = len(t.Players)
	}
	if m.LastManStanding {
		return size
	}
	if size == 0 {
		return 0
	}
	return size - 1
}

// inningsComplete evaluates the completion conditions against the cached
// aggregates: all out, overs limit (limited format), target reached
// (second innings), or declaration.
func (m *Match) inningsComplete(inn *Innings) bool {
	if inn.TotalWickets >= m.wicketsToClose(inn) {
		return true
	}
	if m.Format == FormatLimited && inn.completedOvers() >= m.OversLimit() {
		return true
	}
	if inn.Number == 2 {
		if first := m.InningsByNumber(1); first != nil && inn.TotalRuns > first.TotalRuns {
			return true
		}
	}
	return inn.Declared
}

// recomputeAggregates rebuilds the cached totals from the ledger. The engine
// maintains them incrementally; this exists so tests (and repairs) can verify
// the cache never drifts from the deliveries.
func (inn *Innings) recomputeAggregates() {
	inn.TotalRuns = 0
	inn.TotalWickets = 0
	inn.LegalBalls = 0
	for i := range inn.Deliveries {
		d := &inn.Deliveries[i]
		inn.TotalRuns += d.TotalRuns()
		if d.IsWicket {
			inn.TotalWickets++
		}
		if d.ExtraType.IsLegal() {
			inn.LegalBalls++
		}
	}
	inn.updateOvers()
}
