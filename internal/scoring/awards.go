package scoring

import "sort"

// Per-player tallies over every delivery of the match.
type battingTally struct {
	playerID uint
	runs     int
	balls    int // balls faced, wides excluded
}

type bowlingTally struct {
	playerID uint
	wickets  int // run outs excluded
	conceded int
}

// bowlerConcedes is the runs a ball costs its bowler: bat runs always, extras
// only for wides and no-balls. Byes and leg byes are the fielding side's
// fault, not the bowler's.
func bowlerConcedes(d *Delivery) int {
	cost := d.RunsOffBat
	if d.ExtraType == ExtraWide || d.ExtraType == ExtraNoBall {
		cost += d.Extras
	}
	return cost
}

const wicketPoints = 20

// ComputeAwards aggregates every delivery of the match and returns the best
// batsman, best bowler, and man of the match. Each is nil when no player
// qualifies (no deliveries on that side of the ball).
//
// Ordering: batsmen by runs desc then balls faced asc (better strike rate),
// bowlers by wickets desc then runs conceded asc. Exact ties fall back to the
// lowest player ID so the result never depends on iteration order. Man of the
// match maximizes runs + 20 per wicket across both disciplines.
func ComputeAwards(m *Match) (bestBatsman, bestBowler, manOfTheMatch *uint) {
	batting := make(map[uint]*battingTally)
	bowling := make(map[uint]*bowlingTally)

	for i := range m.Innings {
		inn := &m.Innings[i]
		for j := range inn.Deliveries {
			d := &inn.Deliveries[j]

			bat := batting[d.StrikerID]
			if bat == nil {
				bat = &battingTally{playerID: d.StrikerID}
				batting[d.StrikerID] = bat
			}
			bat.runs += d.RunsOffBat
			if d.ExtraType != ExtraWide {
				bat.balls++
			}

			bowl := bowling[d.BowlerID]
			if bowl == nil {
				bowl = &bowlingTally{playerID: d.BowlerID}
				bowling[d.BowlerID] = bowl
			}
			if d.IsWicket && d.WicketType.CreditedToBowler() {
				bowl.wickets++
			}
			bowl.conceded += bowlerConcedes(d)
		}
	}

	if len(batting) > 0 {
		ranked := make([]*battingTally, 0, len(batting))
		for _, t := range batting {
			ranked = append(ranked, t)
		}
		sort.Slice(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.runs != b.runs {
				return a.runs > b.runs
			}
			if a.balls != b.balls {
				return a.balls < b.balls
			}
			return a.playerID < b.playerID
		})
		id := ranked[0].playerID
		bestBatsman = &id
	}

	if len(bowling) > 0 {
		ranked := make([]*bowlingTally, 0, len(bowling))
		for _, t := range bowling {
			ranked = append(ranked, t)
		}
		sort.Slice(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.wickets != b.wickets {
				return a.wickets > b.wickets
			}
			if a.conceded != b.conceded {
				return a.conceded < b.conceded
			}
			return a.playerID < b.playerID
		})
		id := ranked[0].playerID
		bestBowler = &id
	}

	points := make(map[uint]int)
	for id, t := range batting {
		points[id] += t.runs
	}
	for id, t := range bowling {
		points[id] += t.wickets * wicketPoints
	}
	if len(points) > 0 {
		var momID uint
		best := -1
		ids := make([]uint, 0, len(points))
		for id := range points {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			if points[id] > best {
				best = points[id]
				momID = id
			}
		}
		manOfTheMatch = &momID
	}

	return bestBatsman, bestBowler, manOfTheMatch
}
