package scoring

import (
	"github.com/gullyscore/gully/internal/roster"
)

// Scorecard is the read-only projection of a match: innings summaries plus
// per-player batting and bowling lines. Building it has no side effects.
type Scorecard struct {
	MatchID         uint         `json:"match_id"`
	Format          MatchFormat  `json:"format"`
	Status          MatchStatus  `json:"status"`
	TeamAName       string       `json:"team_a_name"`
	TeamBName       string       `json:"team_b_name"`
	TossWinnerName  string       `json:"toss_winner_name,omitempty"`
	TossDecision    TossDecision `json:"toss_decision,omitempty"`
	Innings         []InningsCard `json:"innings"`
	WinnerName      string       `json:"winner_name,omitempty"`
	BestBatsman     string       `json:"best_batsman,omitempty"`
	BestBowler      string       `json:"best_bowler,omitempty"`
	ManOfTheMatch   string       `json:"man_of_the_match,omitempty"`
}

type InningsCard struct {
	Number          int           `json:"innings_number"`
	BattingTeamName string        `json:"batting_team_name"`
	BowlingTeamName string        `json:"bowling_team_name"`
	TotalRuns       int           `json:"total_runs"`
	TotalWickets    int           `json:"total_wickets"`
	Overs           string        `json:"overs"`
	Completed       bool          `json:"completed"`
	Declared        bool          `json:"declared"`
	Extras          ExtrasCard    `json:"extras"`
	Batting         []BattingLine `json:"batting"`
	Bowling         []BowlingLine `json:"bowling"`
}

type ExtrasCard struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
	Total   int `json:"total"`
}

type BattingLine struct {
	PlayerID   uint    `json:"player_id"`
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	BallsFaced int     `json:"balls_faced"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Out        bool    `json:"out"`
	HowOut     string  `json:"how_out,omitempty"`
}

type BowlingLine struct {
	PlayerID     uint    `json:"player_id"`
	Name         string  `json:"name"`
	LegalBalls   int     `json:"legal_balls"`
	Overs        string  `json:"overs"`
	RunsConceded int     `json:"runs_conceded"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
}

// BuildScorecard projects the loaded match aggregate into a scorecard.
func BuildScorecard(m *Match) *Scorecard {
	names := playerNames(m)

	card := &Scorecard{
		MatchID:   m.ID,
		Format:    m.Format,
		Status:    m.Status,
		TeamAName: m.TeamA.Name,
		TeamBName: m.TeamB.Name,
	}
	if m.TossWinnerTeamID != nil {
		if t := m.TeamByID(*m.TossWinnerTeamID); t != nil {
			card.TossWinnerName = t.Name
		}
		card.TossDecision = m.TossDecision
	}
	if m.WinnerTeamID != nil {
		if t := m.TeamByID(*m.WinnerTeamID); t != nil {
			card.WinnerName = t.Name
		}
	}
	if m.BestBatsmanID != nil {
		card.BestBatsman = names[*m.BestBatsmanID]
	}
	if m.BestBowlerID != nil {
		card.BestBowler = names[*m.BestBowlerID]
	}
	if m.ManOfTheMatchID != nil {
		card.ManOfTheMatch = names[*m.ManOfTheMatchID]
	}

	for i := range m.Innings {
		card.Innings = append(card.Innings, buildInningsCard(m, &m.Innings[i], names))
	}
	return card
}

func buildInningsCard(m *Match, inn *Innings, names map[uint]string) InningsCard {
	card := InningsCard{
		Number:       inn.Number,
		TotalRuns:    inn.TotalRuns,
		TotalWickets: inn.TotalWickets,
		Overs:        inn.OversDisplay(),
		Completed:    inn.Completed,
		Declared:     inn.Declared,
	}
	if t := m.TeamByID(inn.BattingTeamID); t != nil {
		card.BattingTeamName = t.Name
	}
	if t := m.TeamByID(inn.BowlingTeamID); t != nil {
		card.BowlingTeamName = t.Name
	}

	batting := make(map[uint]*BattingLine)
	bowling := make(map[uint]*BowlingLine)
	var batOrder, bowlOrder []uint

	for i := range inn.Deliveries {
		d := &inn.Deliveries[i]

		switch d.ExtraType {
		case ExtraWide:
			card.Extras.Wides += d.Extras
		case ExtraNoBall:
			card.Extras.NoBalls += d.Extras
		case ExtraBye:
			card.Extras.Byes += d.Extras
		case ExtraLegBye:
			card.Extras.LegByes += d.Extras
		}
		card.Extras.Total += d.Extras

		bat := batting[d.StrikerID]
		if bat == nil {
			bat = &BattingLine{PlayerID: d.StrikerID, Name: names[d.StrikerID]}
			batting[d.StrikerID] = bat
			batOrder = append(batOrder, d.StrikerID)
		}
		bat.Runs += d.RunsOffBat
		if d.ExtraType != ExtraWide {
			bat.BallsFaced++
		}
		if d.IsFour {
			bat.Fours++
		}
		if d.IsSix {
			bat.Sixes++
		}

		if d.IsWicket && d.PlayerOutID != nil {
			if out := batting[*d.PlayerOutID]; out != nil {
				out.Out = true
				out.HowOut = string(d.WicketType)
			} else {
				// Dismissed without facing a ball (non-striker run out).
				line := &BattingLine{
					PlayerID: *d.PlayerOutID,
					Name:     names[*d.PlayerOutID],
					Out:      true,
					HowOut:   string(d.WicketType),
				}
				batting[*d.PlayerOutID] = line
				batOrder = append(batOrder, *d.PlayerOutID)
			}
		}

		bowl := bowling[d.BowlerID]
		if bowl == nil {
			bowl = &BowlingLine{PlayerID: d.BowlerID, Name: names[d.BowlerID]}
			bowling[d.BowlerID] = bowl
			bowlOrder = append(bowlOrder, d.BowlerID)
		}
		if d.ExtraType.IsLegal() {
			bowl.LegalBalls++
		}
		bowl.RunsConceded += bowlerConcedes(d)
		if d.IsWicket && d.WicketType.CreditedToBowler() {
			bowl.Wickets++
		}
	}

	for _, id := range batOrder {
		line := batting[id]
		if line.BallsFaced > 0 {
			line.StrikeRate = float64(line.Runs) / float64(line.BallsFaced) * 100
		}
		card.Batting = append(card.Batting, *line)
	}
	for _, id := range bowlOrder {
		line := bowling[id]
		line.Overs = oversString(line.LegalBalls)
		if line.LegalBalls > 0 {
			line.Economy = float64(line.RunsConceded) / (float64(line.LegalBalls) / 6)
		}
		card.Bowling = append(card.Bowling, *line)
	}
	return card
}

func oversString(legalBalls int) string {
	return (&Innings{LegalBalls: legalBalls}).OversDisplay()
}

func playerNames(m *Match) map[uint]string {
	names := make(map[uint]string)
	for _, t := range []*roster.Team{&m.TeamA, &m.TeamB} {
		for _, p := range t.Players {
			names[p.ID] = p.Name
		}
	}
	return names
}
