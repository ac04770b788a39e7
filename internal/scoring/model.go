package scoring

import (
	"gorm.io/gorm"

	"github.com/gullyscore/gully/internal/roster"
)

type MatchFormat string

const (
	FormatLimited  MatchFormat = "limited"
	FormatMultiDay MatchFormat = "multi_day"
)

type MatchStatus string

const (
	StatusSetup     MatchStatus = "setup"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

type TossDecision string

const (
	DecisionBat  TossDecision = "bat"
	DecisionBowl TossDecision = "bowl"
)

// ExtraType classifies runs not scored off the bat. Wides and no-balls are
// illegal deliveries and do not count toward the six-ball over.
type ExtraType string

const (
	ExtraNone   ExtraType = "none"
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// IsLegal reports whether a delivery with this extra counts toward the over.
func (e ExtraType) IsLegal() bool {
	return e != ExtraWide && e != ExtraNoBall
}

// Valid reports whether the value is a known extra type.
func (e ExtraType) Valid() bool {
	switch e {
	case ExtraNone, ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return true
	}
	return false
}

type WicketType string

const (
	WicketNone      WicketType = "none"
	WicketBowled    WicketType = "bowled"
	WicketCaught    WicketType = "caught"
	WicketLBW       WicketType = "lbw"
	WicketRunOut    WicketType = "run_out"
	WicketStumped   WicketType = "stumped"
	WicketHitWicket WicketType = "hit_wicket"
)

// Valid reports whether the value is a known wicket type.
func (w WicketType) Valid() bool {
	switch w {
	case WicketNone, WicketBowled, WicketCaught, WicketLBW, WicketRunOut, WicketStumped, WicketHitWicket:
		return true
	}
	return false
}

// CreditedToBowler reports whether the dismissal counts toward the bowler's
// wicket tally. Run outs do not.
func (w WicketType) CreditedToBowler() bool {
	return w != WicketNone && w != WicketRunOut
}

// Match owns its innings; teams and players are referenced, never created here.
type Match struct {
	gorm.Model
	Format          MatchFormat `json:"format" gorm:"not null"`
	OversPerInnings *int        `json:"overs_per_innings,omitempty"` // limited format; nil means the default 20
	LastManStanding bool        `json:"last_man_standing" gorm:"default:false"`

	TeamAID uint        `json:"team_a_id" gorm:"index;not null"`
	TeamA   roster.Team `json:"team_a" gorm:"foreignKey:TeamAID"`
	TeamBID uint        `json:"team_b_id" gorm:"index;not null"`
	TeamB   roster.Team `json:"team_b" gorm:"foreignKey:TeamBID"`

	TossWinnerTeamID *uint        `json:"toss_winner_team_id,omitempty" gorm:"index"`
	TossWinnerTeam   *roster.Team `json:"toss_winner_team,omitempty" gorm:"foreignKey:TossWinnerTeamID"`
	TossDecision     TossDecision `json:"toss_decision,omitempty"`

	Status MatchStatus `json:"status" gorm:"index;default:'setup'"`

	WinnerTeamID    *uint          `json:"winner_team_id,omitempty" gorm:"index"`
	WinnerTeam      *roster.Team   `json:"winner_team,omitempty" gorm:"foreignKey:WinnerTeamID"`
	BestBatsmanID   *uint          `json:"best_batsman_id,omitempty" gorm:"index"`
	BestBatsman     *roster.Player `json:"best_batsman,omitempty" gorm:"foreignKey:BestBatsmanID"`
	BestBowlerID    *uint          `json:"best_bowler_id,omitempty" gorm:"index"`
	BestBowler      *roster.Player `json:"best_bowler,omitempty" gorm:"foreignKey:BestBowlerID"`
	ManOfTheMatchID *uint          `json:"man_of_the_match_id,omitempty" gorm:"index"`
	ManOfTheMatch   *roster.Player `json:"man_of_the_match,omitempty" gorm:"foreignKey:ManOfTheMatchID"`

	Innings []Innings `json:"innings" gorm:"foreignKey:MatchID"`
}

// Innings is one team's batting session. TotalRuns, TotalWickets and
// LegalBalls are cached aggregates over the delivery ledger; Overs is display
// only and always derived from LegalBalls.
type Innings struct {
	gorm.Model
	MatchID uint `json:"match_id" gorm:"index;not null"`
	Number  int  `json:"innings_number" gorm:"not null"` // 1-based, contiguous per match

	BattingTeamID uint        `json:"batting_team_id" gorm:"index;not null"`
	BattingTeam   roster.Team `json:"batting_team" gorm:"foreignKey:BattingTeamID"`
	BowlingTeamID uint        `json:"bowling_team_id" gorm:"index;not null"`
	BowlingTeam   roster.Team `json:"bowling_team" gorm:"foreignKey:BowlingTeamID"`

	Declared  bool `json:"declared" gorm:"default:false"`
	Completed bool `json:"completed" gorm:"default:false"`

	TotalRuns    int     `json:"total_runs" gorm:"default:0"`
	TotalWickets int     `json:"total_wickets" gorm:"default:0"`
	LegalBalls   int     `json:"legal_balls" gorm:"default:0"`
	Overs        float32 `json:"overs" gorm:"default:0.0"` // e.g. 10.2 for 10 overs and 2 balls

	Deliveries []Delivery `json:"deliveries" gorm:"foreignKey:InningsID"`
}

// Delivery records one ball bowled. Over/ball numbers are assigned by the
// engine from the ledger, never taken from the client.
type Delivery struct {
	gorm.Model
	InningsID  uint `json:"innings_id" gorm:"index;not null"`
	OverNumber int  `json:"over_number" gorm:"not null"` // 1-indexed
	BallNumber int  `json:"ball_number" gorm:"not null"` // 1-indexed within the over

	StrikerID    uint           `json:"striker_id" gorm:"index;not null"`
	Striker      *roster.Player `json:"striker,omitempty" gorm:"foreignKey:StrikerID"`
	NonStrikerID *uint          `json:"non_striker_id,omitempty" gorm:"index"` // nil when last man stands alone
	NonStriker   *roster.Player `json:"non_striker,omitempty" gorm:"foreignKey:NonStrikerID"`
	BowlerID     uint           `json:"bowler_id" gorm:"index;not null"`
	Bowler       *roster.Player `json:"bowler,omitempty" gorm:"foreignKey:BowlerID"`

	RunsOffBat int       `json:"runs_off_bat" gorm:"default:0"`
	Extras     int       `json:"extras" gorm:"default:0"`
	ExtraType  ExtraType `json:"extra_type" gorm:"default:'none'"`
	IsFour     bool      `json:"is_four" gorm:"default:false"`
	IsSix      bool      `json:"is_six" gorm:"default:false"`

	IsWicket    bool           `json:"is_wicket" gorm:"default:false"`
	WicketType  WicketType     `json:"wicket_type" gorm:"default:'none'"`
	PlayerOutID *uint          `json:"player_out_id,omitempty" gorm:"index"`
	PlayerOut   *roster.Player `json:"player_out,omitempty" gorm:"foreignKey:PlayerOutID"`
	FielderID   *uint          `json:"fielder_id,omitempty" gorm:"index"`
	Fielder     *roster.Player `json:"fielder,omitempty" gorm:"foreignKey:FielderID"`

	// True when the batting side declared on this ball. Recorded so that undo
	// reverses the declaration together with the ball that carried it.
	IsDeclaration bool `json:"is_declaration" gorm:"default:false"`
}

// TotalRuns is the delivery's full contribution to the innings total.
func (d *Delivery) TotalRuns() int {
	return d.RunsOffBat + d.Extras
}

// defaultOversPerInnings applies when a limited-overs match has no explicit
// overs setting.
const defaultOversPerInnings = 20

// OversLimit returns the configured overs per innings for a limited match.
func (m *Match) OversLimit() int {
	if m.OversPerInnings != nil && *m.OversPerInnings > 0 {
		return *m.OversPerInnings
	}
	return defaultOversPerInnings
}

// TeamByID resolves one of the match's two teams; nil if the ID is neither.
func (m *Match) TeamByID(teamID uint) *roster.Team {
	switch teamID {
	case m.TeamAID:
		return &m.TeamA
	case m.TeamBID:
		return &m.TeamB
	}
	return nil
}

// OpponentOf returns the other team's ID.
func (m *Match) OpponentOf(teamID uint) uint {
	if teamID == m.TeamAID {
		return m.TeamBID
	}
	return m.TeamAID
}

// CurrentInnings returns the innings with the highest sequence number, or nil
// before the toss.
func (m *Match) CurrentInnings() *Innings {
	if len(m.Innings) == 0 {
		return nil
	}
	cur := &m.Innings[0]
	for i := range m.Innings {
		if m.Innings[i].Number > cur.Number {
			cur = &m.Innings[i]
		}
	}
	return cur
}

// InningsByNumber returns the innings with the given sequence number, or nil.
func (m *Match) InningsByNumber(n int) *Innings {
	for i := range m.Innings {
		if m.Innings[i].Number == n {
			return &m.Innings[i]
		}
	}
	return nil
}
