package roster

import (
	"gorm.io/gorm"
)

// Team is a fixed list of players. Roster order doubles as the batting-card
// order on scorecards.
type Team struct {
	gorm.Model
	Name    string   `json:"name" gorm:"not null"`
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// Player belongs to exactly one team.
type Player struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	TeamID       uint   `json:"team_id" gorm:"index;not null"`
	IsCaptain    bool   `json:"is_captain" gorm:"default:false"`
	BattingOrder int    `json:"batting_order" gorm:"not null;default:0"` // 1-indexed roster position
}

// HasPlayer reports whether the player belongs to this team's roster.
func (t *Team) HasPlayer(playerID uint) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
