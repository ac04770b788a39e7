package roster

import (
	"errors"

	"gorm.io/gorm"
)

// RosterRepository defines methods to interact with teams and players.
type RosterRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeams(page, pageSize int) ([]Team, int64, error)
	AddPlayer(player *Player) error
	DeleteTeam(id uint) error
}

// GormRosterRepository implements RosterRepository using GORM.
type GormRosterRepository struct {
	db *gorm.DB
}

func NewGormRosterRepository(db *gorm.DB) *GormRosterRepository {
	return &GormRosterRepository{db: db}
}

// CreateTeam creates a team together with its players in one transaction.
func (r *GormRosterRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

// GetTeamByID retrieves a team with its players in batting-card order.
func (r *GormRosterRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	result := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("batting_order ASC, id ASC")
	}).First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &team, nil
}

// GetTeams retrieves teams with pagination.
func (r *GormRosterRepository) GetTeams(page, pageSize int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("batting_order ASC, id ASC")
	}).Offset(offset).Limit(pageSize).Find(&teams)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return teams, total, nil
}

func (r *GormRosterRepository) AddPlayer(player *Player) error {
	return r.db.Create(player).Error
}

// DeleteTeam soft-deletes a team and its players.
func (r *GormRosterRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&Player{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}
