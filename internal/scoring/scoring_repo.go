package scoring

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoringRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(page, pageSize int) ([]Match, int64, error)
	SaveMatch(match *Match) error
	DeleteDelivery(id uint) error
	DeleteInnings(id uint) error
	WithTransaction(txFunc func(repo ScoringRepository) error) error
}

type GormScoringRepository struct {
	db *gorm.DB
}

func NewGormScoringRepository(db *gorm.DB) *GormScoringRepository {
	return &GormScoringRepository{db: db}
}

func (r *GormScoringRepository) CreateMatch(match *Match) error {
	return r.db.Omit(clause.Associations).Create(match).Error
}

// GetMatchByID loads the full aggregate: both rosters, innings in order and
// each innings' deliveries in insertion order.
func (r *GormScoringRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	err := r.db.
		Preload("TeamA.Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("batting_order ASC, id ASC")
		}).
		Preload("TeamB.Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("batting_order ASC, id ASC")
		}).
		Preload("Innings", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Innings.Deliveries", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormScoringRepository) GetMatches(page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	if err := r.db.Model(&Match{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.
		Preload("TeamA").
		Preload("TeamB").
		Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// SaveMatch persists the mutated aggregate. Associations are walked
// explicitly so that zero-value team structs on the match are never written
// back as rows.
func (r *GormScoringRepository) SaveMatch(match *Match) error {
	if err := r.db.Omit(clause.Associations).Save(match).Error; err != nil {
		return err
	}
	for i := range match.Innings {
		inn := &match.Innings[i]
		inn.MatchID = match.ID
		if err := r.db.Omit(clause.Associations).Save(inn).Error; err != nil {
			return err
		}
		for j := range inn.Deliveries {
			d := &inn.Deliveries[j]
			if d.ID != 0 {
				continue
			}
			d.InningsID = inn.ID
			if err := r.db.Omit(clause.Associations).Create(d).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *GormScoringRepository) DeleteDelivery(id uint) error {
	return r.db.Unscoped().Delete(&Delivery{}, id).Error
}

func (r *GormScoringRepository) DeleteInnings(id uint) error {
	return r.db.Unscoped().Delete(&Innings{}, id).Error
}

func (r *GormScoringRepository) WithTransaction(txFunc func(repo ScoringRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(NewGormScoringRepository(tx))
	})
}
